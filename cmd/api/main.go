package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-spot-reservation/internal/api"
	"github.com/sanosuguru/go-spot-reservation/internal/api/handler"
	apimiddleware "github.com/sanosuguru/go-spot-reservation/internal/api/middleware"
	"github.com/sanosuguru/go-spot-reservation/internal/application"
	"github.com/sanosuguru/go-spot-reservation/internal/config"
	"github.com/sanosuguru/go-spot-reservation/internal/infrastructure/postgres"
	redisinfra "github.com/sanosuguru/go-spot-reservation/internal/infrastructure/redis"
	"github.com/sanosuguru/go-spot-reservation/internal/pkg/logger"
	"github.com/sanosuguru/go-spot-reservation/internal/pkg/metrics"
	"github.com/sanosuguru/go-spot-reservation/internal/worker"
)

func main() {
	cfg := config.Load()

	// ロガー初期化
	log := logger.NewLogger(os.Getenv("APP_ENV"))
	logger.Set(log)
	defer logger.Sync()

	// DB接続
	db, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		logger.Fatal("データベース接続に失敗", zap.Error(err))
	}
	defer db.Close()

	// マイグレーション
	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "migrations"
	}
	if err := postgres.RunMigrations(db.DB, migrationsPath); err != nil {
		logger.Fatal("マイグレーションに失敗", zap.Error(err))
	}

	// Redis接続（任意：接続できない場合はキャッシュなしで動作する）
	var spotCache *redisinfra.SpotCache
	var lockManager *redisinfra.LockManager
	redisClient := redisinfra.NewClient(&cfg.Redis)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := redisinfra.Ping(ctx, redisClient); err != nil {
		logger.Warn("Redis接続に失敗（キャッシュなしで継続）", zap.Error(err))
		redisClient = nil
	} else {
		spotCache = redisinfra.NewSpotCache(redisClient)
		lockManager = redisinfra.NewLockManager(redisClient)
	}
	cancel()

	// メトリクス初期化
	m := metrics.Init()

	// リポジトリ
	eventRepo := postgres.NewEventRepository(db)
	spotRepo := postgres.NewSpotRepository(db)
	historyRepo := postgres.NewReservationHistoryRepository(db)
	ticketRepo := postgres.NewTicketRepository(db)
	txManager := postgres.NewTxManager(db)

	// サービス
	eventService := application.NewEventService(eventRepo)
	spotService := application.NewSpotService(spotRepo, eventRepo, spotCache)
	reservationService := application.NewReservationService(txManager, spotRepo, historyRepo, ticketRepo, spotCache, m)

	// ハンドラー
	eventHandler := handler.NewEventHandler(eventService)
	spotHandler := handler.NewSpotHandler(spotService)
	reservationHandler := handler.NewReservationHandler(reservationService)
	healthHandler := handler.NewHealthHandler()

	// Echo設定
	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.CustomHTTPErrorHandler
	apimiddleware.SetupMiddleware(e)
	e.Use(apimiddleware.PrometheusMiddleware(m))

	// ルーティング
	v1 := e.Group("/api/v1")
	v1.GET("/health", healthHandler.Check)

	v1.POST("/events", eventHandler.Create)
	v1.GET("/events", eventHandler.List)
	v1.GET("/events/:id", eventHandler.GetByID)
	v1.PUT("/events/:id", eventHandler.Update)
	v1.DELETE("/events/:id", eventHandler.Delete)

	v1.POST("/events/:event_id/spots", spotHandler.Create)
	v1.POST("/events/:event_id/spots/bulk", spotHandler.CreateBulk)
	v1.GET("/events/:event_id/spots", spotHandler.GetByEvent)
	v1.GET("/events/:event_id/spots/count", spotHandler.CountAvailable)
	v1.GET("/spots/:id", spotHandler.GetByID)
	v1.PUT("/spots/:id", spotHandler.Update)
	v1.DELETE("/spots/:id", spotHandler.Delete)
	v1.GET("/spots/:id/history", reservationHandler.GetSpotHistory)

	v1.POST("/events/:event_id/reserve", reservationHandler.Reserve)
	v1.GET("/tickets", reservationHandler.GetTicketsByEmail)
	v1.GET("/tickets/:id", reservationHandler.GetTicket)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()), apimiddleware.MetricsBasicAuth())

	// バックグラウンドワーカー（Redisが使える場合のみ）
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	var refresher *worker.AvailabilityRefresher
	if spotCache != nil {
		refresher = worker.NewAvailabilityRefresher(
			eventRepo, spotRepo, spotCache, lockManager,
			cfg.Worker.RefreshInterval, cfg.Worker.CacheTTL,
		)
		go refresher.Start(workerCtx)
	}

	// サーバー起動
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			logger.Fatal("サーバー起動エラー", zap.Error(err))
		}
	}()
	logger.Info("サーバー起動", zap.String("port", cfg.Server.Port))

	// シグナル待機
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("サーバーをシャットダウンしています...")

	if refresher != nil {
		refresher.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("サーバーシャットダウンエラー", zap.Error(err))
	}

	if redisClient != nil {
		redisClient.Close()
	}

	logger.Info("サーバーが正常にシャットダウンしました")
}
