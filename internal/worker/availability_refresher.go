package worker

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-spot-reservation/internal/domain/event"
	redisinfra "github.com/sanosuguru/go-spot-reservation/internal/infrastructure/redis"
	"github.com/sanosuguru/go-spot-reservation/internal/pkg/logger"
)

// EventLister はイベント一覧を取得するインターフェース
type EventLister interface {
	List(ctx context.Context, limit, offset int) ([]*event.Event, error)
}

// AvailableCounter はイベントの予約可能スポット数を取得するインターフェース
type AvailableCounter interface {
	CountAvailableByEventID(ctx context.Context, eventID string) (int, error)
}

// 1回の更新で処理するイベント数の上限
const refreshBatchSize = 100

// AvailabilityRefresher はイベントごとの空きスポット数を定期的に
// Redisキャッシュへ書き込むワーカー
// 複数インスタンスが同時に更新しないよう分散ロックで直列化する
type AvailabilityRefresher struct {
	events      EventLister
	counter     AvailableCounter
	cache       *redisinfra.SpotCache
	lockManager *redisinfra.LockManager
	interval    time.Duration
	cacheTTL    time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
}

// NewAvailabilityRefresher は新しいリフレッシャーを作成
func NewAvailabilityRefresher(
	events EventLister,
	counter AvailableCounter,
	cache *redisinfra.SpotCache,
	lm *redisinfra.LockManager,
	interval time.Duration,
	cacheTTL time.Duration,
) *AvailabilityRefresher {
	return &AvailabilityRefresher{
		events:      events,
		counter:     counter,
		cache:       cache,
		lockManager: lm,
		interval:    interval,
		cacheTTL:    cacheTTL,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
}

// Start はリフレッシャーを開始
func (r *AvailabilityRefresher) Start(ctx context.Context) {
	logger.Info("空き状況リフレッシャー開始",
		zap.Duration("interval", r.interval),
		zap.Duration("cache_ttl", r.cacheTTL),
	)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	defer close(r.doneCh)

	for {
		select {
		case <-ctx.Done():
			logger.Info("空き状況リフレッシャー停止（コンテキストキャンセル）")
			return
		case <-r.stopCh:
			logger.Info("空き状況リフレッシャー停止（シグナル受信）")
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

// Stop はリフレッシャーを停止
func (r *AvailabilityRefresher) Stop() {
	close(r.stopCh)
	<-r.doneCh
}

// refresh は全イベントの空きスポット数を再計算してキャッシュする
func (r *AvailabilityRefresher) refresh(ctx context.Context) {
	log := logger.Get()

	// 他インスタンスが更新中ならこの周期はスキップ
	if r.lockManager != nil {
		lock, err := r.lockManager.AcquireLock(ctx, "availability-refresh", r.interval)
		if err != nil {
			if errors.Is(err, redisinfra.ErrLockNotAcquired) {
				log.Debug("他インスタンスが更新中のためスキップ")
				return
			}
			log.Error("ロック取得に失敗", zap.Error(err))
			return
		}
		defer lock.Release(ctx)
	}

	events, err := r.events.List(ctx, refreshBatchSize, 0)
	if err != nil {
		log.Error("イベント一覧取得に失敗", zap.Error(err))
		return
	}

	refreshed := 0
	for _, e := range events {
		count, err := r.counter.CountAvailableByEventID(ctx, e.ID)
		if err != nil {
			log.Warn("空きスポット数の取得に失敗", zap.String("event_id", e.ID), zap.Error(err))
			continue
		}
		if err := r.cache.SetAvailableCount(ctx, e.ID, count, r.cacheTTL); err != nil {
			log.Warn("キャッシュ保存に失敗", zap.String("event_id", e.ID), zap.Error(err))
			continue
		}
		refreshed++
	}

	if refreshed > 0 {
		log.Debug("空き状況を更新", zap.Int("events", refreshed))
	}
}
