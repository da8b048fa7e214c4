package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-spot-reservation/internal/pkg/logger"
)

// RequestLogger は1リクエスト1行の構造化ログを出力する
// ステータスに応じてレベルを変える（5xx: Error, 4xx: Warn, それ以外: Info）
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			req := c.Request()
			res := c.Response()

			fields := []zap.Field{
				zap.String("request_id", res.Header().Get(echo.HeaderXRequestID)),
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.String("query", req.URL.RawQuery),
				zap.Int("status", res.Status),
				zap.Int64("size", res.Size),
				zap.Duration("latency", time.Since(start)),
				zap.String("remote_ip", c.RealIP()),
				zap.String("user_agent", req.UserAgent()),
			}
			if err != nil {
				fields = append(fields, zap.Error(err))
			}

			switch {
			case err != nil || res.Status >= 500:
				logger.Error("リクエスト失敗", fields...)
			case res.Status >= 400:
				logger.Warn("クライアントエラー", fields...)
			default:
				logger.Info("リクエスト完了", fields...)
			}

			return err
		}
	}
}
