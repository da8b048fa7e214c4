package middleware

import (
	"crypto/subtle"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// MetricsBasicAuth は /metrics をBasic認証で保護する
// METRICS_USER / METRICS_PASSWORD が両方設定されているときだけ有効になり、
// 未設定ならそのまま通す（ローカル開発向け）
func MetricsBasicAuth() echo.MiddlewareFunc {
	user := os.Getenv("METRICS_USER")
	pass := os.Getenv("METRICS_PASSWORD")

	if user == "" || pass == "" {
		return passthrough
	}

	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Realm: "metrics",
		Validator: func(u, p string, c echo.Context) (bool, error) {
			return secureEqual(u, user) && secureEqual(p, pass), nil
		},
	})
}

func passthrough(next echo.HandlerFunc) echo.HandlerFunc {
	return next
}

func secureEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
