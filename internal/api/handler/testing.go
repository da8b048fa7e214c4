package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-spot-reservation/internal/api"
)

// NewTestEcho は本番と同じバリデーター・エラーハンドラー構成のEchoを返す
func NewTestEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.CustomHTTPErrorHandler
	return e
}
