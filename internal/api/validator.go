package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator はリクエストボディの構造体タグ検証を行う
type CustomValidator struct {
	validate *validator.Validate
}

// NewValidator は新しいバリデーターを作成する
func NewValidator() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate は検証に失敗したフィールドをまとめて422で返す
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s: %s制約に違反しています", fe.Field(), fe.Tag()))
		}
		return echo.NewHTTPError(http.StatusUnprocessableEntity, strings.Join(msgs, ", "))
	}

	return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
}
