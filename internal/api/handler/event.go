package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-spot-reservation/internal/application"
	"github.com/sanosuguru/go-spot-reservation/internal/domain/event"
)

type EventHandler struct {
	eventService EventServiceInterface
}

func NewEventHandler(eventService EventServiceInterface) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// EventRequest は作成と更新で共用するリクエストボディ
type EventRequest struct {
	Name        string  `json:"name" validate:"required" example:"東京ドームコンサート2026"`
	Description string  `json:"description" validate:"required" example:"年末スペシャルコンサート"`
	Date        string  `json:"date" validate:"required" example:"2026-12-31T18:00:00+09:00"`
	Price       float64 `json:"price" validate:"min=0" example:"15000"`
}

type EventResponse struct {
	ID          string  `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name        string  `json:"name" example:"東京ドームコンサート2026"`
	Description string  `json:"description" example:"年末スペシャルコンサート"`
	Date        string  `json:"date" example:"2026-12-31T18:00:00+09:00"`
	Price       float64 `json:"price" example:"15000"`
	CreatedAt   string  `json:"created_at" example:"2026-08-01T10:00:00+09:00"`
	UpdatedAt   string  `json:"updated_at" example:"2026-08-01T10:00:00+09:00"`
}

func toEventResponse(e *event.Event) *EventResponse {
	return &EventResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Date:        e.Date.Format(time.RFC3339),
		Price:       e.Price,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   e.UpdatedAt.Format(time.RFC3339),
	}
}

// bindEventRequest はボディの取り込み・検証・日時の解釈までを行う
// okがfalseのときはレスポンス送信済みか検証エラーなので、呼び出し側はerrをそのまま返す
func (h *EventHandler) bindEventRequest(c echo.Context) (req EventRequest, date time.Time, ok bool, err error) {
	if bindErr := c.Bind(&req); bindErr != nil {
		return req, date, false, c.JSON(http.StatusUnprocessableEntity,
			map[string]string{"error": "リクエストの形式が不正です"})
	}
	if validateErr := c.Validate(&req); validateErr != nil {
		return req, date, false, validateErr
	}

	date, parseErr := time.Parse(time.RFC3339, req.Date)
	if parseErr != nil {
		return req, date, false, c.JSON(http.StatusUnprocessableEntity,
			map[string]string{"error": "開催日時はISO8601形式である必要があります"})
	}
	return req, date, true, nil
}

// Create godoc
// @Summary イベントを作成
// @Tags events
// @Accept json
// @Produce json
// @Param request body EventRequest true "イベント情報"
// @Success 201 {object} EventResponse
// @Failure 422 {object} map[string]string
// @Router /events [post]
func (h *EventHandler) Create(c echo.Context) error {
	req, date, ok, err := h.bindEventRequest(c)
	if !ok {
		return err
	}

	e, err := h.eventService.CreateEvent(c.Request().Context(), application.CreateEventInput{
		Name:        req.Name,
		Description: req.Description,
		Date:        date,
		Price:       req.Price,
	})
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, toEventResponse(e))
}

// GetByID godoc
// @Summary イベントを取得
// @Tags events
// @Produce json
// @Param id path string true "イベントID"
// @Success 200 {object} EventResponse
// @Failure 404 {object} map[string]string
// @Router /events/{id} [get]
func (h *EventHandler) GetByID(c echo.Context) error {
	e, err := h.eventService.GetEvent(c.Request().Context(), c.Param("id"))
	if errors.Is(err, event.ErrEventNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "イベントが見つかりません"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, toEventResponse(e))
}

// List godoc
// @Summary イベント一覧を取得
// @Tags events
// @Produce json
// @Param limit query int false "取得件数" default(20)
// @Param offset query int false "オフセット" default(0)
// @Success 200 {array} EventResponse
// @Router /events [get]
func (h *EventHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	events, err := h.eventService.ListEvents(c.Request().Context(), limit, offset)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	responses := make([]*EventResponse, len(events))
	for i, e := range events {
		responses[i] = toEventResponse(e)
	}
	return c.JSON(http.StatusOK, responses)
}

// Update godoc
// @Summary イベントを更新
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "イベントID"
// @Param request body EventRequest true "イベント情報"
// @Success 200 {object} EventResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	req, date, ok, err := h.bindEventRequest(c)
	if !ok {
		return err
	}

	e, err := h.eventService.UpdateEvent(c.Request().Context(), application.UpdateEventInput{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		Date:        date,
		Price:       req.Price,
	})
	if errors.Is(err, event.ErrEventNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "イベントが見つかりません"})
	}
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, toEventResponse(e))
}

// Delete godoc
// @Summary イベントを削除
// @Tags events
// @Param id path string true "イベントID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	err := h.eventService.DeleteEvent(c.Request().Context(), c.Param("id"))
	if errors.Is(err, event.ErrEventNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "イベントが見つかりません"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
