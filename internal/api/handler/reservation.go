package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-spot-reservation/internal/application"
	"github.com/sanosuguru/go-spot-reservation/internal/domain/reservation"
	"github.com/sanosuguru/go-spot-reservation/internal/domain/spot"
	"github.com/sanosuguru/go-spot-reservation/internal/domain/ticket"
)

type ReservationHandler struct {
	service ReservationServiceInterface
}

func NewReservationHandler(s ReservationServiceInterface) *ReservationHandler {
	return &ReservationHandler{service: s}
}

type ReserveSpotsRequest struct {
	Spots      []string `json:"spots" validate:"required,min=1,dive,required" example:"A1,A2"`
	TicketKind string   `json:"ticket_kind" validate:"required" example:"full"`
	Email      string   `json:"email" validate:"required,email" example:"buyer@example.com"`
}

type TicketResponse struct {
	ID         string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	SpotID     string    `json:"spot_id" example:"550e8400-e29b-41d4-a716-446655440001"`
	TicketKind string    `json:"ticket_kind" example:"full"`
	Email      string    `json:"email" example:"buyer@example.com"`
	CreatedAt  time.Time `json:"created_at"`
}

func toTicketResponse(t *ticket.Ticket) TicketResponse {
	return TicketResponse{
		ID: t.ID, SpotID: t.SpotID, TicketKind: string(t.Kind),
		Email: t.Email, CreatedAt: t.CreatedAt,
	}
}

// Reserve godoc
// @Summary スポットを予約
// @Description 指定した名前のスポットを全件予約し、チケットを発行します
// @Tags reservations
// @Accept json
// @Produce json
// @Param event_id path string true "イベントID"
// @Param request body ReserveSpotsRequest true "予約情報"
// @Success 201 {array} TicketResponse
// @Failure 404 {object} map[string]string "スポット名が存在しない"
// @Failure 409 {object} map[string]string "スポットが既に予約済み"
// @Failure 422 {object} map[string]string
// @Router /events/{event_id}/reserve [post]
func (h *ReservationHandler) Reserve(c echo.Context) error {
	eventID := c.Param("event_id")
	var req ReserveSpotsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tickets, err := h.service.ReserveSpots(c.Request().Context(), application.ReserveSpotsInput{
		EventID:    eventID,
		SpotNames:  req.Spots,
		TicketKind: req.TicketKind,
		Email:      req.Email,
	})
	if err != nil {
		if _, ok := reservation.AsSpotsNotFound(err); ok {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		switch {
		case errors.Is(err, spot.ErrSpotsAlreadyReserved):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, ticket.ErrInvalidKind), errors.Is(err, reservation.ErrSpotNamesRequired):
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	resp := make([]TicketResponse, len(tickets))
	for i, t := range tickets {
		resp[i] = toTicketResponse(t)
	}
	return c.JSON(http.StatusCreated, resp)
}

// GetTicket godoc
// @Summary チケットを取得
// @Description 指定IDのチケットを取得します
// @Tags tickets
// @Produce json
// @Param id path string true "チケットID"
// @Success 200 {object} TicketResponse
// @Failure 404 {object} map[string]string
// @Router /tickets/{id} [get]
func (h *ReservationHandler) GetTicket(c echo.Context) error {
	id := c.Param("id")
	t, err := h.service.GetTicket(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ticket.ErrTicketNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, toTicketResponse(t))
}

// GetTicketsByEmail godoc
// @Summary 購入者のチケット一覧を取得
// @Description メールアドレスに紐づくチケット一覧を取得します
// @Tags tickets
// @Produce json
// @Param email query string true "メールアドレス"
// @Param limit query int false "取得件数" default(20)
// @Param offset query int false "オフセット" default(0)
// @Success 200 {array} TicketResponse
// @Router /tickets [get]
func (h *ReservationHandler) GetTicketsByEmail(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "メールアドレスが必要です")
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	tickets, err := h.service.GetTicketsByEmail(c.Request().Context(), email, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	resp := make([]TicketResponse, len(tickets))
	for i, t := range tickets {
		resp[i] = toTicketResponse(t)
	}
	return c.JSON(http.StatusOK, resp)
}

type HistoryEntryResponse struct {
	ID         string    `json:"id"`
	SpotID     string    `json:"spot_id"`
	TicketKind string    `json:"ticket_kind"`
	Email      string    `json:"email"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// GetSpotHistory godoc
// @Summary スポットの予約履歴を取得
// @Description スポットに対する予約試行の監査履歴を取得します
// @Tags reservations
// @Produce json
// @Param id path string true "スポットID"
// @Success 200 {array} HistoryEntryResponse
// @Router /spots/{id}/history [get]
func (h *ReservationHandler) GetSpotHistory(c echo.Context) error {
	spotID := c.Param("id")
	entries, err := h.service.GetSpotHistory(c.Request().Context(), spotID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	resp := make([]HistoryEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = HistoryEntryResponse{
			ID: e.ID, SpotID: e.SpotID, TicketKind: string(e.TicketKind),
			Email: e.Email, Status: string(e.Status), CreatedAt: e.CreatedAt,
		}
	}
	return c.JSON(http.StatusOK, resp)
}
