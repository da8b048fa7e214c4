package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-spot-reservation/internal/application"
	"github.com/sanosuguru/go-spot-reservation/internal/domain/event"
	"github.com/sanosuguru/go-spot-reservation/internal/domain/spot"
)

type SpotHandler struct {
	service SpotServiceInterface
}

func NewSpotHandler(s SpotServiceInterface) *SpotHandler {
	return &SpotHandler{service: s}
}

type CreateSpotRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type CreateBulkSpotsRequest struct {
	Prefix string `json:"prefix" validate:"required"`
	Count  int    `json:"count" validate:"required,min=1,max=1000"`
}

type SpotResponse struct {
	ID      string `json:"id"`
	EventID string `json:"event_id"`
	Name    string `json:"name"`
	Status  string `json:"status"`
}

func toSpotResponse(s *spot.Spot) SpotResponse {
	return SpotResponse{
		ID: s.ID, EventID: s.EventID, Name: s.Name, Status: string(s.Status),
	}
}

func (h *SpotHandler) Create(c echo.Context) error {
	eventID := c.Param("event_id")
	var req CreateSpotRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "無効なリクエスト"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	s, err := h.service.CreateSpot(c.Request().Context(), application.CreateSpotInput{
		EventID: eventID, Name: req.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, event.ErrEventNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		case errors.Is(err, spot.ErrSpotAlreadyExists):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		default:
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusCreated, toSpotResponse(s))
}

func (h *SpotHandler) CreateBulk(c echo.Context) error {
	eventID := c.Param("event_id")
	var req CreateBulkSpotsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "無効なリクエスト"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	spots, err := h.service.CreateBulkSpots(c.Request().Context(), application.CreateBulkSpotsInput{
		EventID: eventID, Prefix: req.Prefix, Count: req.Count,
	})
	if err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	resp := make([]SpotResponse, len(spots))
	for i, s := range spots {
		resp[i] = toSpotResponse(s)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *SpotHandler) GetByEvent(c echo.Context) error {
	eventID := c.Param("event_id")
	spots, err := h.service.GetSpotsByEvent(c.Request().Context(), eventID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	resp := make([]SpotResponse, len(spots))
	for i, s := range spots {
		resp[i] = toSpotResponse(s)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *SpotHandler) GetByID(c echo.Context) error {
	id := c.Param("id")
	s, err := h.service.GetSpot(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, spot.ErrSpotNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, toSpotResponse(s))
}

func (h *SpotHandler) Update(c echo.Context) error {
	id := c.Param("id")
	var req CreateSpotRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "無効なリクエスト"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	s, err := h.service.UpdateSpot(c.Request().Context(), application.UpdateSpotInput{
		ID: id, Name: req.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, spot.ErrSpotNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		case errors.Is(err, spot.ErrSpotAlreadyExists):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		default:
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusOK, toSpotResponse(s))
}

func (h *SpotHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.service.DeleteSpot(c.Request().Context(), id); err != nil {
		if errors.Is(err, spot.ErrSpotNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *SpotHandler) CountAvailable(c echo.Context) error {
	eventID := c.Param("event_id")
	count, err := h.service.CountAvailableSpots(c.Request().Context(), eventID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]int{"count": count})
}
