package handler

import (
	"context"

	"github.com/sanosuguru/go-spot-reservation/internal/application"
	"github.com/sanosuguru/go-spot-reservation/internal/domain/event"
	"github.com/sanosuguru/go-spot-reservation/internal/domain/reservation"
	"github.com/sanosuguru/go-spot-reservation/internal/domain/spot"
	"github.com/sanosuguru/go-spot-reservation/internal/domain/ticket"
)

// EventServiceInterface はイベントサービスのインターフェース
type EventServiceInterface interface {
	CreateEvent(ctx context.Context, input application.CreateEventInput) (*event.Event, error)
	GetEvent(ctx context.Context, id string) (*event.Event, error)
	ListEvents(ctx context.Context, limit, offset int) ([]*event.Event, error)
	UpdateEvent(ctx context.Context, input application.UpdateEventInput) (*event.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

// SpotServiceInterface はスポットサービスのインターフェース
type SpotServiceInterface interface {
	CreateSpot(ctx context.Context, input application.CreateSpotInput) (*spot.Spot, error)
	CreateBulkSpots(ctx context.Context, input application.CreateBulkSpotsInput) ([]*spot.Spot, error)
	GetSpot(ctx context.Context, id string) (*spot.Spot, error)
	GetSpotsByEvent(ctx context.Context, eventID string) ([]*spot.Spot, error)
	UpdateSpot(ctx context.Context, input application.UpdateSpotInput) (*spot.Spot, error)
	DeleteSpot(ctx context.Context, id string) error
	CountAvailableSpots(ctx context.Context, eventID string) (int, error)
}

// ReservationServiceInterface は予約サービスのインターフェース
type ReservationServiceInterface interface {
	ReserveSpots(ctx context.Context, input application.ReserveSpotsInput) ([]*ticket.Ticket, error)
	GetTicket(ctx context.Context, id string) (*ticket.Ticket, error)
	GetTicketsByEmail(ctx context.Context, email string, limit, offset int) ([]*ticket.Ticket, error)
	GetSpotHistory(ctx context.Context, spotID string) ([]*reservation.HistoryEntry, error)
}
