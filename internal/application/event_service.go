package application

import (
	"context"
	"fmt"
	"time"

	"github.com/sanosuguru/go-spot-reservation/internal/domain/event"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// clampPage は一覧系APIのページングを安全な範囲に丸める
func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	} else if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// EventService はイベントの管理系ユースケースを提供する
type EventService struct {
	eventRepo event.Repository
}

func NewEventService(eventRepo event.Repository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

type CreateEventInput struct {
	Name        string
	Description string
	Date        time.Time
	Price       float64
}

type UpdateEventInput struct {
	ID          string
	Name        string
	Description string
	Date        time.Time
	Price       float64
}

func (s *EventService) CreateEvent(ctx context.Context, input CreateEventInput) (*event.Event, error) {
	e := event.NewEvent(input.Name, input.Description, input.Date, input.Price)
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("バリデーションエラー: %w", err)
	}

	if err := s.eventRepo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("イベントの作成に失敗: %w", err)
	}
	return e, nil
}

func (s *EventService) GetEvent(ctx context.Context, id string) (*event.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

func (s *EventService) ListEvents(ctx context.Context, limit, offset int) ([]*event.Event, error) {
	limit, offset = clampPage(limit, offset)
	return s.eventRepo.List(ctx, limit, offset)
}

// UpdateEvent は全フィールドを置き換える
// 存在しないIDの場合はリポジトリの ErrEventNotFound をそのまま返す
func (s *EventService) UpdateEvent(ctx context.Context, input UpdateEventInput) (*event.Event, error) {
	e, err := s.eventRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	e.Name = input.Name
	e.Description = input.Description
	e.Date = input.Date
	e.Price = input.Price
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("バリデーションエラー: %w", err)
	}

	if err := s.eventRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	return s.eventRepo.Delete(ctx, id)
}
