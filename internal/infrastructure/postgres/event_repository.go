package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/go-spot-reservation/internal/domain/event"
)

const eventColumns = "id, name, description, date, price, created_at, updated_at"

type eventRow struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Date        time.Time `db:"date"`
	Price       float64   `db:"price"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r *eventRow) toEntity() *event.Event {
	return &event.Event{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Date:        r.Date,
		Price:       r.Price,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// EventRepository は event.Repository のPostgreSQL実装
type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

var _ event.Repository = (*EventRepository)(nil)

func (r *EventRepository) Create(ctx context.Context, e *event.Event) error {
	const query = `
		INSERT INTO events (name, description, date, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	if err := r.db.QueryRowContext(ctx, query,
		e.Name, e.Description, e.Date, e.Price, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID); err != nil {
		return fmt.Errorf("イベントの登録に失敗: %w", err)
	}
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*event.Event, error) {
	var row eventRow
	err := r.db.GetContext(ctx, &row,
		"SELECT "+eventColumns+" FROM events WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, event.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("イベントの取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

// List は開催日の新しい順にイベントを返す
func (r *EventRepository) List(ctx context.Context, limit, offset int) ([]*event.Event, error) {
	var rows []eventRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT "+eventColumns+" FROM events ORDER BY date DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("イベント一覧の取得に失敗: %w", err)
	}

	events := make([]*event.Event, len(rows))
	for i := range rows {
		events[i] = rows[i].toEntity()
	}
	return events, nil
}

func (r *EventRepository) Update(ctx context.Context, e *event.Event) error {
	const query = `
		UPDATE events
		SET name = $1, description = $2, date = $3, price = $4, updated_at = $5
		WHERE id = $6`

	result, err := r.db.ExecContext(ctx, query,
		e.Name, e.Description, e.Date, e.Price, time.Now(), e.ID)
	if err != nil {
		return fmt.Errorf("イベントの更新に失敗: %w", err)
	}
	return ensureAffected(result, event.ErrEventNotFound)
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM events WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("イベントの削除に失敗: %w", err)
	}
	return ensureAffected(result, event.ErrEventNotFound)
}

// ensureAffected は更新・削除が1行も対象にしなかった場合にnotFoundを返す
func ensureAffected(result sql.Result, notFound error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("影響行数の確認に失敗: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
