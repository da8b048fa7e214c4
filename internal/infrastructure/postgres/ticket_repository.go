package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/go-spot-reservation/internal/domain/ticket"
	"github.com/sanosuguru/go-spot-reservation/internal/domain/transaction"
)

type ticketRow struct {
	ID        string    `db:"id"`
	SpotID    string    `db:"spot_id"`
	Kind      string    `db:"ticket_kind"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r *ticketRow) toEntity() *ticket.Ticket {
	return &ticket.Ticket{
		ID: r.ID, SpotID: r.SpotID, Kind: ticket.Kind(r.Kind),
		Email: r.Email, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
	}
}

type TicketRepository struct{ db *sqlx.DB }

func NewTicketRepository(db *sqlx.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// Create は新しいチケットを作成する
// tickets.spot_id の一意性制約が2枚目の発行をはじくため、
// 同時予約の衝突検出はこのINSERTが担う
func (r *TicketRepository) Create(ctx context.Context, tx transaction.Tx, t *ticket.Ticket) error {
	sqlxTx := UnwrapTx(tx)
	if sqlxTx == nil {
		return errors.New("トランザクションの型が不正です")
	}
	query := `INSERT INTO tickets (spot_id, ticket_kind, email, created_at, updated_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := sqlxTx.QueryRowContext(ctx, query, t.SpotID, string(t.Kind), t.Email, t.CreatedAt, t.UpdatedAt).Scan(&t.ID); err != nil {
		if IsConflict(err) {
			return ticket.ErrSpotAlreadyTicketed
		}
		return fmt.Errorf("チケット作成に失敗: %w", err)
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	var row ticketRow
	query := `SELECT id, spot_id, ticket_kind, email, created_at, updated_at FROM tickets WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ticket.ErrTicketNotFound
		}
		return nil, fmt.Errorf("チケット取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *TicketRepository) GetBySpotID(ctx context.Context, spotID string) (*ticket.Ticket, error) {
	var row ticketRow
	query := `SELECT id, spot_id, ticket_kind, email, created_at, updated_at FROM tickets WHERE spot_id = $1`
	if err := r.db.GetContext(ctx, &row, query, spotID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ticket.ErrTicketNotFound
		}
		return nil, fmt.Errorf("チケット取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *TicketRepository) GetByEmail(ctx context.Context, email string, limit, offset int) ([]*ticket.Ticket, error) {
	var rows []ticketRow
	query := `SELECT id, spot_id, ticket_kind, email, created_at, updated_at FROM tickets WHERE email = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	if err := r.db.SelectContext(ctx, &rows, query, email, limit, offset); err != nil {
		return nil, fmt.Errorf("チケット一覧取得に失敗: %w", err)
	}
	tickets := make([]*ticket.Ticket, len(rows))
	for i, row := range rows {
		tickets[i] = row.toEntity()
	}
	return tickets, nil
}

var _ ticket.Repository = (*TicketRepository)(nil)
