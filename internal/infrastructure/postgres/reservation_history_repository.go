package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/go-spot-reservation/internal/domain/reservation"
	"github.com/sanosuguru/go-spot-reservation/internal/domain/ticket"
	"github.com/sanosuguru/go-spot-reservation/internal/domain/transaction"
)

type historyRow struct {
	ID         string    `db:"id"`
	SpotID     string    `db:"spot_id"`
	TicketKind string    `db:"ticket_kind"`
	Email      string    `db:"email"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
}

func (r *historyRow) toEntity() *reservation.HistoryEntry {
	return &reservation.HistoryEntry{
		ID: r.ID, SpotID: r.SpotID, TicketKind: ticket.Kind(r.TicketKind),
		Email: r.Email, Status: reservation.Status(r.Status), CreatedAt: r.CreatedAt,
	}
}

// ReservationHistoryRepository は予約履歴リポジトリのPostgreSQL実装
type ReservationHistoryRepository struct{ db *sqlx.DB }

func NewReservationHistoryRepository(db *sqlx.DB) *ReservationHistoryRepository {
	return &ReservationHistoryRepository{db: db}
}

// AppendBatch は予約履歴をマルチバリューINSERTで一括追記する
func (r *ReservationHistoryRepository) AppendBatch(ctx context.Context, tx transaction.Tx, entries []*reservation.HistoryEntry) error {
	if len(entries) == 0 {
		return nil
	}
	sqlxTx := UnwrapTx(tx)
	if sqlxTx == nil {
		return errors.New("トランザクションの型が不正です")
	}

	query := `INSERT INTO reservation_history (spot_id, ticket_kind, email, status, created_at) VALUES `
	args := make([]interface{}, 0, len(entries)*5)
	placeholders := make([]string, 0, len(entries))

	for i, e := range entries {
		base := i * 5
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5))
		args = append(args, e.SpotID, string(e.TicketKind), e.Email, string(e.Status), e.CreatedAt)
	}

	query += strings.Join(placeholders, ", ")
	if _, err := sqlxTx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("予約履歴の追記に失敗: %w", err)
	}
	return nil
}

func (r *ReservationHistoryRepository) GetBySpotID(ctx context.Context, spotID string) ([]*reservation.HistoryEntry, error) {
	var rows []historyRow
	query := `SELECT id, spot_id, ticket_kind, email, status, created_at FROM reservation_history WHERE spot_id = $1 ORDER BY created_at`
	if err := r.db.SelectContext(ctx, &rows, query, spotID); err != nil {
		return nil, fmt.Errorf("予約履歴取得に失敗: %w", err)
	}
	entries := make([]*reservation.HistoryEntry, len(rows))
	for i, row := range rows {
		entries[i] = row.toEntity()
	}
	return entries, nil
}

var _ reservation.LedgerRepository = (*ReservationHistoryRepository)(nil)
