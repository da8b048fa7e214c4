package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/sanosuguru/go-spot-reservation/internal/domain/spot"
	"github.com/sanosuguru/go-spot-reservation/internal/domain/transaction"
)

type spotRow struct {
	ID        string    `db:"id"`
	EventID   string    `db:"event_id"`
	Name      string    `db:"name"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r *spotRow) toEntity() *spot.Spot {
	return &spot.Spot{
		ID: r.ID, EventID: r.EventID, Name: r.Name,
		Status:    spot.Status(r.Status),
		CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
	}
}

type SpotRepository struct{ db *sqlx.DB }

func NewSpotRepository(db *sqlx.DB) *SpotRepository { return &SpotRepository{db: db} }

func (r *SpotRepository) Create(ctx context.Context, s *spot.Spot) error {
	query := `INSERT INTO spots (event_id, name, status, created_at, updated_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, s.EventID, s.Name, string(s.Status), s.CreatedAt, s.UpdatedAt).Scan(&s.ID)
	if err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			return spot.ErrSpotAlreadyExists
		}
		return fmt.Errorf("スポット作成に失敗: %w", err)
	}
	return nil
}

func (r *SpotRepository) GetByID(ctx context.Context, id string) (*spot.Spot, error) {
	query := `SELECT id, event_id, name, status, created_at, updated_at FROM spots WHERE id = $1`
	var row spotRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, spot.ErrSpotNotFound
		}
		return nil, fmt.Errorf("スポット取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *SpotRepository) GetByEventID(ctx context.Context, eventID string) ([]*spot.Spot, error) {
	query := `SELECT id, event_id, name, status, created_at, updated_at FROM spots WHERE event_id = $1 ORDER BY name`
	var rows []spotRow
	if err := r.db.SelectContext(ctx, &rows, query, eventID); err != nil {
		return nil, fmt.Errorf("スポット一覧取得に失敗: %w", err)
	}
	spots := make([]*spot.Spot, len(rows))
	for i, row := range rows {
		spots[i] = row.toEntity()
	}
	return spots, nil
}

// GetByNames はイベント内で名前が一致するスポットを取得する
// 存在しない名前は結果に含まれない
func (r *SpotRepository) GetByNames(ctx context.Context, eventID string, names []string) ([]*spot.Spot, error) {
	if len(names) == 0 {
		return nil, nil
	}
	query := `SELECT id, event_id, name, status, created_at, updated_at FROM spots WHERE event_id = $1 AND name = ANY($2) ORDER BY name`
	var rows []spotRow
	if err := r.db.SelectContext(ctx, &rows, query, eventID, pq.Array(names)); err != nil {
		return nil, fmt.Errorf("スポット検索に失敗: %w", err)
	}
	spots := make([]*spot.Spot, len(rows))
	for i, row := range rows {
		spots[i] = row.toEntity()
	}
	return spots, nil
}

func (r *SpotRepository) GetByEventIDAndName(ctx context.Context, eventID, name string) (*spot.Spot, error) {
	query := `SELECT id, event_id, name, status, created_at, updated_at FROM spots WHERE event_id = $1 AND name = $2`
	var row spotRow
	if err := r.db.GetContext(ctx, &row, query, eventID, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, spot.ErrSpotNotFound
		}
		return nil, fmt.Errorf("スポット取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

// ReserveSpots はスポットを予約状態に更新する
// available の行だけを条件付きで一括更新し、更新件数が要求件数に
// 満たなければ競合とみなして ErrSpotsAlreadyReserved を返す
func (r *SpotRepository) ReserveSpots(ctx context.Context, tx transaction.Tx, spotIDs []string) error {
	if len(spotIDs) == 0 {
		return nil
	}
	sqlxTx := UnwrapTx(tx)
	if sqlxTx == nil {
		return errors.New("トランザクションの型が不正です")
	}
	query := `UPDATE spots SET status = 'reserved', updated_at = NOW() WHERE id = ANY($1) AND status = 'available'`
	result, err := sqlxTx.ExecContext(ctx, query, pq.Array(spotIDs))
	if err != nil {
		if IsConflict(err) {
			return spot.ErrSpotsAlreadyReserved
		}
		return fmt.Errorf("スポット予約に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if int(rows) != len(spotIDs) {
		return spot.ErrSpotsAlreadyReserved
	}
	return nil
}

func (r *SpotRepository) Update(ctx context.Context, s *spot.Spot) error {
	query := `UPDATE spots SET name = $1, updated_at = NOW() WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, s.Name, s.ID)
	if err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			return spot.ErrSpotAlreadyExists
		}
		return fmt.Errorf("スポット更新に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return spot.ErrSpotNotFound
	}
	return nil
}

func (r *SpotRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM spots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("スポット削除に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return spot.ErrSpotNotFound
	}
	return nil
}

func (r *SpotRepository) CountAvailableByEventID(ctx context.Context, eventID string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM spots WHERE event_id = $1 AND status = 'available'`, eventID)
	return count, err
}

var _ spot.Repository = (*SpotRepository)(nil)
