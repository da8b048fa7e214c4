package spot

import (
	"context"

	"github.com/sanosuguru/go-spot-reservation/internal/domain/transaction"
)

// Repository はスポットリポジトリのインターフェース
type Repository interface {
	// Create は新しいスポットを作成する
	Create(ctx context.Context, spot *Spot) error

	// GetByID はIDからスポットを取得する
	GetByID(ctx context.Context, id string) (*Spot, error)

	// GetByEventID はイベントIDからスポット一覧を取得する
	GetByEventID(ctx context.Context, eventID string) ([]*Spot, error)

	// GetByNames はイベント内で名前が一致するスポットを取得する
	// 存在しない名前は結果に含まれない（呼び出し側が件数で欠落を検出する）
	GetByNames(ctx context.Context, eventID string, names []string) ([]*Spot, error)

	// GetByEventIDAndName はイベント内の名前からスポットを取得する
	GetByEventIDAndName(ctx context.Context, eventID, name string) (*Spot, error)

	// ReserveSpots はスポットを予約状態に更新する（トランザクション必須）
	// available のスポットのみを条件付き一括UPDATEで更新し、
	// 更新件数が要求件数に満たない場合は ErrSpotsAlreadyReserved を返す
	ReserveSpots(ctx context.Context, tx transaction.Tx, spotIDs []string) error

	// Update はスポット名を更新する
	Update(ctx context.Context, spot *Spot) error

	// Delete はスポットを削除する
	Delete(ctx context.Context, id string) error

	// CountAvailableByEventID はイベントの予約可能スポット数を取得する
	CountAvailableByEventID(ctx context.Context, eventID string) (int, error)
}
