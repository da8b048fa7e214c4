package ticket

import (
	"context"

	"github.com/sanosuguru/go-spot-reservation/internal/domain/transaction"
)

// Repository はチケットリポジトリのインターフェース
type Repository interface {
	// Create は新しいチケットを作成する（トランザクション必須）
	// tickets.spot_id の一意性制約により、同一スポットへの2枚目の
	// 発行は ErrSpotAlreadyTicketed になる
	Create(ctx context.Context, tx transaction.Tx, ticket *Ticket) error

	// GetByID はIDからチケットを取得する
	GetByID(ctx context.Context, id string) (*Ticket, error)

	// GetBySpotID はスポットIDからチケットを取得する
	GetBySpotID(ctx context.Context, spotID string) (*Ticket, error)

	// GetByEmail はメールアドレスからチケット一覧を取得する
	GetByEmail(ctx context.Context, email string, limit, offset int) ([]*Ticket, error)
}
