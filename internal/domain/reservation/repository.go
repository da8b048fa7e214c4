package reservation

import (
	"context"

	"github.com/sanosuguru/go-spot-reservation/internal/domain/transaction"
)

// LedgerRepository は予約履歴（台帳）リポジトリのインターフェース
type LedgerRepository interface {
	// AppendBatch は予約履歴エントリを一括追記する（トランザクション必須）
	// 呼び出し側が渡したトランザクション内で実行され、独自の
	// トランザクションを開かない
	AppendBatch(ctx context.Context, tx transaction.Tx, entries []*HistoryEntry) error

	// GetBySpotID はスポットIDから予約履歴を取得する
	GetBySpotID(ctx context.Context, spotID string) ([]*HistoryEntry, error)
}
