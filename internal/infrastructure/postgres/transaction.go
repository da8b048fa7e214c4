package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/go-spot-reservation/internal/domain/transaction"
)

// managedTx は sqlx.Tx を transaction.Tx として扱うためのラッパー
type managedTx struct {
	*sqlx.Tx
}

// TxManager は sqlx ベースの transaction.Manager 実装
type TxManager struct {
	db *sqlx.DB
}

func NewTxManager(db *sqlx.DB) *TxManager {
	return &TxManager{db: db}
}

var _ transaction.Manager = (*TxManager)(nil)

// Begin はRead Committedでトランザクションを開始する
// スポット確保の競合調停は条件付きUPDATEと一意性制約が担うため、
// より強い分離レベルは必要ない
func (m *TxManager) Begin(ctx context.Context) (transaction.Tx, error) {
	tx, err := m.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, err
	}
	return &managedTx{Tx: tx}, nil
}

// UnwrapTx はリポジトリ実装が生の sqlx.Tx を取り出すためのヘルパー
// このパッケージのTxManager以外が生成したTxに対してはnilを返す
func UnwrapTx(tx transaction.Tx) *sqlx.Tx {
	if m, ok := tx.(*managedTx); ok {
		return m.Tx
	}
	return nil
}
