package transaction

import "context"

// Tx は単一のデータベーストランザクションを表す
// 予約の履歴追記・スポット確保・チケット発行は同一のTx上で行い、
// Commitが成功した場合にのみ全体が確定する
type Tx interface {
	Commit() error
	Rollback() error
}

// Manager はトランザクションの開始を抽象化する
// アプリケーション層がsqlx等の具象実装に依存しないためのインターフェース
type Manager interface {
	Begin(ctx context.Context) (Tx, error)
}
