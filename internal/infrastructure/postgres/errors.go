package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// PostgreSQLのエラーコード
const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
)

// IsConflict は一意性制約違反またはシリアライゼーション失敗かを判定する
// どちらも「別のトランザクションが先に同じスポットを確保した」ことを意味する
// コミット時に発生した競合の判定にも使う
func IsConflict(err error) bool {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return pgErr.Code == codeUniqueViolation || pgErr.Code == codeSerializationFailure
	}
	return false
}
