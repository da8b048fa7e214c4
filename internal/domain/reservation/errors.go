package reservation

import (
	"errors"
	"fmt"
	"strings"
)

// Reservation ドメインのエラー定義
var (
	ErrSpotNamesRequired = errors.New("スポット名は1つ以上指定する必要があります")
)

// SpotsNotFoundError は要求されたスポット名の一部がイベントに
// 存在しないことを表す。欠落した名前をすべて保持する
type SpotsNotFoundError struct {
	Names []string
}

func (e *SpotsNotFoundError) Error() string {
	return fmt.Sprintf("スポット %s が見つかりません", strings.Join(e.Names, ", "))
}

// AsSpotsNotFound は err が SpotsNotFoundError かを判定する
func AsSpotsNotFound(err error) (*SpotsNotFoundError, bool) {
	var target *SpotsNotFoundError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
