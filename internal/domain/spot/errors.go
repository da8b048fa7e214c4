package spot

import "errors"

// Spot ドメインのエラー定義
var (
	ErrSpotNotFound         = errors.New("スポットが見つかりません")
	ErrSpotsAlreadyReserved = errors.New("スポットは既に予約されています")
	ErrSpotAlreadyExists    = errors.New("同名のスポットが既に存在します")
	ErrEventIDRequired      = errors.New("イベントIDは必須です")
	ErrSpotNameRequired     = errors.New("スポット名は必須です")
	ErrSpotNameTooLong      = errors.New("スポット名は255文字以内である必要があります")
)
