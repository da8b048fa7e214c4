package event

import "errors"

// Event ドメインのエラー定義
var (
	ErrEventNotFound            = errors.New("イベントが見つかりません")
	ErrEventNameRequired        = errors.New("イベント名は必須です")
	ErrEventNameTooLong         = errors.New("イベント名は255文字以内である必要があります")
	ErrEventDescriptionRequired = errors.New("イベント説明は必須です")
	ErrEventDescriptionTooLong  = errors.New("イベント説明は255文字以内である必要があります")
	ErrEventDateRequired        = errors.New("開催日時は必須です")
	ErrInvalidPrice             = errors.New("価格は0以上である必要があります")
)
