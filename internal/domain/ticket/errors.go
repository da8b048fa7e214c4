package ticket

import "errors"

// Ticket ドメインのエラー定義
var (
	ErrTicketNotFound      = errors.New("チケットが見つかりません")
	ErrInvalidKind         = errors.New("チケット種別は full または half である必要があります")
	ErrSpotIDRequired      = errors.New("スポットIDは必須です")
	ErrEmailRequired       = errors.New("メールアドレスは必須です")
	ErrSpotAlreadyTicketed = errors.New("スポットには既にチケットが発行されています")
)
