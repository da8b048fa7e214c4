package event

import "context"

// Repository はイベントの永続化を担う
// 予約処理からは参照のみで、書き込みは管理系APIからだけ行われる
type Repository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context, limit, offset int) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
}
