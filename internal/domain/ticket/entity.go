package ticket

import "time"

// Kind はチケット種別を表す
type Kind string

const (
	KindFull Kind = "full"
	KindHalf Kind = "half"
)

// ParseKind は文字列からチケット種別を解釈する
// full / half 以外は ErrInvalidKind を返す
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindFull, KindHalf:
		return Kind(s), nil
	default:
		return "", ErrInvalidKind
	}
}

// Ticket はチケットエンティティを表す
// 1スポットにつき発行できるチケットは最大1枚
type Ticket struct {
	ID        string
	SpotID    string
	Kind      Kind
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTicket は新しいチケットを作成する
func NewTicket(spotID string, kind Kind, email string) *Ticket {
	now := time.Now()
	return &Ticket{
		SpotID:    spotID,
		Kind:      kind,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate はチケットの検証を行う
func (t *Ticket) Validate() error {
	if t.SpotID == "" {
		return ErrSpotIDRequired
	}
	if _, err := ParseKind(string(t.Kind)); err != nil {
		return err
	}
	if t.Email == "" {
		return ErrEmailRequired
	}
	return nil
}
