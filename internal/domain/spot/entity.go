package spot

import (
	"strings"
	"time"
)

// Status はスポットの状態を表す
type Status string

const (
	StatusAvailable Status = "available"
	StatusReserved  Status = "reserved"
)

// MaxNameLength はスポット名の最大文字数
const MaxNameLength = 255

// Spot はイベント内の座席（スポット）エンティティを表す
// EventID は作成後に変更されない
type Spot struct {
	ID        string
	EventID   string
	Name      string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSpot は新しいスポットを作成する
func NewSpot(eventID, name string) *Spot {
	now := time.Now()
	return &Spot{
		EventID:   eventID,
		Name:      name,
		Status:    StatusAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsAvailable はスポットが予約可能かを返す
func (s *Spot) IsAvailable() bool {
	return s.Status == StatusAvailable
}

// Validate はスポットの検証を行う
func (s *Spot) Validate() error {
	if s.EventID == "" {
		return ErrEventIDRequired
	}
	if strings.TrimSpace(s.Name) == "" {
		return ErrSpotNameRequired
	}
	if len(s.Name) > MaxNameLength {
		return ErrSpotNameTooLong
	}
	return nil
}
