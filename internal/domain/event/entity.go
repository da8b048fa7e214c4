package event

import (
	"strings"
	"time"
)

// MaxTextLength は名前・説明の最大文字数
const MaxTextLength = 255

// Event はイベントエンティティを表す
type Event struct {
	ID          string
	Name        string
	Description string
	Date        time.Time
	Price       float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewEvent は新しいイベントを作成する
func NewEvent(name, description string, date time.Time, price float64) *Event {
	now := time.Now()
	return &Event{
		Name:        name,
		Description: description,
		Date:        date,
		Price:       price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate はイベントの検証を行う
func (e *Event) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return ErrEventNameRequired
	}
	if len(e.Name) > MaxTextLength {
		return ErrEventNameTooLong
	}
	if strings.TrimSpace(e.Description) == "" {
		return ErrEventDescriptionRequired
	}
	if len(e.Description) > MaxTextLength {
		return ErrEventDescriptionTooLong
	}
	if e.Date.IsZero() {
		return ErrEventDateRequired
	}
	if e.Price < 0 {
		return ErrInvalidPrice
	}
	return nil
}
