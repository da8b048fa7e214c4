package reservation

import (
	"time"

	"github.com/sanosuguru/go-spot-reservation/internal/domain/ticket"
)

// Status は予約履歴の状態を表す
type Status string

const (
	StatusReserved Status = "reserved"
)

// HistoryEntry は予約試行の監査レコードを表す
// 追記専用であり、作成後に変更・削除されない
type HistoryEntry struct {
	ID         string
	SpotID     string
	TicketKind ticket.Kind
	Email      string
	Status     Status
	CreatedAt  time.Time
}

// NewHistoryEntry は新しい予約履歴エントリを作成する
func NewHistoryEntry(spotID string, kind ticket.Kind, email string) *HistoryEntry {
	return &HistoryEntry{
		SpotID:     spotID,
		TicketKind: kind,
		Email:      email,
		Status:     StatusReserved,
		CreatedAt:  time.Now(),
	}
}
