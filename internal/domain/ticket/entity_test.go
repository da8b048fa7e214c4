package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Kind
		wantErr  bool
	}{
		{"full種別", "full", KindFull, false},
		{"half種別", "half", KindHalf, false},
		{"不正な種別", "premium", "", true},
		{"空文字", "", "", true},
		{"大文字は不正", "FULL", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := ParseKind(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidKind)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, kind)
			}
		})
	}
}

func TestNewTicket(t *testing.T) {
	tk := NewTicket("spot-123", KindFull, "user@example.com")

	assert.Equal(t, "spot-123", tk.SpotID)
	assert.Equal(t, KindFull, tk.Kind)
	assert.Equal(t, "user@example.com", tk.Email)
	assert.False(t, tk.CreatedAt.IsZero())
}

func TestTicket_Validate(t *testing.T) {
	tests := []struct {
		name        string
		ticket      *Ticket
		expectedErr error
	}{
		{
			name:        "有効なチケット",
			ticket:      &Ticket{SpotID: "spot-123", Kind: KindHalf, Email: "user@example.com"},
			expectedErr: nil,
		},
		{
			name:        "スポットIDが空",
			ticket:      &Ticket{Kind: KindFull, Email: "user@example.com"},
			expectedErr: ErrSpotIDRequired,
		},
		{
			name:        "種別が不正",
			ticket:      &Ticket{SpotID: "spot-123", Kind: "vip", Email: "user@example.com"},
			expectedErr: ErrInvalidKind,
		},
		{
			name:        "メールアドレスが空",
			ticket:      &Ticket{SpotID: "spot-123", Kind: KindFull},
			expectedErr: ErrEmailRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ticket.Validate()
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
