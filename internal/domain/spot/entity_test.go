package spot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSpot(t *testing.T) {
	eventID := "event-123"
	name := "A-1"

	s := NewSpot(eventID, name)

	assert.Equal(t, eventID, s.EventID)
	assert.Equal(t, name, s.Name)
	assert.Equal(t, StatusAvailable, s.Status)
	assert.False(t, s.CreatedAt.IsZero())
}

func TestSpot_IsAvailable(t *testing.T) {
	tests := []struct {
		name     string
		status   Status
		expected bool
	}{
		{"利用可能", StatusAvailable, true},
		{"予約済み", StatusReserved, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Spot{Status: tt.status}
			assert.Equal(t, tt.expected, s.IsAvailable())
		})
	}
}

func TestSpot_Validate(t *testing.T) {
	tests := []struct {
		name        string
		spot        *Spot
		expectedErr error
	}{
		{
			name:        "有効なスポット",
			spot:        &Spot{EventID: "event-123", Name: "A-1"},
			expectedErr: nil,
		},
		{
			name:        "イベントIDが空",
			spot:        &Spot{EventID: "", Name: "A-1"},
			expectedErr: ErrEventIDRequired,
		},
		{
			name:        "名前が空",
			spot:        &Spot{EventID: "event-123", Name: ""},
			expectedErr: ErrSpotNameRequired,
		},
		{
			name:        "名前が空白のみ",
			spot:        &Spot{EventID: "event-123", Name: "   "},
			expectedErr: ErrSpotNameRequired,
		},
		{
			name:        "名前が長すぎる",
			spot:        &Spot{EventID: "event-123", Name: strings.Repeat("a", MaxNameLength+1)},
			expectedErr: ErrSpotNameTooLong,
		},
		{
			name:        "名前が上限ちょうど",
			spot:        &Spot{EventID: "event-123", Name: strings.Repeat("a", MaxNameLength)},
			expectedErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spot.Validate()
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
