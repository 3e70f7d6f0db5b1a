package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    DealStatus
		to      DealStatus
		allowed bool
	}{
		{StatusActive, StatusPaused, true},
		{StatusActive, StatusArchived, true},
		{StatusActive, StatusActive, false},
		{StatusPaused, StatusActive, true},
		{StatusPaused, StatusArchived, true},
		{StatusPaused, StatusPaused, false},
		{StatusArchived, StatusActive, true},
		{StatusArchived, StatusPaused, false},
		{StatusArchived, StatusArchived, false},
		{DealStatus("deleted"), StatusActive, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestIsPubliclyListable(t *testing.T) {
	assert.True(t, StatusActive.IsPubliclyListable())
	assert.False(t, StatusPaused.IsPubliclyListable())
	assert.False(t, StatusArchived.IsPubliclyListable())
}
