package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUpcoming(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tests := []struct {
		date, at string
		want     bool
	}{
		{"2026-03-10", "15:00", true},
		{"2026-03-10", "08:30", false},
		{"2026-03-10", "3:00 PM", true},
		{"2026-03-10", "morning", true},
		{"2026-03-10", "", true},
		{"2026-03-09", "23:59", false},
		{"2026-03-11", "00:00", true},
		{"someday", "10:00", false},
	}
	for _, tt := range tests {
		b := Booking{PreferredDate: tt.date, PreferredTime: tt.at}
		assert.Equal(t, tt.want, b.Upcoming(now), "%s %s", tt.date, tt.at)
	}
}

func TestSessionExpired(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	s := Session{ExpiresAt: now}
	assert.True(t, s.Expired(now))
	assert.False(t, s.Expired(now.Add(-time.Second)))
}
