package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLateness(t *testing.T) {
	tests := []struct {
		name        string
		clockIn     int
		scheduled   int
		wantStatus  Status
		wantMinutes int
	}{
		{"exactly on time", 480, 480, StatusPresent, 0},
		{"early arrival", 450, 480, StatusPresent, 0},
		{"one minute late", 481, 480, StatusLate, 1},
		{"fifteen minutes late", 495, 480, StatusLate, 15},
		{"hours late", 600, 480, StatusLate, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, minutes := Lateness(tt.clockIn, tt.scheduled)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMinutes, minutes)
		})
	}
}

func TestWorkedHours(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time {
		return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
	}

	tests := []struct {
		name         string
		clockIn      time.Time
		clockOut     time.Time
		wantWork     float64
		wantOvertime float64
	}{
		{"standard eight hour day", at(9, 0), at(17, 0), 8, 0},
		{"short day", at(9, 0), at(13, 0), 4, 0},
		{"long day counts full elapsed time", at(8, 0), at(18, 30), 10.5, 2.5},
		{"fractional hours round to two decimals", at(9, 0), at(17, 20), 8.33, 0.33},
		{"clock out before clock in", at(17, 0), at(9, 0), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			work, overtime := WorkedHours(tt.clockIn, tt.clockOut)
			assert.Equal(t, tt.wantWork, work)
			assert.Equal(t, tt.wantOvertime, overtime)
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 8.33, Round2(8.3333333))
	assert.Equal(t, 2.5, Round2(2.5))
	assert.Equal(t, 0.0, Round2(0))
}
