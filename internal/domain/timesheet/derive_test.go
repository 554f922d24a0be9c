package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestDeriveHours(t *testing.T) {
	tests := []struct {
		name         string
		checkIn      *string
		checkOut     *string
		breakHours   float64
		wantTotal    float64
		wantOvertime float64
	}{
		{"standard day with break", strPtr("09:00"), strPtr("18:00"), 1, 8, 0},
		{"no break pushes into overtime", strPtr("09:00"), strPtr("18:00"), 0, 9, 1},
		{"long shift", strPtr("08:00"), strPtr("18:30"), 0, 10.5, 2.5},
		{"break exceeds elapsed time", strPtr("09:00"), strPtr("10:00"), 2, 0, 0},
		{"check out before check in", strPtr("17:00"), strPtr("09:00"), 0, 0, 0},
		{"missing check in", nil, strPtr("17:00"), 0, 0, 0},
		{"missing check out", strPtr("09:00"), nil, 0, 0, 0},
		{"malformed clock time", strPtr("9am"), strPtr("17:00"), 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, overtime := DeriveHours(tt.checkIn, tt.checkOut, tt.breakHours)
			assert.Equal(t, tt.wantTotal, total)
			assert.Equal(t, tt.wantOvertime, overtime)
		})
	}
}

func TestDeriveHoursBreakChange(t *testing.T) {
	in, out := strPtr("09:00"), strPtr("19:00")

	total, overtime := DeriveHours(in, out, 1)
	assert.Equal(t, 9.0, total)
	assert.Equal(t, 1.0, overtime)

	// A longer break reduces the total and the overtime together.
	total, overtime = DeriveHours(in, out, 2)
	assert.Equal(t, 8.0, total)
	assert.Equal(t, 0.0, overtime)
}
