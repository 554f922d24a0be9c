package attendance

import (
	"math"
	"time"
)

// StandardDayHours is the threshold past which worked time counts as
// overtime.
const StandardDayHours = 8.0

// Lateness compares the clock-in moment against the scheduled shift start,
// both as minutes since midnight. Clocking in at or before the start is
// Present with zero late minutes; any later is Late by the difference.
func Lateness(clockInMinutes, scheduledMinutes int) (Status, int) {
	if clockInMinutes > scheduledMinutes {
		return StatusLate, clockInMinutes - scheduledMinutes
	}
	return StatusPresent, 0
}

// WorkedHours derives worked and overtime hours from the elapsed span
// between clock-in and clock-out. Work hours are the full elapsed span, not
// capped; overtime is the portion past the standard day. A negative span
// collapses to zero.
func WorkedHours(clockIn, clockOut time.Time) (workHours, overtimeHours float64) {
	elapsed := clockOut.Sub(clockIn).Hours()
	if elapsed < 0 {
		elapsed = 0
	}
	overtime := elapsed - StandardDayHours
	if overtime < 0 {
		overtime = 0
	}
	return Round2(elapsed), Round2(overtime)
}

// Round2 rounds to two decimal places, half away from zero. Hours stay
// fractional during computation and are rounded only at the edge.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
