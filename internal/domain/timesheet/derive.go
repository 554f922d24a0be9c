package timesheet

import (
	"math"

	"github.com/peoplehr/hrms-backend-go/internal/pkg/validator"
)

// StandardDayHours is the regular-hours ceiling before time counts as
// overtime.
const StandardDayHours = 8.0

// DeriveHours computes total and overtime hours from "HH:MM" check times and
// a break duration. Total is the elapsed span minus the break, floored at
// zero; overtime is the portion of total past the standard day. When either
// check time is missing or malformed both results are zero.
func DeriveHours(checkIn, checkOut *string, breakHours float64) (totalHours, overtimeHours float64) {
	if checkIn == nil || checkOut == nil {
		return 0, 0
	}
	inMin, okIn := validator.ParseClockTime(*checkIn)
	outMin, okOut := validator.ParseClockTime(*checkOut)
	if !okIn || !okOut {
		return 0, 0
	}

	total := float64(outMin-inMin)/60 - breakHours
	if total < 0 {
		total = 0
	}
	overtime := total - StandardDayHours
	if overtime < 0 {
		overtime = 0
	}
	return round2(total), round2(overtime)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
