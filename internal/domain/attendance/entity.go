package attendance

import "time"

// Attendance is one employee-day record, created lazily on first clock-in or
// synthetically by the absence sweep. ScheduledIn is the shift start copied
// from the schedule at clock-in time ("HH:MM"), nil when unscheduled.
type Attendance struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	ClockIn       *time.Time
	ClockOut      *time.Time
	ScheduledIn   *string
	Status        Status
	LateMinutes   int
	WorkHours     *float64
	OvertimeHours *float64
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined display fields
	EmployeeName       *string
	EmployeeDepartment *string
}

type Status string

const (
	StatusPresent Status = "Present"
	StatusLate    Status = "Late"
	StatusAbsent  Status = "Absent"
	StatusHalfDay Status = "Half Day"
	StatusHoliday Status = "Holiday"
	StatusWeekend Status = "Weekend"
)

func StatusValues() []string {
	return []string{
		string(StatusPresent),
		string(StatusLate),
		string(StatusAbsent),
		string(StatusHalfDay),
		string(StatusHoliday),
		string(StatusWeekend),
	}
}
