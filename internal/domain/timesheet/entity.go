package timesheet

import "time"

// Timesheet is one employee-day work log, unique per (employee, date).
type Timesheet struct {
	ID               string
	EmployeeID       string
	Date             time.Time
	CheckIn          *string
	CheckOut         *string
	BreakHours       float64
	TotalHours       float64
	OvertimeHours    float64
	WorkHoursType    WorkHoursType
	AttendanceStatus AttendanceStatus
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined display fields
	EmployeeName       *string
	EmployeeDepartment *string
	EmployeePosition   *string
}

type WorkHoursType string

const (
	WorkRegular  WorkHoursType = "Regular Hours"
	WorkOvertime WorkHoursType = "Overtime"
	WorkNight    WorkHoursType = "Night Shift"
	WorkHoliday  WorkHoursType = "Holiday Work"
	WorkWeekend  WorkHoursType = "Weekend Work"
)

func WorkHoursTypeValues() []string {
	return []string{
		string(WorkRegular),
		string(WorkOvertime),
		string(WorkNight),
		string(WorkHoliday),
		string(WorkWeekend),
	}
}

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
	StatusLate    AttendanceStatus = "Late"
	StatusHalfDay AttendanceStatus = "Half Day"
	StatusOnLeave AttendanceStatus = "On Leave"
)

func AttendanceStatusValues() []string {
	return []string{
		string(StatusPresent),
		string(StatusAbsent),
		string(StatusLate),
		string(StatusHalfDay),
		string(StatusOnLeave),
	}
}
