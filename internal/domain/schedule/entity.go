package schedule

import "time"

// Shift is a named time-of-day template. Times are "HH:MM" strings; the end
// time may wrap past midnight (e.g. 22:00-06:00 for a night shift).
type Shift struct {
	ID          string
	Name        string
	StartTime   string
	EndTime     string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Assignment maps an employee to a shift on a calendar date. At most one
// active assignment exists per (employee, date); removal flips the status to
// cancelled rather than deleting the row, so historical schedules keep their
// reporting value.
type Assignment struct {
	ID         string
	EmployeeID string
	ShiftID    string
	Date       time.Time
	Status     AssignmentStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined display fields
	EmployeeName       *string
	EmployeeDepartment *string
	ShiftName          *string
	ShiftStartTime     *string
	ShiftEndTime       *string
}

type AssignmentStatus string

const (
	AssignmentActive    AssignmentStatus = "active"
	AssignmentCancelled AssignmentStatus = "cancelled"
)
