package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	// Create inserts a new record. A (employee, date) collision surfaces as
	// ErrAlreadyClockedIn.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByEmployeeAndDate resolves the record for one employee-day. Returns
	// ErrAttendanceNotFound when none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)

	// Update persists clock-out and derived fields by ID.
	Update(ctx context.Context, att Attendance) (Attendance, error)

	// List returns records matching the filter with employee display fields
	// joined, newest date first.
	List(ctx context.Context, filter Filter) ([]Attendance, error)
}

type Filter struct {
	EmployeeID *string
	StartDate  *time.Time
	EndDate    *time.Time
	Status     *Status
}
