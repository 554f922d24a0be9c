package timesheet

import (
	"context"
	"time"
)

// TimesheetRepository defines data access for timesheet entries.
type TimesheetRepository interface {
	// Create inserts a new entry. A (employee, date) collision surfaces as
	// ErrDuplicateEntry.
	Create(ctx context.Context, ts Timesheet) (Timesheet, error)

	// GetByID resolves one entry. Returns ErrTimesheetNotFound when missing.
	GetByID(ctx context.Context, id string) (Timesheet, error)

	// GetByEmployeeAndDate resolves the entry for one employee-day. Returns
	// ErrTimesheetNotFound when missing.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Timesheet, error)

	// Update persists an entry by ID.
	Update(ctx context.Context, ts Timesheet) (Timesheet, error)

	// Delete removes an entry by ID. Returns ErrTimesheetNotFound when missing.
	Delete(ctx context.Context, id string) error

	// List returns entries matching the filter with employee display fields
	// joined, newest date first.
	List(ctx context.Context, filter Filter) ([]Timesheet, error)

	// GetStats aggregates entries matching the filter.
	GetStats(ctx context.Context, filter Filter) (Stats, error)

	// CountApprovedLeaveDays sums approved leave days overlapping the range
	// for one employee (used by the monthly summary).
	CountApprovedLeaveDays(ctx context.Context, employeeID string, start, end time.Time) (int64, error)
}

type Filter struct {
	EmployeeID *string
	StartDate  *time.Time
	EndDate    *time.Time
	Status     *AttendanceStatus
}

type Stats struct {
	TotalEntries  int64
	TotalHours    float64
	OvertimeHours float64
	AverageHours  float64
	PresentDays   int64
	AbsentDays    int64
	LateDays      int64
	LeaveDays     int64
}
