package timesheet

import "context"

type TimesheetService interface {
	// Upsert creates or replaces the entry for (employee, date), always
	// recomputing total and overtime hours from the check times. The returned
	// bool reports whether a new row was created.
	Upsert(ctx context.Context, req UpsertTimesheetRequest) (TimesheetResponse, bool, error)

	// Create inserts a new entry, failing with ErrDuplicateEntry when one
	// already exists for (employee, date).
	Create(ctx context.Context, req UpsertTimesheetRequest) (TimesheetResponse, error)

	// UpdateByID edits an existing entry, re-running the hours derivation.
	UpdateByID(ctx context.Context, id string, req UpsertTimesheetRequest) (TimesheetResponse, error)

	// GetByID resolves one entry.
	GetByID(ctx context.Context, id string) (TimesheetResponse, error)

	// Delete removes an entry by ID.
	Delete(ctx context.Context, id string) error

	// List returns entries matching the filter. Non-admin callers are
	// restricted to their own entries.
	List(ctx context.Context, filter TimesheetFilter) ([]TimesheetResponse, error)

	// GetStats aggregates entries matching the filter.
	GetStats(ctx context.Context, filter TimesheetFilter) (StatsResponse, error)

	// GetMonthlySummary rolls one employee's month up, cross-referencing
	// approved leave.
	GetMonthlySummary(ctx context.Context, employeeID, month string) (MonthlySummaryResponse, error)

	// SyncFromAttendance mirrors a completed attendance record into the
	// timesheet for the same employee-day, replacing any existing entry. Best
	// effort; callers log failures and continue.
	SyncFromAttendance(ctx context.Context, sync AttendanceSync) error

	// BackfillAbsence writes an absent entry for an employee-day only when no
	// entry exists yet. Used by the absence sweep; never overwrites.
	BackfillAbsence(ctx context.Context, employeeID, date, note string) error
}

// AttendanceSync carries the clock-out side of the attendance cycle into the
// timesheet.
type AttendanceSync struct {
	EmployeeID       string
	Date             string
	CheckIn          *string
	CheckOut         *string
	AttendanceStatus AttendanceStatus
	WorkHoursType    WorkHoursType
	Notes            *string
}
