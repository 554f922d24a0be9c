package schedule

import "context"

type ScheduleService interface {
	// Assign upserts the assignment for (employee, date). The returned bool
	// reports whether a new row was created (vs. an existing one updated).
	Assign(ctx context.Context, req AssignScheduleRequest) (AssignmentResponse, bool, error)

	// Remove cancels the active assignment for (employee, date).
	Remove(ctx context.Context, req RemoveScheduleRequest) error

	// Query lists active assignments with joined display fields.
	Query(ctx context.Context, filter ScheduleFilter) ([]AssignmentResponse, error)

	// ListShifts returns the shift catalog ordered by start time.
	ListShifts(ctx context.Context) ([]ShiftResponse, error)

	// SeedDefaultShifts creates the default catalog entries when the catalog
	// is empty. Called once at startup.
	SeedDefaultShifts(ctx context.Context) error
}
