package schedule

import (
	"context"
	"time"
)

// ShiftRepository provides read access to the shift catalog. Shifts are
// treated as referentially frozen once assignments point at them.
type ShiftRepository interface {
	// GetByID retrieves a shift definition
	GetByID(ctx context.Context, id string) (Shift, error)

	// List retrieves all shifts ordered by start time
	List(ctx context.Context) ([]Shift, error)

	// Count returns the number of catalog entries (used by startup seeding)
	Count(ctx context.Context) (int64, error)

	// Create adds a shift definition
	Create(ctx context.Context, shift Shift) (Shift, error)
}

// AssignmentRepository defines data access for schedule assignments.
type AssignmentRepository interface {
	// Upsert creates the assignment for (employee, date) or re-points an
	// existing row at the given shift and reactivates it. Returns the stored
	// assignment and whether a new row was created.
	Upsert(ctx context.Context, assignment Assignment) (Assignment, bool, error)

	// GetActiveByEmployeeAndDate resolves the active assignment for an
	// employee on a date, with the shift joined. Returns ErrAssignmentNotFound
	// when no active row exists.
	GetActiveByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Assignment, error)

	// ListActiveByDate returns every active assignment on a date, with
	// employee and shift display fields joined (used by the absence sweep).
	ListActiveByDate(ctx context.Context, date time.Time) ([]Assignment, error)

	// List returns active assignments matching the filter, joined with
	// employee and shift display fields, ordered by date ascending.
	List(ctx context.Context, filter AssignmentFilter) ([]Assignment, error)

	// Cancel marks the assignment for (employee, date) cancelled. Returns
	// ErrAssignmentNotFound when no active row exists.
	Cancel(ctx context.Context, employeeID string, date time.Time) error
}

type AssignmentFilter struct {
	EmployeeID *string
	StartDate  *time.Time
	EndDate    *time.Time
}
