package leave

import "context"

type LeaveService interface {
	// Create submits a leave request for the authenticated employee. The day
	// count is derived from the range, inclusive of both ends.
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)

	// GetByID resolves one request. Non-admin callers can only read their own.
	GetByID(ctx context.Context, id string) (LeaveResponse, error)

	// Review approves or rejects a pending request. Admin only; a request can
	// be reviewed at most once.
	Review(ctx context.Context, id string, req ReviewLeaveRequest) (LeaveResponse, error)

	// List returns requests. Non-admin callers are restricted to their own.
	List(ctx context.Context, filter LeaveFilter) ([]LeaveResponse, error)

	// GetBalance sums the authenticated employee's approved days per leave type
	// for the given year.
	GetBalance(ctx context.Context, year int) ([]BalanceResponse, error)
}
