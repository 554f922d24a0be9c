package leave

import "context"

// LeaveRepository defines data access for leave requests.
type LeaveRepository interface {
	// Create inserts a new request.
	Create(ctx context.Context, lr LeaveRequest) (LeaveRequest, error)

	// GetByID resolves one request. Returns ErrLeaveNotFound when missing.
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// Update persists status and review fields by ID.
	Update(ctx context.Context, lr LeaveRequest) (LeaveRequest, error)

	// List returns requests matching the filter with employee display fields
	// joined, newest first.
	List(ctx context.Context, filter Filter) ([]LeaveRequest, error)

	// SumApprovedDaysByType totals approved days per leave type for one
	// employee in a calendar year.
	SumApprovedDaysByType(ctx context.Context, employeeID string, year int) ([]TypeDays, error)
}

type TypeDays struct {
	LeaveType LeaveType
	Days      int64
}

type Filter struct {
	EmployeeID *string
	Status     *Status
}
