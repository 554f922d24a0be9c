package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for the employee directory.
type EmployeeRepository interface {
	// Create creates a new employee; the employee code is generated by the
	// repository from the row's sequence number.
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmail retrieves an employee by email (used by auth and profile lookup)
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// List retrieves all employees ordered by creation time descending
	List(ctx context.Context) ([]Employee, error)

	// Update updates an existing employee
	Update(ctx context.Context, emp Employee) error

	// Delete removes an employee
	Delete(ctx context.Context, id string) error

	// BulkUpdateStatus sets status on all given employee IDs, returning the
	// number of rows changed
	BulkUpdateStatus(ctx context.Context, ids []string, status Status) (int64, error)

	// GetStats aggregates directory statistics for the admin dashboard
	GetStats(ctx context.Context) (Stats, error)
}

type Stats struct {
	TotalEmployees  int64
	ActiveEmployees int64
	AverageSalary   float64
	ByDepartment    []GroupCount
	ByStatus        []GroupCount
}

type GroupCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}
