package claim

import "context"

// ClaimRepository defines data access for expense claims.
type ClaimRepository interface {
	// Create inserts a new claim.
	Create(ctx context.Context, c Claim) (Claim, error)

	// GetByID resolves one claim. Returns ErrClaimNotFound when missing.
	GetByID(ctx context.Context, id string) (Claim, error)

	// Update persists status and review fields by ID.
	Update(ctx context.Context, c Claim) (Claim, error)

	// List returns claims matching the filter with employee display fields
	// joined, newest first.
	List(ctx context.Context, filter Filter) ([]Claim, error)
}

type Filter struct {
	EmployeeID *string
	Status     *Status
}
