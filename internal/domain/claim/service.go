package claim

import "context"

type ClaimService interface {
	// Create submits an expense claim for the authenticated employee, storing
	// the receipt when one is attached.
	Create(ctx context.Context, req CreateClaimRequest) (ClaimResponse, error)

	// GetByID resolves one claim. Non-admin callers can only read their own.
	GetByID(ctx context.Context, id string) (ClaimResponse, error)

	// Review approves or rejects a pending claim. Admin only; a claim can be
	// reviewed at most once.
	Review(ctx context.Context, id string, req ReviewClaimRequest) (ClaimResponse, error)

	// List returns claims. Non-admin callers are restricted to their own.
	List(ctx context.Context, filter ClaimFilter) ([]ClaimResponse, error)
}
