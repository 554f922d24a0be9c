package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/peoplehr/hrms-backend-go/internal/domain/claim"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/database"
)

type claimRepositoryImpl struct {
	db *database.DB
}

func NewClaimRepository(db *database.DB) claim.ClaimRepository {
	return &claimRepositoryImpl{db: db}
}

const claimColumns = `
	id, employee_id, claim_type, amount, claim_date, description, receipt_path,
	status, reviewed_by, review_note, created_at, updated_at`

func scanClaim(row pgx.Row) (claim.Claim, error) {
	var c claim.Claim
	err := row.Scan(
		&c.ID, &c.EmployeeID, &c.ClaimType, &c.Amount, &c.ClaimDate,
		&c.Description, &c.ReceiptPath, &c.Status, &c.ReviewedBy,
		&c.ReviewNote, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// Create implements claim.ClaimRepository.
func (r *claimRepositoryImpl) Create(ctx context.Context, c claim.Claim) (claim.Claim, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO expense_claims (
			employee_id, claim_type, amount, claim_date, description, receipt_path, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING` + claimColumns

	created, err := scanClaim(q.QueryRow(ctx, query,
		c.EmployeeID, c.ClaimType, c.Amount, c.ClaimDate, c.Description,
		c.ReceiptPath, c.Status,
	))
	if err != nil {
		return claim.Claim{}, fmt.Errorf("failed to create expense claim: %w", err)
	}
	return created, nil
}

// GetByID implements claim.ClaimRepository.
func (r *claimRepositoryImpl) GetByID(ctx context.Context, id string) (claim.Claim, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + claimColumns + ` FROM expense_claims WHERE id = $1`

	c, err := scanClaim(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return claim.Claim{}, claim.ErrClaimNotFound
		}
		return claim.Claim{}, fmt.Errorf("failed to get expense claim: %w", err)
	}
	return c, nil
}

// Update implements claim.ClaimRepository.
func (r *claimRepositoryImpl) Update(ctx context.Context, c claim.Claim) (claim.Claim, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE expense_claims
		SET status = $1, reviewed_by = $2, review_note = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING` + claimColumns

	updated, err := scanClaim(q.QueryRow(ctx, query, c.Status, c.ReviewedBy, c.ReviewNote, c.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return claim.Claim{}, claim.ErrClaimNotFound
		}
		return claim.Claim{}, fmt.Errorf("failed to update expense claim: %w", err)
	}
	return updated, nil
}

// List implements claim.ClaimRepository.
func (r *claimRepositoryImpl) List(ctx context.Context, filter claim.Filter) ([]claim.Claim, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			c.id, c.employee_id, c.claim_type, c.amount, c.claim_date,
			c.description, c.receipt_path, c.status, c.reviewed_by,
			c.review_note, c.created_at, c.updated_at,
			e.full_name, e.department
		FROM expense_claims c
		JOIN employees e ON e.id = c.employee_id
		WHERE 1 = 1`
	var args []interface{}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += ` AND c.employee_id = $` + strconv.Itoa(len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += ` AND c.status = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY c.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var claims []claim.Claim
	for rows.Next() {
		var c claim.Claim
		err := rows.Scan(
			&c.ID, &c.EmployeeID, &c.ClaimType, &c.Amount, &c.ClaimDate,
			&c.Description, &c.ReceiptPath, &c.Status, &c.ReviewedBy,
			&c.ReviewNote, &c.CreatedAt, &c.UpdatedAt,
			&c.EmployeeName, &c.EmployeeDepartment,
		)
		if err != nil {
			return nil, err
		}
		claims = append(claims, c)
	}

	return claims, rows.Err()
}
