package claim

import (
	"io"

	"github.com/shopspring/decimal"

	"github.com/peoplehr/hrms-backend-go/internal/pkg/validator"
)

type CreateClaimRequest struct {
	ClaimType   string          `json:"claim_type"`
	Amount      decimal.Decimal `json:"amount"`
	ClaimDate   string          `json:"claim_date"`
	Description string          `json:"description"`

	// Optional multipart receipt upload, consumed by the service.
	ReceiptFilename    string    `json:"-"`
	ReceiptContentType string    `json:"-"`
	Receipt            io.Reader `json:"-"`
}

func (r *CreateClaimRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.ClaimType, ClaimTypeValues()) {
		errs = append(errs, validator.ValidationError{Field: "claim_type", Message: "invalid claim_type"})
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be positive"})
	}
	if _, ok := validator.IsValidDate(r.ClaimDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "claim_date", Message: "claim_date must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewClaimRequest struct {
	Status     string  `json:"status"`
	ReviewNote *string `json:"review_note,omitempty"`
}

func (r *ReviewClaimRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{string(StatusApproved), string(StatusRejected)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Approved or Rejected"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClaimFilter struct {
	EmployeeID *string
	Status     *string
}

func (f *ClaimFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !validator.IsInSlice(*f.Status, StatusValues()) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "invalid status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClaimResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	ClaimType   string          `json:"claim_type"`
	Amount      decimal.Decimal `json:"amount"`
	ClaimDate   string          `json:"claim_date"`
	Description string          `json:"description"`
	ReceiptURL  *string         `json:"receipt_url,omitempty"`
	Status      string          `json:"status"`
	ReviewedBy  *string         `json:"reviewed_by,omitempty"`
	ReviewNote  *string         `json:"review_note,omitempty"`

	EmployeeName       *string `json:"employee_name,omitempty"`
	EmployeeDepartment *string `json:"department,omitempty"`
}
