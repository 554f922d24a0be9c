package claim

import (
	"time"

	"github.com/shopspring/decimal"
)

// Claim is an expense reimbursement request, optionally backed by an
// uploaded receipt.
type Claim struct {
	ID          string
	EmployeeID  string
	ClaimType   ClaimType
	Amount      decimal.Decimal
	ClaimDate   time.Time
	Description string
	ReceiptPath *string
	Status      Status
	ReviewedBy  *string
	ReviewNote  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined display fields
	EmployeeName       *string
	EmployeeDepartment *string
}

type ClaimType string

const (
	TypeTravel   ClaimType = "Travel"
	TypeMedical  ClaimType = "Medical"
	TypeMeal     ClaimType = "Meal"
	TypeSupplies ClaimType = "Supplies"
	TypeOther    ClaimType = "Other"
)

func ClaimTypeValues() []string {
	return []string{
		string(TypeTravel),
		string(TypeMedical),
		string(TypeMeal),
		string(TypeSupplies),
		string(TypeOther),
	}
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func StatusValues() []string {
	return []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}
}
