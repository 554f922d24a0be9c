package leave

import "time"

// LeaveRequest is an employee's request for a contiguous range of days off.
// DaysRequested is the inclusive day count of the range.
type LeaveRequest struct {
	ID            string
	EmployeeID    string
	LeaveType     LeaveType
	StartDate     time.Time
	EndDate       time.Time
	DaysRequested int
	Reason        string
	Status        Status
	ReviewedBy    *string
	ReviewNote    *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined display fields
	EmployeeName       *string
	EmployeeDepartment *string
}

type LeaveType string

const (
	TypeAnnual    LeaveType = "Annual"
	TypeSick      LeaveType = "Sick"
	TypePersonal  LeaveType = "Personal"
	TypeMaternity LeaveType = "Maternity"
	TypeUnpaid    LeaveType = "Unpaid"
)

func LeaveTypeValues() []string {
	return []string{
		string(TypeAnnual),
		string(TypeSick),
		string(TypePersonal),
		string(TypeMaternity),
		string(TypeUnpaid),
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

// InclusiveDays counts calendar days from start through end, both ends
// included.
func InclusiveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
