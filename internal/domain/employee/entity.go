package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string
	EmployeeCode     string
	FullName         string
	Email            string
	PasswordHash     string
	Role             Role
	Department       string
	Position         string
	Salary           decimal.Decimal
	StartDate        time.Time
	Status           Status
	PhoneNumber      *string
	Address          *string
	EmergencyContact *string
	EmergencyPhone   *string
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleEmployee),
}

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
	StatusOnLeave  Status = "On Leave"
)

var StatusValues = []string{
	string(StatusActive),
	string(StatusInactive),
	string(StatusOnLeave),
}
