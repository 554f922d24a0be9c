package employee

import (
	"strings"

	"github.com/peoplehr/hrms-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName         string  `json:"fullName"`
	Email            string  `json:"email"`
	Password         string  `json:"password"`
	Role             string  `json:"role"`
	Department       string  `json:"department"`
	Position         string  `json:"position"`
	Salary           float64 `json:"salary"`
	StartDate        string  `json:"startDate"`
	Status           string  `json:"status"`
	PhoneNumber      *string `json:"phoneNumber"`
	Address          *string `json:"address"`
	EmergencyContact *string `json:"emergencyContact"`
	EmergencyPhone   *string `json:"emergencyPhone"`
	Notes            *string `json:"notes"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "fullName", Message: "fullName is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position is required"})
	}
	if r.Salary < 0 {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "startDate must be YYYY-MM-DD"})
	}
	if r.Role != "" && !validator.IsInSlice(r.Role, RoleValues) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be one of: " + strings.Join(RoleValues, ", ")})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of: " + strings.Join(StatusValues, ", ")})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID               string   `json:"-"`
	FullName         *string  `json:"fullName"`
	Email            *string  `json:"email"`
	Password         *string  `json:"password"`
	Role             *string  `json:"role"`
	Department       *string  `json:"department"`
	Position         *string  `json:"position"`
	Salary           *float64 `json:"salary"`
	StartDate        *string  `json:"startDate"`
	Status           *string  `json:"status"`
	PhoneNumber      *string  `json:"phoneNumber"`
	Address          *string  `json:"address"`
	EmergencyContact *string  `json:"emergencyContact"`
	EmergencyPhone   *string  `json:"emergencyPhone"`
	Notes            *string  `json:"notes"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if r.Salary != nil && *r.Salary < 0 {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must be non-negative"})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "startDate", Message: "startDate must be YYYY-MM-DD"})
		}
	}
	if r.Role != nil && !validator.IsInSlice(*r.Role, RoleValues) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be one of: " + strings.Join(RoleValues, ", ")})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of: " + strings.Join(StatusValues, ", ")})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkStatusRequest struct {
	EmployeeIDs []string `json:"employeeIds"`
	Status      string   `json:"status"`
}

func (r *BulkStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "employeeIds", Message: "at least one employee ID is required"})
	}
	if !validator.IsInSlice(r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of: " + strings.Join(StatusValues, ", ")})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	EmployeeCode     string  `json:"employeeId"`
	FullName         string  `json:"fullName"`
	Email            string  `json:"email"`
	Role             string  `json:"role"`
	Department       string  `json:"department"`
	Position         string  `json:"position"`
	Salary           string  `json:"salary"`
	StartDate        string  `json:"startDate"`
	Status           string  `json:"status"`
	PhoneNumber      *string `json:"phoneNumber,omitempty"`
	Address          *string `json:"address,omitempty"`
	EmergencyContact *string `json:"emergencyContact,omitempty"`
	EmergencyPhone   *string `json:"emergencyPhone,omitempty"`
	Notes            *string `json:"notes,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type StatsResponse struct {
	Summary struct {
		TotalEmployees  int64   `json:"totalEmployees"`
		ActiveEmployees int64   `json:"activeEmployees"`
		AverageSalary   float64 `json:"averageSalary"`
	} `json:"summary"`
	DepartmentBreakdown []GroupCount `json:"departmentBreakdown"`
	StatusBreakdown     []GroupCount `json:"statusBreakdown"`
}
