package schedule

import (
	"github.com/peoplehr/hrms-backend-go/internal/pkg/validator"
)

type AssignScheduleRequest struct {
	EmployeeID string `json:"employee_id"`
	ShiftID    string `json:"shift_id"`
	Date       string `json:"schedule_date"`
}

func (r *AssignScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{Field: "shift_id", Message: "shift_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "schedule_date", Message: "schedule_date must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RemoveScheduleRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"schedule_date"`
}

func (r *RemoveScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "schedule_date", Message: "schedule_date must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScheduleFilter struct {
	EmployeeID *string
	StartDate  *string
	EndDate    *string
}

func (f *ScheduleFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
		}
	}
	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Description *string `json:"description,omitempty"`
}

type AssignmentResponse struct {
	ID                 string  `json:"id"`
	EmployeeID         string  `json:"employee_id"`
	ShiftID            string  `json:"shift_id"`
	Date               string  `json:"schedule_date"`
	Status             string  `json:"status"`
	EmployeeName       *string `json:"employee_name,omitempty"`
	EmployeeDepartment *string `json:"department,omitempty"`
	ShiftName          *string `json:"shift_name,omitempty"`
	ShiftStartTime     *string `json:"shift_start_time,omitempty"`
	ShiftEndTime       *string `json:"shift_end_time,omitempty"`
}
