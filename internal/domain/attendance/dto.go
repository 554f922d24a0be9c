package attendance

import (
	"github.com/peoplehr/hrms-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	Notes *string `json:"notes,omitempty"`
}

type ClockOutRequest struct {
	Notes *string `json:"notes,omitempty"`
}

type ClockInResponse struct {
	Time        string `json:"time"`
	Status      string `json:"status"`
	LateMinutes int    `json:"lateMinutes"`
}

type ClockOutResponse struct {
	Time      string  `json:"time"`
	WorkHours float64 `json:"workHours"`
}

// StatusResponse is the today-view for one employee. Fields default to
// not-yet values when no record exists.
type StatusResponse struct {
	ClockedIn    bool     `json:"clockedIn"`
	ClockedOut   bool     `json:"clockedOut"`
	ClockInTime  *string  `json:"clockInTime"`
	ClockOutTime *string  `json:"clockOutTime"`
	WorkHours    *float64 `json:"workHours"`
}

type AttendanceFilter struct {
	EmployeeID *string
	StartDate  *string
	EndDate    *string
	Status     *string
}

func (f *AttendanceFilter) Validate() error {
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
	if f.Status != nil && !validator.IsInSlice(*f.Status, StatusValues()) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "invalid status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID            string   `json:"id"`
	EmployeeID    string   `json:"employee_id"`
	Date          string   `json:"date"`
	ClockIn       *string  `json:"clock_in"`
	ClockOut      *string  `json:"clock_out"`
	ScheduledIn   *string  `json:"scheduled_in"`
	Status        string   `json:"status"`
	LateMinutes   int      `json:"late_minutes"`
	WorkHours     *float64 `json:"work_hours"`
	OvertimeHours *float64 `json:"overtime_hours"`
	Notes         *string  `json:"notes,omitempty"`

	EmployeeName       *string `json:"employee_name,omitempty"`
	EmployeeDepartment *string `json:"department,omitempty"`
}

type SweepResult struct {
	TargetDate   string `json:"target_date"`
	Scheduled    int    `json:"scheduled"`
	MarkedAbsent int    `json:"marked_absent"`
	Skipped      int    `json:"skipped"`
	Failed       int    `json:"failed"`
}
