package timesheet

import (
	"github.com/peoplehr/hrms-backend-go/internal/pkg/validator"
)

type UpsertTimesheetRequest struct {
	EmployeeID       string  `json:"employee_id"`
	Date             string  `json:"date"`
	CheckIn          *string `json:"check_in"`
	CheckOut         *string `json:"check_out"`
	BreakHours       float64 `json:"break_hours"`
	WorkHoursType    string  `json:"work_hours_type"`
	AttendanceStatus string  `json:"attendance_status"`
	Notes            *string `json:"notes,omitempty"`
}

func (r *UpsertTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if r.CheckIn != nil && !validator.IsValidClockTime(*r.CheckIn) {
		errs = append(errs, validator.ValidationError{Field: "check_in", Message: "check_in must be HH:MM"})
	}
	if r.CheckOut != nil && !validator.IsValidClockTime(*r.CheckOut) {
		errs = append(errs, validator.ValidationError{Field: "check_out", Message: "check_out must be HH:MM"})
	}
	if r.BreakHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "break_hours", Message: "break_hours must not be negative"})
	}
	if r.WorkHoursType != "" && !validator.IsInSlice(r.WorkHoursType, WorkHoursTypeValues()) {
		errs = append(errs, validator.ValidationError{Field: "work_hours_type", Message: "invalid work_hours_type"})
	}
	if r.AttendanceStatus != "" && !validator.IsInSlice(r.AttendanceStatus, AttendanceStatusValues()) {
		errs = append(errs, validator.ValidationError{Field: "attendance_status", Message: "invalid attendance_status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TimesheetFilter struct {
	EmployeeID *string
	StartDate  *string
	EndDate    *string
	Status     *string
	Month      *string // "YYYY-MM"
}

func (f *TimesheetFilter) Validate() error {
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
	if f.Status != nil && !validator.IsInSlice(*f.Status, AttendanceStatusValues()) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "invalid status"})
	}
	if f.Month != nil {
		if _, ok := validator.IsValidDate(*f.Month + "-01"); !ok {
			errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be YYYY-MM"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TimesheetResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	Date             string  `json:"date"`
	CheckIn          *string `json:"check_in"`
	CheckOut         *string `json:"check_out"`
	BreakHours       float64 `json:"break_hours"`
	TotalHours       float64 `json:"total_hours"`
	OvertimeHours    float64 `json:"overtime_hours"`
	WorkHoursType    string  `json:"work_hours_type"`
	AttendanceStatus string  `json:"attendance_status"`
	Notes            *string `json:"notes,omitempty"`

	EmployeeName       *string `json:"employee_name,omitempty"`
	EmployeeDepartment *string `json:"department,omitempty"`
	EmployeePosition   *string `json:"position,omitempty"`
}

// StatsResponse is the dashboard stats payload. The key names are a wire
// contract with the frontend and must not change.
type StatsResponse struct {
	TotalEntries  int64   `json:"total_entries"`
	TotalHours    float64 `json:"total_work_hours"`
	OvertimeHours float64 `json:"total_overtime_hours"`
	AverageHours  float64 `json:"avg_daily_hours"`
	PresentDays   int64   `json:"present_days"`
	AbsentDays    int64   `json:"absent_days"`
	LateDays      int64   `json:"late_days"`
	LeaveDays     int64   `json:"leave_days"`
}

// MonthlySummaryResponse rolls one employee's month up for payroll review.
type MonthlySummaryResponse struct {
	EmployeeID    string  `json:"employee_id"`
	Month         string  `json:"month"`
	WorkedDays    int64   `json:"worked_days"`
	TotalHours    float64 `json:"total_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	LateDays      int64   `json:"late_days"`
	AbsentDays    int64   `json:"absent_days"`
	ApprovedLeave int64   `json:"approved_leave_days"`
}
