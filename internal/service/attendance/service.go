package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/peoplehr/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplehr/hrms-backend-go/internal/domain/employee"
	"github.com/peoplehr/hrms-backend-go/internal/domain/schedule"
	"github.com/peoplehr/hrms-backend-go/internal/domain/timesheet"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	schedule.AssignmentRepository
	employee.EmployeeRepository
	timesheetService timesheet.TimesheetService
	logger           *slog.Logger
	now              func() time.Time
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	assignmentRepository schedule.AssignmentRepository,
	employeeRepository employee.EmployeeRepository,
	timesheetService timesheet.TimesheetService,
	logger *slog.Logger,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		AssignmentRepository: assignmentRepository,
		EmployeeRepository:   employeeRepository,
		timesheetService:     timesheetService,
		logger:               logger,
		now:                  time.Now,
	}
}

func employeeIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}
	return employeeID, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func minutesSinceMidnight(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func timePtrToClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04")
	return &s
}

func toResponse(rec attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:                 rec.ID,
		EmployeeID:         rec.EmployeeID,
		Date:               rec.Date.Format("2006-01-02"),
		ClockIn:            timePtrToClock(rec.ClockIn),
		ClockOut:           timePtrToClock(rec.ClockOut),
		ScheduledIn:        rec.ScheduledIn,
		Status:             string(rec.Status),
		LateMinutes:        rec.LateMinutes,
		WorkHours:          rec.WorkHours,
		OvertimeHours:      rec.OvertimeHours,
		Notes:              rec.Notes,
		EmployeeName:       rec.EmployeeName,
		EmployeeDepartment: rec.EmployeeDepartment,
	}
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.ClockInResponse, error) {
	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return attendance.ClockInResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return attendance.ClockInResponse{}, err
	}

	now := s.now()
	today := dateOnly(now)

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	switch {
	case err == nil:
		if existing.ClockIn != nil {
			return attendance.ClockInResponse{}, attendance.ErrAlreadyClockedIn
		}
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		// first event of the day, record created below
	default:
		return attendance.ClockInResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	status := attendance.StatusPresent
	lateMinutes := 0
	var scheduledIn *string

	assignment, err := s.AssignmentRepository.GetActiveByEmployeeAndDate(ctx, employeeID, today)
	switch {
	case err == nil:
		if assignment.ShiftStartTime != nil {
			if startMin, ok := validator.ParseClockTime(*assignment.ShiftStartTime); ok {
				scheduledIn = assignment.ShiftStartTime
				status, lateMinutes = attendance.Lateness(minutesSinceMidnight(now), startMin)
			}
		}
	case errors.Is(err, schedule.ErrAssignmentNotFound):
		// unscheduled employees are never marked late
	default:
		return attendance.ClockInResponse{}, fmt.Errorf("failed to resolve schedule: %w", err)
	}

	clockIn := now
	if existing.ID != "" {
		existing.ClockIn = &clockIn
		existing.ScheduledIn = scheduledIn
		existing.Status = status
		existing.LateMinutes = lateMinutes
		if req.Notes != nil {
			existing.Notes = req.Notes
		}
		if _, err := s.AttendanceRepository.Update(ctx, existing); err != nil {
			return attendance.ClockInResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
		}
	} else {
		_, err = s.AttendanceRepository.Create(ctx, attendance.Attendance{
			EmployeeID:  employeeID,
			Date:        today,
			ClockIn:     &clockIn,
			ScheduledIn: scheduledIn,
			Status:      status,
			LateMinutes: lateMinutes,
			Notes:       req.Notes,
		})
		if err != nil {
			return attendance.ClockInResponse{}, err
		}
	}

	return attendance.ClockInResponse{
		Time:        now.Format("15:04:05"),
		Status:      string(status),
		LateMinutes: lateMinutes,
	}, nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.ClockOutResponse, error) {
	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return attendance.ClockOutResponse{}, err
	}

	now := s.now()
	today := dateOnly(now)

	rec, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.ClockOutResponse{}, attendance.ErrNotClockedInYet
		}
		return attendance.ClockOutResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if rec.ClockIn == nil {
		return attendance.ClockOutResponse{}, attendance.ErrNotClockedInYet
	}
	if rec.ClockOut != nil {
		return attendance.ClockOutResponse{}, attendance.ErrAlreadyClockedOut
	}

	workHours, overtimeHours := attendance.WorkedHours(*rec.ClockIn, now)

	clockOut := now
	rec.ClockOut = &clockOut
	rec.WorkHours = &workHours
	rec.OvertimeHours = &overtimeHours
	if req.Notes != nil {
		rec.Notes = req.Notes
	}

	if _, err := s.AttendanceRepository.Update(ctx, rec); err != nil {
		return attendance.ClockOutResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	// Timesheet sync is best effort; clock-out success is primary.
	syncStatus := timesheet.StatusPresent
	if rec.Status == attendance.StatusLate {
		syncStatus = timesheet.StatusLate
	}
	workType := timesheet.WorkRegular
	if overtimeHours > 0 {
		workType = timesheet.WorkOvertime
	}
	err = s.timesheetService.SyncFromAttendance(ctx, timesheet.AttendanceSync{
		EmployeeID:       employeeID,
		Date:             today.Format("2006-01-02"),
		CheckIn:          timePtrToClock(rec.ClockIn),
		CheckOut:         timePtrToClock(rec.ClockOut),
		AttendanceStatus: syncStatus,
		WorkHoursType:    workType,
		Notes:            rec.Notes,
	})
	if err != nil {
		s.logger.Error("timesheet sync after clock-out failed",
			slog.String("employee_id", employeeID),
			slog.String("date", today.Format("2006-01-02")),
			slog.Any("error", err),
		)
	}

	return attendance.ClockOutResponse{
		Time:      now.Format("15:04:05"),
		WorkHours: workHours,
	}, nil
}

// GetStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetStatus(ctx context.Context) (attendance.StatusResponse, error) {
	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return attendance.StatusResponse{}, err
	}

	today := dateOnly(s.now())

	rec, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.StatusResponse{}, nil
		}
		return attendance.StatusResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return attendance.StatusResponse{
		ClockedIn:    rec.ClockIn != nil,
		ClockedOut:   rec.ClockOut != nil,
		ClockInTime:  timePtrToClock(rec.ClockIn),
		ClockOutTime: timePtrToClock(rec.ClockOut),
		WorkHours:    rec.WorkHours,
	}, nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	start := dateOnly(s.now()).AddDate(0, 0, -30)
	records, err := s.AttendanceRepository.List(ctx, attendance.Filter{
		EmployeeID: &employeeID,
		StartDate:  &start,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}
	return responses, nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	repoFilter := attendance.Filter{EmployeeID: filter.EmployeeID}
	if filter.StartDate != nil {
		start, _ := time.Parse("2006-01-02", *filter.StartDate)
		repoFilter.StartDate = &start
	}
	if filter.EndDate != nil {
		end, _ := time.Parse("2006-01-02", *filter.EndDate)
		repoFilter.EndDate = &end
	}
	if filter.Status != nil {
		status := attendance.Status(*filter.Status)
		repoFilter.Status = &status
	}

	records, err := s.AttendanceRepository.List(ctx, repoFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}
	return responses, nil
}

// GetRecentLateArrivals implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetRecentLateArrivals(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	start := dateOnly(s.now()).AddDate(0, 0, -7)
	status := attendance.StatusLate

	records, err := s.AttendanceRepository.List(ctx, attendance.Filter{
		StartDate: &start,
		Status:    &status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list late arrivals: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}
	return responses, nil
}

// SweepAbsences implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) SweepAbsences(ctx context.Context, targetDate string) (attendance.SweepResult, error) {
	date, ok := validator.IsValidDate(targetDate)
	if !ok {
		return attendance.SweepResult{}, validator.ValidationErrors{
			{Field: "target_date", Message: "target_date must be YYYY-MM-DD"},
		}
	}

	assignments, err := s.AssignmentRepository.ListActiveByDate(ctx, date)
	if err != nil {
		return attendance.SweepResult{}, fmt.Errorf("failed to list schedule assignments: %w", err)
	}

	result := attendance.SweepResult{
		TargetDate: targetDate,
		Scheduled:  len(assignments),
	}
	note := "Marked absent: scheduled but no clock-in on " + targetDate

	for _, a := range assignments {
		if err := s.sweepOne(ctx, a.EmployeeID, date, note, &result); err != nil {
			result.Failed++
			s.logger.Error("absence sweep row failed",
				slog.String("employee_id", a.EmployeeID),
				slog.String("date", targetDate),
				slog.Any("error", err),
			)
		}
	}
	return result, nil
}

func (s *AttendanceServiceImpl) sweepOne(ctx context.Context, employeeID string, date time.Time, note string, result *attendance.SweepResult) error {
	rec, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	switch {
	case err == nil:
		if rec.ClockIn != nil {
			result.Skipped++
			return nil
		}
		rec.Status = attendance.StatusAbsent
		rec.Notes = &note
		if _, err := s.AttendanceRepository.Update(ctx, rec); err != nil {
			return fmt.Errorf("failed to mark attendance absent: %w", err)
		}
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		_, err = s.AttendanceRepository.Create(ctx, attendance.Attendance{
			EmployeeID: employeeID,
			Date:       date,
			Status:     attendance.StatusAbsent,
			Notes:      &note,
		})
		if err != nil {
			return fmt.Errorf("failed to create absent attendance record: %w", err)
		}
	default:
		return fmt.Errorf("failed to get attendance record: %w", err)
	}

	if err := s.timesheetService.BackfillAbsence(ctx, employeeID, date.Format("2006-01-02"), note); err != nil {
		return fmt.Errorf("failed to backfill timesheet entry: %w", err)
	}

	result.MarkedAbsent++
	return nil
}
