package timesheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/peoplehr/hrms-backend-go/internal/domain/employee"
	"github.com/peoplehr/hrms-backend-go/internal/domain/timesheet"
)

type TimesheetServiceImpl struct {
	timesheet.TimesheetRepository
	employee.EmployeeRepository
}

func NewTimesheetService(timesheetRepository timesheet.TimesheetRepository, employeeRepository employee.EmployeeRepository) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		TimesheetRepository: timesheetRepository,
		EmployeeRepository:  employeeRepository,
	}
}

func callerFromClaims(ctx context.Context) (employeeID string, isAdmin bool, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", false, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	employeeID, _ = claims["employee_id"].(string)
	role, _ := claims["role"].(string)
	return employeeID, role == "admin", nil
}

func toResponse(ts timesheet.Timesheet) timesheet.TimesheetResponse {
	return timesheet.TimesheetResponse{
		ID:                 ts.ID,
		EmployeeID:         ts.EmployeeID,
		Date:               ts.Date.Format("2006-01-02"),
		CheckIn:            ts.CheckIn,
		CheckOut:           ts.CheckOut,
		BreakHours:         ts.BreakHours,
		TotalHours:         ts.TotalHours,
		OvertimeHours:      ts.OvertimeHours,
		WorkHoursType:      string(ts.WorkHoursType),
		AttendanceStatus:   string(ts.AttendanceStatus),
		Notes:              ts.Notes,
		EmployeeName:       ts.EmployeeName,
		EmployeeDepartment: ts.EmployeeDepartment,
		EmployeePosition:   ts.EmployeePosition,
	}
}

// Upsert implements timesheet.TimesheetService.
func (t *TimesheetServiceImpl) Upsert(ctx context.Context, req timesheet.UpsertTimesheetRequest) (timesheet.TimesheetResponse, bool, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, false, err
	}

	if _, err := t.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return timesheet.TimesheetResponse{}, false, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	workType := timesheet.WorkRegular
	if req.WorkHoursType != "" {
		workType = timesheet.WorkHoursType(req.WorkHoursType)
	}
	status := timesheet.StatusPresent
	if req.AttendanceStatus != "" {
		status = timesheet.AttendanceStatus(req.AttendanceStatus)
	}

	// Hours are always recomputed server-side; caller-supplied totals are
	// never trusted.
	total, overtime := timesheet.DeriveHours(req.CheckIn, req.CheckOut, req.BreakHours)

	entry := timesheet.Timesheet{
		EmployeeID:       req.EmployeeID,
		Date:             date,
		CheckIn:          req.CheckIn,
		CheckOut:         req.CheckOut,
		BreakHours:       req.BreakHours,
		TotalHours:       total,
		OvertimeHours:    overtime,
		WorkHoursType:    workType,
		AttendanceStatus: status,
		Notes:            req.Notes,
	}

	existing, err := t.TimesheetRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	switch {
	case err == nil:
		entry.ID = existing.ID
		updated, err := t.TimesheetRepository.Update(ctx, entry)
		if err != nil {
			return timesheet.TimesheetResponse{}, false, fmt.Errorf("failed to update timesheet entry: %w", err)
		}
		return toResponse(updated), false, nil
	case errors.Is(err, timesheet.ErrTimesheetNotFound):
		created, err := t.TimesheetRepository.Create(ctx, entry)
		if err != nil {
			return timesheet.TimesheetResponse{}, false, err
		}
		return toResponse(created), true, nil
	default:
		return timesheet.TimesheetResponse{}, false, fmt.Errorf("failed to get timesheet entry: %w", err)
	}
}

// Create implements timesheet.TimesheetService.
func (t *TimesheetServiceImpl) Create(ctx context.Context, req timesheet.UpsertTimesheetRequest) (timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	if _, err := t.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	workType := timesheet.WorkRegular
	if req.WorkHoursType != "" {
		workType = timesheet.WorkHoursType(req.WorkHoursType)
	}
	status := timesheet.StatusPresent
	if req.AttendanceStatus != "" {
		status = timesheet.AttendanceStatus(req.AttendanceStatus)
	}

	total, overtime := timesheet.DeriveHours(req.CheckIn, req.CheckOut, req.BreakHours)

	created, err := t.TimesheetRepository.Create(ctx, timesheet.Timesheet{
		EmployeeID:       req.EmployeeID,
		Date:             date,
		CheckIn:          req.CheckIn,
		CheckOut:         req.CheckOut,
		BreakHours:       req.BreakHours,
		TotalHours:       total,
		OvertimeHours:    overtime,
		WorkHoursType:    workType,
		AttendanceStatus: status,
		Notes:            req.Notes,
	})
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	return toResponse(created), nil
}

// UpdateByID implements timesheet.TimesheetService.
func (t *TimesheetServiceImpl) UpdateByID(ctx context.Context, id string, req timesheet.UpsertTimesheetRequest) (timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	existing, err := t.TimesheetRepository.GetByID(ctx, id)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	existing.EmployeeID = req.EmployeeID
	existing.Date = date
	existing.CheckIn = req.CheckIn
	existing.CheckOut = req.CheckOut
	existing.BreakHours = req.BreakHours
	if req.WorkHoursType != "" {
		existing.WorkHoursType = timesheet.WorkHoursType(req.WorkHoursType)
	}
	if req.AttendanceStatus != "" {
		existing.AttendanceStatus = timesheet.AttendanceStatus(req.AttendanceStatus)
	}
	existing.Notes = req.Notes

	// Any clock-time or break change retriggers the derivation.
	existing.TotalHours, existing.OvertimeHours = timesheet.DeriveHours(existing.CheckIn, existing.CheckOut, existing.BreakHours)

	updated, err := t.TimesheetRepository.Update(ctx, existing)
	if err != nil {
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to update timesheet entry: %w", err)
	}
	return toResponse(updated), nil
}

// GetByID implements timesheet.TimesheetService.
func (t *TimesheetServiceImpl) GetByID(ctx context.Context, id string) (timesheet.TimesheetResponse, error) {
	ts, err := t.TimesheetRepository.GetByID(ctx, id)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	return toResponse(ts), nil
}

// Delete implements timesheet.TimesheetService.
func (t *TimesheetServiceImpl) Delete(ctx context.Context, id string) error {
	return t.TimesheetRepository.Delete(ctx, id)
}

func (t *TimesheetServiceImpl) repoFilter(ctx context.Context, filter timesheet.TimesheetFilter) (timesheet.Filter, error) {
	callerID, isAdmin, err := callerFromClaims(ctx)
	if err != nil {
		return timesheet.Filter{}, err
	}

	repoFilter := timesheet.Filter{EmployeeID: filter.EmployeeID}
	if !isAdmin {
		repoFilter.EmployeeID = &callerID
	}
	if filter.StartDate != nil {
		start, _ := time.Parse("2006-01-02", *filter.StartDate)
		repoFilter.StartDate = &start
	}
	if filter.EndDate != nil {
		end, _ := time.Parse("2006-01-02", *filter.EndDate)
		repoFilter.EndDate = &end
	}
	if filter.Status != nil {
		status := timesheet.AttendanceStatus(*filter.Status)
		repoFilter.Status = &status
	}
	if filter.Month != nil {
		start, _ := time.Parse("2006-01-02", *filter.Month+"-01")
		end := start.AddDate(0, 1, -1)
		repoFilter.StartDate = &start
		repoFilter.EndDate = &end
	}
	return repoFilter, nil
}

// List implements timesheet.TimesheetService.
func (t *TimesheetServiceImpl) List(ctx context.Context, filter timesheet.TimesheetFilter) ([]timesheet.TimesheetResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	repoFilter, err := t.repoFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	entries, err := t.TimesheetRepository.List(ctx, repoFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheet entries: %w", err)
	}

	responses := make([]timesheet.TimesheetResponse, 0, len(entries))
	for _, ts := range entries {
		responses = append(responses, toResponse(ts))
	}
	return responses, nil
}

// GetStats implements timesheet.TimesheetService.
func (t *TimesheetServiceImpl) GetStats(ctx context.Context, filter timesheet.TimesheetFilter) (timesheet.StatsResponse, error) {
	if err := filter.Validate(); err != nil {
		return timesheet.StatsResponse{}, err
	}
	repoFilter, err := t.repoFilter(ctx, filter)
	if err != nil {
		return timesheet.StatsResponse{}, err
	}

	stats, err := t.TimesheetRepository.GetStats(ctx, repoFilter)
	if err != nil {
		return timesheet.StatsResponse{}, fmt.Errorf("failed to aggregate timesheet stats: %w", err)
	}

	return timesheet.StatsResponse{
		TotalEntries:  stats.TotalEntries,
		TotalHours:    stats.TotalHours,
		OvertimeHours: stats.OvertimeHours,
		AverageHours:  stats.AverageHours,
		PresentDays:   stats.PresentDays,
		AbsentDays:    stats.AbsentDays,
		LateDays:      stats.LateDays,
		LeaveDays:     stats.LeaveDays,
	}, nil
}

// GetMonthlySummary implements timesheet.TimesheetService.
func (t *TimesheetServiceImpl) GetMonthlySummary(ctx context.Context, employeeID, month string) (timesheet.MonthlySummaryResponse, error) {
	start, err := time.Parse("2006-01-02", month+"-01")
	if err != nil {
		return timesheet.MonthlySummaryResponse{}, timesheet.ErrTimesheetNotFound
	}
	end := start.AddDate(0, 1, -1)

	stats, err := t.TimesheetRepository.GetStats(ctx, timesheet.Filter{
		EmployeeID: &employeeID,
		StartDate:  &start,
		EndDate:    &end,
	})
	if err != nil {
		return timesheet.MonthlySummaryResponse{}, fmt.Errorf("failed to aggregate timesheet stats: %w", err)
	}

	leaveDays, err := t.TimesheetRepository.CountApprovedLeaveDays(ctx, employeeID, start, end)
	if err != nil {
		return timesheet.MonthlySummaryResponse{}, fmt.Errorf("failed to count approved leave days: %w", err)
	}

	return timesheet.MonthlySummaryResponse{
		EmployeeID:    employeeID,
		Month:         month,
		WorkedDays:    stats.PresentDays + stats.LateDays,
		TotalHours:    stats.TotalHours,
		OvertimeHours: stats.OvertimeHours,
		LateDays:      stats.LateDays,
		AbsentDays:    stats.AbsentDays,
		ApprovedLeave: leaveDays,
	}, nil
}

// SyncFromAttendance implements timesheet.TimesheetService.
func (t *TimesheetServiceImpl) SyncFromAttendance(ctx context.Context, sync timesheet.AttendanceSync) error {
	date, err := time.Parse("2006-01-02", sync.Date)
	if err != nil {
		return fmt.Errorf("invalid sync date %q: %w", sync.Date, err)
	}

	total, overtime := timesheet.DeriveHours(sync.CheckIn, sync.CheckOut, 0)

	entry := timesheet.Timesheet{
		EmployeeID:       sync.EmployeeID,
		Date:             date,
		CheckIn:          sync.CheckIn,
		CheckOut:         sync.CheckOut,
		TotalHours:       total,
		OvertimeHours:    overtime,
		WorkHoursType:    sync.WorkHoursType,
		AttendanceStatus: sync.AttendanceStatus,
		Notes:            sync.Notes,
	}

	existing, err := t.TimesheetRepository.GetByEmployeeAndDate(ctx, sync.EmployeeID, date)
	switch {
	case err == nil:
		entry.ID = existing.ID
		entry.BreakHours = existing.BreakHours
		entry.TotalHours, entry.OvertimeHours = timesheet.DeriveHours(entry.CheckIn, entry.CheckOut, entry.BreakHours)
		_, err = t.TimesheetRepository.Update(ctx, entry)
		return err
	case errors.Is(err, timesheet.ErrTimesheetNotFound):
		_, err = t.TimesheetRepository.Create(ctx, entry)
		return err
	default:
		return fmt.Errorf("failed to get timesheet entry: %w", err)
	}
}

// BackfillAbsence implements timesheet.TimesheetService.
func (t *TimesheetServiceImpl) BackfillAbsence(ctx context.Context, employeeID, date, note string) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid backfill date %q: %w", date, err)
	}

	_, err = t.TimesheetRepository.GetByEmployeeAndDate(ctx, employeeID, day)
	switch {
	case err == nil:
		// existing entries are never overwritten by the sweep
		return nil
	case errors.Is(err, timesheet.ErrTimesheetNotFound):
		_, err = t.TimesheetRepository.Create(ctx, timesheet.Timesheet{
			EmployeeID:       employeeID,
			Date:             day,
			WorkHoursType:    timesheet.WorkRegular,
			AttendanceStatus: timesheet.StatusAbsent,
			Notes:            &note,
		})
		return err
	default:
		return fmt.Errorf("failed to get timesheet entry: %w", err)
	}
}
