package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplehr/hrms-backend-go/internal/domain/employee"
	"github.com/peoplehr/hrms-backend-go/internal/domain/schedule"
)

type ScheduleServiceImpl struct {
	schedule.ShiftRepository
	schedule.AssignmentRepository
	employee.EmployeeRepository
}

func NewScheduleService(shiftRepository schedule.ShiftRepository, assignmentRepository schedule.AssignmentRepository, employeeRepository employee.EmployeeRepository) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		ShiftRepository:      shiftRepository,
		AssignmentRepository: assignmentRepository,
		EmployeeRepository:   employeeRepository,
	}
}

func toAssignmentResponse(a schedule.Assignment) schedule.AssignmentResponse {
	return schedule.AssignmentResponse{
		ID:                 a.ID,
		EmployeeID:         a.EmployeeID,
		ShiftID:            a.ShiftID,
		Date:               a.Date.Format("2006-01-02"),
		Status:             string(a.Status),
		EmployeeName:       a.EmployeeName,
		EmployeeDepartment: a.EmployeeDepartment,
		ShiftName:          a.ShiftName,
		ShiftStartTime:     a.ShiftStartTime,
		ShiftEndTime:       a.ShiftEndTime,
	}
}

// Assign implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Assign(ctx context.Context, req schedule.AssignScheduleRequest) (schedule.AssignmentResponse, bool, error) {
	if err := req.Validate(); err != nil {
		return schedule.AssignmentResponse{}, false, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return schedule.AssignmentResponse{}, false, err
	}
	if _, err := s.ShiftRepository.GetByID(ctx, req.ShiftID); err != nil {
		return schedule.AssignmentResponse{}, false, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	assignment, created, err := s.AssignmentRepository.Upsert(ctx, schedule.Assignment{
		EmployeeID: req.EmployeeID,
		ShiftID:    req.ShiftID,
		Date:       date,
		Status:     schedule.AssignmentActive,
	})
	if err != nil {
		return schedule.AssignmentResponse{}, false, fmt.Errorf("failed to upsert schedule assignment: %w", err)
	}
	return toAssignmentResponse(assignment), created, nil
}

// Remove implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Remove(ctx context.Context, req schedule.RemoveScheduleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	date, _ := time.Parse("2006-01-02", req.Date)
	return s.AssignmentRepository.Cancel(ctx, req.EmployeeID, date)
}

// Query implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Query(ctx context.Context, filter schedule.ScheduleFilter) ([]schedule.AssignmentResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	repoFilter := schedule.AssignmentFilter{EmployeeID: filter.EmployeeID}
	if filter.StartDate != nil {
		start, _ := time.Parse("2006-01-02", *filter.StartDate)
		repoFilter.StartDate = &start
	}
	if filter.EndDate != nil {
		end, _ := time.Parse("2006-01-02", *filter.EndDate)
		repoFilter.EndDate = &end
	}

	assignments, err := s.AssignmentRepository.List(ctx, repoFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule assignments: %w", err)
	}

	responses := make([]schedule.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, toAssignmentResponse(a))
	}
	return responses, nil
}

// ListShifts implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListShifts(ctx context.Context) ([]schedule.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]schedule.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, schedule.ShiftResponse{
			ID:          sh.ID,
			Name:        sh.Name,
			StartTime:   sh.StartTime,
			EndTime:     sh.EndTime,
			Description: sh.Description,
		})
	}
	return responses, nil
}

// SeedDefaultShifts implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) SeedDefaultShifts(ctx context.Context) error {
	count, err := s.ShiftRepository.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count shifts: %w", err)
	}
	if count > 0 {
		return nil
	}

	defaults := []schedule.Shift{
		{Name: "Morning Shift", StartTime: "08:00", EndTime: "17:00"},
		{Name: "Afternoon Shift", StartTime: "13:00", EndTime: "22:00"},
		{Name: "Night Shift", StartTime: "22:00", EndTime: "06:00"},
	}
	for _, sh := range defaults {
		if _, err := s.ShiftRepository.Create(ctx, sh); err != nil {
			return fmt.Errorf("failed to seed shift %q: %w", sh.Name, err)
		}
	}
	return nil
}
