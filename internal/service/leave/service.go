package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/peoplehr/hrms-backend-go/internal/domain/employee"
	"github.com/peoplehr/hrms-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	employee.EmployeeRepository
}

func NewLeaveService(leaveRepository leave.LeaveRepository, employeeRepository employee.EmployeeRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository:    leaveRepository,
		EmployeeRepository: employeeRepository,
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

func toResponse(lr leave.LeaveRequest) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:                 lr.ID,
		EmployeeID:         lr.EmployeeID,
		LeaveType:          string(lr.LeaveType),
		StartDate:          lr.StartDate.Format("2006-01-02"),
		EndDate:            lr.EndDate.Format("2006-01-02"),
		DaysRequested:      lr.DaysRequested,
		Reason:             lr.Reason,
		Status:             string(lr.Status),
		ReviewedBy:         lr.ReviewedBy,
		ReviewNote:         lr.ReviewNote,
		EmployeeName:       lr.EmployeeName,
		EmployeeDepartment: lr.EmployeeDepartment,
	}
}

// Create implements leave.LeaveService.
func (l *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	employeeID, _, err := callerFromClaims(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := l.LeaveRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID:    employeeID,
		LeaveType:     leave.LeaveType(req.LeaveType),
		StartDate:     start,
		EndDate:       end,
		DaysRequested: leave.InclusiveDays(start, end),
		Reason:        req.Reason,
		Status:        leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return toResponse(created), nil
}

// GetByID implements leave.LeaveService.
func (l *LeaveServiceImpl) GetByID(ctx context.Context, id string) (leave.LeaveResponse, error) {
	callerID, isAdmin, err := callerFromClaims(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	lr, err := l.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if !isAdmin && lr.EmployeeID != callerID {
		return leave.LeaveResponse{}, leave.ErrLeaveNotFound
	}
	return toResponse(lr), nil
}

// Review implements leave.LeaveService.
func (l *LeaveServiceImpl) Review(ctx context.Context, id string, req leave.ReviewLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	callerID, _, err := callerFromClaims(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	lr, err := l.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if lr.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyReviewed
	}

	lr.Status = leave.Status(req.Status)
	lr.ReviewedBy = &callerID
	lr.ReviewNote = req.ReviewNote

	updated, err := l.LeaveRepository.Update(ctx, lr)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}
	return toResponse(updated), nil
}

// List implements leave.LeaveService.
func (l *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	callerID, isAdmin, err := callerFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	repoFilter := leave.Filter{EmployeeID: filter.EmployeeID}
	if !isAdmin {
		repoFilter.EmployeeID = &callerID
	}
	if filter.Status != nil {
		status := leave.Status(*filter.Status)
		repoFilter.Status = &status
	}

	requests, err := l.LeaveRepository.List(ctx, repoFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, lr := range requests {
		responses = append(responses, toResponse(lr))
	}
	return responses, nil
}

// GetBalance implements leave.LeaveService.
func (l *LeaveServiceImpl) GetBalance(ctx context.Context, year int) ([]leave.BalanceResponse, error) {
	employeeID, _, err := callerFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	totals, err := l.LeaveRepository.SumApprovedDaysByType(ctx, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to sum approved leave days: %w", err)
	}

	balances := make([]leave.BalanceResponse, 0, len(totals))
	for _, td := range totals {
		balances = append(balances, leave.BalanceResponse{
			LeaveType:    string(td.LeaveType),
			ApprovedDays: td.Days,
		})
	}
	return balances, nil
}
