package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/peoplehr/hrms-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
	}
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:               emp.ID,
		EmployeeCode:     emp.EmployeeCode,
		FullName:         emp.FullName,
		Email:            emp.Email,
		Role:             string(emp.Role),
		Department:       emp.Department,
		Position:         emp.Position,
		Salary:           emp.Salary.StringFixed(2),
		StartDate:        emp.StartDate.Format("2006-01-02"),
		Status:           string(emp.Status),
		PhoneNumber:      emp.PhoneNumber,
		Address:          emp.Address,
		EmergencyContact: emp.EmergencyContact,
		EmergencyPhone:   emp.EmergencyPhone,
		Notes:            emp.Notes,
		CreatedAt:        emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        emp.UpdatedAt.Format(time.RFC3339),
	}
}

// Create implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)

	role := employee.RoleEmployee
	if req.Role != "" {
		role = employee.Role(req.Role)
	}
	status := employee.StatusActive
	if req.Status != "" {
		status = employee.Status(req.Status)
	}

	emp := employee.Employee{
		FullName:         req.FullName,
		Email:            req.Email,
		PasswordHash:     string(hash),
		Role:             role,
		Department:       req.Department,
		Position:         req.Position,
		Salary:           decimal.NewFromFloat(req.Salary),
		StartDate:        startDate,
		Status:           status,
		PhoneNumber:      req.PhoneNumber,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
		Notes:            req.Notes,
	}

	created, err := e.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(created), nil
}

// GetByID implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// GetProfile implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetProfile(ctx context.Context) (employee.EmployeeResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return employee.EmployeeResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}
	return e.GetByID(ctx, employeeID)
}

// List implements employee.EmployeeService.
func (e *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	emps, err := e.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]employee.EmployeeResponse, 0, len(emps))
	for _, emp := range emps {
		responses = append(responses, toResponse(emp))
	}
	return responses, nil
}

// Update implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := e.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		emp.PasswordHash = string(hash)
	}
	if req.Role != nil {
		emp.Role = employee.Role(*req.Role)
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.Salary != nil {
		emp.Salary = decimal.NewFromFloat(*req.Salary)
	}
	if req.StartDate != nil {
		startDate, _ := time.Parse("2006-01-02", *req.StartDate)
		emp.StartDate = startDate
	}
	if req.Status != nil {
		emp.Status = employee.Status(*req.Status)
	}
	if req.PhoneNumber != nil {
		emp.PhoneNumber = req.PhoneNumber
	}
	if req.Address != nil {
		emp.Address = req.Address
	}
	if req.EmergencyContact != nil {
		emp.EmergencyContact = req.EmergencyContact
	}
	if req.EmergencyPhone != nil {
		emp.EmergencyPhone = req.EmergencyPhone
	}
	if req.Notes != nil {
		emp.Notes = req.Notes
	}

	if err := e.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// Delete implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := e.EmployeeRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return e.EmployeeRepository.Delete(ctx, id)
}

// BulkUpdateStatus implements employee.EmployeeService.
func (e *EmployeeServiceImpl) BulkUpdateStatus(ctx context.Context, req employee.BulkStatusRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	return e.EmployeeRepository.BulkUpdateStatus(ctx, req.EmployeeIDs, employee.Status(req.Status))
}

// GetStats implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetStats(ctx context.Context) (employee.StatsResponse, error) {
	stats, err := e.EmployeeRepository.GetStats(ctx)
	if err != nil {
		return employee.StatsResponse{}, err
	}

	var resp employee.StatsResponse
	resp.Summary.TotalEmployees = stats.TotalEmployees
	resp.Summary.ActiveEmployees = stats.ActiveEmployees
	resp.Summary.AverageSalary = stats.AverageSalary
	resp.DepartmentBreakdown = stats.ByDepartment
	resp.StatusBreakdown = stats.ByStatus
	return resp, nil
}
