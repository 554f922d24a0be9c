package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/peoplehr/hrms-backend-go/internal/domain/employee"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/database"
)

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, employee_code, full_name, email, password_hash, role, department, position,
	salary, start_date, status, phone_number, address, emergency_contact,
	emergency_phone, notes, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.Email, &emp.PasswordHash,
		&emp.Role, &emp.Department, &emp.Position, &emp.Salary, &emp.StartDate,
		&emp.Status, &emp.PhoneNumber, &emp.Address, &emp.EmergencyContact,
		&emp.EmergencyPhone, &emp.Notes, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			employee_code, full_name, email, password_hash, role, department, position,
			salary, start_date, status, phone_number, address, emergency_contact,
			emergency_phone, notes
		)
		SELECT
			'EMP' || LPAD((COALESCE(MAX(NULLIF(SUBSTRING(employee_code FROM 4), '')::int), 0) + 1)::text, 4, '0'),
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		FROM employees
		RETURNING` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		emp.FullName, emp.Email, emp.PasswordHash, emp.Role, emp.Department,
		emp.Position, emp.Salary, emp.StartDate, emp.Status, emp.PhoneNumber,
		emp.Address, emp.EmergencyContact, emp.EmergencyPhone, emp.Notes,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}
	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT` + employeeColumns + ` FROM employees WHERE email = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}
	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT` + employeeColumns + ` FROM employees ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET full_name = $1, email = $2, password_hash = $3, role = $4, department = $5,
			position = $6, salary = $7, start_date = $8, status = $9, phone_number = $10,
			address = $11, emergency_contact = $12, emergency_phone = $13, notes = $14,
			updated_at = NOW()
		WHERE id = $15
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		emp.FullName, emp.Email, emp.PasswordHash, emp.Role, emp.Department,
		emp.Position, emp.Salary, emp.StartDate, emp.Status, emp.PhoneNumber,
		emp.Address, emp.EmergencyContact, emp.EmergencyPhone, emp.Notes, emp.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		if isUniqueViolation(err) {
			return employee.ErrEmailExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// BulkUpdateStatus implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) BulkUpdateStatus(ctx context.Context, ids []string, status employee.Status) (int64, error) {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `
		UPDATE employees
		SET status = $1, updated_at = NOW()
		WHERE id = ANY($2)
	`, status, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk update employee status: %w", err)
	}
	return tag.RowsAffected(), nil
}

// GetStats implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetStats(ctx context.Context) (employee.Stats, error) {
	q := GetQuerier(ctx, e.db)

	var stats employee.Stats
	err := q.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = $1),
			COALESCE(AVG(salary), 0)
		FROM employees
	`, employee.StatusActive).Scan(&stats.TotalEmployees, &stats.ActiveEmployees, &stats.AverageSalary)
	if err != nil {
		return employee.Stats{}, fmt.Errorf("failed to aggregate employee stats: %w", err)
	}

	byDepartment, err := e.groupCount(ctx, `
		SELECT department, COUNT(*)
		FROM employees
		GROUP BY department
		ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		return employee.Stats{}, fmt.Errorf("failed to aggregate department breakdown: %w", err)
	}
	stats.ByDepartment = byDepartment

	byStatus, err := e.groupCount(ctx, `
		SELECT status, COUNT(*)
		FROM employees
		GROUP BY status
		ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		return employee.Stats{}, fmt.Errorf("failed to aggregate status breakdown: %w", err)
	}
	stats.ByStatus = byStatus

	return stats, nil
}

func (e *employeeRepositoryImpl) groupCount(ctx context.Context, query string) ([]employee.GroupCount, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []employee.GroupCount
	for rows.Next() {
		var gc employee.GroupCount
		if err := rows.Scan(&gc.Key, &gc.Count); err != nil {
			return nil, err
		}
		groups = append(groups, gc)
	}
	return groups, rows.Err()
}
