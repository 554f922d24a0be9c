package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/peoplehr/hrms-backend-go/internal/domain/schedule"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/database"
)

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) schedule.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

const assignmentJoinedColumns = `
	sa.id, sa.employee_id, sa.shift_id, sa.schedule_date, sa.status,
	sa.created_at, sa.updated_at,
	e.full_name, e.department, s.name, s.start_time, s.end_time`

func scanJoinedAssignment(row pgx.Row) (schedule.Assignment, error) {
	var a schedule.Assignment
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.ShiftID, &a.Date, &a.Status,
		&a.CreatedAt, &a.UpdatedAt,
		&a.EmployeeName, &a.EmployeeDepartment, &a.ShiftName,
		&a.ShiftStartTime, &a.ShiftEndTime,
	)
	return a, err
}

// Upsert implements schedule.AssignmentRepository.
func (r *assignmentRepositoryImpl) Upsert(ctx context.Context, assignment schedule.Assignment) (schedule.Assignment, bool, error) {
	q := GetQuerier(ctx, r.db)

	// Re-points an existing row at the given shift and reactivates it;
	// xmax = 0 distinguishes a fresh insert from a conflict update.
	query := `
		INSERT INTO schedule_assignments (employee_id, shift_id, schedule_date, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id, schedule_date)
		DO UPDATE SET shift_id = EXCLUDED.shift_id, status = EXCLUDED.status, updated_at = NOW()
		RETURNING id, employee_id, shift_id, schedule_date, status, created_at, updated_at, (xmax = 0)
	`

	var a schedule.Assignment
	var inserted bool
	err := q.QueryRow(ctx, query,
		assignment.EmployeeID, assignment.ShiftID, assignment.Date, assignment.Status,
	).Scan(
		&a.ID, &a.EmployeeID, &a.ShiftID, &a.Date, &a.Status,
		&a.CreatedAt, &a.UpdatedAt, &inserted,
	)
	if err != nil {
		return schedule.Assignment{}, false, fmt.Errorf("failed to upsert schedule assignment: %w", err)
	}
	return a, inserted, nil
}

// GetActiveByEmployeeAndDate implements schedule.AssignmentRepository.
func (r *assignmentRepositoryImpl) GetActiveByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (schedule.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + assignmentJoinedColumns + `
		FROM schedule_assignments sa
		JOIN employees e ON e.id = sa.employee_id
		JOIN shifts s ON s.id = sa.shift_id
		WHERE sa.employee_id = $1 AND sa.schedule_date = $2 AND sa.status = $3
	`

	a, err := scanJoinedAssignment(q.QueryRow(ctx, query, employeeID, date, schedule.AssignmentActive))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Assignment{}, schedule.ErrAssignmentNotFound
		}
		return schedule.Assignment{}, fmt.Errorf("failed to get schedule assignment: %w", err)
	}
	return a, nil
}

// ListActiveByDate implements schedule.AssignmentRepository.
func (r *assignmentRepositoryImpl) ListActiveByDate(ctx context.Context, date time.Time) ([]schedule.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + assignmentJoinedColumns + `
		FROM schedule_assignments sa
		JOIN employees e ON e.id = sa.employee_id
		JOIN shifts s ON s.id = sa.shift_id
		WHERE sa.schedule_date = $1 AND sa.status = $2
		ORDER BY e.full_name ASC
	`

	rows, err := q.Query(ctx, query, date, schedule.AssignmentActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []schedule.Assignment
	for rows.Next() {
		a, err := scanJoinedAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, rows.Err()
}

// List implements schedule.AssignmentRepository.
func (r *assignmentRepositoryImpl) List(ctx context.Context, filter schedule.AssignmentFilter) ([]schedule.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + assignmentJoinedColumns + `
		FROM schedule_assignments sa
		JOIN employees e ON e.id = sa.employee_id
		JOIN shifts s ON s.id = sa.shift_id
		WHERE sa.status = $1`
	args := []interface{}{schedule.AssignmentActive}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += ` AND sa.employee_id = $` + strconv.Itoa(len(args))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += ` AND sa.schedule_date >= $` + strconv.Itoa(len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += ` AND sa.schedule_date <= $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY sa.schedule_date ASC, e.full_name ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []schedule.Assignment
	for rows.Next() {
		a, err := scanJoinedAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, rows.Err()
}

// Cancel implements schedule.AssignmentRepository.
func (r *assignmentRepositoryImpl) Cancel(ctx context.Context, employeeID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE schedule_assignments
		SET status = $1, updated_at = NOW()
		WHERE employee_id = $2 AND schedule_date = $3 AND status = $4
	`, schedule.AssignmentCancelled, employeeID, date, schedule.AssignmentActive)
	if err != nil {
		return fmt.Errorf("failed to cancel schedule assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrAssignmentNotFound
	}
	return nil
}
