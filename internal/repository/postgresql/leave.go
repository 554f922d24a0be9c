package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/peoplehr/hrms-backend-go/internal/domain/leave"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `
	id, employee_id, leave_type, start_date, end_date, days_requested, reason,
	status, reviewed_by, review_note, created_at, updated_at`

func scanLeave(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.LeaveType, &lr.StartDate, &lr.EndDate,
		&lr.DaysRequested, &lr.Reason, &lr.Status, &lr.ReviewedBy,
		&lr.ReviewNote, &lr.CreatedAt, &lr.UpdatedAt,
	)
	return lr, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, lr leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			employee_id, leave_type, start_date, end_date, days_requested, reason, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING` + leaveColumns

	created, err := scanLeave(q.QueryRow(ctx, query,
		lr.EmployeeID, lr.LeaveType, lr.StartDate, lr.EndDate,
		lr.DaysRequested, lr.Reason, lr.Status,
	))
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + leaveColumns + ` FROM leave_requests WHERE id = $1`

	lr, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return lr, nil
}

// Update implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Update(ctx context.Context, lr leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, reviewed_by = $2, review_note = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING` + leaveColumns

	updated, err := scanLeave(q.QueryRow(ctx, query, lr.Status, lr.ReviewedBy, lr.ReviewNote, lr.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}
	return updated, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.Filter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			l.id, l.employee_id, l.leave_type, l.start_date, l.end_date,
			l.days_requested, l.reason, l.status, l.reviewed_by, l.review_note,
			l.created_at, l.updated_at,
			e.full_name, e.department
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE 1 = 1`
	var args []interface{}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += ` AND l.employee_id = $` + strconv.Itoa(len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += ` AND l.status = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY l.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		err := rows.Scan(
			&lr.ID, &lr.EmployeeID, &lr.LeaveType, &lr.StartDate, &lr.EndDate,
			&lr.DaysRequested, &lr.Reason, &lr.Status, &lr.ReviewedBy,
			&lr.ReviewNote, &lr.CreatedAt, &lr.UpdatedAt,
			&lr.EmployeeName, &lr.EmployeeDepartment,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}

	return requests, rows.Err()
}

// SumApprovedDaysByType implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) SumApprovedDaysByType(ctx context.Context, employeeID string, year int) ([]leave.TypeDays, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT leave_type, COALESCE(SUM(days_requested), 0)
		FROM leave_requests
		WHERE employee_id = $1
		  AND status = $2
		  AND EXTRACT(YEAR FROM start_date) = $3
		GROUP BY leave_type
		ORDER BY leave_type`

	rows, err := q.Query(ctx, query, employeeID, leave.StatusApproved, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []leave.TypeDays
	for rows.Next() {
		var td leave.TypeDays
		if err := rows.Scan(&td.LeaveType, &td.Days); err != nil {
			return nil, err
		}
		totals = append(totals, td)
	}

	return totals, rows.Err()
}
