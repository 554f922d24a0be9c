package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/peoplehr/hrms-backend-go/internal/domain/timesheet"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/database"
)

type timesheetRepositoryImpl struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepositoryImpl{db: db}
}

const timesheetColumns = `
	id, employee_id, entry_date, check_in, check_out, break_hours, total_hours,
	overtime_hours, work_hours_type, attendance_status, notes, created_at, updated_at`

func scanTimesheet(row pgx.Row) (timesheet.Timesheet, error) {
	var ts timesheet.Timesheet
	err := row.Scan(
		&ts.ID, &ts.EmployeeID, &ts.Date, &ts.CheckIn, &ts.CheckOut,
		&ts.BreakHours, &ts.TotalHours, &ts.OvertimeHours, &ts.WorkHoursType,
		&ts.AttendanceStatus, &ts.Notes, &ts.CreatedAt, &ts.UpdatedAt,
	)
	return ts, err
}

// Create implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) Create(ctx context.Context, ts timesheet.Timesheet) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timesheets (
			employee_id, entry_date, check_in, check_out, break_hours, total_hours,
			overtime_hours, work_hours_type, attendance_status, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING` + timesheetColumns

	created, err := scanTimesheet(q.QueryRow(ctx, query,
		ts.EmployeeID, ts.Date, ts.CheckIn, ts.CheckOut, ts.BreakHours,
		ts.TotalHours, ts.OvertimeHours, ts.WorkHoursType, ts.AttendanceStatus, ts.Notes,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return timesheet.Timesheet{}, timesheet.ErrDuplicateEntry
		}
		return timesheet.Timesheet{}, fmt.Errorf("failed to create timesheet entry: %w", err)
	}
	return created, nil
}

// GetByID implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetByID(ctx context.Context, id string) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + timesheetColumns + ` FROM timesheets WHERE id = $1`

	ts, err := scanTimesheet(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.Timesheet{}, fmt.Errorf("failed to get timesheet entry: %w", err)
	}
	return ts, nil
}

// GetByEmployeeAndDate implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + timesheetColumns + ` FROM timesheets WHERE employee_id = $1 AND entry_date = $2`

	ts, err := scanTimesheet(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.Timesheet{}, fmt.Errorf("failed to get timesheet entry: %w", err)
	}
	return ts, nil
}

// Update implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) Update(ctx context.Context, ts timesheet.Timesheet) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheets
		SET employee_id = $1, entry_date = $2, check_in = $3, check_out = $4,
			break_hours = $5, total_hours = $6, overtime_hours = $7,
			work_hours_type = $8, attendance_status = $9, notes = $10,
			updated_at = NOW()
		WHERE id = $11
		RETURNING` + timesheetColumns

	updated, err := scanTimesheet(q.QueryRow(ctx, query,
		ts.EmployeeID, ts.Date, ts.CheckIn, ts.CheckOut, ts.BreakHours,
		ts.TotalHours, ts.OvertimeHours, ts.WorkHoursType, ts.AttendanceStatus,
		ts.Notes, ts.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
		}
		if isUniqueViolation(err) {
			return timesheet.Timesheet{}, timesheet.ErrDuplicateEntry
		}
		return timesheet.Timesheet{}, fmt.Errorf("failed to update timesheet entry: %w", err)
	}
	return updated, nil
}

// Delete implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM timesheets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete timesheet entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrTimesheetNotFound
	}
	return nil
}

func appendTimesheetFilter(query string, args []interface{}, filter timesheet.Filter) (string, []interface{}) {
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += ` AND t.employee_id = $` + strconv.Itoa(len(args))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += ` AND t.entry_date >= $` + strconv.Itoa(len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += ` AND t.entry_date <= $` + strconv.Itoa(len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += ` AND t.attendance_status = $` + strconv.Itoa(len(args))
	}
	return query, args
}

// List implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) List(ctx context.Context, filter timesheet.Filter) ([]timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			t.id, t.employee_id, t.entry_date, t.check_in, t.check_out,
			t.break_hours, t.total_hours, t.overtime_hours, t.work_hours_type,
			t.attendance_status, t.notes, t.created_at, t.updated_at,
			e.full_name, e.department, e.position
		FROM timesheets t
		JOIN employees e ON e.id = t.employee_id
		WHERE 1 = 1`
	var args []interface{}
	query, args = appendTimesheetFilter(query, args, filter)
	query += ` ORDER BY t.entry_date DESC, e.full_name ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []timesheet.Timesheet
	for rows.Next() {
		var ts timesheet.Timesheet
		err := rows.Scan(
			&ts.ID, &ts.EmployeeID, &ts.Date, &ts.CheckIn, &ts.CheckOut,
			&ts.BreakHours, &ts.TotalHours, &ts.OvertimeHours, &ts.WorkHoursType,
			&ts.AttendanceStatus, &ts.Notes, &ts.CreatedAt, &ts.UpdatedAt,
			&ts.EmployeeName, &ts.EmployeeDepartment, &ts.EmployeePosition,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ts)
	}

	return entries, rows.Err()
}

// GetStats implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetStats(ctx context.Context, filter timesheet.Filter) (timesheet.Stats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(t.total_hours), 0),
			COALESCE(SUM(t.overtime_hours), 0),
			COALESCE(AVG(t.total_hours), 0),
			COUNT(*) FILTER (WHERE t.attendance_status = 'Present'),
			COUNT(*) FILTER (WHERE t.attendance_status = 'Absent'),
			COUNT(*) FILTER (WHERE t.attendance_status = 'Late'),
			COUNT(*) FILTER (WHERE t.attendance_status = 'On Leave')
		FROM timesheets t
		WHERE 1 = 1`
	var args []interface{}
	query, args = appendTimesheetFilter(query, args, filter)

	var stats timesheet.Stats
	err := q.QueryRow(ctx, query, args...).Scan(
		&stats.TotalEntries, &stats.TotalHours, &stats.OvertimeHours,
		&stats.AverageHours, &stats.PresentDays, &stats.AbsentDays,
		&stats.LateDays, &stats.LeaveDays,
	)
	if err != nil {
		return timesheet.Stats{}, fmt.Errorf("failed to aggregate timesheet stats: %w", err)
	}
	return stats, nil
}

// CountApprovedLeaveDays implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) CountApprovedLeaveDays(ctx context.Context, employeeID string, start, end time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	// Clamp each approved range to the window before counting days.
	query := `
		SELECT COALESCE(SUM(
			GREATEST(LEAST(end_date, $3::date) - GREATEST(start_date, $2::date) + 1, 0)
		), 0)
		FROM leave_requests
		WHERE employee_id = $1 AND status = 'Approved'
			AND start_date <= $3 AND end_date >= $2
	`

	var days int64
	if err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&days); err != nil {
		return 0, fmt.Errorf("failed to count approved leave days: %w", err)
	}
	return days, nil
}
