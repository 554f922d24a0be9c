package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/peoplehr/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	id, employee_id, attendance_date, clock_in, clock_out, scheduled_in, status,
	late_minutes, work_hours, overtime_hours, notes, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var rec attendance.Attendance
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.ClockIn, &rec.ClockOut,
		&rec.ScheduledIn, &rec.Status, &rec.LateMinutes, &rec.WorkHours,
		&rec.OvertimeHours, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			employee_id, attendance_date, clock_in, clock_out, scheduled_in, status,
			late_minutes, work_hours, overtime_hours, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query,
		att.EmployeeID, att.Date, att.ClockIn, att.ClockOut, att.ScheduledIn,
		att.Status, att.LateMinutes, att.WorkHours, att.OvertimeHours, att.Notes,
	))
	if err != nil {
		// a concurrent clock-in loses the race on the (employee, date) constraint
		if isUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	return created, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + attendanceColumns + ` FROM attendances WHERE employee_id = $1 AND attendance_date = $2`

	rec, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return rec, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET clock_in = $1, clock_out = $2, scheduled_in = $3, status = $4,
			late_minutes = $5, work_hours = $6, overtime_hours = $7, notes = $8,
			updated_at = NOW()
		WHERE id = $9
		RETURNING` + attendanceColumns

	updated, err := scanAttendance(q.QueryRow(ctx, query,
		att.ClockIn, att.ClockOut, att.ScheduledIn, att.Status, att.LateMinutes,
		att.WorkHours, att.OvertimeHours, att.Notes, att.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance record: %w", err)
	}
	return updated, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.Filter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			a.id, a.employee_id, a.attendance_date, a.clock_in, a.clock_out,
			a.scheduled_in, a.status, a.late_minutes, a.work_hours,
			a.overtime_hours, a.notes, a.created_at, a.updated_at,
			e.full_name, e.department
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE 1 = 1`
	var args []interface{}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += ` AND a.employee_id = $` + strconv.Itoa(len(args))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += ` AND a.attendance_date >= $` + strconv.Itoa(len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += ` AND a.attendance_date <= $` + strconv.Itoa(len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += ` AND a.status = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY a.attendance_date DESC, e.full_name ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var rec attendance.Attendance
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.ClockIn, &rec.ClockOut,
			&rec.ScheduledIn, &rec.Status, &rec.LateMinutes, &rec.WorkHours,
			&rec.OvertimeHours, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName, &rec.EmployeeDepartment,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
