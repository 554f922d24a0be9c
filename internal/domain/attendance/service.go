package attendance

import "context"

type AttendanceService interface {
	// ClockIn opens today's record for the authenticated employee. Lateness is
	// judged against the scheduled shift start when one exists; unscheduled
	// employees are never marked late.
	ClockIn(ctx context.Context, req ClockInRequest) (ClockInResponse, error)

	// ClockOut closes today's record, derives work and overtime hours, and
	// mirrors the result into the timesheet on a best-effort basis.
	ClockOut(ctx context.Context, req ClockOutRequest) (ClockOutResponse, error)

	// GetStatus reports whether the authenticated employee has clocked in and
	// out today.
	GetStatus(ctx context.Context) (StatusResponse, error)

	// GetMyAttendance returns the authenticated employee's recent records.
	GetMyAttendance(ctx context.Context) ([]AttendanceResponse, error)

	// List returns attendance records with employee display fields joined.
	// Admin only.
	List(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)

	// GetRecentLateArrivals returns Late records from the last seven days.
	// Admin only.
	GetRecentLateArrivals(ctx context.Context) ([]AttendanceResponse, error)

	// SweepAbsences marks employees who were scheduled on the target date but
	// never clocked in as Absent, backfilling timesheet entries for the
	// no-shows. Row failures are counted, not fatal.
	SweepAbsences(ctx context.Context, targetDate string) (SweepResult, error)
}
