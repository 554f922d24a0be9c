package attendance

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplehr/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplehr/hrms-backend-go/internal/domain/employee"
	"github.com/peoplehr/hrms-backend-go/internal/domain/schedule"
	"github.com/peoplehr/hrms-backend-go/internal/domain/timesheet"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/validator"
)

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
	seq     int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func attKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (r *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	key := attKey(att.EmployeeID, att.Date)
	if _, ok := r.records[key]; ok {
		return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
	}
	r.seq++
	att.ID = fmt.Sprintf("att-%d", r.seq)
	r.records[key] = att
	return att, nil
}

func (r *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	att, ok := r.records[attKey(employeeID, date)]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (r *fakeAttendanceRepo) Update(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	for key, rec := range r.records {
		if rec.ID == att.ID {
			r.records[key] = att
			return att, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (r *fakeAttendanceRepo) List(_ context.Context, filter attendance.Filter) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range r.records {
		if filter.EmployeeID != nil && rec.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && rec.Status != *filter.Status {
			continue
		}
		if filter.StartDate != nil && rec.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && rec.Date.After(*filter.EndDate) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

type fakeAssignmentRepo struct {
	assignments []schedule.Assignment
}

func (r *fakeAssignmentRepo) Upsert(_ context.Context, a schedule.Assignment) (schedule.Assignment, bool, error) {
	r.assignments = append(r.assignments, a)
	return a, true, nil
}

func (r *fakeAssignmentRepo) GetActiveByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (schedule.Assignment, error) {
	for _, a := range r.assignments {
		if a.EmployeeID == employeeID && a.Date.Equal(date) && a.Status == schedule.AssignmentActive {
			return a, nil
		}
	}
	return schedule.Assignment{}, schedule.ErrAssignmentNotFound
}

func (r *fakeAssignmentRepo) ListActiveByDate(_ context.Context, date time.Time) ([]schedule.Assignment, error) {
	var out []schedule.Assignment
	for _, a := range r.assignments {
		if a.Date.Equal(date) && a.Status == schedule.AssignmentActive {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAssignmentRepo) List(_ context.Context, _ schedule.AssignmentFilter) ([]schedule.Assignment, error) {
	return r.assignments, nil
}

func (r *fakeAssignmentRepo) Cancel(_ context.Context, _ string, _ time.Time) error {
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	r.employees[emp.ID] = emp
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	for _, emp := range r.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) error {
	r.employees[emp.ID] = emp
	return nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	delete(r.employees, id)
	return nil
}

func (r *fakeEmployeeRepo) BulkUpdateStatus(_ context.Context, _ []string, _ employee.Status) (int64, error) {
	return 0, nil
}

func (r *fakeEmployeeRepo) GetStats(_ context.Context) (employee.Stats, error) {
	return employee.Stats{}, nil
}

// recordingTimesheetService captures sync and backfill calls so tests can
// assert on what the attendance flow forwards.
type recordingTimesheetService struct {
	timesheet.TimesheetService

	syncs        []timesheet.AttendanceSync
	syncErr      error
	backfills    []string
	backfillErrs map[string]error
}

func (s *recordingTimesheetService) SyncFromAttendance(_ context.Context, sync timesheet.AttendanceSync) error {
	s.syncs = append(s.syncs, sync)
	return s.syncErr
}

func (s *recordingTimesheetService) BackfillAbsence(_ context.Context, employeeID, _, _ string) error {
	if err, ok := s.backfillErrs[employeeID]; ok {
		return err
	}
	s.backfills = append(s.backfills, employeeID)
	return nil
}

type attendanceFixture struct {
	svc        *AttendanceServiceImpl
	attRepo    *fakeAttendanceRepo
	assignRepo *fakeAssignmentRepo
	empRepo    *fakeEmployeeRepo
	tsSvc      *recordingTimesheetService
}

func newAttendanceFixture(now time.Time) *attendanceFixture {
	f := &attendanceFixture{
		attRepo:    newFakeAttendanceRepo(),
		assignRepo: &fakeAssignmentRepo{},
		empRepo:    &fakeEmployeeRepo{employees: make(map[string]employee.Employee)},
		tsSvc:      &recordingTimesheetService{backfillErrs: make(map[string]error)},
	}
	f.svc = &AttendanceServiceImpl{
		AttendanceRepository: f.attRepo,
		AssignmentRepository: f.assignRepo,
		EmployeeRepository:   f.empRepo,
		timesheetService:     f.tsSvc,
		logger:               slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:                  func() time.Time { return now },
	}
	return f
}

func (f *attendanceFixture) addEmployee(id string) {
	f.empRepo.employees[id] = employee.Employee{ID: id, Status: employee.StatusActive}
}

func (f *attendanceFixture) assignShift(employeeID string, date time.Time, startTime string) {
	f.assignRepo.assignments = append(f.assignRepo.assignments, schedule.Assignment{
		EmployeeID:     employeeID,
		Date:           date,
		Status:         schedule.AssignmentActive,
		ShiftStartTime: &startTime,
	})
}

func authedContext(t *testing.T, employeeID, role string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"role":        role,
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestClockIn_OnTime(t *testing.T) {
	now := time.Date(2026, 3, 2, 7, 55, 0, 0, time.UTC)
	today := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	f := newAttendanceFixture(now)
	f.addEmployee("emp-1")
	f.assignShift("emp-1", today, "08:00")

	resp, err := f.svc.ClockIn(authedContext(t, "emp-1", "employee"), attendance.ClockInRequest{})
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	assert.Equal(t, 0, resp.LateMinutes)

	rec, err := f.attRepo.GetByEmployeeAndDate(context.Background(), "emp-1", today)
	require.NoError(t, err)
	require.NotNil(t, rec.ScheduledIn)
	assert.Equal(t, "08:00", *rec.ScheduledIn)
}

func TestClockIn_Late(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 15, 0, 0, time.UTC)
	today := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	f := newAttendanceFixture(now)
	f.addEmployee("emp-1")
	f.assignShift("emp-1", today, "08:00")

	resp, err := f.svc.ClockIn(authedContext(t, "emp-1", "employee"), attendance.ClockInRequest{})
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusLate), resp.Status)
	assert.Equal(t, 15, resp.LateMinutes)
}

func TestClockIn_UnscheduledNeverLate(t *testing.T) {
	now := time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC)

	f := newAttendanceFixture(now)
	f.addEmployee("emp-1")

	resp, err := f.svc.ClockIn(authedContext(t, "emp-1", "employee"), attendance.ClockInRequest{})
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	assert.Equal(t, 0, resp.LateMinutes)

	today := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	rec, err := f.attRepo.GetByEmployeeAndDate(context.Background(), "emp-1", today)
	require.NoError(t, err)
	assert.Nil(t, rec.ScheduledIn)
}

func TestClockIn_Twice(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	f := newAttendanceFixture(now)
	f.addEmployee("emp-1")
	ctx := authedContext(t, "emp-1", "employee")

	_, err := f.svc.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)

	_, err = f.svc.ClockIn(ctx, attendance.ClockInRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockIn_UnknownEmployee(t *testing.T) {
	f := newAttendanceFixture(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))

	_, err := f.svc.ClockIn(authedContext(t, "ghost", "employee"), attendance.ClockInRequest{})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestClockOut_ComputesUncappedHours(t *testing.T) {
	clockIn := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	clockOut := time.Date(2026, 3, 2, 18, 30, 0, 0, time.UTC)
	today := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	f := newAttendanceFixture(clockIn)
	f.addEmployee("emp-1")
	ctx := authedContext(t, "emp-1", "employee")

	_, err := f.svc.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)

	f.svc.now = func() time.Time { return clockOut }
	resp, err := f.svc.ClockOut(ctx, attendance.ClockOutRequest{})
	require.NoError(t, err)
	assert.Equal(t, 10.5, resp.WorkHours)

	rec, err := f.attRepo.GetByEmployeeAndDate(context.Background(), "emp-1", today)
	require.NoError(t, err)
	require.NotNil(t, rec.OvertimeHours)
	assert.Equal(t, 2.5, *rec.OvertimeHours)

	require.Len(t, f.tsSvc.syncs, 1)
	sync := f.tsSvc.syncs[0]
	assert.Equal(t, "emp-1", sync.EmployeeID)
	assert.Equal(t, "2026-03-02", sync.Date)
	require.NotNil(t, sync.CheckOut)
	assert.Equal(t, "18:30", *sync.CheckOut)
	assert.Equal(t, timesheet.WorkOvertime, sync.WorkHoursType)
	assert.Equal(t, timesheet.StatusPresent, sync.AttendanceStatus)
}

func TestClockOut_LateStatusPropagates(t *testing.T) {
	clockIn := time.Date(2026, 3, 2, 8, 20, 0, 0, time.UTC)
	today := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	f := newAttendanceFixture(clockIn)
	f.addEmployee("emp-1")
	f.assignShift("emp-1", today, "08:00")
	ctx := authedContext(t, "emp-1", "employee")

	_, err := f.svc.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)

	f.svc.now = func() time.Time { return time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC) }
	_, err = f.svc.ClockOut(ctx, attendance.ClockOutRequest{})
	require.NoError(t, err)

	require.Len(t, f.tsSvc.syncs, 1)
	assert.Equal(t, timesheet.StatusLate, f.tsSvc.syncs[0].AttendanceStatus)
}

func TestClockOut_WithoutClockIn(t *testing.T) {
	f := newAttendanceFixture(time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC))
	f.addEmployee("emp-1")

	_, err := f.svc.ClockOut(authedContext(t, "emp-1", "employee"), attendance.ClockOutRequest{})
	assert.ErrorIs(t, err, attendance.ErrNotClockedInYet)
}

func TestClockOut_Twice(t *testing.T) {
	f := newAttendanceFixture(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))
	f.addEmployee("emp-1")
	ctx := authedContext(t, "emp-1", "employee")

	_, err := f.svc.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)

	f.svc.now = func() time.Time { return time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC) }
	_, err = f.svc.ClockOut(ctx, attendance.ClockOutRequest{})
	require.NoError(t, err)

	_, err = f.svc.ClockOut(ctx, attendance.ClockOutRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func TestClockOut_SyncFailureDoesNotFailClockOut(t *testing.T) {
	f := newAttendanceFixture(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))
	f.addEmployee("emp-1")
	f.tsSvc.syncErr = assert.AnError
	ctx := authedContext(t, "emp-1", "employee")

	_, err := f.svc.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)

	f.svc.now = func() time.Time { return time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC) }
	resp, err := f.svc.ClockOut(ctx, attendance.ClockOutRequest{})
	require.NoError(t, err)
	assert.Equal(t, 9.0, resp.WorkHours)
}

func TestGetStatus_NotClockedIn(t *testing.T) {
	f := newAttendanceFixture(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	f.addEmployee("emp-1")

	resp, err := f.svc.GetStatus(authedContext(t, "emp-1", "employee"))
	require.NoError(t, err)
	assert.False(t, resp.ClockedIn)
	assert.False(t, resp.ClockedOut)
	assert.Nil(t, resp.ClockInTime)
}

func TestSweepAbsences(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	f := newAttendanceFixture(time.Date(2026, 3, 3, 2, 0, 0, 0, time.UTC))
	for _, id := range []string{"emp-a", "emp-b", "emp-c"} {
		f.addEmployee(id)
		f.assignShift(id, day, "08:00")
	}

	clockIn := day.Add(8 * time.Hour)
	clockOut := day.Add(17 * time.Hour)
	_, err := f.attRepo.Create(context.Background(), attendance.Attendance{
		EmployeeID: "emp-a", Date: day, ClockIn: &clockIn, Status: attendance.StatusPresent,
	})
	require.NoError(t, err)
	_, err = f.attRepo.Create(context.Background(), attendance.Attendance{
		EmployeeID: "emp-b", Date: day, ClockIn: &clockIn, ClockOut: &clockOut, Status: attendance.StatusPresent,
	})
	require.NoError(t, err)

	result, err := f.svc.SweepAbsences(context.Background(), "2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, 3, result.Scheduled)
	assert.Equal(t, 1, result.MarkedAbsent)
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, 0, result.Failed)

	rec, err := f.attRepo.GetByEmployeeAndDate(context.Background(), "emp-c", day)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusAbsent, rec.Status)
	require.NotNil(t, rec.Notes)

	assert.Equal(t, []string{"emp-c"}, f.tsSvc.backfills)
}

func TestSweepAbsences_RowFailureIsIsolated(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	f := newAttendanceFixture(time.Date(2026, 3, 3, 2, 0, 0, 0, time.UTC))
	for _, id := range []string{"emp-a", "emp-b"} {
		f.addEmployee(id)
		f.assignShift(id, day, "08:00")
	}
	f.tsSvc.backfillErrs["emp-a"] = assert.AnError

	result, err := f.svc.SweepAbsences(context.Background(), "2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Scheduled)
	assert.Equal(t, 1, result.MarkedAbsent)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, []string{"emp-b"}, f.tsSvc.backfills)
}

func TestSweepAbsences_InvalidDate(t *testing.T) {
	f := newAttendanceFixture(time.Now())

	_, err := f.svc.SweepAbsences(context.Background(), "03/02/2026")
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
