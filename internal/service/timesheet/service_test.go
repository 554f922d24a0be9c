package timesheet

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplehr/hrms-backend-go/internal/domain/employee"
	"github.com/peoplehr/hrms-backend-go/internal/domain/timesheet"
)

type fakeTimesheetRepo struct {
	entries   map[string]timesheet.Timesheet
	leaveDays int64
	seq       int
}

func newFakeTimesheetRepo() *fakeTimesheetRepo {
	return &fakeTimesheetRepo{entries: make(map[string]timesheet.Timesheet)}
}

func (r *fakeTimesheetRepo) Create(_ context.Context, ts timesheet.Timesheet) (timesheet.Timesheet, error) {
	for _, e := range r.entries {
		if e.EmployeeID == ts.EmployeeID && e.Date.Equal(ts.Date) {
			return timesheet.Timesheet{}, timesheet.ErrDuplicateEntry
		}
	}
	r.seq++
	ts.ID = fmt.Sprintf("ts-%d", r.seq)
	r.entries[ts.ID] = ts
	return ts, nil
}

func (r *fakeTimesheetRepo) GetByID(_ context.Context, id string) (timesheet.Timesheet, error) {
	ts, ok := r.entries[id]
	if !ok {
		return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
	}
	return ts, nil
}

func (r *fakeTimesheetRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (timesheet.Timesheet, error) {
	for _, e := range r.entries {
		if e.EmployeeID == employeeID && e.Date.Equal(date) {
			return e, nil
		}
	}
	return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
}

func (r *fakeTimesheetRepo) Update(_ context.Context, ts timesheet.Timesheet) (timesheet.Timesheet, error) {
	if _, ok := r.entries[ts.ID]; !ok {
		return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
	}
	r.entries[ts.ID] = ts
	return ts, nil
}

func (r *fakeTimesheetRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.entries[id]; !ok {
		return timesheet.ErrTimesheetNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *fakeTimesheetRepo) matches(e timesheet.Timesheet, filter timesheet.Filter) bool {
	if filter.EmployeeID != nil && e.EmployeeID != *filter.EmployeeID {
		return false
	}
	if filter.StartDate != nil && e.Date.Before(*filter.StartDate) {
		return false
	}
	if filter.EndDate != nil && e.Date.After(*filter.EndDate) {
		return false
	}
	if filter.Status != nil && e.AttendanceStatus != *filter.Status {
		return false
	}
	return true
}

func (r *fakeTimesheetRepo) List(_ context.Context, filter timesheet.Filter) ([]timesheet.Timesheet, error) {
	var out []timesheet.Timesheet
	for _, e := range r.entries {
		if r.matches(e, filter) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeTimesheetRepo) GetStats(_ context.Context, filter timesheet.Filter) (timesheet.Stats, error) {
	var stats timesheet.Stats
	for _, e := range r.entries {
		if !r.matches(e, filter) {
			continue
		}
		stats.TotalEntries++
		stats.TotalHours += e.TotalHours
		stats.OvertimeHours += e.OvertimeHours
		switch e.AttendanceStatus {
		case timesheet.StatusPresent:
			stats.PresentDays++
		case timesheet.StatusAbsent:
			stats.AbsentDays++
		case timesheet.StatusLate:
			stats.LateDays++
		case timesheet.StatusOnLeave:
			stats.LeaveDays++
		}
	}
	if stats.TotalEntries > 0 {
		stats.AverageHours = stats.TotalHours / float64(stats.TotalEntries)
	}
	return stats, nil
}

func (r *fakeTimesheetRepo) CountApprovedLeaveDays(_ context.Context, _ string, _, _ time.Time) (int64, error) {
	return r.leaveDays, nil
}

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	known map[string]bool
}

func (r *stubEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if !r.known[id] {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: id}, nil
}

func newTimesheetFixture(known ...string) (*TimesheetServiceImpl, *fakeTimesheetRepo) {
	repo := newFakeTimesheetRepo()
	emp := &stubEmployeeRepo{known: make(map[string]bool)}
	for _, id := range known {
		emp.known[id] = true
	}
	return &TimesheetServiceImpl{TimesheetRepository: repo, EmployeeRepository: emp}, repo
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

func strPtr(s string) *string { return &s }

func TestUpsert_CreatesAndDerivesHours(t *testing.T) {
	svc, _ := newTimesheetFixture("emp-1")

	resp, created, err := svc.Upsert(context.Background(), timesheet.UpsertTimesheetRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-02",
		CheckIn:    strPtr("09:00"),
		CheckOut:   strPtr("18:00"),
		BreakHours: 1,
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 8.0, resp.TotalHours)
	assert.Equal(t, 0.0, resp.OvertimeHours)
	assert.Equal(t, string(timesheet.WorkRegular), resp.WorkHoursType)
	assert.Equal(t, string(timesheet.StatusPresent), resp.AttendanceStatus)
}

func TestUpsert_ReplacesExistingEntry(t *testing.T) {
	svc, repo := newTimesheetFixture("emp-1")
	ctx := context.Background()

	first, created, err := svc.Upsert(ctx, timesheet.UpsertTimesheetRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-02",
		CheckIn:    strPtr("09:00"),
		CheckOut:   strPtr("17:00"),
	})
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := svc.Upsert(ctx, timesheet.UpsertTimesheetRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-02",
		CheckIn:    strPtr("09:00"),
		CheckOut:   strPtr("19:00"),
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 10.0, second.TotalHours)
	assert.Equal(t, 2.0, second.OvertimeHours)
	assert.Len(t, repo.entries, 1)
}

func TestUpdateByID_BreakChangeRecomputesHours(t *testing.T) {
	svc, _ := newTimesheetFixture("emp-1")
	ctx := context.Background()

	resp, err := svc.Create(ctx, timesheet.UpsertTimesheetRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-02",
		CheckIn:    strPtr("09:00"),
		CheckOut:   strPtr("19:00"),
		BreakHours: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 9.0, resp.TotalHours)
	assert.Equal(t, 1.0, resp.OvertimeHours)

	updated, err := svc.UpdateByID(ctx, resp.ID, timesheet.UpsertTimesheetRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-02",
		CheckIn:    strPtr("09:00"),
		CheckOut:   strPtr("19:00"),
		BreakHours: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 8.0, updated.TotalHours)
	assert.Equal(t, 0.0, updated.OvertimeHours)
}

func TestCreate_DuplicateDay(t *testing.T) {
	svc, _ := newTimesheetFixture("emp-1")
	ctx := context.Background()

	req := timesheet.UpsertTimesheetRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-02",
		CheckIn:    strPtr("09:00"),
		CheckOut:   strPtr("17:00"),
	}

	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, timesheet.ErrDuplicateEntry)
}

func TestCreate_UnknownEmployee(t *testing.T) {
	svc, _ := newTimesheetFixture()

	_, err := svc.Create(context.Background(), timesheet.UpsertTimesheetRequest{
		EmployeeID: "ghost",
		Date:       "2026-03-02",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetStats_EmptyRange(t *testing.T) {
	svc, _ := newTimesheetFixture("emp-1")

	stats, err := svc.GetStats(authedContext(t, "admin-1", "admin"), timesheet.TimesheetFilter{
		StartDate: strPtr("2026-01-01"),
		EndDate:   strPtr("2026-01-31"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalEntries)
	assert.Equal(t, 0.0, stats.TotalHours)
	assert.Equal(t, 0.0, stats.AverageHours)
}

func TestList_NonAdminSeesOnlyOwnEntries(t *testing.T) {
	svc, _ := newTimesheetFixture("emp-1", "emp-2")
	ctx := context.Background()

	for _, id := range []string{"emp-1", "emp-2"} {
		_, err := svc.Create(ctx, timesheet.UpsertTimesheetRequest{
			EmployeeID: id,
			Date:       "2026-03-02",
			CheckIn:    strPtr("09:00"),
			CheckOut:   strPtr("17:00"),
		})
		require.NoError(t, err)
	}

	other := "emp-2"
	entries, err := svc.List(authedContext(t, "emp-1", "employee"), timesheet.TimesheetFilter{EmployeeID: &other})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "emp-1", entries[0].EmployeeID)
}

func TestGetMonthlySummary(t *testing.T) {
	svc, repo := newTimesheetFixture("emp-1")
	ctx := context.Background()

	days := []struct {
		date   string
		out    string
		status string
	}{
		{"2026-03-02", "17:00", string(timesheet.StatusPresent)},
		{"2026-03-03", "19:00", string(timesheet.StatusLate)},
		{"2026-03-04", "17:00", string(timesheet.StatusPresent)},
	}
	for _, d := range days {
		_, err := svc.Create(ctx, timesheet.UpsertTimesheetRequest{
			EmployeeID:       "emp-1",
			Date:             d.date,
			CheckIn:          strPtr("09:00"),
			CheckOut:         strPtr(d.out),
			AttendanceStatus: d.status,
		})
		require.NoError(t, err)
	}
	repo.leaveDays = 2

	summary, err := svc.GetMonthlySummary(ctx, "emp-1", "2026-03")
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.WorkedDays)
	assert.Equal(t, 26.0, summary.TotalHours)
	assert.Equal(t, 2.0, summary.OvertimeHours)
	assert.Equal(t, int64(1), summary.LateDays)
	assert.Equal(t, int64(2), summary.ApprovedLeave)
}

func TestSyncFromAttendance_KeepsExistingBreak(t *testing.T) {
	svc, repo := newTimesheetFixture("emp-1")
	ctx := context.Background()

	_, err := svc.Create(ctx, timesheet.UpsertTimesheetRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-02",
		CheckIn:    strPtr("09:00"),
		CheckOut:   strPtr("12:00"),
		BreakHours: 1,
	})
	require.NoError(t, err)

	err = svc.SyncFromAttendance(ctx, timesheet.AttendanceSync{
		EmployeeID:       "emp-1",
		Date:             "2026-03-02",
		CheckIn:          strPtr("08:00"),
		CheckOut:         strPtr("18:00"),
		AttendanceStatus: timesheet.StatusPresent,
		WorkHoursType:    timesheet.WorkOvertime,
	})
	require.NoError(t, err)

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	entry, err := repo.GetByEmployeeAndDate(ctx, "emp-1", day)
	require.NoError(t, err)
	assert.Equal(t, 1.0, entry.BreakHours)
	assert.Equal(t, 9.0, entry.TotalHours)
	assert.Equal(t, 1.0, entry.OvertimeHours)
	assert.Equal(t, timesheet.WorkOvertime, entry.WorkHoursType)
}

func TestBackfillAbsence_NeverOverwrites(t *testing.T) {
	svc, repo := newTimesheetFixture("emp-1")
	ctx := context.Background()

	_, err := svc.Create(ctx, timesheet.UpsertTimesheetRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-02",
		CheckIn:    strPtr("09:00"),
		CheckOut:   strPtr("17:00"),
	})
	require.NoError(t, err)

	err = svc.BackfillAbsence(ctx, "emp-1", "2026-03-02", "no clock-in recorded")
	require.NoError(t, err)

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	entry, err := repo.GetByEmployeeAndDate(ctx, "emp-1", day)
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusPresent, entry.AttendanceStatus)
	assert.Equal(t, 8.0, entry.TotalHours)
}

func TestBackfillAbsence_CreatesAbsentEntry(t *testing.T) {
	svc, repo := newTimesheetFixture("emp-1")
	ctx := context.Background()

	err := svc.BackfillAbsence(ctx, "emp-1", "2026-03-02", "no clock-in recorded")
	require.NoError(t, err)

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	entry, err := repo.GetByEmployeeAndDate(ctx, "emp-1", day)
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusAbsent, entry.AttendanceStatus)
	assert.Equal(t, 0.0, entry.TotalHours)
	require.NotNil(t, entry.Notes)
}
