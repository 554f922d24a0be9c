package leave

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplehr/hrms-backend-go/internal/domain/leave"
)

type fakeLeaveRepo struct {
	requests map[string]leave.LeaveRequest
	seq      int
}

func (r *fakeLeaveRepo) Create(_ context.Context, lr leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.seq++
	lr.ID = fmt.Sprintf("lv-%d", r.seq)
	r.requests[lr.ID] = lr
	return lr, nil
}

func (r *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	lr, ok := r.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveNotFound
	}
	return lr, nil
}

func (r *fakeLeaveRepo) Update(_ context.Context, lr leave.LeaveRequest) (leave.LeaveRequest, error) {
	if _, ok := r.requests[lr.ID]; !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveNotFound
	}
	r.requests[lr.ID] = lr
	return lr, nil
}

func (r *fakeLeaveRepo) List(_ context.Context, filter leave.Filter) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, lr := range r.requests {
		if filter.EmployeeID != nil && lr.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && lr.Status != *filter.Status {
			continue
		}
		out = append(out, lr)
	}
	return out, nil
}

func (r *fakeLeaveRepo) SumApprovedDaysByType(_ context.Context, employeeID string, year int) ([]leave.TypeDays, error) {
	byType := make(map[leave.LeaveType]int64)
	for _, lr := range r.requests {
		if lr.EmployeeID != employeeID || lr.Status != leave.StatusApproved || lr.StartDate.Year() != year {
			continue
		}
		byType[lr.LeaveType] += int64(lr.DaysRequested)
	}
	var out []leave.TypeDays
	for lt, days := range byType {
		out = append(out, leave.TypeDays{LeaveType: lt, Days: days})
	}
	return out, nil
}

func newLeaveFixture() (leave.LeaveService, *fakeLeaveRepo) {
	repo := &fakeLeaveRepo{requests: make(map[string]leave.LeaveRequest)}
	return NewLeaveService(repo, nil), repo
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

func TestCreate_CountsInclusiveDays(t *testing.T) {
	svc, _ := newLeaveFixture()

	resp, err := svc.Create(authedContext(t, "emp-1", "employee"), leave.CreateLeaveRequest{
		LeaveType: string(leave.TypeAnnual),
		StartDate: "2026-03-02",
		EndDate:   "2026-03-06",
		Reason:    "family trip",
	})
	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, 5, resp.DaysRequested)
	assert.Equal(t, string(leave.StatusPending), resp.Status)
}

func TestCreate_EndBeforeStart(t *testing.T) {
	svc, _ := newLeaveFixture()

	_, err := svc.Create(authedContext(t, "emp-1", "employee"), leave.CreateLeaveRequest{
		LeaveType: string(leave.TypeSick),
		StartDate: "2026-03-06",
		EndDate:   "2026-03-02",
		Reason:    "flu",
	})
	assert.Error(t, err)
}

func TestReview_ApprovesPendingRequest(t *testing.T) {
	svc, _ := newLeaveFixture()

	created, err := svc.Create(authedContext(t, "emp-1", "employee"), leave.CreateLeaveRequest{
		LeaveType: string(leave.TypeAnnual),
		StartDate: "2026-03-02",
		EndDate:   "2026-03-03",
		Reason:    "family trip",
	})
	require.NoError(t, err)

	reviewed, err := svc.Review(authedContext(t, "admin-1", "admin"), created.ID, leave.ReviewLeaveRequest{
		Status: string(leave.StatusApproved),
	})
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApproved), reviewed.Status)
	require.NotNil(t, reviewed.ReviewedBy)
	assert.Equal(t, "admin-1", *reviewed.ReviewedBy)
}

func TestReview_AlreadyReviewed(t *testing.T) {
	svc, _ := newLeaveFixture()
	adminCtx := authedContext(t, "admin-1", "admin")

	created, err := svc.Create(authedContext(t, "emp-1", "employee"), leave.CreateLeaveRequest{
		LeaveType: string(leave.TypeAnnual),
		StartDate: "2026-03-02",
		EndDate:   "2026-03-03",
		Reason:    "family trip",
	})
	require.NoError(t, err)

	_, err = svc.Review(adminCtx, created.ID, leave.ReviewLeaveRequest{Status: string(leave.StatusRejected)})
	require.NoError(t, err)

	_, err = svc.Review(adminCtx, created.ID, leave.ReviewLeaveRequest{Status: string(leave.StatusApproved)})
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyReviewed)
}

func TestGetByID_HiddenFromOtherEmployees(t *testing.T) {
	svc, _ := newLeaveFixture()

	created, err := svc.Create(authedContext(t, "emp-1", "employee"), leave.CreateLeaveRequest{
		LeaveType: string(leave.TypePersonal),
		StartDate: "2026-03-02",
		EndDate:   "2026-03-02",
		Reason:    "appointment",
	})
	require.NoError(t, err)

	_, err = svc.GetByID(authedContext(t, "emp-2", "employee"), created.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)

	_, err = svc.GetByID(authedContext(t, "admin-1", "admin"), created.ID)
	assert.NoError(t, err)
}

func TestGetBalance_SumsApprovedDaysByType(t *testing.T) {
	svc, _ := newLeaveFixture()
	adminCtx := authedContext(t, "admin-1", "admin")
	empCtx := authedContext(t, "emp-1", "employee")

	created, err := svc.Create(empCtx, leave.CreateLeaveRequest{
		LeaveType: string(leave.TypeAnnual),
		StartDate: "2026-03-02",
		EndDate:   "2026-03-06",
		Reason:    "family trip",
	})
	require.NoError(t, err)
	_, err = svc.Review(adminCtx, created.ID, leave.ReviewLeaveRequest{Status: string(leave.StatusApproved)})
	require.NoError(t, err)

	// Pending requests do not count toward the balance.
	_, err = svc.Create(empCtx, leave.CreateLeaveRequest{
		LeaveType: string(leave.TypeSick),
		StartDate: "2026-04-01",
		EndDate:   "2026-04-02",
		Reason:    "flu",
	})
	require.NoError(t, err)

	balances, err := svc.GetBalance(empCtx, 2026)
	require.NoError(t, err)
	require.Len(t, balances, 1)
	assert.Equal(t, string(leave.TypeAnnual), balances[0].LeaveType)
	assert.Equal(t, int64(5), balances[0].ApprovedDays)
}

func TestList_NonAdminRestrictedToOwnRequests(t *testing.T) {
	svc, _ := newLeaveFixture()

	for _, id := range []string{"emp-1", "emp-2"} {
		_, err := svc.Create(authedContext(t, id, "employee"), leave.CreateLeaveRequest{
			LeaveType: string(leave.TypeAnnual),
			StartDate: "2026-03-02",
			EndDate:   "2026-03-03",
			Reason:    "family trip",
		})
		require.NoError(t, err)
	}

	other := "emp-2"
	requests, err := svc.List(authedContext(t, "emp-1", "employee"), leave.LeaveFilter{EmployeeID: &other})
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "emp-1", requests[0].EmployeeID)
}
