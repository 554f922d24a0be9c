package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplehr/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplehr/hrms-backend-go/internal/domain/auth"
	"github.com/peoplehr/hrms-backend-go/internal/domain/employee"
	"github.com/peoplehr/hrms-backend-go/internal/domain/leave"
	"github.com/peoplehr/hrms-backend-go/internal/domain/timesheet"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/validator"
)

func TestHandleError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"employee not found", employee.ErrEmployeeNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"already clocked in", attendance.ErrAlreadyClockedIn, http.StatusConflict, "CONFLICT"},
		{"already clocked out", attendance.ErrAlreadyClockedOut, http.StatusConflict, "CONFLICT"},
		{"not clocked in yet", attendance.ErrNotClockedInYet, http.StatusBadRequest, "BAD_REQUEST"},
		{"duplicate timesheet entry", timesheet.ErrDuplicateEntry, http.StatusConflict, "CONFLICT"},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"admin required", auth.ErrAdminRequired, http.StatusForbidden, "FORBIDDEN"},
		{"leave already reviewed", leave.ErrLeaveAlreadyReviewed, http.StatusConflict, "CONFLICT"},
		{"unexpected error", errors.New("pool exhausted"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestHandleError_ValidationErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "date", Message: "date must be YYYY-MM-DD"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "email is required", body.Error.Details["email"])
}

func TestHandleError_UnexpectedErrorIsNotLeaked(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "An unexpected error occurred", body.Error.Message)
}
