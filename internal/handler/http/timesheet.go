package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peoplehr/hrms-backend-go/internal/domain/timesheet"
	"github.com/peoplehr/hrms-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Upsert(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
	GetMonthlySummary(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
	}
}

// Create implements TimesheetHandler.
func (h *timesheetHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req timesheet.UpsertTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entry, err := h.timesheetService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Timesheet entry created", entry)
}

// Upsert implements TimesheetHandler. Unlike Create it replaces an existing
// entry for the same employee-day instead of conflicting.
func (h *timesheetHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req timesheet.UpsertTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entry, created, err := h.timesheetService.Upsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if created {
		response.Created(w, "Timesheet entry created", entry)
		return
	}
	response.SuccessWithMessage(w, "Timesheet entry replaced", entry)
}

// Update implements TimesheetHandler.
func (h *timesheetHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req timesheet.UpsertTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entry, err := h.timesheetService.UpdateByID(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet entry updated", entry)
}

// Get implements TimesheetHandler.
func (h *timesheetHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.timesheetService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entry)
}

// Delete implements TimesheetHandler.
func (h *timesheetHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.timesheetService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet entry deleted", nil)
}

// List implements TimesheetHandler.
func (h *timesheetHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := timesheet.TimesheetFilter{
		EmployeeID: optionalQueryParam(r, "employee_id"),
		StartDate:  optionalQueryParam(r, "start_date"),
		EndDate:    optionalQueryParam(r, "end_date"),
		Status:     optionalQueryParam(r, "attendance_status"),
		Month:      optionalQueryParam(r, "month"),
	}

	entries, err := h.timesheetService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// GetStats implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	filter := timesheet.TimesheetFilter{
		EmployeeID: optionalQueryParam(r, "employee_id"),
		StartDate:  optionalQueryParam(r, "start_date"),
		EndDate:    optionalQueryParam(r, "end_date"),
	}

	stats, err := h.timesheetService.GetStats(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// GetMonthlySummary implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	month := r.URL.Query().Get("month")
	if employeeID == "" || month == "" {
		response.BadRequest(w, "employee_id and month are required", nil)
		return
	}

	summary, err := h.timesheetService.GetMonthlySummary(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
