package http

import (
	"encoding/json"
	"net/http"

	"github.com/peoplehr/hrms-backend-go/internal/domain/schedule"
	"github.com/peoplehr/hrms-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	Assign(w http.ResponseWriter, r *http.Request)
	Remove(w http.ResponseWriter, r *http.Request)
	Query(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// Assign implements ScheduleHandler.
func (h *scheduleHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var req schedule.AssignScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	assignment, created, err := h.scheduleService.Assign(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if created {
		response.Created(w, "Schedule assigned", assignment)
		return
	}
	response.SuccessWithMessage(w, "Schedule updated", assignment)
}

// Remove implements ScheduleHandler.
func (h *scheduleHandlerImpl) Remove(w http.ResponseWriter, r *http.Request) {
	var req schedule.RemoveScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.scheduleService.Remove(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule removed", nil)
}

// Query implements ScheduleHandler.
func (h *scheduleHandlerImpl) Query(w http.ResponseWriter, r *http.Request) {
	filter := schedule.ScheduleFilter{
		EmployeeID: optionalQueryParam(r, "employee_id"),
		StartDate:  optionalQueryParam(r, "start_date"),
		EndDate:    optionalQueryParam(r, "end_date"),
	}

	assignments, err := h.scheduleService.Query(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, assignments)
}

// ListShifts implements ScheduleHandler.
func (h *scheduleHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.scheduleService.ListShifts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, shifts)
}
