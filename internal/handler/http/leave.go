package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/domain/leave"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/handler/http/middleware"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// defaultRecentLimit bounds the admin "latest applications" list.
const defaultRecentLimit = 10

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	MyHistory(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	Recent(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Apply implements LeaveHandler.
func (h *leaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req leave.ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if req.EmployeeID == 0 {
		if id, ok := middleware.SubjectID(r); ok {
			req.EmployeeID = id
		}
	}

	if err := h.leaveService.Apply(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave applied", nil)
}

// MyHistory implements LeaveHandler.
func (h *leaveHandlerImpl) MyHistory(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.SubjectID(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	h.history(w, r, employeeID)
}

// History implements LeaveHandler.
func (h *leaveHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid employee ID", nil)
		return
	}

	h.history(w, r, employeeID)
}

func (h *leaveHandlerImpl) history(w http.ResponseWriter, r *http.Request, employeeID int64) {
	requests, err := h.leaveService.History(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Today implements LeaveHandler.
func (h *leaveHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.SubjectID(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	reason, err := h.leaveService.TodayReason(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"on_leave": reason != nil,
		"reason":   reason,
	})
}

// Recent implements LeaveHandler.
func (h *leaveHandlerImpl) Recent(w http.ResponseWriter, r *http.Request) {
	limit := defaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.BadRequest(w, "Invalid limit", nil)
			return
		}
		limit = parsed
	}

	requests, err := h.leaveService.Recent(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}
