package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/domain/attendance"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/handler/http/middleware"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Punch(w http.ResponseWriter, r *http.Request)
	PunchBiometric(w http.ResponseWriter, r *http.Request)
	MarkAbsent(w http.ResponseWriter, r *http.Request)
	MarkAbsentSelf(w http.ResponseWriter, r *http.Request)
	MyHistory(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

// selfAbsentReason is recorded when an employee marks themselves absent
// without giving a reason. Admin-marked absences default differently, in
// the service.
const selfAbsentReason = "No reason given"

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Punch implements AttendanceHandler.
func (h *attendanceHandlerImpl) Punch(w http.ResponseWriter, r *http.Request) {
	h.punch(w, r, "")
}

// PunchBiometric implements AttendanceHandler. Same as Punch, but the
// record is tagged as biometrically authenticated.
func (h *attendanceHandlerImpl) PunchBiometric(w http.ResponseWriter, r *http.Request) {
	h.punch(w, r, "biometric")
}

func (h *attendanceHandlerImpl) punch(w http.ResponseWriter, r *http.Request, authMethod string) {
	var req attendance.PunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.AuthMethod = authMethod

	if req.EmployeeID == 0 {
		// Kiosk punches carry the ID in the body; self punches use the token.
		if id, ok := middleware.SubjectID(r); ok {
			req.EmployeeID = id
		}
	}

	result, err := h.attendanceService.RecordPunch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch recorded", result)
}

// MarkAbsent implements AttendanceHandler.
func (h *attendanceHandlerImpl) MarkAbsent(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAbsentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	date, err := req.Validate()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.attendanceService.MarkAbsent(r.Context(), req.EmployeeID, date, req.Reason); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Marked absent", nil)
}

// MarkAbsentSelf implements AttendanceHandler. The employee comes from the
// token and the body is optional.
func (h *attendanceHandlerImpl) MarkAbsentSelf(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.SubjectID(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req attendance.MarkAbsentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	date, err := req.Validate()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	reason := req.Reason
	if reason == "" {
		reason = selfAbsentReason
	}

	if err := h.attendanceService.MarkAbsent(r.Context(), employeeID, date, reason); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Marked absent", nil)
}

// MyHistory implements AttendanceHandler.
func (h *attendanceHandlerImpl) MyHistory(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.SubjectID(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	h.history(w, r, employeeID)
}

// History implements AttendanceHandler.
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid employee ID", nil)
		return
	}

	h.history(w, r, employeeID)
}

func (h *attendanceHandlerImpl) history(w http.ResponseWriter, r *http.Request, employeeID int64) {
	records, err := h.attendanceService.History(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
