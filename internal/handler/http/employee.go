package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/domain/employee"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/handler/http/response"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Whoami(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.Service
}

func NewEmployeeHandler(employeeService employee.Service) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// Create implements EmployeeHandler.
func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", created)
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid employee ID", nil)
		return
	}

	emp, err := h.employeeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// Whoami implements EmployeeHandler. Kiosks resolve a typed PIN to the
// employee holding it before punching.
func (h *employeeHandlerImpl) Whoami(w http.ResponseWriter, r *http.Request) {
	pin := chi.URLParam(r, "pin")
	if !validator.IsValidPIN(pin) {
		response.BadRequest(w, "Invalid PIN", nil)
		return
	}

	emp, err := h.employeeService.GetByPIN(r.Context(), pin)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// Profile implements EmployeeHandler.
func (h *employeeHandlerImpl) Profile(w http.ResponseWriter, r *http.Request) {
	var req employee.ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	emp, err := h.employeeService.GetByCode(r.Context(), strings.TrimSpace(req.Code))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// List implements EmployeeHandler. With ?q= it searches by name or code.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var (
		employees []employee.EmployeeResponse
		err       error
	)
	if query != "" {
		employees, err = h.employeeService.Search(r.Context(), query)
	} else {
		employees, err = h.employeeService.List(r.Context())
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	total, err := h.employeeService.Count(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.ListResponse{Employees: employees, Total: total})
}

// Delete implements EmployeeHandler.
func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid employee ID", nil)
		return
	}

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted", nil)
}
