package response

import (
	"errors"
	"net/http"

	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/domain/attendance"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/domain/auth"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/domain/employee"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrAdminNotFound):
		NotFound(w, "Admin not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyPunchedIn):
		Conflict(w, "Already punched in today")
	case errors.Is(err, attendance.ErrNotPunchedIn):
		BadRequest(w, "Not punched in yet or already punched out", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrPINExists):
		Conflict(w, "Employee PIN already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
