package employee

import (
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/pkg/validator"
)

type CreateRequest struct {
	Name     string `json:"name"`
	Code     string `json:"emp_code"`
	Password string `json:"password"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "emp_code",
			Message: "emp_code is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ProfileRequest carries the code an employee identifies themselves with.
type ProfileRequest struct {
	Code string `json:"emp_code"`
}

func (r *ProfileRequest) Validate() error {
	if validator.IsEmpty(r.Code) {
		return validator.ValidationErrors{{
			Field:   "emp_code",
			Message: "emp_code is required",
		}}
	}
	return nil
}

// ListResponse pairs the directory page with the total headcount.
type ListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int64              `json:"total"`
}

type EmployeeResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Code        string  `json:"emp_code"`
	PIN         string  `json:"pin,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Department  *string `json:"department,omitempty"`
	Designation *string `json:"designation,omitempty"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		Name:        e.Name,
		Code:        e.Code,
		PIN:         e.PIN,
		Email:       e.Email,
		Phone:       e.Phone,
		Department:  e.Department,
		Designation: e.Designation,
	}
}
