package auth

import (
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/pkg/validator"
)

type LoginRequest struct {
	Role     Role   `json:"role"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Role != RoleAdmin && r.Role != RoleEmployee {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be 'admin' or 'employee'",
		})
	}
	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
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

type PINLoginRequest struct {
	PIN string `json:"pin"`
}

type LoginResponse struct {
	Role        Role   `json:"role"`
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"emp_code,omitempty"`
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}
