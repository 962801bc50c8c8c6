package leave

import (
	"time"

	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/pkg/validator"
)

type ApplyRequest struct {
	EmployeeID int64  `json:"emp_id"`
	Kind       Kind   `json:"type"`
	Reason     string `json:"reason"`
	FromDate   string `json:"from_date"`
	ToDate     string `json:"to_date"`
}

// Validate checks the request and, for custom leaves, parses the range.
// Validation happens strictly before any write: a request that fails here
// leaves neither a ledger row nor an attendance row behind.
func (r *ApplyRequest) Validate() (from, to time.Time, err error) {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "emp_id",
			Message: "emp_id is required",
		})
	}

	if r.Kind != KindQuick && r.Kind != KindCustom {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be 'quick' or 'custom'",
		})
	}

	if r.Kind == KindCustom {
		if validator.IsEmpty(r.Reason) {
			errs = append(errs, validator.ValidationError{
				Field:   "reason",
				Message: "reason is required",
			})
		}

		var fromOK, toOK bool
		if validator.IsEmpty(r.FromDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "from_date",
				Message: "from_date is required",
			})
		} else if from, fromOK = validator.IsValidDate(r.FromDate); !fromOK {
			errs = append(errs, validator.ValidationError{
				Field:   "from_date",
				Message: "from_date must be a valid YYYY-MM-DD date",
			})
		}

		if validator.IsEmpty(r.ToDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "to_date",
				Message: "to_date is required",
			})
		} else if to, toOK = validator.IsValidDate(r.ToDate); !toOK {
			errs = append(errs, validator.ValidationError{
				Field:   "to_date",
				Message: "to_date must be a valid YYYY-MM-DD date",
			})
		}

		// An inverted range would silently mark nothing absent; reject it.
		if fromOK && toOK && to.Before(from) {
			errs = append(errs, validator.ValidationError{
				Field:   "to_date",
				Message: "to_date must not be before from_date",
			})
		}
	}

	if len(errs) > 0 {
		return time.Time{}, time.Time{}, errs
	}

	return from, to, nil
}

// RequestResponse is a ledger row formatted for presentation.
type RequestResponse struct {
	ID           int64   `json:"id,omitempty"`
	EmployeeID   int64   `json:"emp_id,omitempty"`
	EmployeeName *string `json:"name,omitempty"`
	FromDate     string  `json:"from_date"`
	ToDate       string  `json:"to_date"`
	Reason       string  `json:"reason"`
}
