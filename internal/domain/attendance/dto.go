package attendance

import (
	"time"

	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/pkg/location"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

type PunchRequest struct {
	EmployeeID int64             `json:"employee_id"`
	Direction  Direction         `json:"type"`
	Location   *location.Payload `json:"location"`

	// AuthMethod tags how the punch was authenticated (e.g. "biometric").
	// Empty for regular kiosk or web punches.
	AuthMethod string `json:"-"`
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Direction != DirectionIn && r.Direction != DirectionOut {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be 'in' or 'out'",
		})
	}

	if r.Location != nil {
		if r.Location.Latitude != nil && (*r.Location.Latitude < -90 || *r.Location.Latitude > 90) {
			errs = append(errs, validator.ValidationError{
				Field:   "latitude",
				Message: "latitude must be between -90 and 90",
			})
		}
		if r.Location.Longitude != nil && (*r.Location.Longitude < -180 || *r.Location.Longitude > 180) {
			errs = append(errs, validator.ValidationError{
				Field:   "longitude",
				Message: "longitude must be between -180 and 180",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// PunchResult is what the presentation layer renders after a successful
// punch: a 12-hour formatted time and the recorded location string.
type PunchResult struct {
	Time     string `json:"time"`
	Location string `json:"location"`
}

type MarkAbsentRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Reason     string `json:"reason"`
	// Date is optional, "YYYY-MM-DD". Empty means today.
	Date string `json:"date"`
}

func (r *MarkAbsentRequest) Validate() (time.Time, error) {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	var date time.Time
	if r.Date != "" {
		var ok bool
		if date, ok = validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be a valid YYYY-MM-DD date",
			})
		}
	}

	if len(errs) > 0 {
		return time.Time{}, errs
	}
	return date, nil
}

// RecordResponse is a single history row with display-formatted times.
type RecordResponse struct {
	Date        string  `json:"date"`
	TimeIn      *string `json:"time_in"`
	TimeOut     *string `json:"time_out"`
	LocationIn  *string `json:"location_in,omitempty"`
	LocationOut *string `json:"location_out,omitempty"`
	Absent      bool    `json:"absent"`
	Reason      *string `json:"reason"`
}
