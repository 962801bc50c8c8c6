package attendance

import (
	"context"
	"time"
)

// Repository defines data access for attendance records. Dates are civil
// dates; implementations compare them by day, not by instant.
type Repository interface {
	// Create inserts a new record. Returns ErrRecordExists if a record for
	// (employee, date) is already present; the unique constraint is the
	// arbiter, not a prior existence check.
	Create(ctx context.Context, rec Record) (Record, error)

	// GetByEmployeeAndDate returns the record for the given day, or nil when
	// none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*Record, error)

	// SetTimeOut closes an open punch session.
	SetTimeOut(ctx context.Context, id int64, timeOut time.Time, locationOut string) error

	// UpsertAbsent atomically inserts or overwrites the day's record to the
	// absent state, clearing any punch times. Expressed as a single
	// insert-or-update statement so a concurrent punch cannot interleave.
	UpsertAbsent(ctx context.Context, employeeID int64, date time.Time, reason string) error

	// SetAuthMethod tags the day's record with the authentication method
	// that produced it, e.g. "biometric".
	SetAuthMethod(ctx context.Context, employeeID int64, date time.Time, method string) error

	// ListByEmployee returns the employee's full history, newest first.
	ListByEmployee(ctx context.Context, employeeID int64) ([]Record, error)

	// ListUnrecorded returns IDs of employees with no record for the day.
	ListUnrecorded(ctx context.Context, date time.Time) ([]int64, error)
}
