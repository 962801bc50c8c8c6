package leave

import (
	"context"
	"time"
)

// Repository is the append-only ledger of leave applications.
type Repository interface {
	// Create appends one ledger row. Exactly one row per application,
	// regardless of how many days the range spans.
	Create(ctx context.Context, req Request) (Request, error)

	// ListByEmployee returns the employee's applications, newest first.
	ListByEmployee(ctx context.Context, employeeID int64) ([]Request, error)

	// GetActiveReason returns the reason of a leave whose range covers the
	// given date, or nil when the employee has no leave that day.
	GetActiveReason(ctx context.Context, employeeID int64, date time.Time) (*string, error)

	// ListRecent returns the latest applications with employee names, for
	// the admin roster view.
	ListRecent(ctx context.Context, limit int) ([]Request, error)
}
