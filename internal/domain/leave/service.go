package leave

import (
	"context"
	"time"
)

type Service interface {
	// Apply validates the request, appends one ledger row, then marks every
	// day in the range absent. The per-day writes are sequential independent
	// upserts, not a single transaction; a crash mid-range leaves a ledger
	// row whose range is only partially reflected in attendance.
	Apply(ctx context.Context, req ApplyRequest) error

	// History returns the employee's applications, newest first.
	History(ctx context.Context, employeeID int64) ([]RequestResponse, error)

	// TodayReason returns the reason of a leave covering today, if any.
	TodayReason(ctx context.Context, employeeID int64) (*string, error)

	// Recent returns the latest applications across all employees.
	Recent(ctx context.Context, limit int) ([]RequestResponse, error)
}

// DateRange iterates the inclusive civil-day range [from, to], calling fn
// once per day, stopping at the first error.
func DateRange(from, to time.Time, fn func(day time.Time) error) error {
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		if err := fn(day); err != nil {
			return err
		}
	}
	return nil
}
