package attendance

import (
	"context"
	"time"
)

type Service interface {
	// RecordPunch applies a punch-in or punch-out for the civil day "today".
	RecordPunch(ctx context.Context, req PunchRequest) (PunchResult, error)

	// MarkAbsent forces the day into the absent state, overwriting any punch
	// data. Idempotent.
	MarkAbsent(ctx context.Context, employeeID int64, date time.Time, reason string) error

	// History returns the employee's attendance rows, newest first.
	History(ctx context.Context, employeeID int64) ([]RecordResponse, error)
}
