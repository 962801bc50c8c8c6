package leave

import "time"

// Request is one row in the append-only leave ledger. The range is
// inclusive; FromDate == ToDate for a single-day leave. Rows are never
// updated or deleted.
type Request struct {
	ID         int64
	EmployeeID int64
	FromDate   time.Time
	ToDate     time.Time
	Reason     string
	CreatedAt  time.Time

	// DTO
	EmployeeName *string
}

type Kind string

const (
	// KindQuick is a single-day leave for today.
	KindQuick Kind = "quick"
	// KindCustom is an explicit inclusive date range.
	KindCustom Kind = "custom"
)
