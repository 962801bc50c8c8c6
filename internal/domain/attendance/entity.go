package attendance

import (
	"time"
)

// Record is one employee's attendance for one civil day. At most one record
// exists per (employee, date); the storage layer enforces this with a unique
// constraint. Absent and punch data are mutually exclusive: Absent=true
// implies TimeIn and TimeOut are both nil.
type Record struct {
	ID          int64
	EmployeeID  int64
	Date        time.Time
	TimeIn      *time.Time
	TimeOut     *time.Time
	LocationIn  *string
	LocationOut *string
	Absent      bool
	Reason      *string
	AuthMethod  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	EmployeeName *string
}
