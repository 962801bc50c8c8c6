package dashboard

import (
	"context"
	"time"
)

// Repository is read-only. Every query is safe to run concurrently with
// punch, absence and leave mutations; none of them writes.
type Repository interface {
	// TodayRoster returns every employee left-joined with the given day's
	// attendance record, ordered by name.
	TodayRoster(ctx context.Context, date time.Time) ([]RosterRow, error)

	// WeeklyPunchCounts returns punch-in counts for the most recent 7
	// distinct dates, ascending. Only rows with absent=false and a set
	// time_in count.
	WeeklyPunchCounts(ctx context.Context) ([]DayCount, error)

	// PresenceStats counts distinct employees with a non-absent record on
	// the given day; absentees are total employees minus present.
	PresenceStats(ctx context.Context, date time.Time) (PresenceStats, error)

	// AbsentHistory returns all absent rows with employee names, newest
	// first.
	AbsentHistory(ctx context.Context) ([]AbsenceRow, error)

	// EmployeeWeekCounts returns the employee's per-date record counts from
	// the given date onward, ascending.
	EmployeeWeekCounts(ctx context.Context, employeeID int64, since time.Time) ([]DayCount, error)

	// MonthlyReport returns every employee left-joined with their records in
	// [from, to], ordered by employee then date.
	MonthlyReport(ctx context.Context, from, to time.Time) ([]ReportRow, error)
}
