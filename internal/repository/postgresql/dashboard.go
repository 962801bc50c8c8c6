package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/domain/dashboard"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.Repository {
	return &dashboardRepository{db: db}
}

// TodayRoster implements dashboard.Repository.
func (r *dashboardRepository) TodayRoster(ctx context.Context, date time.Time) ([]dashboard.RosterRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.name, e.emp_code, e.pin,
			   a.time_in, a.time_out,
			   a.location_in, a.location_out,
			   COALESCE(a.absent, FALSE), a.reason
		FROM employees e
		LEFT JOIN attendance a
		  ON a.employee_id = e.id AND a.date = $1
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query today's roster: %w", err)
	}
	defer rows.Close()

	var roster []dashboard.RosterRow
	for rows.Next() {
		var row dashboard.RosterRow
		err := rows.Scan(
			&row.EmployeeID, &row.Name, &row.Code, &row.PIN,
			&row.TimeIn, &row.TimeOut,
			&row.LocationIn, &row.LocationOut,
			&row.Absent, &row.Reason,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan roster row: %w", err)
		}
		roster = append(roster, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return roster, nil
}

// WeeklyPunchCounts implements dashboard.Repository.
//
// Absences never count: only rows with absent=false and a recorded time_in.
// The inner query takes the most recent 7 distinct dates; the outer flips
// them ascending for charting.
func (r *dashboardRepository) WeeklyPunchCounts(ctx context.Context) ([]dashboard.DayCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date, count FROM (
			SELECT date, COUNT(*) AS count
			FROM attendance
			WHERE absent = FALSE AND time_in IS NOT NULL
			GROUP BY date
			ORDER BY date DESC
			LIMIT 7
		) recent
		ORDER BY date ASC
	`

	return r.queryDayCounts(ctx, q, query)
}

// PresenceStats implements dashboard.Repository.
func (r *dashboardRepository) PresenceStats(ctx context.Context, date time.Time) (dashboard.PresenceStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM employees) AS total,
			(SELECT COUNT(DISTINCT employee_id) FROM attendance
			 WHERE date = $1 AND absent = FALSE) AS present
	`

	var stats dashboard.PresenceStats
	if err := q.QueryRow(ctx, query, date).Scan(&stats.Total, &stats.Present); err != nil {
		return dashboard.PresenceStats{}, fmt.Errorf("failed to get presence stats: %w", err)
	}
	stats.Absent = stats.Total - stats.Present

	return stats, nil
}

// AbsentHistory implements dashboard.Repository.
func (r *dashboardRepository) AbsentHistory(ctx context.Context) ([]dashboard.AbsenceRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.name, a.date, a.reason
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.absent = TRUE
		ORDER BY a.date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query absence history: %w", err)
	}
	defer rows.Close()

	var history []dashboard.AbsenceRow
	for rows.Next() {
		var row dashboard.AbsenceRow
		if err := rows.Scan(&row.EmployeeName, &row.Date, &row.Reason); err != nil {
			return nil, fmt.Errorf("failed to scan absence row: %w", err)
		}
		history = append(history, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}

// EmployeeWeekCounts implements dashboard.Repository.
func (r *dashboardRepository) EmployeeWeekCounts(ctx context.Context, employeeID int64, since time.Time) ([]dashboard.DayCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date, COUNT(*) AS count
		FROM attendance
		WHERE employee_id = $1 AND date >= $2
		GROUP BY date
		ORDER BY date
	`

	return r.queryDayCounts(ctx, q, query, employeeID, since)
}

// MonthlyReport implements dashboard.Repository.
func (r *dashboardRepository) MonthlyReport(ctx context.Context, from, to time.Time) ([]dashboard.ReportRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.name,
			   a.date, a.time_in, a.time_out,
			   a.location_in, a.location_out,
			   a.absent, a.reason
		FROM employees e
		LEFT JOIN attendance a
		  ON a.employee_id = e.id AND a.date BETWEEN $1 AND $2
		ORDER BY e.id, a.date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly report: %w", err)
	}
	defer rows.Close()

	var report []dashboard.ReportRow
	for rows.Next() {
		var row dashboard.ReportRow
		err := rows.Scan(
			&row.EmployeeID, &row.Name,
			&row.Date, &row.TimeIn, &row.TimeOut,
			&row.LocationIn, &row.LocationOut,
			&row.Absent, &row.Reason,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		report = append(report, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return report, nil
}

func (r *dashboardRepository) queryDayCounts(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]dashboard.DayCount, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query day counts: %w", err)
	}
	defer rows.Close()

	var counts []dashboard.DayCount
	for rows.Next() {
		var dc dashboard.DayCount
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan day count: %w", err)
		}
		counts = append(counts, dc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
