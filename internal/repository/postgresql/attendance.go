package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/domain/attendance"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL error code raised when an insert hits a
// unique constraint.
const uniqueViolation = "23505"

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.Repository.
func (a *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance (
			employee_id, date, time_in, location_in, absent, reason, auth_method
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID,
		rec.Date,
		rec.TimeIn,
		rec.LocationIn,
		rec.Absent,
		rec.Reason,
		rec.AuthMethod,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			// Two concurrent punch-ins for the same day: the constraint on
			// (employee_id, date) decides, not the earlier existence check.
			return attendance.Record{}, attendance.ErrRecordExists
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndDate implements attendance.Repository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, date, time_in, time_out, location_in, location_out,
			   absent, reason, auth_method, created_at, updated_at
		FROM attendance
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.TimeIn, &rec.TimeOut,
		&rec.LocationIn, &rec.LocationOut,
		&rec.Absent, &rec.Reason, &rec.AuthMethod,
		&rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No record for that day
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &rec, nil
}

// SetTimeOut implements attendance.Repository.
func (a *attendanceRepository) SetTimeOut(ctx context.Context, id int64, timeOut time.Time, locationOut string) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance
		SET time_out = $2, location_out = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID int64
	if err := q.QueryRow(ctx, query, id, timeOut, locationOut).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to set time out: %w", err)
	}

	return nil
}

// UpsertAbsent implements attendance.Repository.
//
// A single statement keyed on the (employee_id, date) constraint: a
// concurrent punch either lands before (and is overwritten) or fails its own
// insert. There is no read-then-write window.
func (a *attendanceRepository) UpsertAbsent(ctx context.Context, employeeID int64, date time.Time, reason string) error {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance (employee_id, date, absent, reason)
		VALUES ($1, $2, TRUE, $3)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			absent = TRUE,
			reason = EXCLUDED.reason,
			time_in = NULL,
			time_out = NULL,
			updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, employeeID, date, reason); err != nil {
		return fmt.Errorf("failed to upsert absence: %w", err)
	}

	return nil
}

// SetAuthMethod implements attendance.Repository.
func (a *attendanceRepository) SetAuthMethod(ctx context.Context, employeeID int64, date time.Time, method string) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance
		SET auth_method = $3, updated_at = NOW()
		WHERE employee_id = $1 AND date = $2
	`

	if _, err := q.Exec(ctx, query, employeeID, date, method); err != nil {
		return fmt.Errorf("failed to set auth method: %w", err)
	}

	return nil
}

// ListByEmployee implements attendance.Repository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, date, time_in, time_out, location_in, location_out,
			   absent, reason, auth_method, created_at, updated_at
		FROM attendance
		WHERE employee_id = $1
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance history: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.TimeIn, &rec.TimeOut,
			&rec.LocationIn, &rec.LocationOut,
			&rec.Absent, &rec.Reason, &rec.AuthMethod,
			&rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ListUnrecorded implements attendance.Repository.
func (a *attendanceRepository) ListUnrecorded(ctx context.Context, date time.Time) ([]int64, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT e.id
		FROM employees e
		LEFT JOIN attendance a
		  ON a.employee_id = e.id AND a.date = $1
		WHERE a.id IS NULL
		ORDER BY e.id
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query unrecorded employees: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
