package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/domain/leave"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.Repository {
	return &leaveRepository{db: db}
}

// Create implements leave.Repository. The ledger is append-only; there is no
// update or delete path.
func (r *leaveRepository) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (employee_id, from_date, to_date, reason)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID,
		request.FromDate,
		request.ToDate,
		request.Reason,
	).Scan(&request.ID, &request.CreatedAt)

	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// ListByEmployee implements leave.Repository.
func (r *leaveRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, from_date, to_date, reason, created_at
		FROM leaves
		WHERE employee_id = $1
		ORDER BY id DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequests(rows, false)
}

// GetActiveReason implements leave.Repository.
func (r *leaveRepository) GetActiveReason(ctx context.Context, employeeID int64, date time.Time) (*string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT reason
		FROM leaves
		WHERE employee_id = $1
		  AND $2 BETWEEN from_date AND to_date
		LIMIT 1
	`

	var reason string
	err := q.QueryRow(ctx, query, employeeID, date).Scan(&reason)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No leave covering that day
		}
		return nil, fmt.Errorf("failed to get active leave reason: %w", err)
	}

	return &reason, nil
}

// ListRecent implements leave.Repository.
func (r *leaveRepository) ListRecent(ctx context.Context, limit int) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.employee_id, l.from_date, l.to_date, l.reason, l.created_at,
			   e.name AS employee_name
		FROM leaves l
		JOIN employees e ON e.id = l.employee_id
		ORDER BY l.id DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent leave requests: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequests(rows, true)
}

func scanLeaveRequests(rows pgx.Rows, withName bool) ([]leave.Request, error) {
	var requests []leave.Request
	for rows.Next() {
		var lr leave.Request
		dest := []interface{}{
			&lr.ID, &lr.EmployeeID, &lr.FromDate, &lr.ToDate, &lr.Reason, &lr.CreatedAt,
		}
		if withName {
			dest = append(dest, &lr.EmployeeName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
