package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/domain/employee"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const employeeColumns = "id, name, emp_code, pin, email, phone, department, designation, password, created_at"

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepository{db: db}
}

// Create implements employee.Repository.
func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (name, emp_code, pin, email, phone, department, designation, password)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.Name,
		newEmployee.Code,
		newEmployee.PIN,
		newEmployee.Email,
		newEmployee.Phone,
		newEmployee.Department,
		newEmployee.Designation,
		newEmployee.PasswordHash,
	).Scan(&newEmployee.ID, &newEmployee.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			switch pgErr.ConstraintName {
			case "employees_pin_key":
				return employee.Employee{}, employee.ErrPINExists
			default:
				return employee.Employee{}, employee.ErrCodeExists
			}
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

// GetByID implements employee.Repository.
func (r *employeeRepository) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	return r.getOne(ctx, "id = $1", id)
}

// GetByCode implements employee.Repository.
func (r *employeeRepository) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	return r.getOne(ctx, "emp_code = $1", code)
}

// GetByPIN implements employee.Repository.
func (r *employeeRepository) GetByPIN(ctx context.Context, pin string) (employee.Employee, error) {
	return r.getOne(ctx, "pin = $1", pin)
}

func (r *employeeRepository) getOne(ctx context.Context, where string, arg interface{}) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf("SELECT %s FROM employees WHERE %s LIMIT 1", employeeColumns, where)

	var e employee.Employee
	err := q.QueryRow(ctx, query, arg).Scan(
		&e.ID, &e.Name, &e.Code, &e.PIN, &e.Email, &e.Phone,
		&e.Department, &e.Designation, &e.PasswordHash, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

// List implements employee.Repository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf("SELECT %s FROM employees ORDER BY name", employeeColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// Search implements employee.Repository.
func (r *employeeRepository) Search(ctx context.Context, search string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM employees
		WHERE name ILIKE $1 OR emp_code ILIKE $1
		ORDER BY name
	`, employeeColumns)

	rows, err := q.Query(ctx, query, "%"+search+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search employees: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// Count implements employee.Repository.
func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM employees").Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return total, nil
}

// Delete implements employee.Repository. Attendance and leave rows are not
// touched; they remain as orphaned history.
func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, "DELETE FROM employees WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func scanEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		err := rows.Scan(
			&e.ID, &e.Name, &e.Code, &e.PIN, &e.Email, &e.Phone,
			&e.Department, &e.Designation, &e.PasswordHash, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
