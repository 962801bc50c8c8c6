package employee

import "context"

type Repository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	GetByCode(ctx context.Context, code string) (Employee, error)
	GetByPIN(ctx context.Context, pin string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Search(ctx context.Context, query string) ([]Employee, error)
	Count(ctx context.Context) (int64, error)

	// Delete removes the employee row only. Attendance and leave rows are
	// retained as orphaned history.
	Delete(ctx context.Context, id int64) error
}
