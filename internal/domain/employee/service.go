package employee

import "context"

type Service interface {
	// Create registers a new employee, hashing the password and generating
	// a random 4-digit kiosk PIN. The PIN is returned once, in the response.
	Create(ctx context.Context, req CreateRequest) (EmployeeResponse, error)

	Get(ctx context.Context, id int64) (EmployeeResponse, error)

	// GetByCode looks up the profile behind an employee code. The PIN is
	// omitted from the response; knowing a code must not reveal it.
	GetByCode(ctx context.Context, code string) (EmployeeResponse, error)

	// GetByPIN resolves a kiosk PIN to the employee holding it.
	GetByPIN(ctx context.Context, pin string) (EmployeeResponse, error)

	List(ctx context.Context) ([]EmployeeResponse, error)
	Search(ctx context.Context, query string) ([]EmployeeResponse, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
}
