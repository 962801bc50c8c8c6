package employee

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/domain/employee"
	"golang.org/x/crypto/bcrypt"
)

// pinAttempts bounds the retry loop when a generated PIN collides with an
// existing one. With 10000 possible PINs collisions stay rare until the
// keyspace is nearly full.
const pinAttempts = 5

type EmployeeServiceImpl struct {
	repo employee.Repository
}

func NewEmployeeService(repo employee.Repository) employee.Service {
	return &EmployeeServiceImpl{repo: repo}
}

// Create implements employee.Service.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created employee.Employee
	for attempt := 0; ; attempt++ {
		pin, err := generatePIN()
		if err != nil {
			return employee.EmployeeResponse{}, err
		}

		created, err = s.repo.Create(ctx, employee.Employee{
			Name:         req.Name,
			Code:         req.Code,
			PIN:          pin,
			PasswordHash: string(hash),
		})
		if err == nil {
			break
		}
		if errors.Is(err, employee.ErrPINExists) && attempt < pinAttempts-1 {
			continue
		}
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// Get implements employee.Service.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// GetByCode implements employee.Service.
func (s *EmployeeServiceImpl) GetByCode(ctx context.Context, code string) (employee.EmployeeResponse, error) {
	emp, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	resp := employee.ToResponse(emp)
	resp.PIN = ""
	return resp, nil
}

// GetByPIN implements employee.Service.
func (s *EmployeeServiceImpl) GetByPIN(ctx context.Context, pin string) (employee.EmployeeResponse, error) {
	emp, err := s.repo.GetByPIN(ctx, pin)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// List implements employee.Service.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return toResponses(employees), nil
}

// Search implements employee.Service.
func (s *EmployeeServiceImpl) Search(ctx context.Context, query string) ([]employee.EmployeeResponse, error) {
	employees, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search employees: %w", err)
	}
	return toResponses(employees), nil
}

// Count implements employee.Service.
func (s *EmployeeServiceImpl) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// Delete implements employee.Service.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// generatePIN produces a zero-padded 4-digit kiosk PIN.
func generatePIN() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", fmt.Errorf("failed to generate PIN: %w", err)
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}

func toResponses(employees []employee.Employee) []employee.EmployeeResponse {
	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses
}
