package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/domain/auth"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/domain/employee"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/pkg/jwt"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	adminRepo    auth.AdminRepository
	employeeRepo employee.Repository
	jwtService   jwt.Service
}

func NewAuthService(adminRepo auth.AdminRepository, employeeRepo employee.Repository, jwtService jwt.Service) auth.Service {
	return &AuthServiceImpl{
		adminRepo:    adminRepo,
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

// Login implements auth.Service.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	if req.Role == auth.RoleAdmin {
		return s.loginAdmin(ctx, req.Username, req.Password)
	}
	return s.loginEmployee(ctx, req.Username, req.Password)
}

func (s *AuthServiceImpl) loginAdmin(ctx context.Context, username, password string) (auth.LoginResponse, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, auth.ErrAdminNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return s.issue(auth.RoleAdmin, admin.ID, admin.Username, "")
}

func (s *AuthServiceImpl) loginEmployee(ctx context.Context, code, password string) (auth.LoginResponse, error) {
	emp, err := s.employeeRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return s.issue(auth.RoleEmployee, emp.ID, emp.Name, emp.Code)
}

// LoginWithPIN implements auth.Service. Employees are looked up before
// admins; the two PIN spaces are separate tables, so a shared digit string
// resolves to the employee.
func (s *AuthServiceImpl) LoginWithPIN(ctx context.Context, req auth.PINLoginRequest) (auth.LoginResponse, error) {
	if !validator.IsValidPIN(req.PIN) {
		return auth.LoginResponse{}, validator.ValidationErrors{{
			Field:   "pin",
			Message: "pin must be exactly 4 digits",
		}}
	}

	emp, err := s.employeeRepo.GetByPIN(ctx, req.PIN)
	if err == nil {
		return s.issue(auth.RoleEmployee, emp.ID, emp.Name, emp.Code)
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return auth.LoginResponse{}, fmt.Errorf("failed to get employee by pin: %w", err)
	}

	admin, err := s.adminRepo.GetByPIN(ctx, req.PIN)
	if err != nil {
		if errors.Is(err, auth.ErrAdminNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get admin by pin: %w", err)
	}

	return s.issue(auth.RoleAdmin, admin.ID, admin.Username, "")
}

func (s *AuthServiceImpl) issue(role auth.Role, id int64, name, code string) (auth.LoginResponse, error) {
	token, expiresAt, err := s.jwtService.GenerateAccessToken(id, name, role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		Role:        role,
		ID:          id,
		Name:        name,
		Code:        code,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
