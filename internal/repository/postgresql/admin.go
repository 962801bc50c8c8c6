package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/domain/auth"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type adminRepository struct {
	db *database.DB
}

func NewAdminRepository(db *database.DB) auth.AdminRepository {
	return &adminRepository{db: db}
}

// GetByUsername implements auth.AdminRepository.
func (r *adminRepository) GetByUsername(ctx context.Context, username string) (auth.Admin, error) {
	return r.getOne(ctx, "username = $1", username)
}

// GetByPIN implements auth.AdminRepository.
func (r *adminRepository) GetByPIN(ctx context.Context, pin string) (auth.Admin, error) {
	return r.getOne(ctx, "pin = $1", pin)
}

func (r *adminRepository) getOne(ctx context.Context, where string, arg interface{}) (auth.Admin, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf("SELECT id, username, pin, password, created_at FROM admins WHERE %s LIMIT 1", where)

	var a auth.Admin
	err := q.QueryRow(ctx, query, arg).Scan(&a.ID, &a.Username, &a.PIN, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.Admin{}, auth.ErrAdminNotFound
		}
		return auth.Admin{}, fmt.Errorf("failed to get admin: %w", err)
	}

	return a, nil
}
