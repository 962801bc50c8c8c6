package fixtures

import (
	"context"
	"fmt"

	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/pkg/database"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
	DefaultAdminPIN      = "0000"
)

// SeedDefaultAdmin inserts the development admin account if no admin with
// that username exists. Intended for development environments only; it does
// nothing when the account is already present.
func SeedDefaultAdmin(ctx context.Context, db *database.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	query := `
		INSERT INTO admins (username, pin, password)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO NOTHING
	`

	if _, err := db.Exec(ctx, query, DefaultAdminUsername, DefaultAdminPIN, string(hash)); err != nil {
		return fmt.Errorf("failed to seed default admin: %w", err)
	}

	return nil
}
