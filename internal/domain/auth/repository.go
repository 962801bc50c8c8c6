package auth

import "context"

type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (Admin, error)
	GetByPIN(ctx context.Context, pin string) (Admin, error)
}
