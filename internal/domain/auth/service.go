package auth

import "context"

type Service interface {
	// Login authenticates an admin by username or an employee by code.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// LoginWithPIN authenticates by kiosk PIN, trying employees first and
	// admins second.
	LoginWithPIN(ctx context.Context, req PINLoginRequest) (LoginResponse, error)
}
