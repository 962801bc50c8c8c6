package auth

import "time"

// Admin is a back-office account. Admins review rosters, mark absences and
// manage employees; they never punch.
type Admin struct {
	ID           int64
	Username     string
	PIN          string
	PasswordHash string
	CreatedAt    time.Time
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)
