package employee

import "time"

type Employee struct {
	ID           int64
	Name         string
	Code         string
	PIN          string
	Email        *string
	Phone        *string
	Department   *string
	Designation  *string
	PasswordHash string
	CreatedAt    time.Time
}
