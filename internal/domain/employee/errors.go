package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrCodeExists       = errors.New("employee code already exists")
	ErrPINExists        = errors.New("employee PIN already exists")
)
