package employee

import "errors"

var (
	ErrInvalidID         = errors.New("employee: invalid id")
	ErrInvalidName       = errors.New("employee: invalid name")
	ErrInvalidDepartment = errors.New("employee: invalid department")
	ErrInvalidRole       = errors.New("employee: invalid role")
	ErrInvalidEmail      = errors.New("employee: invalid email")
	ErrInvalidStatus     = errors.New("employee: invalid status")
	ErrInvalidStartDate  = errors.New("employee: invalid start date")
	ErrEmployeeNotFound  = errors.New("employee: not found")
)
