package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmailExists          = errors.New("email already registered")
	ErrEmployeeCodeExists   = errors.New("employee code already exists")
	ErrManagerNotFound      = errors.New("manager not found")
	ErrInvalidDepartment    = errors.New("invalid department")
	ErrInvalidRole          = errors.New("invalid role")
	ErrInvalidStatus        = errors.New("invalid employee status")
	ErrInsufficientRole     = errors.New("insufficient role for this operation")
	ErrEmployeeNotOperative = errors.New("employee status does not permit this operation")
)
