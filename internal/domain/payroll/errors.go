package payroll

import "errors"

var (
	ErrPayrollNotFound         = errors.New("payroll record not found")
	ErrPayrollAlreadyGenerated = errors.New("payroll already generated for this month")
	ErrInvalidSalaryMonth      = errors.New("invalid salary month")
)
