package payroll

import "context"

// PayrollService defines business logic for payroll generation.
type PayrollService interface {
	// Generate derives and stores the payroll breakdown for one
	// employee and month. Fails when a record already exists.
	Generate(ctx context.Context, req GeneratePayrollRequest) (PayrollResponse, error)

	Get(ctx context.Context, id string) (PayrollResponse, error)
	GetByEmployeeAndMonth(ctx context.Context, employeeID, salaryMonth string) (PayrollResponse, error)
	ListByYear(ctx context.Context, employeeID string, year int) ([]PayrollResponse, error)
	ListByMonth(ctx context.Context, year, month int) ([]PayrollResponse, error)

	// PayslipPDF renders a payslip document for a generated record.
	PayslipPDF(ctx context.Context, id string) ([]byte, error)
}
