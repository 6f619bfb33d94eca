package payroll

import (
	"context"
	"time"
)

// PayrollRepository defines data access methods for payroll records. The
// (employee_id, salary_month) pair is unique; the database constraint
// backs the one-record-per-month invariant under concurrent generation.
type PayrollRepository interface {
	Create(ctx context.Context, rec PayrollRecord) (PayrollRecord, error)
	GetByID(ctx context.Context, id string) (PayrollRecord, error)

	// GetByEmployeeAndMonth returns nil when no record exists.
	GetByEmployeeAndMonth(ctx context.Context, employeeID string, month time.Time) (*PayrollRecord, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]PayrollRecord, error)
	ListByYear(ctx context.Context, employeeID string, year int) ([]PayrollRecord, error)
	ListByMonth(ctx context.Context, year, month int) ([]PayrollRecord, error)
}
