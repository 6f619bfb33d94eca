package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollRecord is one employee's payroll for one calendar month. Records
// are immutable once generated; regeneration for the same month is
// rejected, never merged.
type PayrollRecord struct {
	ID          string
	EmployeeID  string
	SalaryMonth time.Time // first day of the month

	// Additive components
	BasicSalary        decimal.Decimal
	HRA                decimal.Decimal
	TransportAllowance decimal.Decimal
	MedicalAllowance   decimal.Decimal
	OtherAllowances    decimal.Decimal
	OvertimeAmount     decimal.Decimal
	Bonus              decimal.Decimal
	GrossSalary        decimal.Decimal

	// Subtractive components
	ProvidentFund   decimal.Decimal
	ProfessionalTax decimal.Decimal
	IncomeTax       decimal.Decimal
	OtherDeductions decimal.Decimal
	TotalDeductions decimal.Decimal

	NetSalary decimal.Decimal

	DaysWorked    int
	DaysOnLeave   int
	OvertimeHours float64

	IsProcessed   bool
	ProcessedDate *time.Time
	ProcessedBy   *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
