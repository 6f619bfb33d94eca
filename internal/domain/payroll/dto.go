package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/workzen/hrms-backend-go/internal/pkg/validator"
)

type GeneratePayrollRequest struct {
	EmployeeID  string  `json:"employee_id"`
	SalaryMonth string  `json:"salary_month"` // YYYY-MM
	ProcessedBy *string `json:"processed_by,omitempty"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidMonth(r.SalaryMonth); !ok {
		errs = append(errs, validator.ValidationError{Field: "salary_month", Message: "salary_month must be YYYY-MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	SalaryMonth  string  `json:"salary_month"`

	BasicSalary        decimal.Decimal `json:"basic_salary"`
	HRA                decimal.Decimal `json:"hra"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	MedicalAllowance   decimal.Decimal `json:"medical_allowance"`
	OtherAllowances    decimal.Decimal `json:"other_allowances"`
	OvertimeAmount     decimal.Decimal `json:"overtime_amount"`
	Bonus              decimal.Decimal `json:"bonus"`
	GrossSalary        decimal.Decimal `json:"gross_salary"`

	ProvidentFund   decimal.Decimal `json:"provident_fund"`
	ProfessionalTax decimal.Decimal `json:"professional_tax"`
	IncomeTax       decimal.Decimal `json:"income_tax"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`

	NetSalary decimal.Decimal `json:"net_salary"`

	DaysWorked    int     `json:"days_worked"`
	DaysOnLeave   int     `json:"days_on_leave"`
	OvertimeHours float64 `json:"overtime_hours"`

	IsProcessed   bool       `json:"is_processed"`
	ProcessedDate *time.Time `json:"processed_date,omitempty"`
	ProcessedBy   *string    `json:"processed_by,omitempty"`
}

func ToResponse(rec PayrollRecord) PayrollResponse {
	return PayrollResponse{
		ID:                 rec.ID,
		EmployeeID:         rec.EmployeeID,
		EmployeeName:       rec.EmployeeName,
		EmployeeCode:       rec.EmployeeCode,
		SalaryMonth:        rec.SalaryMonth.Format("2006-01"),
		BasicSalary:        rec.BasicSalary,
		HRA:                rec.HRA,
		TransportAllowance: rec.TransportAllowance,
		MedicalAllowance:   rec.MedicalAllowance,
		OtherAllowances:    rec.OtherAllowances,
		OvertimeAmount:     rec.OvertimeAmount,
		Bonus:              rec.Bonus,
		GrossSalary:        rec.GrossSalary,
		ProvidentFund:      rec.ProvidentFund,
		ProfessionalTax:    rec.ProfessionalTax,
		IncomeTax:          rec.IncomeTax,
		OtherDeductions:    rec.OtherDeductions,
		TotalDeductions:    rec.TotalDeductions,
		NetSalary:          rec.NetSalary,
		DaysWorked:         rec.DaysWorked,
		DaysOnLeave:        rec.DaysOnLeave,
		OvertimeHours:      rec.OvertimeHours,
		IsProcessed:        rec.IsProcessed,
		ProcessedDate:      rec.ProcessedDate,
		ProcessedBy:        rec.ProcessedBy,
	}
}
