package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/workzen/hrms-backend-go/internal/domain/payroll"
)

// Payslip renders a single payroll record as an A4 payslip document.
func Payslip(rec payroll.PayrollRecord) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	if rec.EmployeeName != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", *rec.EmployeeName))
		pdf.Ln(7)
	}
	if rec.EmployeeCode != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Employee Code: %s", *rec.EmployeeCode))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Salary Month: %s", rec.SalaryMonth.Format("January 2006")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	line(pdf, "Basic Salary", rec.BasicSalary.StringFixed(2))
	line(pdf, "HRA", rec.HRA.StringFixed(2))
	line(pdf, "Transport Allowance", rec.TransportAllowance.StringFixed(2))
	line(pdf, "Medical Allowance", rec.MedicalAllowance.StringFixed(2))
	line(pdf, "Other Allowances", rec.OtherAllowances.StringFixed(2))
	line(pdf, fmt.Sprintf("Overtime (%.2f hrs)", rec.OvertimeHours), rec.OvertimeAmount.StringFixed(2))
	line(pdf, "Bonus", rec.Bonus.StringFixed(2))
	pdf.SetFont("Helvetica", "B", 12)
	line(pdf, "Gross Salary", rec.GrossSalary.StringFixed(2))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Deductions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	line(pdf, "Provident Fund", rec.ProvidentFund.StringFixed(2))
	line(pdf, "Professional Tax", rec.ProfessionalTax.StringFixed(2))
	line(pdf, "Income Tax", rec.IncomeTax.StringFixed(2))
	line(pdf, "Other Deductions", rec.OtherDeductions.StringFixed(2))
	pdf.SetFont("Helvetica", "B", 12)
	line(pdf, "Total Deductions", rec.TotalDeductions.StringFixed(2))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	line(pdf, "Net Salary", rec.NetSalary.StringFixed(2))
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Days Worked: %d    Days On Leave: %d", rec.DaysWorked, rec.DaysOnLeave))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip: %w", err)
	}

	return buf.Bytes(), nil
}

func line(pdf *gofpdf.Fpdf, label, amount string) {
	pdf.Cell(120, 7, label)
	pdf.CellFormat(40, 7, amount, "", 0, "R", false, 0, "")
	pdf.Ln(7)
}
