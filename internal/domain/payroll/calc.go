package payroll

import "github.com/shopspring/decimal"

// Salary split percentages; the five sum to exactly 100% of base salary.
var (
	basicShare     = decimal.NewFromFloat(0.5)
	hraShare       = decimal.NewFromFloat(0.2)
	transportShare = decimal.NewFromFloat(0.1)
	medicalShare   = decimal.NewFromFloat(0.1)
	otherShare     = decimal.NewFromFloat(0.1)

	pfRate             = decimal.NewFromFloat(0.12)
	professionalTax    = decimal.NewFromInt(200)
	overtimeMultiplier = decimal.NewFromFloat(1.5)

	// Hourly rate denominator: 8 hours x 30 days.
	monthlyWorkHours = decimal.NewFromInt(8 * 30)
)

// Tax slab boundaries and the cumulative tax owed below each.
var (
	slab1Limit = decimal.NewFromInt(250_000)
	slab2Limit = decimal.NewFromInt(500_000)
	slab3Limit = decimal.NewFromInt(1_000_000)

	slab2Rate = decimal.NewFromFloat(0.05)
	slab3Rate = decimal.NewFromFloat(0.20)
	slab4Rate = decimal.NewFromFloat(0.30)

	slab2Base = decimal.NewFromInt(12_500)  // full slab 2: 5% of 250k
	slab3Base = decimal.NewFromInt(112_500) // slab 2 + 20% of 500k
)

// SalarySplit is the fixed-percentage decomposition of base salary.
type SalarySplit struct {
	Basic     decimal.Decimal
	HRA       decimal.Decimal
	Transport decimal.Decimal
	Medical   decimal.Decimal
	Other     decimal.Decimal
}

// Split decomposes a monthly base salary into its components.
func Split(salary decimal.Decimal) SalarySplit {
	return SalarySplit{
		Basic:     salary.Mul(basicShare),
		HRA:       salary.Mul(hraShare),
		Transport: salary.Mul(transportShare),
		Medical:   salary.Mul(medicalShare),
		Other:     salary.Mul(otherShare),
	}
}

// HourlyRate derives the overtime base rate from basic salary.
func HourlyRate(basic decimal.Decimal) decimal.Decimal {
	return basic.Div(monthlyWorkHours)
}

// OvertimePay values overtime hours at 1.5x the hourly rate.
func OvertimePay(basic decimal.Decimal, overtimeHours float64) decimal.Decimal {
	return decimal.NewFromFloat(overtimeHours).Mul(HourlyRate(basic)).Mul(overtimeMultiplier)
}

// ProvidentFund is 12% of basic salary.
func ProvidentFund(basic decimal.Decimal) decimal.Decimal {
	return basic.Mul(pfRate)
}

// ProfessionalTax is a flat statutory amount.
func ProfessionalTax() decimal.Decimal {
	return professionalTax
}

// IncomeTax applies the progressive slab function to gross salary.
// Continuous at the boundaries: 250k -> 0, 500k -> 12,500, 1M -> 112,500.
func IncomeTax(gross decimal.Decimal) decimal.Decimal {
	switch {
	case gross.LessThanOrEqual(slab1Limit):
		return decimal.Zero
	case gross.LessThanOrEqual(slab2Limit):
		return gross.Sub(slab1Limit).Mul(slab2Rate)
	case gross.LessThanOrEqual(slab3Limit):
		return slab2Base.Add(gross.Sub(slab2Limit).Mul(slab3Rate))
	default:
		return slab3Base.Add(gross.Sub(slab3Limit).Mul(slab4Rate))
	}
}

// Breakdown is the full derived payroll arithmetic for one month.
type Breakdown struct {
	Split           SalarySplit
	OvertimeAmount  decimal.Decimal
	Bonus           decimal.Decimal
	GrossSalary     decimal.Decimal
	ProvidentFund   decimal.Decimal
	ProfessionalTax decimal.Decimal
	IncomeTax       decimal.Decimal
	OtherDeductions decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
}

// Compute derives the complete breakdown from base salary and monthly
// overtime hours. Bonus and other deductions default to zero; they are
// extension points for discretionary input.
func Compute(salary decimal.Decimal, overtimeHours float64) Breakdown {
	split := Split(salary)
	overtimeAmount := OvertimePay(split.Basic, overtimeHours)
	bonus := decimal.Zero

	gross := split.Basic.
		Add(split.HRA).
		Add(split.Transport).
		Add(split.Medical).
		Add(split.Other).
		Add(overtimeAmount).
		Add(bonus)

	pf := ProvidentFund(split.Basic)
	profTax := ProfessionalTax()
	incomeTax := IncomeTax(gross)
	otherDeductions := decimal.Zero
	totalDeductions := pf.Add(profTax).Add(incomeTax).Add(otherDeductions)

	return Breakdown{
		Split:           split,
		OvertimeAmount:  overtimeAmount,
		Bonus:           bonus,
		GrossSalary:     gross,
		ProvidentFund:   pf,
		ProfessionalTax: profTax,
		IncomeTax:       incomeTax,
		OtherDeductions: otherDeductions,
		TotalDeductions: totalDeductions,
		NetSalary:       gross.Sub(totalDeductions),
	}
}
