package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/workzen/hrms-backend-go/internal/domain/attendance"
	"github.com/workzen/hrms-backend-go/internal/domain/employee"
	"github.com/workzen/hrms-backend-go/internal/domain/payroll"
	"github.com/workzen/hrms-backend-go/internal/pkg/database"
	"github.com/workzen/hrms-backend-go/internal/pkg/pdf"
	"github.com/workzen/hrms-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db *database.DB
	payroll.PayrollRepository
	attendance.AttendanceRepository
	employee.EmployeeRepository

	now func() time.Time
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:                   db,
		PayrollRepository:    payrollRepo,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		now:                  time.Now,
	}
}

// Generate implements payroll.PayrollService.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	month, err := time.Parse("2006-01", req.SalaryMonth)
	if err != nil {
		return payroll.PayrollResponse{}, payroll.ErrInvalidSalaryMonth
	}

	// Attendance aggregation and the insert share a transaction; the
	// unique (employee, month) constraint backs the duplicate check.
	var created payroll.PayrollRecord
	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		existing, err := s.PayrollRepository.GetByEmployeeAndMonth(ctx, emp.ID, month)
		if err != nil {
			return err
		}
		if existing != nil {
			return payroll.ErrPayrollAlreadyGenerated
		}

		from := month
		to := month.AddDate(0, 1, -1)

		daysWorked, err := s.AttendanceRepository.CountByStatus(ctx, emp.ID, from, to, attendance.StatusPresent)
		if err != nil {
			return err
		}
		daysOnLeave, err := s.AttendanceRepository.CountByStatus(ctx, emp.ID, from, to, attendance.StatusOnLeave)
		if err != nil {
			return err
		}
		overtimeHours, err := s.AttendanceRepository.SumOvertimeHours(ctx, emp.ID, from, to)
		if err != nil {
			return err
		}

		breakdown := payroll.Compute(emp.Salary, overtimeHours)

		now := s.now()
		rec := payroll.PayrollRecord{
			EmployeeID:  emp.ID,
			SalaryMonth: month,

			BasicSalary:        breakdown.Split.Basic,
			HRA:                breakdown.Split.HRA,
			TransportAllowance: breakdown.Split.Transport,
			MedicalAllowance:   breakdown.Split.Medical,
			OtherAllowances:    breakdown.Split.Other,
			OvertimeAmount:     breakdown.OvertimeAmount,
			Bonus:              breakdown.Bonus,
			GrossSalary:        breakdown.GrossSalary,

			ProvidentFund:   breakdown.ProvidentFund,
			ProfessionalTax: breakdown.ProfessionalTax,
			IncomeTax:       breakdown.IncomeTax,
			OtherDeductions: breakdown.OtherDeductions,
			TotalDeductions: breakdown.TotalDeductions,
			NetSalary:       breakdown.NetSalary,

			DaysWorked:    daysWorked,
			DaysOnLeave:   daysOnLeave,
			OvertimeHours: overtimeHours,

			IsProcessed:   true,
			ProcessedDate: &now,
			ProcessedBy:   req.ProcessedBy,
		}

		created, err = s.PayrollRepository.Create(ctx, rec)
		return err
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	slog.Info("Payroll generated",
		"payroll_id", created.ID, "employee_id", emp.ID,
		"salary_month", req.SalaryMonth, "net_salary", created.NetSalary)

	return payroll.ToResponse(created), nil
}

// Get implements payroll.PayrollService.
func (s *PayrollServiceImpl) Get(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	rec, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return payroll.ToResponse(rec), nil
}

// GetByEmployeeAndMonth implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetByEmployeeAndMonth(ctx context.Context, employeeID, salaryMonth string) (payroll.PayrollResponse, error) {
	month, err := time.Parse("2006-01", salaryMonth)
	if err != nil {
		return payroll.PayrollResponse{}, payroll.ErrInvalidSalaryMonth
	}

	rec, err := s.PayrollRepository.GetByEmployeeAndMonth(ctx, employeeID, month)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if rec == nil {
		return payroll.PayrollResponse{}, payroll.ErrPayrollNotFound
	}

	return payroll.ToResponse(*rec), nil
}

// ListByYear implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListByYear(ctx context.Context, employeeID string, year int) ([]payroll.PayrollResponse, error) {
	records, err := s.PayrollRepository.ListByYear(ctx, employeeID, year)
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

// ListByMonth implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListByMonth(ctx context.Context, year, month int) ([]payroll.PayrollResponse, error) {
	records, err := s.PayrollRepository.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

// PayslipPDF implements payroll.PayrollService.
func (s *PayrollServiceImpl) PayslipPDF(ctx context.Context, id string) ([]byte, error) {
	rec, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	doc, err := pdf.Payslip(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to build payslip for %s: %w", rec.ID, err)
	}

	return doc, nil
}

func toResponses(records []payroll.PayrollRecord) []payroll.PayrollResponse {
	responses := make([]payroll.PayrollResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, payroll.ToResponse(rec))
	}
	return responses
}
