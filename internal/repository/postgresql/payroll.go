package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/workzen/hrms-backend-go/internal/domain/payroll"
	"github.com/workzen/hrms-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	p.id, p.employee_id, p.salary_month,
	p.basic_salary, p.hra, p.transport_allowance, p.medical_allowance,
	p.other_allowances, p.overtime_amount, p.bonus, p.gross_salary,
	p.provident_fund, p.professional_tax, p.income_tax, p.other_deductions,
	p.total_deductions, p.net_salary,
	p.days_worked, p.days_on_leave, p.overtime_hours,
	p.is_processed, p.processed_date, p.processed_by,
	p.created_at, p.updated_at
`

func scanPayroll(row pgx.Row, withEmployee bool) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	dest := []any{
		&rec.ID, &rec.EmployeeID, &rec.SalaryMonth,
		&rec.BasicSalary, &rec.HRA, &rec.TransportAllowance, &rec.MedicalAllowance,
		&rec.OtherAllowances, &rec.OvertimeAmount, &rec.Bonus, &rec.GrossSalary,
		&rec.ProvidentFund, &rec.ProfessionalTax, &rec.IncomeTax, &rec.OtherDeductions,
		&rec.TotalDeductions, &rec.NetSalary,
		&rec.DaysWorked, &rec.DaysOnLeave, &rec.OvertimeHours,
		&rec.IsProcessed, &rec.ProcessedDate, &rec.ProcessedBy,
		&rec.CreatedAt, &rec.UpdatedAt,
	}
	if withEmployee {
		dest = append(dest, &rec.EmployeeName, &rec.EmployeeCode)
	}
	return rec, row.Scan(dest...)
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepository) Create(ctx context.Context, rec payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	rec.ID = uuid.New().String()

	query := `
		INSERT INTO payrolls (
			id, employee_id, salary_month,
			basic_salary, hra, transport_allowance, medical_allowance,
			other_allowances, overtime_amount, bonus, gross_salary,
			provident_fund, professional_tax, income_tax, other_deductions,
			total_deductions, net_salary,
			days_worked, days_on_leave, overtime_hours,
			is_processed, processed_date, processed_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID, rec.EmployeeID, rec.SalaryMonth,
		rec.BasicSalary, rec.HRA, rec.TransportAllowance, rec.MedicalAllowance,
		rec.OtherAllowances, rec.OvertimeAmount, rec.Bonus, rec.GrossSalary,
		rec.ProvidentFund, rec.ProfessionalTax, rec.IncomeTax, rec.OtherDeductions,
		rec.TotalDeductions, rec.NetSalary,
		rec.DaysWorked, rec.DaysOnLeave, rec.OvertimeHours,
		rec.IsProcessed, rec.ProcessedDate, rec.ProcessedBy,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payroll.PayrollRecord{}, payroll.ErrPayrollAlreadyGenerated
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return rec, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `,
			   e.first_name || ' ' || e.last_name, e.employee_code
		FROM payrolls p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	rec, err := scanPayroll(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record by id: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndMonth implements payroll.PayrollRepository.
func (r *payrollRepository) GetByEmployeeAndMonth(ctx context.Context, employeeID string, month time.Time) (*payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payrolls p
		WHERE p.employee_id = $1
		  AND p.salary_month = $2
		LIMIT 1
	`

	rec, err := scanPayroll(q.QueryRow(ctx, query, employeeID, month), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // no record for the month
		}
		return nil, fmt.Errorf("failed to get payroll record by employee and month: %w", err)
	}

	return &rec, nil
}

// ListByEmployee implements payroll.PayrollRepository.
func (r *payrollRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payrolls p
		WHERE p.employee_id = $1
		ORDER BY p.salary_month DESC
	`

	return r.list(ctx, q, query, false, employeeID)
}

// ListByYear implements payroll.PayrollRepository.
func (r *payrollRepository) ListByYear(ctx context.Context, employeeID string, year int) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payrolls p
		WHERE p.employee_id = $1
		  AND EXTRACT(YEAR FROM p.salary_month) = $2
		ORDER BY p.salary_month ASC
	`

	return r.list(ctx, q, query, false, employeeID, year)
}

// ListByMonth implements payroll.PayrollRepository.
func (r *payrollRepository) ListByMonth(ctx context.Context, year, month int) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `,
			   e.first_name || ' ' || e.last_name, e.employee_code
		FROM payrolls p
		JOIN employees e ON e.id = p.employee_id
		WHERE EXTRACT(YEAR FROM p.salary_month) = $1
		  AND EXTRACT(MONTH FROM p.salary_month) = $2
		ORDER BY e.employee_code ASC
	`

	return r.list(ctx, q, query, true, year, month)
}

func (r *payrollRepository) list(ctx context.Context, q database.Querier, query string, withEmployee bool, args ...any) ([]payroll.PayrollRecord, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanPayroll(rows, withEmployee)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
