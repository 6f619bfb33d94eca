package payroll

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workzen/hrms-backend-go/internal/domain/attendance"
	"github.com/workzen/hrms-backend-go/internal/domain/employee"
	"github.com/workzen/hrms-backend-go/internal/domain/payroll"
)

type fakePayrollRepo struct {
	records map[string]payroll.PayrollRecord
	seq     int
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{records: make(map[string]payroll.PayrollRecord)}
}

func (f *fakePayrollRepo) Create(ctx context.Context, rec payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	for _, existing := range f.records {
		if existing.EmployeeID == rec.EmployeeID && existing.SalaryMonth.Equal(rec.SalaryMonth) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollAlreadyGenerated
		}
	}
	f.seq++
	rec.ID = fmt.Sprintf("pay-%d", f.seq)
	f.records[rec.ID] = rec
	return rec, nil
}

func (f *fakePayrollRepo) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	rec, ok := f.records[id]
	if !ok {
		return payroll.PayrollRecord{}, payroll.ErrPayrollNotFound
	}
	return rec, nil
}

func (f *fakePayrollRepo) GetByEmployeeAndMonth(ctx context.Context, employeeID string, month time.Time) (*payroll.PayrollRecord, error) {
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && rec.SalaryMonth.Equal(month) {
			copied := rec
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakePayrollRepo) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.PayrollRecord, error) {
	var out []payroll.PayrollRecord
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakePayrollRepo) ListByYear(ctx context.Context, employeeID string, year int) ([]payroll.PayrollRecord, error) {
	var out []payroll.PayrollRecord
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && rec.SalaryMonth.Year() == year {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakePayrollRepo) ListByMonth(ctx context.Context, year, month int) ([]payroll.PayrollRecord, error) {
	var out []payroll.PayrollRecord
	for _, rec := range f.records {
		if rec.SalaryMonth.Year() == year && int(rec.SalaryMonth.Month()) == month {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.records = append(f.records, att)
	return att, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error { return nil }
func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error                 { return nil }

func (f *fakeAttendanceRepo) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) CountByStatus(ctx context.Context, employeeID string, from, to time.Time, status attendance.Status) (int, error) {
	count := 0
	for _, att := range f.records {
		if att.EmployeeID == employeeID && att.Status == status && !att.Date.Before(from) && !att.Date.After(to) {
			count++
		}
	}
	return count, nil
}

func (f *fakeAttendanceRepo) SumOvertimeHours(ctx context.Context, employeeID string, from, to time.Time) (float64, error) {
	sum := 0.0
	for _, att := range f.records {
		if att.EmployeeID == employeeID && att.OvertimeHours != nil && !att.Date.Before(from) && !att.Date.After(to) {
			sum += *att.OvertimeHours
		}
	}
	return sum, nil
}

func (f *fakeAttendanceRepo) AvgWorkHours(ctx context.Context, employeeID string, from, to time.Time) (float64, error) {
	return 0, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	repo := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, emp := range emps {
		repo.employees[emp.ID] = emp
	}
	return repo
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.ListEmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error             { return nil }

func (f *fakeEmployeeRepo) ListByManager(ctx context.Context, managerID string) ([]employee.Employee, error) {
	return nil, nil
}

func salariedEmployee(id string, salary int64) employee.Employee {
	return employee.Employee{
		ID:     id,
		Status: employee.StatusActive,
		Salary: decimal.NewFromInt(salary),
	}
}

func newTestService(payRepo *fakePayrollRepo, attRepo *fakeAttendanceRepo, empRepo *fakeEmployeeRepo) *PayrollServiceImpl {
	return &PayrollServiceImpl{
		PayrollRepository:    payRepo,
		AttendanceRepository: attRepo,
		EmployeeRepository:   empRepo,
		now: func() time.Time {
			return time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC)
		},
	}
}

func marchDay(day int, status attendance.Status, overtime float64) attendance.Attendance {
	return attendance.Attendance{
		EmployeeID:    "emp-1",
		Date:          time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC),
		Status:        status,
		OvertimeHours: &overtime,
	}
}

func TestGenerate_FullBreakdown(t *testing.T) {
	ctx := context.Background()
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		marchDay(2, attendance.StatusPresent, 2.5),
		marchDay(3, attendance.StatusPresent, 1.5),
		marchDay(4, attendance.StatusOnLeave, 0),
		marchDay(5, attendance.StatusLate, 0),
	}}
	empRepo := newFakeEmployeeRepo(salariedEmployee("emp-1", 60_000))
	svc := newTestService(newFakePayrollRepo(), attRepo, empRepo)

	processedBy := "hr-1"
	resp, err := svc.Generate(ctx, payroll.GeneratePayrollRequest{
		EmployeeID:  "emp-1",
		SalaryMonth: "2026-03",
		ProcessedBy: &processedBy,
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-03", resp.SalaryMonth)
	assert.Equal(t, 2, resp.DaysWorked)
	assert.Equal(t, 1, resp.DaysOnLeave)
	assert.Equal(t, 4.0, resp.OvertimeHours)

	// 60k splits 50/20/10/10/10.
	assert.True(t, resp.BasicSalary.Equal(decimal.NewFromInt(30_000)))
	assert.True(t, resp.HRA.Equal(decimal.NewFromInt(12_000)))
	assert.True(t, resp.TransportAllowance.Equal(decimal.NewFromInt(6_000)))

	// Hourly 125, 4h at 1.5x = 750.
	assert.True(t, resp.OvertimeAmount.Equal(decimal.NewFromInt(750)))
	assert.True(t, resp.GrossSalary.Equal(decimal.NewFromInt(60_750)))

	assert.True(t, resp.ProvidentFund.Equal(decimal.NewFromInt(3_600)))
	assert.True(t, resp.ProfessionalTax.Equal(decimal.NewFromInt(200)))
	assert.True(t, resp.IncomeTax.IsZero())
	assert.True(t, resp.NetSalary.Equal(decimal.NewFromInt(56_950)))

	assert.True(t, resp.IsProcessed)
	require.NotNil(t, resp.ProcessedBy)
	assert.Equal(t, "hr-1", *resp.ProcessedBy)
	require.NotNil(t, resp.ProcessedDate)
}

func TestGenerate_DuplicateMonthRejected(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakePayrollRepo(), &fakeAttendanceRepo{},
		newFakeEmployeeRepo(salariedEmployee("emp-1", 60_000)))

	req := payroll.GeneratePayrollRequest{EmployeeID: "emp-1", SalaryMonth: "2026-03"}
	_, err := svc.Generate(ctx, req)
	require.NoError(t, err)

	_, err = svc.Generate(ctx, req)
	assert.ErrorIs(t, err, payroll.ErrPayrollAlreadyGenerated)
}

func TestGenerate_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakePayrollRepo(), &fakeAttendanceRepo{}, newFakeEmployeeRepo())

	_, err := svc.Generate(ctx, payroll.GeneratePayrollRequest{EmployeeID: "missing", SalaryMonth: "2026-03"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetByEmployeeAndMonth_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakePayrollRepo(), &fakeAttendanceRepo{},
		newFakeEmployeeRepo(salariedEmployee("emp-1", 60_000)))

	_, err := svc.GetByEmployeeAndMonth(ctx, "emp-1", "2026-03")
	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)
}

func TestGetByEmployeeAndMonth_InvalidMonth(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakePayrollRepo(), &fakeAttendanceRepo{},
		newFakeEmployeeRepo(salariedEmployee("emp-1", 60_000)))

	_, err := svc.GetByEmployeeAndMonth(ctx, "emp-1", "march-2026")
	assert.ErrorIs(t, err, payroll.ErrInvalidSalaryMonth)
}

func TestListByYear(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakePayrollRepo(), &fakeAttendanceRepo{},
		newFakeEmployeeRepo(salariedEmployee("emp-1", 60_000)))

	for _, month := range []string{"2025-12", "2026-01", "2026-02"} {
		_, err := svc.Generate(ctx, payroll.GeneratePayrollRequest{EmployeeID: "emp-1", SalaryMonth: month})
		require.NoError(t, err)
	}

	records, err := svc.ListByYear(ctx, "emp-1", 2026)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestPayslipPDF(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakePayrollRepo(), &fakeAttendanceRepo{},
		newFakeEmployeeRepo(salariedEmployee("emp-1", 60_000)))

	resp, err := svc.Generate(ctx, payroll.GeneratePayrollRequest{EmployeeID: "emp-1", SalaryMonth: "2026-03"})
	require.NoError(t, err)

	doc, err := svc.PayslipPDF(ctx, resp.ID)
	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.Equal(t, "%PDF", string(doc[:4]))
}

func TestPayslipPDF_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakePayrollRepo(), &fakeAttendanceRepo{}, newFakeEmployeeRepo())

	_, err := svc.PayslipPDF(ctx, "missing")
	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)
}
