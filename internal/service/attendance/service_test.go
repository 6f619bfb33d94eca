package attendance

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
)

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
	seq     int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	for _, existing := range f.records {
		if existing.EmployeeID == att.EmployeeID && existing.Date.Equal(att.Date) {
			return attendance.Attendance{}, attendance.ErrDuplicateRecord
		}
	}
	f.seq++
	att.ID = fmt.Sprintf("att-%d", f.seq)
	f.records[att.ID] = att
	return att, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	att, ok := f.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	for _, att := range f.records {
		if att.EmployeeID == employeeID && att.Date.Equal(date) {
			copied := att
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	if _, ok := f.records[att.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	f.records[att.ID] = att
	return nil
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	delete(f.records, id)
	return nil
}

func (f *fakeAttendanceRepo) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		if att.EmployeeID == employeeID && !att.Date.Before(from) && !att.Date.After(to) {
			out = append(out, att)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		if att.Date.Equal(date) {
			out = append(out, att)
		}
	}
	return out, nil
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
	sum, count := 0.0, 0
	for _, att := range f.records {
		if att.EmployeeID == employeeID && att.WorkHours != nil && !att.Date.Before(from) && !att.Date.After(to) {
			sum += *att.WorkHours
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return sum / float64(count), nil
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
	for _, emp := range f.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.EmployeeCode == code {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.ListEmployeeFilter) ([]employee.Employee, int64, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, int64(len(out)), nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	if _, ok := f.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepo) ListByManager(ctx context.Context, managerID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.ManagerID != nil && *emp.ManagerID == managerID {
			out = append(out, emp)
		}
	}
	return out, nil
}

func activeEmployee(id string) employee.Employee {
	return employee.Employee{
		ID:           id,
		EmployeeCode: "EMP-0001",
		FirstName:    "Asha",
		LastName:     "Verma",
		Email:        id + "@example.com",
		Role:         employee.RoleSeniorDeveloper,
		Status:       employee.StatusActive,
		Salary:       decimal.NewFromInt(60_000),
	}
}

func newTestService(attRepo *fakeAttendanceRepo, empRepo *fakeEmployeeRepo, at time.Time) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository: attRepo,
		EmployeeRepository:   empRepo,
		now:                  func() time.Time { return at },
	}
}

func TestCheckIn_OnTime(t *testing.T) {
	ctx := context.Background()
	empRepo := newFakeEmployeeRepo(activeEmployee("emp-1"))
	svc := newTestService(newFakeAttendanceRepo(), empRepo,
		time.Date(2026, time.March, 10, 9, 10, 0, 0, time.UTC))

	resp, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.False(t, resp.IsLate)
	assert.Nil(t, resp.LateMinutes)
	assert.Equal(t, "2026-03-10", resp.Date)
	require.NotNil(t, resp.CheckInTime)
}

func TestCheckIn_LateAfterGrace(t *testing.T) {
	ctx := context.Background()
	empRepo := newFakeEmployeeRepo(activeEmployee("emp-1"))
	svc := newTestService(newFakeAttendanceRepo(), empRepo,
		time.Date(2026, time.March, 10, 9, 20, 0, 0, time.UTC))

	resp, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, resp.Status)
	assert.True(t, resp.IsLate)
	require.NotNil(t, resp.LateMinutes)
	assert.Equal(t, 20, *resp.LateMinutes)
}

func TestCheckIn_TwicePerDayRejected(t *testing.T) {
	ctx := context.Background()
	empRepo := newFakeEmployeeRepo(activeEmployee("emp-1"))
	svc := newTestService(newFakeAttendanceRepo(), empRepo,
		time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC))

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckIn_FillsRecordWithoutCheckIn(t *testing.T) {
	ctx := context.Background()
	attRepo := newFakeAttendanceRepo()
	empRepo := newFakeEmployeeRepo(activeEmployee("emp-1"))
	svc := newTestService(attRepo, empRepo,
		time.Date(2026, time.March, 10, 9, 20, 0, 0, time.UTC))

	// A manually entered record with no check-in stamp takes the
	// check-in instead of blocking it.
	existing, err := attRepo.Create(ctx, attendance.Attendance{
		EmployeeID: "emp-1",
		Date:       time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		Status:     attendance.StatusAbsent,
	})
	require.NoError(t, err)

	resp, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, resp.ID)
	assert.Equal(t, attendance.StatusLate, resp.Status)
	require.NotNil(t, resp.CheckInTime)
	require.NotNil(t, resp.LateMinutes)
	assert.Equal(t, 20, *resp.LateMinutes)
	assert.Len(t, attRepo.records, 1)
}

func TestCheckIn_TerminatedEmployeeRejected(t *testing.T) {
	ctx := context.Background()
	emp := activeEmployee("emp-1")
	emp.Status = employee.StatusTerminated
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(emp),
		time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC))

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotOperative)
}

func TestCheckIn_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(),
		time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC))

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "missing"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCheckOut_ComputesHours(t *testing.T) {
	ctx := context.Background()
	attRepo := newFakeAttendanceRepo()
	empRepo := newFakeEmployeeRepo(activeEmployee("emp-1"))

	svc := newTestService(attRepo, empRepo,
		time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC))
	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	svc.now = func() time.Time {
		return time.Date(2026, time.March, 10, 17, 30, 0, 0, time.UTC)
	}
	resp, err := svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	require.NotNil(t, resp.WorkHours)
	require.NotNil(t, resp.OvertimeHours)
	assert.Equal(t, 8.5, *resp.WorkHours)
	assert.Equal(t, 0.5, *resp.OvertimeHours)
}

func TestCheckOut_WithoutCheckIn(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(activeEmployee("emp-1")),
		time.Date(2026, time.March, 10, 17, 0, 0, 0, time.UTC))

	_, err := svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOut_TwiceRejected(t *testing.T) {
	ctx := context.Background()
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(attRepo, newFakeEmployeeRepo(activeEmployee("emp-1")),
		time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC))

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	svc.now = func() time.Time {
		return time.Date(2026, time.March, 10, 17, 0, 0, 0, time.UTC)
	}
	_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestCreate_DuplicateDateRejected(t *testing.T) {
	ctx := context.Background()
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(attRepo, newFakeEmployeeRepo(activeEmployee("emp-1")),
		time.Date(2026, time.March, 12, 10, 0, 0, 0, time.UTC))

	req := attendance.CreateAttendanceRequest{EmployeeID: "emp-1", Date: "2026-03-11"}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, attendance.ErrDuplicateRecord)
}

func TestCreate_WithoutTimesDefaultsAbsent(t *testing.T) {
	ctx := context.Background()
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(attRepo, newFakeEmployeeRepo(activeEmployee("emp-1")),
		time.Date(2026, time.March, 12, 10, 0, 0, 0, time.UTC))

	resp, err := svc.Create(ctx, attendance.CreateAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-11",
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusAbsent, resp.Status)
	assert.False(t, resp.IsLate)
	assert.Nil(t, resp.CheckInTime)
}

func TestCreate_DerivesLatenessAndHours(t *testing.T) {
	ctx := context.Background()
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(attRepo, newFakeEmployeeRepo(activeEmployee("emp-1")),
		time.Date(2026, time.March, 12, 10, 0, 0, 0, time.UTC))

	checkIn := time.Date(2026, time.March, 11, 9, 45, 0, 0, time.UTC)
	checkOut := time.Date(2026, time.March, 11, 18, 45, 0, 0, time.UTC)
	resp, err := svc.Create(ctx, attendance.CreateAttendanceRequest{
		EmployeeID:   "emp-1",
		Date:         "2026-03-11",
		CheckInTime:  &checkIn,
		CheckOutTime: &checkOut,
	})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusLate, resp.Status)
	require.NotNil(t, resp.LateMinutes)
	assert.Equal(t, 45, *resp.LateMinutes)
	require.NotNil(t, resp.WorkHours)
	assert.Equal(t, 9.0, *resp.WorkHours)
	require.NotNil(t, resp.OvertimeHours)
	assert.Equal(t, 1.0, *resp.OvertimeHours)
}

func TestSummary_AggregatesMonth(t *testing.T) {
	ctx := context.Background()
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(attRepo, newFakeEmployeeRepo(activeEmployee("emp-1")),
		time.Date(2026, time.April, 1, 10, 0, 0, 0, time.UTC))

	addDay := func(day int, status attendance.Status, work, overtime float64) {
		date := time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC)
		_, err := attRepo.Create(ctx, attendance.Attendance{
			EmployeeID:    "emp-1",
			Date:          date,
			Status:        status,
			WorkHours:     &work,
			OvertimeHours: &overtime,
		})
		require.NoError(t, err)
	}

	addDay(2, attendance.StatusPresent, 8, 0)
	addDay(3, attendance.StatusPresent, 9, 1)
	addDay(4, attendance.StatusOnLeave, 0, 0)
	addDay(5, attendance.StatusLate, 7, 0)

	summary, err := svc.Summary(ctx, "emp-1", 2026, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.DaysPresent)
	assert.Equal(t, 1, summary.DaysOnLeave)
	assert.Equal(t, 6.0, summary.AvgWorkHours)
	assert.Equal(t, 1.0, summary.OvertimeHours)
}
