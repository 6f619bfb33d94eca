package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// The (employee_id, date) pair is unique; the database constraint backs the
// one-record-per-day invariant under concurrent check-ins.
type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate returns nil when no record exists for the day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	Update(ctx context.Context, att Attendance) error
	Delete(ctx context.Context, id string) error

	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)

	// Aggregations consumed by payroll generation and summaries.
	CountByStatus(ctx context.Context, employeeID string, from, to time.Time, status Status) (int, error)
	SumOvertimeHours(ctx context.Context, employeeID string, from, to time.Time) (float64, error)
	AvgWorkHours(ctx context.Context, employeeID string, from, to time.Time) (float64, error)
}
