package attendance

import "context"

// AttendanceService defines business logic for attendance operations.
type AttendanceService interface {
	// CheckIn marks today's check-in and derives lateness.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut marks today's check-out and derives work/overtime hours.
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// Create is the administrative path with explicit timestamps.
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	// Update patches a record and recomputes derived hours.
	Update(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	Get(ctx context.Context, id string) (AttendanceResponse, error)
	Delete(ctx context.Context, id string) error

	ListByEmployee(ctx context.Context, employeeID, from, to string) ([]AttendanceResponse, error)
	ListByDate(ctx context.Context, date string) ([]AttendanceResponse, error)
	Monthly(ctx context.Context, employeeID string, year, month int) ([]AttendanceResponse, error)
	Summary(ctx context.Context, employeeID string, year, month int) (MonthSummary, error)
}
