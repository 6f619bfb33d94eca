package leave

import (
	"context"
	"time"
)

// LeaveRepository defines data access methods for leave applications.
type LeaveRepository interface {
	Create(ctx context.Context, app LeaveApplication) (LeaveApplication, error)
	GetByID(ctx context.Context, id string) (LeaveApplication, error)
	Update(ctx context.Context, app LeaveApplication) error

	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveApplication, error)
	ListByStatus(ctx context.Context, status Status) ([]LeaveApplication, error)

	// ListPendingForApprover returns pending applications whose employee
	// reports to the given manager.
	ListPendingForApprover(ctx context.Context, approverID string) ([]LeaveApplication, error)

	// ListOverlapping returns the employee's applications in Pending or
	// Approved that intersect [start, end], inclusive.
	ListOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]LeaveApplication, error)

	// SumApprovedDays totals TotalDays over approved applications of the
	// type whose start date falls in the year.
	SumApprovedDays(ctx context.Context, employeeID string, leaveType Type, year int) (int, error)
}
