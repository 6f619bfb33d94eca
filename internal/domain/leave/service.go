package leave

import "context"

// LeaveService defines business logic for the leave application lifecycle.
type LeaveService interface {
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveResponse, error)
	Approve(ctx context.Context, req DecisionRequest) (LeaveResponse, error)
	Reject(ctx context.Context, req DecisionRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, id string) (LeaveResponse, error)

	Get(ctx context.Context, id string) (LeaveResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	ListPending(ctx context.Context) ([]LeaveResponse, error)
	PendingApprovals(ctx context.Context, approverID string) ([]LeaveResponse, error)

	// UsedDays sums approved days of one type whose start date falls in
	// the year.
	UsedDays(ctx context.Context, employeeID string, leaveType Type, year int) (int, error)

	// Balance reports used vs default days across every leave type.
	Balance(ctx context.Context, employeeID string, year int) (BalanceResponse, error)
}
