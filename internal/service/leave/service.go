package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/workzen/hrms-backend-go/internal/domain/employee"
	"github.com/workzen/hrms-backend-go/internal/domain/leave"
	"github.com/workzen/hrms-backend-go/internal/pkg/database"
	"github.com/workzen/hrms-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRepository
	employee.EmployeeRepository

	now func() time.Time
}

func NewLeaveService(
	db *database.DB,
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                 db,
		LeaveRepository:    leaveRepo,
		EmployeeRepository: employeeRepo,
		now:                time.Now,
	}
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	if start.After(end) {
		return leave.LeaveResponse{}, leave.ErrInvalidDateRange
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if start.Before(today) {
		return leave.LeaveResponse{}, leave.ErrPastStartDate
	}

	// The overlap check and the insert run in one transaction so two
	// concurrent applications cannot both pass the check.
	var created leave.LeaveApplication
	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		overlapping, err := s.LeaveRepository.ListOverlapping(ctx, emp.ID, start, end)
		if err != nil {
			return err
		}
		if len(overlapping) > 0 {
			return leave.ErrOverlappingLeave
		}

		app := leave.LeaveApplication{
			EmployeeID: emp.ID,
			LeaveType:  leave.Type(req.LeaveType),
			StartDate:  start,
			EndDate:    end,
			TotalDays:  leave.TotalDays(start, end, req.IsHalfDay),
			Reason:     req.Reason,
			Status:     leave.StatusPending,
			IsHalfDay:  req.IsHalfDay,
		}

		created, err = s.LeaveRepository.Create(ctx, app)
		return err
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	slog.Info("Leave application submitted",
		"leave_id", created.ID, "employee_id", emp.ID,
		"leave_type", created.LeaveType, "total_days", created.TotalDays)

	return leave.ToResponse(created), nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.DecisionRequest) (leave.LeaveResponse, error) {
	return s.decide(ctx, req, leave.StatusApproved)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.DecisionRequest) (leave.LeaveResponse, error) {
	return s.decide(ctx, req, leave.StatusRejected)
}

func (s *LeaveServiceImpl) decide(ctx context.Context, req leave.DecisionRequest, decision leave.Status) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	approver, err := s.EmployeeRepository.GetByID(ctx, req.ApproverID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	app, err := s.LeaveRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if app.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrNotPending
	}

	now := s.now()
	app.Status = decision
	app.ApprovedBy = &approver.ID
	app.ApprovalDate = &now
	if req.Remarks != "" {
		app.ApprovalRemarks = &req.Remarks
	}

	if err := s.LeaveRepository.Update(ctx, app); err != nil {
		return leave.LeaveResponse{}, err
	}

	slog.Info("Leave application decided",
		"leave_id", app.ID, "decision", decision, "approver_id", approver.ID)

	return leave.ToResponse(app), nil
}

// Cancel implements leave.LeaveService. An approved leave that has
// already started can no longer be cancelled; every other state can.
func (s *LeaveServiceImpl) Cancel(ctx context.Context, id string) (leave.LeaveResponse, error) {
	app, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if app.Status == leave.StatusApproved && !app.StartDate.After(today) {
		return leave.LeaveResponse{}, leave.ErrCannotCancelStarted
	}

	app.Status = leave.StatusCancelled

	if err := s.LeaveRepository.Update(ctx, app); err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(app), nil
}

// Get implements leave.LeaveService.
func (s *LeaveServiceImpl) Get(ctx context.Context, id string) (leave.LeaveResponse, error) {
	app, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.ToResponse(app), nil
}

// ListByEmployee implements leave.LeaveService.
func (s *LeaveServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error) {
	apps, err := s.LeaveRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toResponses(apps), nil
}

// ListPending implements leave.LeaveService.
func (s *LeaveServiceImpl) ListPending(ctx context.Context) ([]leave.LeaveResponse, error) {
	apps, err := s.LeaveRepository.ListByStatus(ctx, leave.StatusPending)
	if err != nil {
		return nil, err
	}
	return toResponses(apps), nil
}

// PendingApprovals implements leave.LeaveService.
func (s *LeaveServiceImpl) PendingApprovals(ctx context.Context, approverID string) ([]leave.LeaveResponse, error) {
	apps, err := s.LeaveRepository.ListPendingForApprover(ctx, approverID)
	if err != nil {
		return nil, err
	}
	return toResponses(apps), nil
}

// UsedDays implements leave.LeaveService.
func (s *LeaveServiceImpl) UsedDays(ctx context.Context, employeeID string, leaveType leave.Type, year int) (int, error) {
	if !leaveType.Valid() {
		return 0, leave.ErrInvalidLeaveType
	}
	return s.LeaveRepository.SumApprovedDays(ctx, employeeID, leaveType, year)
}

// Balance implements leave.LeaveService.
func (s *LeaveServiceImpl) Balance(ctx context.Context, employeeID string, year int) (leave.BalanceResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return leave.BalanceResponse{}, err
	}

	balances := make([]leave.TypeBalance, 0, len(leave.AllTypes()))
	for _, leaveType := range leave.AllTypes() {
		used, err := s.LeaveRepository.SumApprovedDays(ctx, employeeID, leaveType, year)
		if err != nil {
			return leave.BalanceResponse{}, err
		}
		balances = append(balances, leave.TypeBalance{
			LeaveType:   leaveType,
			DefaultDays: leaveType.DefaultAnnualDays(),
			UsedDays:    used,
			Remaining:   leaveType.DefaultAnnualDays() - used,
		})
	}

	return leave.BalanceResponse{
		EmployeeID: employeeID,
		Year:       year,
		Balances:   balances,
	}, nil
}

func toResponses(apps []leave.LeaveApplication) []leave.LeaveResponse {
	responses := make([]leave.LeaveResponse, 0, len(apps))
	for _, app := range apps {
		responses = append(responses, leave.ToResponse(app))
	}
	return responses
}
