package leave

import (
	"time"

	"github.com/workzen/hrms-backend-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	IsHalfDay  bool   `json:"is_half_day"`
	Reason     string `json:"reason"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !Type(r.LeaveType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "leave_type is not a valid leave type"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DecisionRequest approves or rejects a pending application.
type DecisionRequest struct {
	ID         string `json:"-"`
	ApproverID string `json:"approver_id"`
	Remarks    string `json:"remarks"`
}

func (r *DecisionRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if validator.IsEmpty(r.ApproverID) {
		errs = append(errs, validator.ValidationError{Field: "approver_id", Message: "approver_id is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveResponse struct {
	ID              string     `json:"id"`
	EmployeeID      string     `json:"employee_id"`
	EmployeeName    *string    `json:"employee_name,omitempty"`
	LeaveType       Type       `json:"leave_type"`
	StartDate       string     `json:"start_date"`
	EndDate         string     `json:"end_date"`
	TotalDays       int        `json:"total_days"`
	Reason          string     `json:"reason"`
	Status          Status     `json:"status"`
	IsHalfDay       bool       `json:"is_half_day"`
	ApprovedBy      *string    `json:"approved_by,omitempty"`
	ApproverName    *string    `json:"approver_name,omitempty"`
	ApprovalDate    *time.Time `json:"approval_date,omitempty"`
	ApprovalRemarks *string    `json:"approval_remarks,omitempty"`
}

func ToResponse(app LeaveApplication) LeaveResponse {
	return LeaveResponse{
		ID:              app.ID,
		EmployeeID:      app.EmployeeID,
		EmployeeName:    app.EmployeeName,
		LeaveType:       app.LeaveType,
		StartDate:       app.StartDate.Format("2006-01-02"),
		EndDate:         app.EndDate.Format("2006-01-02"),
		TotalDays:       app.TotalDays,
		Reason:          app.Reason,
		Status:          app.Status,
		IsHalfDay:       app.IsHalfDay,
		ApprovedBy:      app.ApprovedBy,
		ApproverName:    app.ApproverName,
		ApprovalDate:    app.ApprovalDate,
		ApprovalRemarks: app.ApprovalRemarks,
	}
}

// TypeBalance reports quota consumption for one leave type in one year.
// The ledger reports; enforcement is the caller's policy decision.
type TypeBalance struct {
	LeaveType   Type `json:"leave_type"`
	DefaultDays int  `json:"default_days"`
	UsedDays    int  `json:"used_days"`
	Remaining   int  `json:"remaining_days"`
}

type BalanceResponse struct {
	EmployeeID string        `json:"employee_id"`
	Year       int           `json:"year"`
	Balances   []TypeBalance `json:"balances"`
}
