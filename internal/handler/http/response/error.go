package response

import (
	"errors"
	"net/http"

	"github.com/workzen/hrms-backend-go/internal/domain/attendance"
	"github.com/workzen/hrms-backend-go/internal/domain/auth"
	"github.com/workzen/hrms-backend-go/internal/domain/employee"
	"github.com/workzen/hrms-backend-go/internal/domain/leave"
	"github.com/workzen/hrms-backend-go/internal/domain/payroll"
	"github.com/workzen/hrms-backend-go/internal/domain/review"
	"github.com/workzen/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")
	case errors.Is(err, auth.ErrAccountDisabled):
		Forbidden(w, "Account cannot log in with its current status")
	case errors.Is(err, auth.ErrPasswordMismatch):
		BadRequest(w, "Current password is incorrect", nil)
	case errors.Is(err, auth.ErrGoogleNotLinked):
		NotFound(w, "No account linked to this google identity")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrManagerNotFound):
		NotFound(w, "Manager not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrInvalidDepartment):
		BadRequest(w, "Invalid department", nil)
	case errors.Is(err, employee.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)
	case errors.Is(err, employee.ErrInvalidStatus):
		BadRequest(w, "Invalid employee status", nil)
	case errors.Is(err, employee.ErrInsufficientRole):
		Forbidden(w, "Insufficient role for this operation")
	case errors.Is(err, employee.ErrEmployeeNotOperative):
		Forbidden(w, "Employee is not operative")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in for today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "No check-in found for today", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out for today")
	case errors.Is(err, attendance.ErrDuplicateRecord):
		Conflict(w, "Attendance record already exists for this date")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave application not found")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "Start date cannot be after end date", nil)
	case errors.Is(err, leave.ErrPastStartDate):
		BadRequest(w, "Cannot apply for leave in the past", nil)
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "Leave application overlaps with existing leave")
	case errors.Is(err, leave.ErrNotPending):
		Conflict(w, "Leave application is not in pending status")
	case errors.Is(err, leave.ErrCannotCancelStarted):
		Conflict(w, "Cannot cancel an approved leave that has already started")
	case errors.Is(err, leave.ErrInvalidLeaveType):
		BadRequest(w, "Invalid leave type", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollAlreadyGenerated):
		Conflict(w, "Payroll already generated for this month")
	case errors.Is(err, payroll.ErrInvalidSalaryMonth):
		BadRequest(w, "Salary month must be YYYY-MM", nil)

	// Review domain errors
	case errors.Is(err, review.ErrReviewNotFound):
		NotFound(w, "Performance review not found")
	case errors.Is(err, review.ErrInvalidReviewPeriod):
		BadRequest(w, "Review period start cannot be after end", nil)
	case errors.Is(err, review.ErrInvalidRating):
		BadRequest(w, "Ratings must be on the 1-5 scale", nil)
	case errors.Is(err, review.ErrSelfReview):
		BadRequest(w, "Reviewer cannot be the reviewed employee", nil)
	case errors.Is(err, review.ErrNotDraft):
		Conflict(w, "Review is not in draft status")
	case errors.Is(err, review.ErrNotSubmitted):
		Conflict(w, "Review must be submitted before completion")
	case errors.Is(err, review.ErrNotCompleted):
		Conflict(w, "Review must be completed before acknowledgment")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
