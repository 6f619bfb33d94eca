package leave

import "errors"

var (
	ErrLeaveNotFound       = errors.New("leave application not found")
	ErrInvalidDateRange    = errors.New("start date cannot be after end date")
	ErrPastStartDate       = errors.New("cannot apply for leave in the past")
	ErrOverlappingLeave    = errors.New("leave application overlaps with existing leave")
	ErrNotPending          = errors.New("leave application is not in pending status")
	ErrCannotCancelStarted = errors.New("cannot cancel an approved leave that has already started")
	ErrInvalidLeaveType    = errors.New("invalid leave type")
)
