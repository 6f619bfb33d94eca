package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out errors
	ErrAlreadyCheckedIn  = errors.New("check-in already marked for today")
	ErrNotCheckedIn      = errors.New("check-in not marked for today")
	ErrAlreadyCheckedOut = errors.New("check-out already marked for today")

	// General errors
	ErrDuplicateRecord    = errors.New("attendance already exists for this date")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrInvalidStatus      = errors.New("invalid attendance status")
)
