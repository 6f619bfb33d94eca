package review

import "time"

type PerformanceReview struct {
	ID                string
	EmployeeID        string
	ReviewerID        string
	ReviewPeriodStart time.Time
	ReviewPeriodEnd   time.Time

	Ratings       Ratings
	OverallRating *float64

	Strengths           *string
	AreasForImprovement *string
	Goals               *string
	ReviewerComments    *string
	EmployeeComments    *string

	Status     Status
	ReviewDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
	ReviewerName *string
}

type Status string

const (
	StatusDraft        Status = "draft"
	StatusSubmitted    Status = "submitted"
	StatusCompleted    Status = "completed"
	StatusAcknowledged Status = "acknowledged"
)

// Next returns the only status reachable from s, or "" for the terminal
// state. The workflow is strictly forward, no skipping or reverting.
func (s Status) Next() Status {
	switch s {
	case StatusDraft:
		return StatusSubmitted
	case StatusSubmitted:
		return StatusCompleted
	case StatusCompleted:
		return StatusAcknowledged
	}
	return ""
}
