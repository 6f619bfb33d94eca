package review

import "context"

// ReviewRepository defines data access methods for performance reviews.
type ReviewRepository interface {
	Create(ctx context.Context, rev PerformanceReview) (PerformanceReview, error)
	GetByID(ctx context.Context, id string) (PerformanceReview, error)
	Update(ctx context.Context, rev PerformanceReview) error

	ListByEmployee(ctx context.Context, employeeID string) ([]PerformanceReview, error)
	ListByReviewer(ctx context.Context, reviewerID string) ([]PerformanceReview, error)
	ListByReviewerAndStatus(ctx context.Context, reviewerID string, status Status) ([]PerformanceReview, error)

	// AverageOverallRating averages overall ratings across the
	// employee's reviews in Completed or Acknowledged; 0 when none.
	AverageOverallRating(ctx context.Context, employeeID string) (float64, error)
}
