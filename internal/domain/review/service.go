package review

import "context"

// ReviewService drives the review workflow. Transitions are strictly
// forward: draft -> submitted -> completed -> acknowledged.
type ReviewService interface {
	Create(ctx context.Context, req CreateReviewRequest) (ReviewResponse, error)
	Update(ctx context.Context, req UpdateReviewRequest) (ReviewResponse, error)

	Submit(ctx context.Context, id string) (ReviewResponse, error)
	Complete(ctx context.Context, id string) (ReviewResponse, error)
	Acknowledge(ctx context.Context, req AcknowledgeRequest) (ReviewResponse, error)

	Get(ctx context.Context, id string) (ReviewResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]ReviewResponse, error)
	ListByReviewer(ctx context.Context, reviewerID string) ([]ReviewResponse, error)
	AverageRating(ctx context.Context, employeeID string) (float64, error)
}
