package review

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/workzen/hrms-backend-go/internal/domain/employee"
	"github.com/workzen/hrms-backend-go/internal/domain/review"
	"github.com/workzen/hrms-backend-go/internal/pkg/database"
)

type ReviewServiceImpl struct {
	db *database.DB
	review.ReviewRepository
	employee.EmployeeRepository

	now func() time.Time
}

func NewReviewService(
	db *database.DB,
	reviewRepo review.ReviewRepository,
	employeeRepo employee.EmployeeRepository,
) review.ReviewService {
	return &ReviewServiceImpl{
		db:                 db,
		ReviewRepository:   reviewRepo,
		EmployeeRepository: employeeRepo,
		now:                time.Now,
	}
}

// Create implements review.ReviewService.
func (s *ReviewServiceImpl) Create(ctx context.Context, req review.CreateReviewRequest) (review.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return review.ReviewResponse{}, err
	}

	if req.EmployeeID == req.ReviewerID {
		return review.ReviewResponse{}, review.ErrSelfReview
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return review.ReviewResponse{}, err
	}
	reviewer, err := s.EmployeeRepository.GetByID(ctx, req.ReviewerID)
	if err != nil {
		return review.ReviewResponse{}, err
	}

	start, err := time.Parse("2006-01-02", req.ReviewPeriodStart)
	if err != nil {
		return review.ReviewResponse{}, fmt.Errorf("failed to parse review period start: %w", err)
	}
	end, err := time.Parse("2006-01-02", req.ReviewPeriodEnd)
	if err != nil {
		return review.ReviewResponse{}, fmt.Errorf("failed to parse review period end: %w", err)
	}
	if start.After(end) {
		return review.ReviewResponse{}, review.ErrInvalidReviewPeriod
	}

	ratings := req.Ratings()

	rev := review.PerformanceReview{
		EmployeeID:        emp.ID,
		ReviewerID:        reviewer.ID,
		ReviewPeriodStart: start,
		ReviewPeriodEnd:   end,

		Ratings:       ratings,
		OverallRating: ratings.Overall(),

		Strengths:           req.Strengths,
		AreasForImprovement: req.AreasForImprovement,
		Goals:               req.Goals,
		ReviewerComments:    req.ReviewerComments,

		Status: review.StatusDraft,
	}

	created, err := s.ReviewRepository.Create(ctx, rev)
	if err != nil {
		return review.ReviewResponse{}, err
	}

	slog.Info("Performance review created",
		"review_id", created.ID, "employee_id", emp.ID, "reviewer_id", reviewer.ID)

	return review.ToResponse(created), nil
}

// Update implements review.ReviewService. Only drafts accept edits;
// ratings merge with patch semantics and the overall is rederived.
func (s *ReviewServiceImpl) Update(ctx context.Context, req review.UpdateReviewRequest) (review.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return review.ReviewResponse{}, err
	}

	rev, err := s.ReviewRepository.GetByID(ctx, req.ID)
	if err != nil {
		return review.ReviewResponse{}, err
	}
	if rev.Status != review.StatusDraft {
		return review.ReviewResponse{}, review.ErrNotDraft
	}

	rev.Ratings = rev.Ratings.Merge(req.Ratings())
	rev.OverallRating = rev.Ratings.Overall()

	if req.Strengths != nil {
		rev.Strengths = req.Strengths
	}
	if req.AreasForImprovement != nil {
		rev.AreasForImprovement = req.AreasForImprovement
	}
	if req.Goals != nil {
		rev.Goals = req.Goals
	}
	if req.ReviewerComments != nil {
		rev.ReviewerComments = req.ReviewerComments
	}

	if err := s.ReviewRepository.Update(ctx, rev); err != nil {
		return review.ReviewResponse{}, err
	}

	return review.ToResponse(rev), nil
}

// Submit implements review.ReviewService.
func (s *ReviewServiceImpl) Submit(ctx context.Context, id string) (review.ReviewResponse, error) {
	rev, err := s.ReviewRepository.GetByID(ctx, id)
	if err != nil {
		return review.ReviewResponse{}, err
	}
	if rev.Status != review.StatusDraft {
		return review.ReviewResponse{}, review.ErrNotDraft
	}

	now := s.now()
	rev.Status = review.StatusSubmitted
	rev.ReviewDate = &now

	if err := s.ReviewRepository.Update(ctx, rev); err != nil {
		return review.ReviewResponse{}, err
	}

	return review.ToResponse(rev), nil
}

// Complete implements review.ReviewService.
func (s *ReviewServiceImpl) Complete(ctx context.Context, id string) (review.ReviewResponse, error) {
	rev, err := s.ReviewRepository.GetByID(ctx, id)
	if err != nil {
		return review.ReviewResponse{}, err
	}
	if rev.Status != review.StatusSubmitted {
		return review.ReviewResponse{}, review.ErrNotSubmitted
	}

	rev.Status = review.StatusCompleted

	if err := s.ReviewRepository.Update(ctx, rev); err != nil {
		return review.ReviewResponse{}, err
	}

	slog.Info("Performance review completed", "review_id", rev.ID, "employee_id", rev.EmployeeID)

	return review.ToResponse(rev), nil
}

// Acknowledge implements review.ReviewService.
func (s *ReviewServiceImpl) Acknowledge(ctx context.Context, req review.AcknowledgeRequest) (review.ReviewResponse, error) {
	rev, err := s.ReviewRepository.GetByID(ctx, req.ID)
	if err != nil {
		return review.ReviewResponse{}, err
	}
	if rev.Status != review.StatusCompleted {
		return review.ReviewResponse{}, review.ErrNotCompleted
	}

	rev.Status = review.StatusAcknowledged
	if req.EmployeeComments != nil {
		rev.EmployeeComments = req.EmployeeComments
	}

	if err := s.ReviewRepository.Update(ctx, rev); err != nil {
		return review.ReviewResponse{}, err
	}

	return review.ToResponse(rev), nil
}

// Get implements review.ReviewService.
func (s *ReviewServiceImpl) Get(ctx context.Context, id string) (review.ReviewResponse, error) {
	rev, err := s.ReviewRepository.GetByID(ctx, id)
	if err != nil {
		return review.ReviewResponse{}, err
	}
	return review.ToResponse(rev), nil
}

// ListByEmployee implements review.ReviewService.
func (s *ReviewServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]review.ReviewResponse, error) {
	reviews, err := s.ReviewRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toResponses(reviews), nil
}

// ListByReviewer implements review.ReviewService.
func (s *ReviewServiceImpl) ListByReviewer(ctx context.Context, reviewerID string) ([]review.ReviewResponse, error) {
	reviews, err := s.ReviewRepository.ListByReviewer(ctx, reviewerID)
	if err != nil {
		return nil, err
	}
	return toResponses(reviews), nil
}

// AverageRating implements review.ReviewService.
func (s *ReviewServiceImpl) AverageRating(ctx context.Context, employeeID string) (float64, error) {
	return s.ReviewRepository.AverageOverallRating(ctx, employeeID)
}

func toResponses(reviews []review.PerformanceReview) []review.ReviewResponse {
	responses := make([]review.ReviewResponse, 0, len(reviews))
	for _, rev := range reviews {
		responses = append(responses, review.ToResponse(rev))
	}
	return responses
}
