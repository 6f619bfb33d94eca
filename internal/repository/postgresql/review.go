package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workzen/hrms-backend-go/internal/domain/review"
	"github.com/workzen/hrms-backend-go/internal/pkg/database"
)

type reviewRepository struct {
	db *database.DB
}

func NewReviewRepository(db *database.DB) review.ReviewRepository {
	return &reviewRepository{db: db}
}

const reviewColumns = `
	r.id, r.employee_id, r.reviewer_id, r.review_period_start, r.review_period_end,
	r.technical_rating, r.communication_rating, r.teamwork_rating,
	r.leadership_rating, r.punctuality_rating, r.overall_rating,
	r.strengths, r.areas_for_improvement, r.goals,
	r.reviewer_comments, r.employee_comments,
	r.status, r.review_date, r.created_at, r.updated_at
`

func scanReview(row pgx.Row, withNames bool) (review.PerformanceReview, error) {
	var rev review.PerformanceReview
	dest := []any{
		&rev.ID, &rev.EmployeeID, &rev.ReviewerID, &rev.ReviewPeriodStart, &rev.ReviewPeriodEnd,
		&rev.Ratings.Technical, &rev.Ratings.Communication, &rev.Ratings.Teamwork,
		&rev.Ratings.Leadership, &rev.Ratings.Punctuality, &rev.OverallRating,
		&rev.Strengths, &rev.AreasForImprovement, &rev.Goals,
		&rev.ReviewerComments, &rev.EmployeeComments,
		&rev.Status, &rev.ReviewDate, &rev.CreatedAt, &rev.UpdatedAt,
	}
	if withNames {
		dest = append(dest, &rev.EmployeeName, &rev.ReviewerName)
	}
	return rev, row.Scan(dest...)
}

// Create implements review.ReviewRepository.
func (r *reviewRepository) Create(ctx context.Context, rev review.PerformanceReview) (review.PerformanceReview, error) {
	q := GetQuerier(ctx, r.db)

	rev.ID = uuid.New().String()

	query := `
		INSERT INTO performance_reviews (
			id, employee_id, reviewer_id, review_period_start, review_period_end,
			technical_rating, communication_rating, teamwork_rating,
			leadership_rating, punctuality_rating, overall_rating,
			strengths, areas_for_improvement, goals,
			reviewer_comments, employee_comments, status, review_date
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rev.ID, rev.EmployeeID, rev.ReviewerID, rev.ReviewPeriodStart, rev.ReviewPeriodEnd,
		rev.Ratings.Technical, rev.Ratings.Communication, rev.Ratings.Teamwork,
		rev.Ratings.Leadership, rev.Ratings.Punctuality, rev.OverallRating,
		rev.Strengths, rev.AreasForImprovement, rev.Goals,
		rev.ReviewerComments, rev.EmployeeComments, rev.Status, rev.ReviewDate,
	).Scan(&rev.CreatedAt, &rev.UpdatedAt)

	if err != nil {
		return review.PerformanceReview{}, fmt.Errorf("failed to create performance review: %w", err)
	}

	return rev, nil
}

// GetByID implements review.ReviewRepository.
func (r *reviewRepository) GetByID(ctx context.Context, id string) (review.PerformanceReview, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + reviewColumns + `,
			   e.first_name || ' ' || e.last_name,
			   rv.first_name || ' ' || rv.last_name
		FROM performance_reviews r
		JOIN employees e ON e.id = r.employee_id
		JOIN employees rv ON rv.id = r.reviewer_id
		WHERE r.id = $1
	`

	rev, err := scanReview(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return review.PerformanceReview{}, review.ErrReviewNotFound
		}
		return review.PerformanceReview{}, fmt.Errorf("failed to get performance review by id: %w", err)
	}

	return rev, nil
}

// Update implements review.ReviewRepository.
func (r *reviewRepository) Update(ctx context.Context, rev review.PerformanceReview) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE performance_reviews SET
			technical_rating = $2, communication_rating = $3, teamwork_rating = $4,
			leadership_rating = $5, punctuality_rating = $6, overall_rating = $7,
			strengths = $8, areas_for_improvement = $9, goals = $10,
			reviewer_comments = $11, employee_comments = $12,
			status = $13, review_date = $14, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		rev.ID,
		rev.Ratings.Technical, rev.Ratings.Communication, rev.Ratings.Teamwork,
		rev.Ratings.Leadership, rev.Ratings.Punctuality, rev.OverallRating,
		rev.Strengths, rev.AreasForImprovement, rev.Goals,
		rev.ReviewerComments, rev.EmployeeComments,
		rev.Status, rev.ReviewDate,
	)
	if err != nil {
		return fmt.Errorf("failed to update performance review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return review.ErrReviewNotFound
	}

	return nil
}

// ListByEmployee implements review.ReviewRepository.
func (r *reviewRepository) ListByEmployee(ctx context.Context, employeeID string) ([]review.PerformanceReview, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + reviewColumns + `,
			   e.first_name || ' ' || e.last_name,
			   rv.first_name || ' ' || rv.last_name
		FROM performance_reviews r
		JOIN employees e ON e.id = r.employee_id
		JOIN employees rv ON rv.id = r.reviewer_id
		WHERE r.employee_id = $1
		ORDER BY r.review_period_end DESC
	`

	return r.list(ctx, q, query, employeeID)
}

// ListByReviewer implements review.ReviewRepository.
func (r *reviewRepository) ListByReviewer(ctx context.Context, reviewerID string) ([]review.PerformanceReview, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + reviewColumns + `,
			   e.first_name || ' ' || e.last_name,
			   rv.first_name || ' ' || rv.last_name
		FROM performance_reviews r
		JOIN employees e ON e.id = r.employee_id
		JOIN employees rv ON rv.id = r.reviewer_id
		WHERE r.reviewer_id = $1
		ORDER BY r.review_period_end DESC
	`

	return r.list(ctx, q, query, reviewerID)
}

// ListByReviewerAndStatus implements review.ReviewRepository.
func (r *reviewRepository) ListByReviewerAndStatus(ctx context.Context, reviewerID string, status review.Status) ([]review.PerformanceReview, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + reviewColumns + `,
			   e.first_name || ' ' || e.last_name,
			   rv.first_name || ' ' || rv.last_name
		FROM performance_reviews r
		JOIN employees e ON e.id = r.employee_id
		JOIN employees rv ON rv.id = r.reviewer_id
		WHERE r.reviewer_id = $1
		  AND r.status = $2
		ORDER BY r.review_period_end DESC
	`

	return r.list(ctx, q, query, reviewerID, status)
}

// AverageOverallRating implements review.ReviewRepository.
func (r *reviewRepository) AverageOverallRating(ctx context.Context, employeeID string) (float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(AVG(overall_rating), 0)
		FROM performance_reviews
		WHERE employee_id = $1
		  AND status IN ('completed', 'acknowledged')
		  AND overall_rating IS NOT NULL
	`

	var avg float64
	if err := q.QueryRow(ctx, query, employeeID).Scan(&avg); err != nil {
		return 0, fmt.Errorf("failed to average overall rating: %w", err)
	}

	return avg, nil
}

func (r *reviewRepository) list(ctx context.Context, q database.Querier, query string, args ...any) ([]review.PerformanceReview, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance reviews: %w", err)
	}
	defer rows.Close()

	var reviews []review.PerformanceReview
	for rows.Next() {
		rev, err := scanReview(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan performance review: %w", err)
		}
		reviews = append(reviews, rev)
	}

	return reviews, rows.Err()
}
