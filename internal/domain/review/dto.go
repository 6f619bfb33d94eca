package review

import (
	"time"

	"github.com/workzen/hrms-backend-go/internal/pkg/validator"
)

type CreateReviewRequest struct {
	EmployeeID        string `json:"employee_id"`
	ReviewerID        string `json:"reviewer_id"`
	ReviewPeriodStart string `json:"review_period_start"`
	ReviewPeriodEnd   string `json:"review_period_end"`

	TechnicalRating     *float64 `json:"technical_rating,omitempty"`
	CommunicationRating *float64 `json:"communication_rating,omitempty"`
	TeamworkRating      *float64 `json:"teamwork_rating,omitempty"`
	LeadershipRating    *float64 `json:"leadership_rating,omitempty"`
	PunctualityRating   *float64 `json:"punctuality_rating,omitempty"`

	Strengths           *string `json:"strengths,omitempty"`
	AreasForImprovement *string `json:"areas_for_improvement,omitempty"`
	Goals               *string `json:"goals,omitempty"`
	ReviewerComments    *string `json:"reviewer_comments,omitempty"`
}

func (r *CreateReviewRequest) Ratings() Ratings {
	return Ratings{
		Technical:     r.TechnicalRating,
		Communication: r.CommunicationRating,
		Teamwork:      r.TeamworkRating,
		Leadership:    r.LeadershipRating,
		Punctuality:   r.PunctualityRating,
	}
}

func (r *CreateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.ReviewerID) {
		errs = append(errs, validator.ValidationError{Field: "reviewer_id", Message: "reviewer_id is required"})
	}
	if _, ok := validator.IsValidDate(r.ReviewPeriodStart); !ok {
		errs = append(errs, validator.ValidationError{Field: "review_period_start", Message: "review_period_start must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidDate(r.ReviewPeriodEnd); !ok {
		errs = append(errs, validator.ValidationError{Field: "review_period_end", Message: "review_period_end must be YYYY-MM-DD"})
	}
	if !r.Ratings().Valid() {
		errs = append(errs, validator.ValidationError{Field: "ratings", Message: "ratings must be between 1 and 5"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateReviewRequest carries patch semantics for a draft review.
type UpdateReviewRequest struct {
	ID string `json:"-"`

	TechnicalRating     *float64 `json:"technical_rating,omitempty"`
	CommunicationRating *float64 `json:"communication_rating,omitempty"`
	TeamworkRating      *float64 `json:"teamwork_rating,omitempty"`
	LeadershipRating    *float64 `json:"leadership_rating,omitempty"`
	PunctualityRating   *float64 `json:"punctuality_rating,omitempty"`

	Strengths           *string `json:"strengths,omitempty"`
	AreasForImprovement *string `json:"areas_for_improvement,omitempty"`
	Goals               *string `json:"goals,omitempty"`
	ReviewerComments    *string `json:"reviewer_comments,omitempty"`
}

func (r *UpdateReviewRequest) Ratings() Ratings {
	return Ratings{
		Technical:     r.TechnicalRating,
		Communication: r.CommunicationRating,
		Teamwork:      r.TeamworkRating,
		Leadership:    r.LeadershipRating,
		Punctuality:   r.PunctualityRating,
	}
}

func (r *UpdateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if !r.Ratings().Valid() {
		errs = append(errs, validator.ValidationError{Field: "ratings", Message: "ratings must be between 1 and 5"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AcknowledgeRequest struct {
	ID               string  `json:"-"`
	EmployeeComments *string `json:"employee_comments,omitempty"`
}

type ReviewResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employee_id"`
	EmployeeName      *string `json:"employee_name,omitempty"`
	ReviewerID        string  `json:"reviewer_id"`
	ReviewerName      *string `json:"reviewer_name,omitempty"`
	ReviewPeriodStart string  `json:"review_period_start"`
	ReviewPeriodEnd   string  `json:"review_period_end"`

	OverallRating       *float64 `json:"overall_rating,omitempty"`
	TechnicalRating     *float64 `json:"technical_rating,omitempty"`
	CommunicationRating *float64 `json:"communication_rating,omitempty"`
	TeamworkRating      *float64 `json:"teamwork_rating,omitempty"`
	LeadershipRating    *float64 `json:"leadership_rating,omitempty"`
	PunctualityRating   *float64 `json:"punctuality_rating,omitempty"`

	Strengths           *string `json:"strengths,omitempty"`
	AreasForImprovement *string `json:"areas_for_improvement,omitempty"`
	Goals               *string `json:"goals,omitempty"`
	ReviewerComments    *string `json:"reviewer_comments,omitempty"`
	EmployeeComments    *string `json:"employee_comments,omitempty"`

	Status     Status     `json:"status"`
	ReviewDate *time.Time `json:"review_date,omitempty"`
}

func ToResponse(rev PerformanceReview) ReviewResponse {
	return ReviewResponse{
		ID:                  rev.ID,
		EmployeeID:          rev.EmployeeID,
		EmployeeName:        rev.EmployeeName,
		ReviewerID:          rev.ReviewerID,
		ReviewerName:        rev.ReviewerName,
		ReviewPeriodStart:   rev.ReviewPeriodStart.Format("2006-01-02"),
		ReviewPeriodEnd:     rev.ReviewPeriodEnd.Format("2006-01-02"),
		OverallRating:       rev.OverallRating,
		TechnicalRating:     rev.Ratings.Technical,
		CommunicationRating: rev.Ratings.Communication,
		TeamworkRating:      rev.Ratings.Teamwork,
		LeadershipRating:    rev.Ratings.Leadership,
		PunctualityRating:   rev.Ratings.Punctuality,
		Strengths:           rev.Strengths,
		AreasForImprovement: rev.AreasForImprovement,
		Goals:               rev.Goals,
		ReviewerComments:    rev.ReviewerComments,
		EmployeeComments:    rev.EmployeeComments,
		Status:              rev.Status,
		ReviewDate:          rev.ReviewDate,
	}
}
