package review

import "errors"

var (
	ErrReviewNotFound      = errors.New("performance review not found")
	ErrInvalidReviewPeriod = errors.New("review period start cannot be after end")
	ErrInvalidRating       = errors.New("ratings must be on the 1-5 scale")
	ErrSelfReview          = errors.New("reviewer cannot be the reviewed employee")
	ErrNotDraft            = errors.New("review is not in draft status")
	ErrNotSubmitted        = errors.New("review must be submitted before completion")
	ErrNotCompleted        = errors.New("review must be completed before acknowledgment")
)
