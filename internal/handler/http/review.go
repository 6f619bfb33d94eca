package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workzen/hrms-backend-go/internal/domain/review"
	"github.com/workzen/hrms-backend-go/internal/handler/http/response"
)

type ReviewHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	Acknowledge(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	ListByReviewer(w http.ResponseWriter, r *http.Request)
	AverageRating(w http.ResponseWriter, r *http.Request)
}

type reviewHandlerImpl struct {
	reviewService review.ReviewService
}

func NewReviewHandler(reviewService review.ReviewService) ReviewHandler {
	return &reviewHandlerImpl{
		reviewService: reviewService,
	}
}

// Create implements ReviewHandler.
func (h *reviewHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req review.CreateReviewRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rev, err := h.reviewService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Performance review created successfully", rev)
}

// Update implements ReviewHandler.
func (h *reviewHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req review.UpdateReviewRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	rev, err := h.reviewService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance review updated successfully", rev)
}

// Submit implements ReviewHandler.
func (h *reviewHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	rev, err := h.reviewService.Submit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance review submitted", rev)
}

// Complete implements ReviewHandler.
func (h *reviewHandlerImpl) Complete(w http.ResponseWriter, r *http.Request) {
	rev, err := h.reviewService.Complete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance review completed", rev)
}

// Acknowledge implements ReviewHandler.
func (h *reviewHandlerImpl) Acknowledge(w http.ResponseWriter, r *http.Request) {
	var req review.AcknowledgeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	rev, err := h.reviewService.Acknowledge(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance review acknowledged", rev)
}

// Get implements ReviewHandler.
func (h *reviewHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	rev, err := h.reviewService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rev)
}

// ListByEmployee implements ReviewHandler.
func (h *reviewHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.ListByEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, reviews)
}

// ListByReviewer implements ReviewHandler.
func (h *reviewHandlerImpl) ListByReviewer(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.ListByReviewer(r.Context(), chi.URLParam(r, "reviewerID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, reviews)
}

// AverageRating implements ReviewHandler.
func (h *reviewHandlerImpl) AverageRating(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	average, err := h.reviewService.AverageRating(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]any{
		"employee_id":    employeeID,
		"average_rating": average,
	})
}
