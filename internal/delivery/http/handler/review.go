package handler

import (
	"errors"
	"net/http"

	"github.com/electromart/storefront/internal/delivery/http/middleware"
	"github.com/electromart/storefront/internal/delivery/http/request"
	"github.com/electromart/storefront/internal/delivery/http/response"
	"github.com/electromart/storefront/internal/domain"
	"github.com/electromart/storefront/internal/pkg/logger"
	"github.com/electromart/storefront/internal/usecase/catalog"
)

// ReviewHandler handles HTTP requests for product reviews
type ReviewHandler struct {
	service *catalog.Service
	logger  *logger.Logger
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(service *catalog.Service, log *logger.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  log,
	}
}

// CreateReviewRequest represents the request body for submitting a review
type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// Create handles POST /api/v1/products/{id}/reviews
// @Summary Submit a review
// @Description Add a review to a product; the average rating is recomputed immediately
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param review body CreateReviewRequest true "Review details"
// @Success 201 {object} domain.Review "Review created"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products/{id}/reviews [post]
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	productID, err := request.GetStringParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req CreateReviewRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	caller := middleware.UserFrom(r.Context())
	review, err := h.service.AddReview(r.Context(), caller, productID, req.Rating, req.Comment)
	if err != nil {
		h.handleError(w, err)
		return
	}
	response.Created(w, review)
}

// Like handles POST /api/v1/products/{id}/reviews/{reviewID}/like
// @Summary Like a review
// @Description Increment a review's like counter by one
// @Tags Reviews
// @Produce json
// @Param id path string true "Product ID"
// @Param reviewID path string true "Review ID"
// @Success 204 "Like recorded"
// @Failure 404 {object} map[string]string "Review not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products/{id}/reviews/{reviewID}/like [post]
func (h *ReviewHandler) Like(w http.ResponseWriter, r *http.Request) {
	productID, err := request.GetStringParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}
	reviewID, err := request.GetStringParam(r, "reviewID")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid review ID")
		return
	}

	if err := h.service.LikeReview(r.Context(), productID, reviewID); err != nil {
		h.handleError(w, err)
		return
	}
	response.NoContent(w)
}

// handleError maps service layer errors to HTTP responses
func (h *ReviewHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Review not found")
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, domain.ErrUnauthorized):
		response.Error(w, http.StatusUnauthorized, "Authentication required")
	default:
		h.logger.Error("Internal error in review handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
