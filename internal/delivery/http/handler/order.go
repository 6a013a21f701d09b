package handler

import (
	"errors"
	"net/http"

	"github.com/electromart/storefront/internal/delivery/http/middleware"
	"github.com/electromart/storefront/internal/delivery/http/request"
	"github.com/electromart/storefront/internal/delivery/http/response"
	"github.com/electromart/storefront/internal/domain"
	"github.com/electromart/storefront/internal/pkg/logger"
	"github.com/electromart/storefront/internal/usecase/order"
)

// OrderHandler handles HTTP requests for order history and the admin
// back office
type OrderHandler struct {
	service *order.Service
	logger  *logger.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service *order.Service, log *logger.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  log,
	}
}

// UpdateStatusRequest represents the request body for a status transition
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListMine handles GET /api/v1/orders
// @Summary List own orders
// @Description Get the caller's order history
// @Tags Orders
// @Produce json
// @Success 200 {array} domain.Order "Orders"
// @Failure 401 {object} map[string]string "Authentication required"
// @Router /orders [get]
func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	caller := middleware.UserFrom(r.Context())
	orders, err := h.service.ListMine(r.Context(), caller)
	if err != nil {
		h.handleError(w, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	response.Success(w, orders)
}

// GetByID handles GET /api/v1/orders/{id}
// @Summary Get an order
// @Description Get an order the caller owns; admins may fetch any order
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} domain.Order "Order details"
// @Failure 403 {object} map[string]string "Not the order owner"
// @Failure 404 {object} map[string]string "Order not found"
// @Router /orders/{id} [get]
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetStringParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	caller := middleware.UserFrom(r.Context())
	ord, err := h.service.Get(r.Context(), caller, id)
	if err != nil {
		h.handleError(w, err)
		return
	}
	response.Success(w, ord)
}

// ListAll handles GET /api/v1/admin/orders
// @Summary List all orders
// @Description Get every order for the admin back office
// @Tags Admin
// @Produce json
// @Success 200 {array} domain.Order "Orders"
// @Failure 403 {object} map[string]string "Admin access required"
// @Router /admin/orders [get]
func (h *OrderHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	caller := middleware.UserFrom(r.Context())
	orders, err := h.service.ListAll(r.Context(), caller)
	if err != nil {
		h.handleError(w, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	response.Success(w, orders)
}

// UpdateStatus handles PUT /api/v1/admin/orders/{id}/status
// @Summary Transition an order's status
// @Description Move an order forward through its lifecycle (admin only)
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} domain.Order "Updated order"
// @Failure 400 {object} map[string]string "Unknown status value"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 409 {object} map[string]string "Disallowed transition"
// @Router /admin/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetStringParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var req UpdateStatusRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	caller := middleware.UserFrom(r.Context())
	ord, err := h.service.UpdateStatus(r.Context(), caller, id, domain.OrderStatus(req.Status))
	if err != nil {
		h.handleError(w, err)
		return
	}
	response.Success(w, ord)
}

// Stats handles GET /api/v1/admin/stats
// @Summary Dashboard aggregates
// @Description Totals for users, orders, products, sales and pending work (admin only)
// @Tags Admin
// @Produce json
// @Success 200 {object} order.Stats "Aggregates"
// @Failure 403 {object} map[string]string "Admin access required"
// @Router /admin/stats [get]
func (h *OrderHandler) Stats(w http.ResponseWriter, r *http.Request) {
	caller := middleware.UserFrom(r.Context())
	stats, err := h.service.GetStats(r.Context(), caller)
	if err != nil {
		h.handleError(w, err)
		return
	}
	response.Success(w, stats)
}

// handleError maps service layer errors to HTTP responses
func (h *OrderHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Unknown status value")
	case errors.Is(err, domain.ErrConflict):
		response.Error(w, http.StatusConflict, "Disallowed status transition")
	case errors.Is(err, domain.ErrUnauthorized):
		response.Error(w, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, domain.ErrForbidden):
		response.Error(w, http.StatusForbidden, "Access denied")
	default:
		h.logger.Error("Internal error in order handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
