package handler

import (
	"errors"
	"net/http"

	"github.com/electromart/storefront/internal/delivery/http/middleware"
	"github.com/electromart/storefront/internal/delivery/http/request"
	"github.com/electromart/storefront/internal/delivery/http/response"
	"github.com/electromart/storefront/internal/domain"
	"github.com/electromart/storefront/internal/pkg/logger"
	"github.com/electromart/storefront/internal/usecase/cart"
)

// CartHandler handles HTTP requests for the shopping cart
type CartHandler struct {
	service *cart.Service
	logger  *logger.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(service *cart.Service, log *logger.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  log,
	}
}

// AddItemRequest represents the request body for adding a cart line
type AddItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// UpdateItemRequest represents the request body for changing a line quantity
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// CheckoutRequest represents the request body for checkout
type CheckoutRequest struct {
	Address       domain.Address `json:"address"`
	PaymentMethod string         `json:"paymentMethod"`
}

// CheckoutResponse carries the id of the created order
type CheckoutResponse struct {
	OrderID string `json:"orderId"`
}

// Get handles GET /api/v1/cart
// @Summary View the cart
// @Description Get the caller's cart with its line items and total
// @Tags Cart
// @Produce json
// @Success 200 {object} domain.Cart "Cart contents"
// @Failure 401 {object} map[string]string "Authentication required"
// @Router /cart [get]
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	caller := middleware.UserFrom(r.Context())
	c, err := h.service.Get(r.Context(), caller)
	if err != nil {
		h.handleError(w, err)
		return
	}
	response.Success(w, c)
}

// AddItem handles POST /api/v1/cart/items
// @Summary Add a product to the cart
// @Description Add quantity units of a product; an existing line grows instead of duplicating
// @Tags Cart
// @Accept json
// @Produce json
// @Param item body AddItemRequest true "Product and quantity"
// @Success 200 {object} domain.Cart "Updated cart"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Product not found"
// @Router /cart/items [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	caller := middleware.UserFrom(r.Context())
	c, err := h.service.Add(r.Context(), caller, req.ProductID, req.Quantity)
	if err != nil {
		h.handleError(w, err)
		return
	}
	response.Success(w, c)
}

// UpdateItem handles PUT /api/v1/cart/items/{productID}
// @Summary Change a line quantity
// @Description Set a line's quantity; values below one leave the line unchanged
// @Tags Cart
// @Accept json
// @Produce json
// @Param productID path string true "Product ID"
// @Param item body UpdateItemRequest true "New quantity"
// @Success 200 {object} domain.Cart "Updated cart"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /cart/items/{productID} [put]
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID, err := request.GetStringParam(r, "productID")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req UpdateItemRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	caller := middleware.UserFrom(r.Context())
	c, err := h.service.UpdateQuantity(r.Context(), caller, productID, req.Quantity)
	if err != nil {
		h.handleError(w, err)
		return
	}
	response.Success(w, c)
}

// RemoveItem handles DELETE /api/v1/cart/items/{productID}
// @Summary Remove a cart line
// @Description Drop a product's line from the cart entirely
// @Tags Cart
// @Produce json
// @Param productID path string true "Product ID"
// @Success 200 {object} domain.Cart "Updated cart"
// @Router /cart/items/{productID} [delete]
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := request.GetStringParam(r, "productID")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	caller := middleware.UserFrom(r.Context())
	c, err := h.service.Remove(r.Context(), caller, productID)
	if err != nil {
		h.handleError(w, err)
		return
	}
	response.Success(w, c)
}

// Clear handles DELETE /api/v1/cart
// @Summary Empty the cart
// @Tags Cart
// @Produce json
// @Success 204 "Cart emptied"
// @Router /cart [delete]
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	caller := middleware.UserFrom(r.Context())
	if err := h.service.Clear(r.Context(), caller); err != nil {
		h.handleError(w, err)
		return
	}
	response.NoContent(w)
}

// Checkout handles POST /api/v1/cart/checkout
// @Summary Check out
// @Description Snapshot the cart into a new pending order and empty the cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param checkout body CheckoutRequest true "Shipping address and payment method"
// @Success 201 {object} CheckoutResponse "Order created"
// @Failure 400 {object} map[string]string "Invalid address or empty cart"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 409 {object} map[string]string "Insufficient stock"
// @Router /cart/checkout [post]
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	caller := middleware.UserFrom(r.Context())
	orderID, err := h.service.Checkout(r.Context(), caller, req.Address, domain.PaymentMethod(req.PaymentMethod))
	if err != nil {
		h.handleError(w, err)
		return
	}
	response.Created(w, CheckoutResponse{OrderID: orderID})
}

// handleError maps service layer errors to HTTP responses
func (h *CartHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, domain.ErrEmptyCart):
		response.Error(w, http.StatusBadRequest, "Cart is empty")
	case errors.Is(err, domain.ErrOutOfStock):
		response.Error(w, http.StatusConflict, "Insufficient stock")
	case errors.Is(err, domain.ErrUnauthorized):
		response.Error(w, http.StatusUnauthorized, "Authentication required")
	default:
		h.logger.Error("Internal error in cart handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
