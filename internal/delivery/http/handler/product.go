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

// ProductHandler handles HTTP requests for products
type ProductHandler struct {
	service *catalog.Service
	logger  *logger.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *catalog.Service, log *logger.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  log,
	}
}

// ProductRequest represents the request body for creating or updating a product
type ProductRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"required"`
	Price       int64  `json:"price" validate:"gte=0"`
	Category    string `json:"category" validate:"required,max=100"`
	ImageURL    string `json:"imageUrl"`
	Stock       int    `json:"stock" validate:"gte=0"`
	Featured    bool   `json:"featured"`
}

func (req *ProductRequest) toDomain() *domain.Product {
	return &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		InStock:     req.Stock > 0,
		Featured:    req.Featured,
	}
}

// List handles GET /api/v1/products
// @Summary List all products
// @Description Get all catalog products in insertion order
// @Tags Products
// @Produce json
// @Success 200 {array} domain.Product "Product list"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	response.Success(w, products)
}

// GetByID handles GET /api/v1/products/{id}
// @Summary Get a product by ID
// @Description Get a product including its reviews and average rating
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} domain.Product "Product details"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products/{id} [get]
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetStringParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}
	response.Success(w, product)
}

// Create handles POST /api/v1/products
// @Summary Create a new product
// @Description Create a catalog product (admin only)
// @Tags Products
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product details"
// @Success 201 {object} domain.Product "Product created"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product := req.toDomain()
	caller := middleware.UserFrom(r.Context())

	if err := h.service.Create(r.Context(), caller, product); err != nil {
		h.handleError(w, err)
		return
	}
	response.Created(w, product)
}

// Update handles PUT /api/v1/products/{id}
// @Summary Update a product
// @Description Replace a product's fields (admin only)
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body ProductRequest true "Updated product details"
// @Success 200 {object} domain.Product "Product updated"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products/{id} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetStringParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req ProductRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product := req.toDomain()
	product.ID = id
	caller := middleware.UserFrom(r.Context())

	if err := h.service.Update(r.Context(), caller, product); err != nil {
		h.handleError(w, err)
		return
	}
	response.Success(w, product)
}

// Delete handles DELETE /api/v1/products/{id}
// @Summary Delete a product
// @Description Remove a product from the catalog (admin only)
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 204 "Product deleted"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetStringParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	caller := middleware.UserFrom(r.Context())
	if err := h.service.Delete(r.Context(), caller, id); err != nil {
		h.handleError(w, err)
		return
	}
	response.NoContent(w)
}

// handleError maps service layer errors to HTTP responses
func (h *ProductHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, domain.ErrUnauthorized):
		response.Error(w, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, domain.ErrForbidden):
		response.Error(w, http.StatusForbidden, "Admin access required")
	default:
		h.logger.Error("Internal error in product handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
