package handler

import (
	"errors"
	"net/http"

	"github.com/electromart/storefront/internal/delivery/http/middleware"
	"github.com/electromart/storefront/internal/delivery/http/response"
	"github.com/electromart/storefront/internal/domain"
	"github.com/electromart/storefront/internal/pkg/logger"
	"github.com/electromart/storefront/internal/usecase/auth"
)

// UserHandler handles the admin user listing
type UserHandler struct {
	service *auth.Service
	logger  *logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(service *auth.Service, log *logger.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  log,
	}
}

// List handles GET /api/v1/admin/users
// @Summary List users
// @Description Get all registered users with credentials stripped (admin only)
// @Tags Admin
// @Produce json
// @Success 200 {array} domain.User "Users"
// @Failure 403 {object} map[string]string "Admin access required"
// @Router /admin/users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	caller := middleware.UserFrom(r.Context())
	users, err := h.service.ListUsers(r.Context(), caller)
	if err != nil {
		h.handleError(w, err)
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	response.Success(w, users)
}

// handleError maps service layer errors to HTTP responses
func (h *UserHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		response.Error(w, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, domain.ErrForbidden):
		response.Error(w, http.StatusForbidden, "Admin access required")
	default:
		h.logger.Error("Internal error in user handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
