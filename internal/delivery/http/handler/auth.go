package handler

import (
	"errors"
	"net/http"

	"github.com/electromart/storefront/internal/delivery/http/middleware"
	"github.com/electromart/storefront/internal/delivery/http/request"
	"github.com/electromart/storefront/internal/delivery/http/response"
	"github.com/electromart/storefront/internal/domain"
	"github.com/electromart/storefront/internal/pkg/logger"
	"github.com/electromart/storefront/internal/usecase/auth"
)

// AuthHandler handles HTTP requests for signup, login and sessions
type AuthHandler struct {
	service *auth.Service
	logger  *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *auth.Service, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  log,
	}
}

// SignupRequest represents the request body for registration
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse is returned from signup and login
type SessionResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// Signup handles POST /api/v1/auth/signup
// @Summary Register a new account
// @Description Create an account and open a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body SignupRequest true "Signup details"
// @Success 201 {object} SessionResponse "Account created"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 409 {object} map[string]string "Email already registered"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.service.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.handleError(w, err)
		return
	}
	response.Created(w, SessionResponse{Token: token, User: *user})
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Check credentials and open a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login details"
// @Success 200 {object} SessionResponse "Session opened"
// @Failure 401 {object} map[string]string "Invalid email or password"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			response.Error(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.handleError(w, err)
		return
	}
	response.Success(w, SessionResponse{Token: token, User: *user})
}

// Logout handles POST /api/v1/auth/logout
// @Summary Log out
// @Description Close the current session
// @Tags Auth
// @Produce json
// @Success 204 "Session closed"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := request.BearerToken(r)
	if token == "" {
		response.NoContent(w)
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		h.handleError(w, err)
		return
	}
	response.NoContent(w)
}

// Me handles GET /api/v1/auth/me
// @Summary Current user
// @Description Return the authenticated user for the session token
// @Tags Auth
// @Produce json
// @Success 200 {object} domain.User "Authenticated user"
// @Failure 401 {object} map[string]string "Authentication required"
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	if user == nil {
		response.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	response.Success(w, user)
}

// handleError maps service layer errors to HTTP responses
func (h *AuthHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, domain.ErrAlreadyExists):
		response.Error(w, http.StatusConflict, "Email already registered")
	case errors.Is(err, domain.ErrUnauthorized):
		response.Error(w, http.StatusUnauthorized, "Authentication required")
	default:
		h.logger.Error("Internal error in auth handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
