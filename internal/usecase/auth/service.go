package auth

import (
	"context"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/electromart/storefront/internal/domain"
	"github.com/electromart/storefront/internal/pkg/logger"
)

// Service handles registration, login and session resolution.
// Credentials are bcrypt-hashed; there is no fixed admin identity
// outside the user table.
type Service struct {
	users    domain.UserRepository
	sessions domain.SessionStore
	validate *validator.Validate
	logger   *logger.Logger
}

// NewService creates a new auth service
func NewService(users domain.UserRepository, sessions domain.SessionStore, log *logger.Logger) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		validate: validator.New(),
		logger:   log,
	}
}

// signupInput carries the validated signup fields
type signupInput struct {
	Name     string `validate:"required,min=1,max=100"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6,max=72"`
}

// Signup registers a new user and opens a session. Duplicate emails
// fail with ErrAlreadyExists and commit nothing.
func (s *Service) Signup(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	in := signupInput{Name: name, Email: email, Password: password}
	if err := s.validate.Struct(in); err != nil {
		s.logger.Error("Signup validation failed", err)
		return nil, "", domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Failed to hash password", err)
		return nil, "", domain.ErrInternal
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if err == domain.ErrAlreadyExists {
			s.logger.Debugf("Signup rejected, email already registered: %s", email)
		} else {
			s.logger.Error("Failed to create user", err)
		}
		return nil, "", err
	}

	token, err := s.sessions.Create(ctx, *user)
	if err != nil {
		s.logger.Error("Failed to open session", err)
		return nil, "", err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("User registered successfully")

	public := user.Public()
	return &public, token, nil
}

// Login checks the submitted credentials and opens a session. Unknown
// emails and wrong passwords produce the same error so the response
// does not reveal which accounts exist.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, "", domain.ErrUnauthorized
		}
		s.logger.Error("Failed to look up user", err)
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrUnauthorized
	}

	token, err := s.sessions.Create(ctx, *user)
	if err != nil {
		s.logger.Error("Failed to open session", err)
		return nil, "", err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": user.ID,
	}).Info("User logged in")

	public := user.Public()
	return &public, token, nil
}

// Logout closes the session for the given token
func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		s.logger.Error("Failed to close session", err)
		return err
	}
	return nil
}

// Current resolves a session token to the authenticated user
func (s *Service) Current(ctx context.Context, token string) (*domain.User, error) {
	user, err := s.sessions.Get(ctx, token)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

// ListUsers retrieves all users with credentials stripped. Admin only.
func (s *Service) ListUsers(ctx context.Context, caller *domain.User) ([]domain.User, error) {
	if caller == nil {
		return nil, domain.ErrUnauthorized
	}
	if !caller.IsAdmin {
		return nil, domain.ErrForbidden
	}

	users, err := s.users.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list users", err)
		return nil, err
	}
	return users, nil
}

// EnsureAdmin provisions the administrator account through the normal
// user-creation path. An existing account with the configured email is
// left untouched.
func (s *Service) EnsureAdmin(ctx context.Context, name, email, password string) error {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil
	} else if err != domain.ErrNotFound {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}

	if err := s.users.Create(ctx, admin); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"email": email,
	}).Info("Provisioned administrator account")
	return nil
}
