package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/schedassist/cli/internal/models"
	"github.com/schedassist/cli/internal/session"
	appErrors "github.com/schedassist/cli/pkg/errors"
)

// AuthService drives login, registration and the startup auth check.
type AuthService struct {
	gw        httpGateway
	sessions  *session.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(gw httpGateway, sessions *session.Store, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{gw: gw, sessions: sessions, validator: validate, logger: logger}
}

// Login authenticates, stores the issued token and runs the auth check
// so the session ends up with both token and profile.
func (s *AuthService) Login(ctx context.Context, creds models.Credentials) (*models.User, error) {
	if err := s.validator.Struct(creds); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "username and password are required")
	}

	var resp models.LoginResponse
	if err := s.gw.Post(ctx, "/api/auth/login", creds, &resp); err != nil {
		return nil, err
	}

	s.sessions.SetToken(resp.AccessToken)
	return s.CheckAuth(ctx)
}

// Register creates an account. It does not log the user in; the caller
// prompts for a fresh login afterwards.
func (s *AuthService) Register(ctx context.Context, creds models.Credentials) error {
	if err := s.validator.Struct(creds); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "username and password are required")
	}
	return s.gw.Post(ctx, "/api/auth/register", creds, nil)
}

// CheckAuth validates the stored token against the backend and installs
// the returned profile. Any failure tears the session down.
func (s *AuthService) CheckAuth(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.gw.Get(ctx, "/api/auth/me", nil, &user); err != nil {
		s.sessions.Clear()
		return nil, err
	}
	s.sessions.SetUser(&user)
	return &user, nil
}

// Logout discards the session locally. The backend keeps no server-side
// session state to revoke.
func (s *AuthService) Logout() {
	s.sessions.Clear()
}
