package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/schedassist/cli/internal/models"
	appErrors "github.com/schedassist/cli/pkg/errors"
)

// PreferenceService reads and replaces the per-user preferences
// singleton.
type PreferenceService struct {
	gw        httpGateway
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPreferenceService constructs the service.
func NewPreferenceService(gw httpGateway, validate *validator.Validate, logger *zap.Logger) *PreferenceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PreferenceService{gw: gw, validator: validate, logger: logger}
}

// Get fetches the preferences, read once on dashboard entry.
func (s *PreferenceService) Get(ctx context.Context) (*models.Preferences, error) {
	var prefs models.Preferences
	if err := s.gw.Get(ctx, "/api/preferences", nil, &prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

// Update replaces the preferences wholesale. Saving preferences does not
// invalidate any view; regeneration picks the new values up next time it
// runs.
func (s *PreferenceService) Update(ctx context.Context, prefs models.Preferences) error {
	if err := s.validator.Struct(prefs); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid preferences payload")
	}
	return s.gw.Put(ctx, "/api/preferences", prefs, nil)
}
