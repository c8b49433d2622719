package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/schedassist/cli/internal/models"
	appErrors "github.com/schedassist/cli/pkg/errors"
)

// ClassService owns the weekly class schedule.
type ClassService struct {
	gw        httpGateway
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClassService constructs the service.
func NewClassService(gw httpGateway, validate *validator.Validate, logger *zap.Logger) *ClassService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{gw: gw, validator: validate, logger: logger}
}

// List fetches all weekly class slots.
func (s *ClassService) List(ctx context.Context) ([]models.ClassSession, error) {
	var classes []models.ClassSession
	if err := s.gw.Get(ctx, "/api/classes", nil, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

// Create adds a weekly class slot.
func (s *ClassService) Create(ctx context.Context, req models.CreateClassRequest) (*models.ClassSession, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class payload")
	}
	var created models.ClassSession
	if err := s.gw.Post(ctx, "/api/classes", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete removes a class slot.
func (s *ClassService) Delete(ctx context.Context, id int) error {
	return s.gw.Delete(ctx, fmt.Sprintf("/api/classes/%d", id))
}
