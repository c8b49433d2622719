package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/schedassist/cli/internal/models"
	appErrors "github.com/schedassist/cli/pkg/errors"
)

// AssignmentService owns assignment CRUD and completion.
type AssignmentService struct {
	gw        httpGateway
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAssignmentService constructs the service.
func NewAssignmentService(gw httpGateway, validate *validator.Validate, logger *zap.Logger) *AssignmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssignmentService{gw: gw, validator: validate, logger: logger}
}

// List fetches assignments under the tri-state completion filter.
// FilterAll omits the completed parameter entirely; sending nothing is
// the "show everything" signal, distinct from an empty result.
func (s *AssignmentService) List(ctx context.Context, filter models.AssignmentFilter) ([]models.Assignment, error) {
	var query url.Values
	if value, ok := filter.QueryValue(); ok {
		query = url.Values{"completed": []string{value}}
	}

	var assignments []models.Assignment
	if err := s.gw.Get(ctx, "/api/assignments", query, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// Create submits a new assignment.
func (s *AssignmentService) Create(ctx context.Context, req models.CreateAssignmentRequest) (*models.Assignment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}
	var created models.Assignment
	if err := s.gw.Post(ctx, "/api/assignments", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Complete marks an assignment done. A nil actualMinutes is sent as an
// explicit null, never coerced to zero; the backend's estimation logic
// treats "unknown" and "zero minutes" differently.
func (s *AssignmentService) Complete(ctx context.Context, id int, actualMinutes *int) error {
	body := models.CompleteAssignmentRequest{ActualTimeMinutes: actualMinutes}
	return s.gw.Post(ctx, fmt.Sprintf("/api/assignments/%d/complete", id), body, nil)
}

// Delete removes an assignment. Confirmation is the caller's concern;
// the server deletes unconditionally once asked.
func (s *AssignmentService) Delete(ctx context.Context, id int) error {
	return s.gw.Delete(ctx, fmt.Sprintf("/api/assignments/%d", id))
}
