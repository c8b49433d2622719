package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/schedassist/cli/internal/models"
)

// StudyBlockService reads the derived study schedule. Study blocks are
// never mutated directly from the client; they change only when their
// inputs change or through an explicit regenerate request.
type StudyBlockService struct {
	gw     httpGateway
	logger *zap.Logger
}

// NewStudyBlockService constructs the service.
func NewStudyBlockService(gw httpGateway, logger *zap.Logger) *StudyBlockService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudyBlockService{gw: gw, logger: logger}
}

// List fetches the current derived study blocks.
func (s *StudyBlockService) List(ctx context.Context) ([]models.StudyBlock, error) {
	var blocks []models.StudyBlock
	if err := s.gw.Get(ctx, "/api/study-blocks", nil, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

// Regenerate asks the backend to recompute the study schedule from
// scratch.
func (s *StudyBlockService) Regenerate(ctx context.Context) error {
	return s.gw.Post(ctx, "/api/study-blocks/regenerate", nil, nil)
}
