package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/proffy-go/proffy-api/internal/models"
	appErrors "github.com/proffy-go/proffy-api/pkg/errors"
)

type connectionRepository interface {
	Create(ctx context.Context, conn *models.Connection) error
	Total(ctx context.Context) (int, error)
}

// ConnectionService tracks student-to-tutor contact events.
type ConnectionService struct {
	repo   connectionRepository
	logger *zap.Logger
}

// NewConnectionService constructs a ConnectionService.
func NewConnectionService(repo connectionRepository, logger *zap.Logger) *ConnectionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConnectionService{repo: repo, logger: logger}
}

// Total returns how many contact events have ever been recorded.
func (s *ConnectionService) Total(ctx context.Context) (int, error) {
	total, err := s.repo.Total(ctx)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count connections")
	}
	return total, nil
}

// Record stores one contact event against the given tutor.
func (s *ConnectionService) Record(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return appErrors.Clone(appErrors.ErrValidation, "user_id is required")
	}

	conn := models.Connection{UserID: strings.TrimSpace(userID)}
	if err := s.repo.Create(ctx, &conn); err != nil {
		s.logger.Error("connection record failed", zap.String("user_id", userID), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record connection")
	}
	return nil
}
