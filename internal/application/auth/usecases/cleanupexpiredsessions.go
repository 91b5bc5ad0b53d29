package usecases

import (
	"context"
	"fmt"

	"github.com/pharris560/ace-attendance/internal/domain/user"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
)

// CleanupExpiredSessionsUseCase is the scheduled sweep behind the session
// janitor. Lazy expiry on lookup is the correctness path; this job just keeps
// the store from accumulating dead rows.
type CleanupExpiredSessionsUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

// NewCleanupExpiredSessionsUseCase creates a new cleanup use case
func NewCleanupExpiredSessionsUseCase(
	sessionRepo user.SessionRepository,
	logger logger.Interface,
) *CleanupExpiredSessionsUseCase {
	return &CleanupExpiredSessionsUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Execute removes every expired session and returns how many were removed.
// It satisfies the scheduler's BatchJob interface.
func (uc *CleanupExpiredSessionsUseCase) Execute(ctx context.Context) (int, error) {
	removed, err := uc.sessionRepo.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	if removed > 0 {
		uc.logger.Infow("expired sessions cleaned up", "count", removed)
	}
	return int(removed), nil
}
