package usecases

import (
	"context"
	"fmt"

	"github.com/pharris560/ace-attendance/internal/domain/user"
	"github.com/pharris560/ace-attendance/internal/infrastructure/token"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
)

// LogoutUseCase revokes the session behind a presented token.
type LogoutUseCase struct {
	sessionRepo user.SessionRepository
	tokens      token.Generator
	logger      logger.Interface
}

// NewLogoutUseCase creates a new logout use case
func NewLogoutUseCase(
	sessionRepo user.SessionRepository,
	tokens token.Generator,
	logger logger.Interface,
) *LogoutUseCase {
	return &LogoutUseCase{
		sessionRepo: sessionRepo,
		tokens:      tokens,
		logger:      logger,
	}
}

// Execute deletes the session for the token. Logging out with an unknown or
// already expired token succeeds; the end state is the same.
func (uc *LogoutUseCase) Execute(ctx context.Context, plainToken string) error {
	if plainToken == "" {
		return nil
	}

	session, err := uc.sessionRepo.GetByTokenHash(ctx, uc.tokens.Hash(plainToken))
	if err != nil {
		uc.logger.Errorw("failed to look up session for logout", "error", err)
		return fmt.Errorf("failed to look up session: %w", err)
	}
	if session == nil {
		return nil
	}

	if err := uc.sessionRepo.Delete(ctx, session.ID); err != nil {
		uc.logger.Errorw("failed to delete session", "session_id", session.ID, "error", err)
		return fmt.Errorf("failed to delete session: %w", err)
	}

	uc.logger.Infow("user logged out", "user_id", session.UserID)
	return nil
}
