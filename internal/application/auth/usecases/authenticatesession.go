package usecases

import (
	"context"
	"fmt"

	"github.com/pharris560/ace-attendance/internal/domain/user"
	"github.com/pharris560/ace-attendance/internal/infrastructure/token"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
)

// AuthenticateSessionUseCase resolves a session token to its user.
type AuthenticateSessionUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	tokens      token.Generator
	logger      logger.Interface
}

// NewAuthenticateSessionUseCase creates a new authenticate session use case
func NewAuthenticateSessionUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	tokens token.Generator,
	logger logger.Interface,
) *AuthenticateSessionUseCase {
	return &AuthenticateSessionUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		tokens:      tokens,
		logger:      logger,
	}
}

// Execute validates the token and returns the acting user. A session found
// to be expired is deleted on the spot; absent, expired and orphaned sessions
// all collapse to the same unauthenticated error.
func (uc *AuthenticateSessionUseCase) Execute(ctx context.Context, plainToken string) (*user.User, error) {
	if plainToken == "" {
		return nil, errors.NewSessionExpiredError()
	}

	session, err := uc.sessionRepo.GetByTokenHash(ctx, uc.tokens.Hash(plainToken))
	if err != nil {
		uc.logger.Errorw("failed to look up session", "error", err)
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}
	if session == nil {
		return nil, errors.NewSessionExpiredError()
	}

	if session.IsExpired() {
		// Lazy expiry: first touch after the deadline evicts the row.
		if err := uc.sessionRepo.Delete(ctx, session.ID); err != nil {
			uc.logger.Warnw("failed to evict expired session", "session_id", session.ID, "error", err)
		}
		return nil, errors.NewSessionExpiredError()
	}

	userEntity, err := uc.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load session user", "error", err)
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if userEntity == nil {
		uc.logger.Warnw("session references missing user", "session_id", session.ID, "user_id", session.UserID)
		return nil, errors.NewSessionExpiredError()
	}

	return userEntity, nil
}
