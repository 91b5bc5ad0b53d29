package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pharris560/ace-attendance/internal/domain/user"
	"github.com/pharris560/ace-attendance/internal/infrastructure/token"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
)

// LoginCommand contains the credentials presented at login.
type LoginCommand struct {
	Username string
	Password string
}

// LoginResult carries the freshly issued session token. The raw token exists
// only here; the store keeps its hash.
type LoginResult struct {
	User      user.Public
	Token     string
	ExpiresAt time.Time
}

// LoginUseCase verifies credentials and issues a session.
type LoginUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	hasher      user.PasswordHasher
	tokens      token.Generator
	sessionTTL  time.Duration
	logger      logger.Interface
}

// NewLoginUseCase creates a new login use case
func NewLoginUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher user.PasswordHasher,
	tokens token.Generator,
	sessionTTL time.Duration,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		tokens:      tokens,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}
}

// Execute checks username and password and creates a session on success.
// Unknown username and wrong password are indistinguishable to the caller.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	username := strings.TrimSpace(cmd.Username)
	if username == "" || cmd.Password == "" {
		return nil, errors.NewInvalidCredentialsError()
	}

	userEntity, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		uc.logger.Errorw("failed to look up user for login", "error", err)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if userEntity == nil {
		uc.logger.Debugw("login attempt for unknown username", "username", username)
		return nil, errors.NewInvalidCredentialsError()
	}

	if err := uc.hasher.Verify(cmd.Password, userEntity.PasswordHash); err != nil {
		uc.logger.Debugw("login attempt with wrong password", "user_id", userEntity.ID)
		return nil, errors.NewInvalidCredentialsError()
	}

	plainToken, tokenHash, err := uc.tokens.Generate("")
	if err != nil {
		uc.logger.Errorw("failed to generate session token", "error", err)
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	session, err := user.NewSession(userEntity.ID, tokenHash, uc.sessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		uc.logger.Errorw("failed to persist session", "error", err)
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", userEntity.ID)

	return &LoginResult{
		User:      userEntity.Public(),
		Token:     plainToken,
		ExpiresAt: session.ExpiresAt,
	}, nil
}
