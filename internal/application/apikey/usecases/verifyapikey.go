package usecases

import (
	"context"
	"fmt"

	"github.com/pharris560/ace-attendance/internal/domain/apikey"
	"github.com/pharris560/ace-attendance/internal/domain/user"
	"github.com/pharris560/ace-attendance/internal/infrastructure/token"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
)

// VerifyAPIKeyUseCase resolves a presented raw key to its owning user.
type VerifyAPIKeyUseCase struct {
	apiKeyRepo apikey.Repository
	userRepo   user.Repository
	tokens     token.Generator
	logger     logger.Interface
}

// NewVerifyAPIKeyUseCase creates a new verify API key use case
func NewVerifyAPIKeyUseCase(
	apiKeyRepo apikey.Repository,
	userRepo user.Repository,
	tokens token.Generator,
	logger logger.Interface,
) *VerifyAPIKeyUseCase {
	return &VerifyAPIKeyUseCase{
		apiKeyRepo: apiKeyRepo,
		userRepo:   userRepo,
		tokens:     tokens,
		logger:     logger,
	}
}

// Execute looks the key up by hash and checks the active flag. Unknown,
// inactive and orphaned keys yield the same outward error. Successful use
// refreshes the last-used timestamp.
func (uc *VerifyAPIKeyUseCase) Execute(ctx context.Context, rawKey string) (*user.User, error) {
	if rawKey == "" {
		return nil, errors.NewInvalidAPIKeyError()
	}

	keyEntity, err := uc.apiKeyRepo.GetByKeyHash(ctx, uc.tokens.Hash(rawKey))
	if err != nil {
		uc.logger.Errorw("failed to look up API key", "error", err)
		return nil, fmt.Errorf("failed to look up API key: %w", err)
	}
	if keyEntity == nil {
		uc.logger.Debugw("unknown API key presented")
		return nil, errors.NewInvalidAPIKeyError()
	}
	if !keyEntity.Active {
		uc.logger.Debugw("inactive API key presented", "key_id", keyEntity.ID)
		return nil, errors.NewInvalidAPIKeyError()
	}

	userEntity, err := uc.userRepo.GetByID(ctx, keyEntity.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load API key user", "error", err)
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if userEntity == nil {
		uc.logger.Warnw("API key references missing user", "key_id", keyEntity.ID, "user_id", keyEntity.UserID)
		return nil, errors.NewInvalidAPIKeyError()
	}

	keyEntity.Touch()
	if err := uc.apiKeyRepo.Update(ctx, keyEntity); err != nil {
		// Losing a last-used refresh is tolerable; authentication still stands.
		uc.logger.Warnw("failed to refresh API key last-used timestamp", "key_id", keyEntity.ID, "error", err)
	}

	return userEntity, nil
}
