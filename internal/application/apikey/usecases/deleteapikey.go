package usecases

import (
	"context"
	"fmt"

	"github.com/pharris560/ace-attendance/internal/domain/apikey"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
)

// DeleteAPIKeyUseCase removes a key owned by the acting user.
type DeleteAPIKeyUseCase struct {
	apiKeyRepo apikey.Repository
	logger     logger.Interface
}

// NewDeleteAPIKeyUseCase creates a new delete API key use case
func NewDeleteAPIKeyUseCase(apiKeyRepo apikey.Repository, logger logger.Interface) *DeleteAPIKeyUseCase {
	return &DeleteAPIKeyUseCase{
		apiKeyRepo: apiKeyRepo,
		logger:     logger,
	}
}

// Execute deletes the key. Not-existing and not-owned are the same answer.
func (uc *DeleteAPIKeyUseCase) Execute(ctx context.Context, userID, keyID string) error {
	keyEntity, err := uc.apiKeyRepo.GetByID(ctx, keyID)
	if err != nil {
		uc.logger.Errorw("failed to load API key", "key_id", keyID, "error", err)
		return fmt.Errorf("failed to load API key: %w", err)
	}
	if keyEntity == nil || keyEntity.UserID != userID {
		return errors.NewNotFoundError("API key not found")
	}

	if err := uc.apiKeyRepo.Delete(ctx, keyID); err != nil {
		uc.logger.Errorw("failed to delete API key", "key_id", keyID, "error", err)
		return fmt.Errorf("failed to delete API key: %w", err)
	}

	uc.logger.Infow("API key deleted", "key_id", keyID, "user_id", userID)
	return nil
}
