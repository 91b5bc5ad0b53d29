package usecases

import (
	"context"
	"fmt"

	"github.com/pharris560/ace-attendance/internal/domain/apikey"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
)

// ListAPIKeysUseCase lists a user's API keys in masked form.
type ListAPIKeysUseCase struct {
	apiKeyRepo apikey.Repository
	logger     logger.Interface
}

// NewListAPIKeysUseCase creates a new list API keys use case
func NewListAPIKeysUseCase(apiKeyRepo apikey.Repository, logger logger.Interface) *ListAPIKeysUseCase {
	return &ListAPIKeysUseCase{
		apiKeyRepo: apiKeyRepo,
		logger:     logger,
	}
}

// Execute returns the masked views of every key owned by userID.
func (uc *ListAPIKeysUseCase) Execute(ctx context.Context, userID string) ([]apikey.Public, error) {
	keys, err := uc.apiKeyRepo.ListByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list API keys", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list API keys: %w", err)
	}

	views := make([]apikey.Public, len(keys))
	for i, key := range keys {
		views[i] = key.Public()
	}
	return views, nil
}
