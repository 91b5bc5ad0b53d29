package mappers

import (
	"github.com/pharris560/ace-attendance/internal/domain/apikey"
	"github.com/pharris560/ace-attendance/internal/infrastructure/persistence/models"
)

// APIKeyMapper handles the conversion between APIKey domain entities and persistence models.
type APIKeyMapper interface {
	ToModel(entity *apikey.APIKey) *models.APIKeyModel
	ToDomain(model *models.APIKeyModel) *apikey.APIKey
}

type apiKeyMapper struct{}

// NewAPIKeyMapper creates a new APIKeyMapper.
func NewAPIKeyMapper() APIKeyMapper {
	return &apiKeyMapper{}
}

func (m *apiKeyMapper) ToModel(entity *apikey.APIKey) *models.APIKeyModel {
	if entity == nil {
		return nil
	}
	return &models.APIKeyModel{
		ID:         entity.ID,
		UserID:     entity.UserID,
		Name:       entity.Name,
		KeyHash:    entity.KeyHash,
		KeyPrefix:  entity.KeyPrefix,
		Active:     entity.Active,
		CreatedAt:  entity.CreatedAt,
		LastUsedAt: entity.LastUsedAt,
	}
}

func (m *apiKeyMapper) ToDomain(model *models.APIKeyModel) *apikey.APIKey {
	if model == nil {
		return nil
	}
	return &apikey.APIKey{
		ID:         model.ID,
		UserID:     model.UserID,
		Name:       model.Name,
		KeyHash:    model.KeyHash,
		KeyPrefix:  model.KeyPrefix,
		Active:     model.Active,
		CreatedAt:  model.CreatedAt,
		LastUsedAt: model.LastUsedAt,
	}
}
