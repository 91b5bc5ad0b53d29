package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/pharris560/ace-attendance/internal/domain/apikey"
	"github.com/pharris560/ace-attendance/internal/infrastructure/persistence/mappers"
	"github.com/pharris560/ace-attendance/internal/infrastructure/persistence/models"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
)

type APIKeyRepository struct {
	db     *gorm.DB
	mapper mappers.APIKeyMapper
}

func NewAPIKeyRepository(db *gorm.DB) apikey.Repository {
	return &APIKeyRepository{
		db:     db,
		mapper: mappers.NewAPIKeyMapper(),
	}
}

func (r *APIKeyRepository) Create(ctx context.Context, key *apikey.APIKey) error {
	model := r.mapper.ToModel(key)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create API key: %w", err)
	}
	return nil
}

func (r *APIKeyRepository) GetByID(ctx context.Context, id string) (*apikey.APIKey, error) {
	var model models.APIKeyModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get API key by ID: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *APIKeyRepository) GetByKeyHash(ctx context.Context, keyHash string) (*apikey.APIKey, error) {
	var model models.APIKeyModel
	err := r.db.WithContext(ctx).Where("key_hash = ?", keyHash).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get API key by hash: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *APIKeyRepository) ListByUserID(ctx context.Context, userID string) ([]*apikey.APIKey, error) {
	var keyModels []models.APIKeyModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&keyModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list API keys by user ID: %w", err)
	}

	keys := make([]*apikey.APIKey, len(keyModels))
	for i := range keyModels {
		keys[i] = r.mapper.ToDomain(&keyModels[i])
	}
	return keys, nil
}

func (r *APIKeyRepository) Update(ctx context.Context, key *apikey.APIKey) error {
	model := r.mapper.ToModel(key)
	result := r.db.WithContext(ctx).Model(&models.APIKeyModel{}).
		Where("id = ?", key.ID).
		Select("Name", "Active", "LastUsedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update API key: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("API key not found")
	}
	return nil
}

func (r *APIKeyRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.APIKeyModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete API key: %w", err)
	}
	return nil
}
