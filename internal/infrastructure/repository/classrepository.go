package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/pharris560/ace-attendance/internal/domain/class"
	"github.com/pharris560/ace-attendance/internal/infrastructure/persistence/mappers"
	"github.com/pharris560/ace-attendance/internal/infrastructure/persistence/models"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
)

type ClassRepository struct {
	db     *gorm.DB
	mapper mappers.ClassMapper
}

func NewClassRepository(db *gorm.DB) class.Repository {
	return &ClassRepository{
		db:     db,
		mapper: mappers.NewClassMapper(),
	}
}

func (r *ClassRepository) Create(ctx context.Context, c *class.Class) error {
	model := r.mapper.ToModel(c)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create class: %w", err)
	}
	return nil
}

func (r *ClassRepository) GetByID(ctx context.Context, id string) (*class.Class, error) {
	var model models.ClassModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get class by ID: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *ClassRepository) GetByIDs(ctx context.Context, ids []string) ([]*class.Class, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var classModels []models.ClassModel
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&classModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get classes by IDs: %w", err)
	}

	classes := make([]*class.Class, len(classModels))
	for i := range classModels {
		classes[i] = r.mapper.ToDomain(&classModels[i])
	}
	return classes, nil
}

func (r *ClassRepository) List(ctx context.Context) ([]*class.Class, error) {
	var classModels []models.ClassModel
	err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&classModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}

	classes := make([]*class.Class, len(classModels))
	for i := range classModels {
		classes[i] = r.mapper.ToDomain(&classModels[i])
	}
	return classes, nil
}

func (r *ClassRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]*class.Class, error) {
	var classModels []models.ClassModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC, id ASC").
		Find(&classModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list classes by owner ID: %w", err)
	}

	classes := make([]*class.Class, len(classModels))
	for i := range classModels {
		classes[i] = r.mapper.ToDomain(&classModels[i])
	}
	return classes, nil
}

func (r *ClassRepository) Update(ctx context.Context, c *class.Class) error {
	model := r.mapper.ToModel(c)
	result := r.db.WithContext(ctx).Model(&models.ClassModel{}).
		Where("id = ?", c.ID).
		Select("Name", "Instructor", "Capacity", "Schedule", "Status", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update class: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("class not found")
	}
	return nil
}

// Delete removes the class and everything referencing it in one transaction
// so no orphan enrollments or attendance records survive a partial failure.
func (r *ClassRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("class_id = ?", id).Delete(&models.AttendanceModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete attendance records for class: %w", err)
		}
		if err := tx.Where("class_id = ?", id).Delete(&models.EnrollmentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete enrollments for class: %w", err)
		}
		if err := tx.Where("id = ?", id).Delete(&models.ClassModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete class: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
