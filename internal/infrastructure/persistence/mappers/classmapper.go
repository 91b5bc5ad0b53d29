package mappers

import (
	"github.com/pharris560/ace-attendance/internal/domain/class"
	"github.com/pharris560/ace-attendance/internal/infrastructure/persistence/models"
)

// ClassMapper handles the conversion between Class domain entities and persistence models.
type ClassMapper interface {
	ToModel(entity *class.Class) *models.ClassModel
	ToDomain(model *models.ClassModel) *class.Class
}

type classMapper struct{}

// NewClassMapper creates a new ClassMapper.
func NewClassMapper() ClassMapper {
	return &classMapper{}
}

func (m *classMapper) ToModel(entity *class.Class) *models.ClassModel {
	if entity == nil {
		return nil
	}
	return &models.ClassModel{
		ID:         entity.ID,
		Name:       entity.Name,
		Instructor: entity.Instructor,
		Capacity:   entity.Capacity,
		Schedule:   entity.Schedule,
		Status:     string(entity.Status),
		OwnerID:    entity.OwnerID,
		CreatedAt:  entity.CreatedAt,
		UpdatedAt:  entity.UpdatedAt,
	}
}

func (m *classMapper) ToDomain(model *models.ClassModel) *class.Class {
	if model == nil {
		return nil
	}
	return &class.Class{
		ID:         model.ID,
		Name:       model.Name,
		Instructor: model.Instructor,
		Capacity:   model.Capacity,
		Schedule:   model.Schedule,
		Status:     class.Status(model.Status),
		OwnerID:    model.OwnerID,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}
