package mappers

import (
	"github.com/pharris560/ace-attendance/internal/domain/student"
	"github.com/pharris560/ace-attendance/internal/infrastructure/persistence/models"
)

// StudentMapper handles the conversion between Student domain entities and persistence models.
type StudentMapper interface {
	ToModel(entity *student.Student) *models.StudentModel
	ToDomain(model *models.StudentModel) *student.Student
}

type studentMapper struct{}

// NewStudentMapper creates a new StudentMapper.
func NewStudentMapper() StudentMapper {
	return &studentMapper{}
}

func (m *studentMapper) ToModel(entity *student.Student) *models.StudentModel {
	if entity == nil {
		return nil
	}
	return &models.StudentModel{
		ID:            entity.ID,
		StudentNumber: entity.StudentNumber,
		FirstName:     entity.FirstName,
		LastName:      entity.LastName,
		Email:         entity.Email,
		Phone:         entity.Phone,
		Status:        string(entity.Status),
		OwnerID:       entity.OwnerID,
		CreatedAt:     entity.CreatedAt,
		UpdatedAt:     entity.UpdatedAt,
	}
}

func (m *studentMapper) ToDomain(model *models.StudentModel) *student.Student {
	if model == nil {
		return nil
	}
	return &student.Student{
		ID:            model.ID,
		StudentNumber: model.StudentNumber,
		FirstName:     model.FirstName,
		LastName:      model.LastName,
		Email:         model.Email,
		Phone:         model.Phone,
		Status:        student.Status(model.Status),
		OwnerID:       model.OwnerID,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}
