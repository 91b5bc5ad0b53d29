package mappers

import (
	"github.com/pharris560/ace-attendance/internal/domain/enrollment"
	"github.com/pharris560/ace-attendance/internal/infrastructure/persistence/models"
)

// EnrollmentMapper handles the conversion between Enrollment domain entities and persistence models.
type EnrollmentMapper interface {
	ToModel(entity *enrollment.Enrollment) *models.EnrollmentModel
	ToDomain(model *models.EnrollmentModel) *enrollment.Enrollment
}

type enrollmentMapper struct{}

// NewEnrollmentMapper creates a new EnrollmentMapper.
func NewEnrollmentMapper() EnrollmentMapper {
	return &enrollmentMapper{}
}

func (m *enrollmentMapper) ToModel(entity *enrollment.Enrollment) *models.EnrollmentModel {
	if entity == nil {
		return nil
	}
	return &models.EnrollmentModel{
		ID:         entity.ID,
		ClassID:    entity.ClassID,
		StudentID:  entity.StudentID,
		Status:     string(entity.Status),
		EnrolledAt: entity.EnrolledAt,
	}
}

func (m *enrollmentMapper) ToDomain(model *models.EnrollmentModel) *enrollment.Enrollment {
	if model == nil {
		return nil
	}
	return &enrollment.Enrollment{
		ID:         model.ID,
		ClassID:    model.ClassID,
		StudentID:  model.StudentID,
		Status:     enrollment.Status(model.Status),
		EnrolledAt: model.EnrolledAt,
	}
}
