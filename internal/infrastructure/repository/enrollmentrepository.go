package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/pharris560/ace-attendance/internal/domain/enrollment"
	"github.com/pharris560/ace-attendance/internal/infrastructure/persistence/mappers"
	"github.com/pharris560/ace-attendance/internal/infrastructure/persistence/models"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
)

type EnrollmentRepository struct {
	db     *gorm.DB
	mapper mappers.EnrollmentMapper
}

func NewEnrollmentRepository(db *gorm.DB) enrollment.Repository {
	return &EnrollmentRepository{
		db:     db,
		mapper: mappers.NewEnrollmentMapper(),
	}
}

// Create rejects a second "enrolled" row for the same (class, student) pair.
// The check and the insert run in one transaction.
func (r *EnrollmentRepository) Create(ctx context.Context, e *enrollment.Enrollment) error {
	model := r.mapper.ToModel(e)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if e.Status == enrollment.StatusEnrolled {
			var count int64
			err := tx.Model(&models.EnrollmentModel{}).
				Where("class_id = ? AND student_id = ? AND status = ?",
					e.ClassID, e.StudentID, string(enrollment.StatusEnrolled)).
				Count(&count).Error
			if err != nil {
				return fmt.Errorf("failed to check enrollment uniqueness: %w", err)
			}
			if count > 0 {
				return errors.NewConflictError("student is already enrolled in this class")
			}
		}
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create enrollment: %w", err)
		}
		return nil
	})
}

func (r *EnrollmentRepository) GetEnrolled(ctx context.Context, classID, studentID string) (*enrollment.Enrollment, error) {
	var model models.EnrollmentModel
	err := r.db.WithContext(ctx).
		Where("class_id = ? AND student_id = ? AND status = ?",
			classID, studentID, string(enrollment.StatusEnrolled)).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *EnrollmentRepository) ListByClassID(ctx context.Context, classID string) ([]*enrollment.Enrollment, error) {
	var enrollmentModels []models.EnrollmentModel
	err := r.db.WithContext(ctx).
		Where("class_id = ?", classID).
		Order("enrolled_at ASC").
		Find(&enrollmentModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments by class ID: %w", err)
	}

	enrollments := make([]*enrollment.Enrollment, len(enrollmentModels))
	for i := range enrollmentModels {
		enrollments[i] = r.mapper.ToDomain(&enrollmentModels[i])
	}
	return enrollments, nil
}

func (r *EnrollmentRepository) ListByStudentID(ctx context.Context, studentID string) ([]*enrollment.Enrollment, error) {
	var enrollmentModels []models.EnrollmentModel
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("enrolled_at ASC").
		Find(&enrollmentModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments by student ID: %w", err)
	}

	enrollments := make([]*enrollment.Enrollment, len(enrollmentModels))
	for i := range enrollmentModels {
		enrollments[i] = r.mapper.ToDomain(&enrollmentModels[i])
	}
	return enrollments, nil
}

func (r *EnrollmentRepository) CountEnrolledByClassIDs(ctx context.Context, classIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64)
	if len(classIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		ClassID string
		Count   int64
	}
	err := r.db.WithContext(ctx).Model(&models.EnrollmentModel{}).
		Select("class_id, COUNT(*) as count").
		Where("class_id IN ? AND status = ?", classIDs, string(enrollment.StatusEnrolled)).
		Group("class_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count enrollments by class IDs: %w", err)
	}

	for _, row := range rows {
		counts[row.ClassID] = row.Count
	}
	return counts, nil
}

func (r *EnrollmentRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.EnrollmentModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete enrollment: %w", err)
	}
	return nil
}
