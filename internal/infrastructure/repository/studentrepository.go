package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/pharris560/ace-attendance/internal/domain/student"
	"github.com/pharris560/ace-attendance/internal/infrastructure/persistence/mappers"
	"github.com/pharris560/ace-attendance/internal/infrastructure/persistence/models"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
)

type StudentRepository struct {
	db     *gorm.DB
	mapper mappers.StudentMapper
}

func NewStudentRepository(db *gorm.DB) student.Repository {
	return &StudentRepository{
		db:     db,
		mapper: mappers.NewStudentMapper(),
	}
}

func (r *StudentRepository) Create(ctx context.Context, st *student.Student) error {
	model := r.mapper.ToModel(st)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

func (r *StudentRepository) GetByID(ctx context.Context, id string) (*student.Student, error) {
	var model models.StudentModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get student by ID: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *StudentRepository) GetByIDs(ctx context.Context, ids []string) ([]*student.Student, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var studentModels []models.StudentModel
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&studentModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get students by IDs: %w", err)
	}

	students := make([]*student.Student, len(studentModels))
	for i := range studentModels {
		students[i] = r.mapper.ToDomain(&studentModels[i])
	}
	return students, nil
}

func (r *StudentRepository) ExistsByStudentNumber(ctx context.Context, studentNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.StudentModel{}).
		Where("student_number = ?", studentNumber).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check student number existence: %w", err)
	}
	return count > 0, nil
}

func (r *StudentRepository) List(ctx context.Context) ([]*student.Student, error) {
	var studentModels []models.StudentModel
	err := r.db.WithContext(ctx).Order("student_number ASC").Find(&studentModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	students := make([]*student.Student, len(studentModels))
	for i := range studentModels {
		students[i] = r.mapper.ToDomain(&studentModels[i])
	}
	return students, nil
}

func (r *StudentRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]*student.Student, error) {
	var studentModels []models.StudentModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("student_number ASC").
		Find(&studentModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list students by owner ID: %w", err)
	}

	students := make([]*student.Student, len(studentModels))
	for i := range studentModels {
		students[i] = r.mapper.ToDomain(&studentModels[i])
	}
	return students, nil
}

func (r *StudentRepository) Update(ctx context.Context, st *student.Student) error {
	model := r.mapper.ToModel(st)
	result := r.db.WithContext(ctx).Model(&models.StudentModel{}).
		Where("id = ?", st.ID).
		Select("StudentNumber", "FirstName", "LastName", "Email", "Phone", "Status", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update student: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("student not found")
	}
	return nil
}

// Delete removes the student and everything referencing them in one
// transaction.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ?", id).Delete(&models.AttendanceModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete attendance records for student: %w", err)
		}
		if err := tx.Where("student_id = ?", id).Delete(&models.EnrollmentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete enrollments for student: %w", err)
		}
		if err := tx.Where("id = ?", id).Delete(&models.StudentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete student: %w", err)
		}
		return nil
	})
}
