package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/pharris560/ace-attendance/internal/domain/attendance"
	"github.com/pharris560/ace-attendance/internal/infrastructure/persistence/mappers"
	"github.com/pharris560/ace-attendance/internal/infrastructure/persistence/models"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
)

type AttendanceRepository struct {
	db     *gorm.DB
	mapper mappers.AttendanceMapper
}

func NewAttendanceRepository(db *gorm.DB) attendance.Repository {
	return &AttendanceRepository{
		db:     db,
		mapper: mappers.NewAttendanceMapper(),
	}
}

func (r *AttendanceRepository) Create(ctx context.Context, record *attendance.Record) error {
	model, err := r.mapper.ToModel(record)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create attendance record: %w", err)
	}
	return nil
}

func (r *AttendanceRepository) GetByID(ctx context.Context, id string) (*attendance.Record, error) {
	var model models.AttendanceModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record by ID: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

// ListByClassID filters on the inclusive date range; empty bounds are open.
// Lexical comparison is correct for zero-padded YYYY-MM-DD dates.
func (r *AttendanceRepository) ListByClassID(ctx context.Context, classID, dateFrom, dateTo string) ([]*attendance.Record, error) {
	query := r.db.WithContext(ctx).Where("class_id = ?", classID)
	if dateFrom != "" {
		query = query.Where("date >= ?", dateFrom)
	}
	if dateTo != "" {
		query = query.Where("date <= ?", dateTo)
	}

	var recordModels []models.AttendanceModel
	err := query.Order("date DESC, marked_at DESC").Find(&recordModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by class ID: %w", err)
	}
	return r.toDomainList(recordModels)
}

func (r *AttendanceRepository) ListByStudentID(ctx context.Context, studentID string) ([]*attendance.Record, error) {
	var recordModels []models.AttendanceModel
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("date DESC, marked_at DESC").
		Find(&recordModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by student ID: %w", err)
	}
	return r.toDomainList(recordModels)
}

func (r *AttendanceRepository) Update(ctx context.Context, record *attendance.Record) error {
	model, err := r.mapper.ToModel(record)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Model(&models.AttendanceModel{}).
		Where("id = ?", record.ID).
		Select("Status", "Notes", "Location", "CheckIn", "CheckOut", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update attendance record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("attendance record not found")
	}
	return nil
}

func (r *AttendanceRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.AttendanceModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	return nil
}

func (r *AttendanceRepository) toDomainList(recordModels []models.AttendanceModel) ([]*attendance.Record, error) {
	records := make([]*attendance.Record, len(recordModels))
	for i := range recordModels {
		record, err := r.mapper.ToDomain(&recordModels[i])
		if err != nil {
			return nil, err
		}
		records[i] = record
	}
	return records, nil
}
