package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/pharris560/ace-attendance/internal/domain/attendance"
	"github.com/pharris560/ace-attendance/internal/infrastructure/persistence/models"
)

// AttendanceMapper handles the conversion between attendance Record domain
// entities and persistence models. The optional geolocation is stored as a
// JSON column.
type AttendanceMapper interface {
	ToModel(entity *attendance.Record) (*models.AttendanceModel, error)
	ToDomain(model *models.AttendanceModel) (*attendance.Record, error)
}

type attendanceMapper struct{}

// NewAttendanceMapper creates a new AttendanceMapper.
func NewAttendanceMapper() AttendanceMapper {
	return &attendanceMapper{}
}

func (m *attendanceMapper) ToModel(entity *attendance.Record) (*models.AttendanceModel, error) {
	if entity == nil {
		return nil, nil
	}

	var location datatypes.JSON
	if entity.Location != nil {
		data, err := json.Marshal(entity.Location)
		if err != nil {
			return nil, fmt.Errorf("marshal geolocation: %w", err)
		}
		location = datatypes.JSON(data)
	}

	return &models.AttendanceModel{
		ID:        entity.ID,
		ClassID:   entity.ClassID,
		StudentID: entity.StudentID,
		Date:      entity.Date,
		Status:    string(entity.Status),
		Notes:     entity.Notes,
		Location:  location,
		CheckIn:   entity.CheckIn,
		CheckOut:  entity.CheckOut,
		MarkedBy:  entity.MarkedBy,
		MarkedAt:  entity.MarkedAt,
		UpdatedAt: entity.UpdatedAt,
	}, nil
}

func (m *attendanceMapper) ToDomain(model *models.AttendanceModel) (*attendance.Record, error) {
	if model == nil {
		return nil, nil
	}

	var location *attendance.Geolocation
	if len(model.Location) > 0 {
		location = &attendance.Geolocation{}
		if err := json.Unmarshal(model.Location, location); err != nil {
			return nil, fmt.Errorf("unmarshal geolocation: %w", err)
		}
	}

	return &attendance.Record{
		ID:        model.ID,
		ClassID:   model.ClassID,
		StudentID: model.StudentID,
		Date:      model.Date,
		Status:    attendance.Status(model.Status),
		Notes:     model.Notes,
		Location:  location,
		CheckIn:   model.CheckIn,
		CheckOut:  model.CheckOut,
		MarkedBy:  model.MarkedBy,
		MarkedAt:  model.MarkedAt,
		UpdatedAt: model.UpdatedAt,
	}, nil
}
