package dto

import (
	"time"

	attendanceusecases "github.com/pharris560/ace-attendance/internal/application/attendance/usecases"
	"github.com/pharris560/ace-attendance/internal/domain/attendance"
	"github.com/pharris560/ace-attendance/internal/domain/user"
)

// GeolocationRequest is an optional capture location attached to a record.
type GeolocationRequest struct {
	Latitude  float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"min=-180,max=180"`
	Accuracy  float64 `json:"accuracy" binding:"omitempty,min=0"`
	Address   string  `json:"address" binding:"omitempty,max=500"`
}

// MarkAttendanceRequest represents HTTP request to mark attendance
type MarkAttendanceRequest struct {
	ClassID   string              `json:"classId" binding:"required"`
	StudentID string              `json:"studentId" binding:"required"`
	Date      string              `json:"date" binding:"required"`
	Status    string              `json:"status" binding:"required,oneof=present absent tardy excused"`
	Notes     string              `json:"notes" binding:"omitempty,max=1000"`
	Location  *GeolocationRequest `json:"location" binding:"omitempty"`
	CheckIn   *time.Time          `json:"checkIn"`
	CheckOut  *time.Time          `json:"checkOut"`
}

// BulkMarkAttendanceRequest represents HTTP request to mark a batch of records
type BulkMarkAttendanceRequest struct {
	Items []MarkAttendanceRequest `json:"items" binding:"required,min=1,max=500,dive"`
}

// UpdateAttendanceRequest represents HTTP request to update a record (PATCH)
// All fields are optional, at least one field must be provided
type UpdateAttendanceRequest struct {
	Status   *string             `json:"status" binding:"omitempty,oneof=present absent tardy excused"`
	Notes    *string             `json:"notes" binding:"omitempty,max=1000"`
	Location *GeolocationRequest `json:"location" binding:"omitempty"`
	CheckIn  *time.Time          `json:"checkIn"`
	CheckOut *time.Time          `json:"checkOut"`
}

// ToCommand converts the HTTP request to the application layer command
func (r *MarkAttendanceRequest) ToCommand(markedBy string) attendanceusecases.MarkAttendanceCommand {
	return attendanceusecases.MarkAttendanceCommand{
		MarkedBy:  markedBy,
		ClassID:   r.ClassID,
		StudentID: r.StudentID,
		Date:      r.Date,
		Status:    r.Status,
		Notes:     r.Notes,
		Location:  r.Location.toDomain(),
		CheckIn:   r.CheckIn,
		CheckOut:  r.CheckOut,
	}
}

func (g *GeolocationRequest) toDomain() *attendance.Geolocation {
	if g == nil {
		return nil
	}
	return &attendance.Geolocation{
		Latitude:  g.Latitude,
		Longitude: g.Longitude,
		Accuracy:  g.Accuracy,
		Address:   g.Address,
	}
}

// ToDomainLocation converts the optional location of an update request.
func (r *UpdateAttendanceRequest) ToDomainLocation() *attendance.Geolocation {
	return r.Location.toDomain()
}

// AttendanceResponse represents an attendance record in HTTP responses
type AttendanceResponse struct {
	ID        string                  `json:"id"`
	ClassID   string                  `json:"classId"`
	StudentID string                  `json:"studentId"`
	Date      string                  `json:"date"`
	Status    string                  `json:"status"`
	Notes     string                  `json:"notes,omitempty"`
	Location  *attendance.Geolocation `json:"location,omitempty"`
	CheckIn   *time.Time              `json:"checkIn,omitempty"`
	CheckOut  *time.Time              `json:"checkOut,omitempty"`
	MarkedBy  string                  `json:"markedBy"`
	MarkedAt  time.Time               `json:"markedAt"`
	UpdatedAt time.Time               `json:"updatedAt"`
}

// EnrichedAttendanceResponse joins a record with the entities it references.
type EnrichedAttendanceResponse struct {
	AttendanceResponse
	Class    ClassResponse   `json:"class"`
	Student  StudentResponse `json:"student"`
	MarkedBy user.Public     `json:"markedByUser"`
}

// BulkMarkItemResponse reports the outcome of one row of a bulk mark.
type BulkMarkItemResponse struct {
	Index  int                 `json:"index"`
	Record *AttendanceResponse `json:"record,omitempty"`
	Error  string              `json:"error,omitempty"`
}

// NewAttendanceResponse converts a domain record to its HTTP representation
func NewAttendanceResponse(rec *attendance.Record) AttendanceResponse {
	return AttendanceResponse{
		ID:        rec.ID,
		ClassID:   rec.ClassID,
		StudentID: rec.StudentID,
		Date:      rec.Date,
		Status:    string(rec.Status),
		Notes:     rec.Notes,
		Location:  rec.Location,
		CheckIn:   rec.CheckIn,
		CheckOut:  rec.CheckOut,
		MarkedBy:  rec.MarkedBy,
		MarkedAt:  rec.MarkedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

// NewEnrichedAttendanceResponses converts enriched records for listing endpoints
func NewEnrichedAttendanceResponses(records []attendanceusecases.EnrichedRecord) []EnrichedAttendanceResponse {
	responses := make([]EnrichedAttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, EnrichedAttendanceResponse{
			AttendanceResponse: NewAttendanceResponse(r.Record),
			Class:              NewClassResponse(r.Class),
			Student:            NewStudentResponse(r.Student),
			MarkedBy:           r.MarkedBy,
		})
	}
	return responses
}

// NewBulkMarkItemResponses converts per-row bulk outcomes
func NewBulkMarkItemResponses(results []attendanceusecases.BulkMarkResult) []BulkMarkItemResponse {
	responses := make([]BulkMarkItemResponse, 0, len(results))
	for _, r := range results {
		item := BulkMarkItemResponse{Index: r.Index, Error: r.Error}
		if r.Record != nil {
			rec := NewAttendanceResponse(r.Record)
			item.Record = &rec
		}
		responses = append(responses, item)
	}
	return responses
}
