package dto

import (
	"time"

	classusecases "github.com/pharris560/ace-attendance/internal/application/class/usecases"
	"github.com/pharris560/ace-attendance/internal/domain/attendance"
	"github.com/pharris560/ace-attendance/internal/domain/class"
)

// CreateClassRequest represents HTTP request to create a class
type CreateClassRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=200"`
	Instructor string `json:"instructor" binding:"omitempty,max=200"`
	Capacity   int    `json:"capacity" binding:"required,min=1,max=10000"`
	Schedule   string `json:"schedule" binding:"omitempty,max=500"`
}

// UpdateClassRequest represents HTTP request to update a class (PATCH)
// All fields are optional, at least one field must be provided
type UpdateClassRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=1,max=200"`
	Instructor *string `json:"instructor" binding:"omitempty,max=200"`
	Capacity   *int    `json:"capacity" binding:"omitempty,min=1,max=10000"`
	Schedule   *string `json:"schedule" binding:"omitempty,max=500"`
	Status     *string `json:"status" binding:"omitempty,oneof=active inactive completed"`
}

// ClassResponse represents a class in HTTP responses
type ClassResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Instructor string    `json:"instructor,omitempty"`
	Capacity   int       `json:"capacity"`
	Schedule   string    `json:"schedule,omitempty"`
	Status     string    `json:"status"`
	OwnerID    string    `json:"ownerId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ClassSummaryResponse is a class plus its aggregated attendance counters.
type ClassSummaryResponse struct {
	ClassResponse
	EnrolledCount int64            `json:"enrolledCount"`
	Stats         attendance.Stats `json:"stats"`
}

// NewClassResponse converts a domain class to its HTTP representation
func NewClassResponse(cls *class.Class) ClassResponse {
	return ClassResponse{
		ID:         cls.ID,
		Name:       cls.Name,
		Instructor: cls.Instructor,
		Capacity:   cls.Capacity,
		Schedule:   cls.Schedule,
		Status:     string(cls.Status),
		OwnerID:    cls.OwnerID,
		CreatedAt:  cls.CreatedAt,
		UpdatedAt:  cls.UpdatedAt,
	}
}

// NewClassSummaryResponses converts class summaries to their HTTP representation
func NewClassSummaryResponses(summaries []classusecases.ClassSummary) []ClassSummaryResponse {
	responses := make([]ClassSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		responses = append(responses, ClassSummaryResponse{
			ClassResponse: NewClassResponse(s.Class),
			EnrolledCount: s.EnrolledCount,
			Stats:         s.Stats,
		})
	}
	return responses
}
