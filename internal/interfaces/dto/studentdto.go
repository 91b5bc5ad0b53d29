package dto

import (
	"time"

	"github.com/pharris560/ace-attendance/internal/domain/student"
)

// CreateStudentRequest represents HTTP request to register a student
type CreateStudentRequest struct {
	StudentNumber string `json:"studentNumber" binding:"required,min=1,max=50"`
	FirstName     string `json:"firstName" binding:"required,min=1,max=100"`
	LastName      string `json:"lastName" binding:"required,min=1,max=100"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone" binding:"omitempty,max=30"`
}

// UpdateStudentRequest represents HTTP request to update a student (PATCH)
// All fields are optional, at least one field must be provided
type UpdateStudentRequest struct {
	StudentNumber *string `json:"studentNumber" binding:"omitempty,min=1,max=50"`
	FirstName     *string `json:"firstName" binding:"omitempty,min=1,max=100"`
	LastName      *string `json:"lastName" binding:"omitempty,min=1,max=100"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone" binding:"omitempty,max=30"`
	Status        *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// StudentResponse represents a student in HTTP responses
type StudentResponse struct {
	ID            string    `json:"id"`
	StudentNumber string    `json:"studentNumber"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Status        string    `json:"status"`
	OwnerID       string    `json:"ownerId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewStudentResponse converts a domain student to its HTTP representation
func NewStudentResponse(s *student.Student) StudentResponse {
	return StudentResponse{
		ID:            s.ID,
		StudentNumber: s.StudentNumber,
		FirstName:     s.FirstName,
		LastName:      s.LastName,
		Email:         s.Email,
		Phone:         s.Phone,
		Status:        string(s.Status),
		OwnerID:       s.OwnerID,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// NewStudentResponses converts a slice of domain students
func NewStudentResponses(students []*student.Student) []StudentResponse {
	responses := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		responses = append(responses, NewStudentResponse(s))
	}
	return responses
}
