package dto

import (
	"time"

	enrollmentusecases "github.com/pharris560/ace-attendance/internal/application/enrollment/usecases"
	"github.com/pharris560/ace-attendance/internal/domain/enrollment"
)

// EnrollStudentRequest represents HTTP request to enroll a student in a class
type EnrollStudentRequest struct {
	StudentID string `json:"studentId" binding:"required"`
}

// EnrollmentResponse represents an enrollment in HTTP responses
type EnrollmentResponse struct {
	ID         string    `json:"id"`
	ClassID    string    `json:"classId"`
	StudentID  string    `json:"studentId"`
	Status     string    `json:"status"`
	EnrolledAt time.Time `json:"enrolledAt"`
}

// RosterEntryResponse is one enrolled student with their latest record.
type RosterEntryResponse struct {
	Student          StudentResponse     `json:"student"`
	Enrollment       EnrollmentResponse  `json:"enrollment"`
	LatestAttendance *AttendanceResponse `json:"latestAttendance,omitempty"`
}

// NewEnrollmentResponse converts a domain enrollment to its HTTP representation
func NewEnrollmentResponse(e *enrollment.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:         e.ID,
		ClassID:    e.ClassID,
		StudentID:  e.StudentID,
		Status:     string(e.Status),
		EnrolledAt: e.EnrolledAt,
	}
}

// NewRosterEntryResponses converts roster entries for the roster endpoint
func NewRosterEntryResponses(entries []enrollmentusecases.RosterEntry) []RosterEntryResponse {
	responses := make([]RosterEntryResponse, 0, len(entries))
	for _, e := range entries {
		entry := RosterEntryResponse{
			Student:    NewStudentResponse(e.Student),
			Enrollment: NewEnrollmentResponse(e.Enrollment),
		}
		if e.LatestAttendance != nil {
			rec := NewAttendanceResponse(e.LatestAttendance)
			entry.LatestAttendance = &rec
		}
		responses = append(responses, entry)
	}
	return responses
}
