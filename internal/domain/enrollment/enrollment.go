// Package enrollment holds the class-student membership relation.
package enrollment

import (
	"fmt"
	"time"

	"github.com/pharris560/ace-attendance/internal/shared/biztime"
	"github.com/pharris560/ace-attendance/internal/shared/id"
)

type Status string

const (
	StatusEnrolled  Status = "enrolled"
	StatusDropped   Status = "dropped"
	StatusCompleted Status = "completed"
)

// ValidStatus reports whether s is a known enrollment status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusEnrolled, StatusDropped, StatusCompleted:
		return true
	}
	return false
}

// Enrollment links one student to one class. At most one "enrolled" row per
// (class, student) pair exists; the store enforces this at write time.
type Enrollment struct {
	ID         string
	ClassID    string
	StudentID  string
	Status     Status
	EnrolledAt time.Time
}

// New creates an "enrolled" relation.
func New(classID, studentID string) (*Enrollment, error) {
	if classID == "" || studentID == "" {
		return nil, fmt.Errorf("class ID and student ID are required")
	}

	return &Enrollment{
		ID:         id.NewEnrollmentID(),
		ClassID:    classID,
		StudentID:  studentID,
		Status:     StatusEnrolled,
		EnrolledAt: biztime.NowUTC(),
	}, nil
}
