// Package student holds the student aggregate.
package student

import (
	"fmt"
	"strings"
	"time"

	"github.com/pharris560/ace-attendance/internal/shared/biztime"
	"github.com/pharris560/ace-attendance/internal/shared/id"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// ValidStatus reports whether s is a known student status.
func ValidStatus(s Status) bool {
	return s == StatusActive || s == StatusInactive
}

// Student records one enrollable person. StudentNumber is the external
// identifier (e.g. "STU001") and is unique across the store.
type Student struct {
	ID            string
	StudentNumber string
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Status        Status
	OwnerID       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// New creates an active student with a fresh prefixed ID.
func New(ownerID, studentNumber, firstName, lastName, email, phone string) (*Student, error) {
	studentNumber = strings.TrimSpace(studentNumber)
	firstName = strings.TrimSpace(firstName)
	if ownerID == "" {
		return nil, fmt.Errorf("owner ID is required")
	}
	if studentNumber == "" {
		return nil, fmt.Errorf("student number is required")
	}
	if firstName == "" {
		return nil, fmt.Errorf("first name is required")
	}

	now := biztime.NowUTC()
	return &Student{
		ID:            id.NewStudentID(),
		StudentNumber: studentNumber,
		FirstName:     firstName,
		LastName:      strings.TrimSpace(lastName),
		Email:         strings.TrimSpace(email),
		Phone:         strings.TrimSpace(phone),
		Status:        StatusActive,
		OwnerID:       ownerID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// OwnedBy reports whether userID owns the student record.
func (s *Student) OwnedBy(userID string) bool {
	return s.OwnerID == userID
}

// FullName joins the name fields for display.
func (s *Student) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}
