// Package class holds the class aggregate.
package class

import (
	"fmt"
	"strings"
	"time"

	"github.com/pharris560/ace-attendance/internal/shared/biztime"
	"github.com/pharris560/ace-attendance/internal/shared/id"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusCompleted Status = "completed"
)

// ValidStatus reports whether s is one of the three class statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusActive, StatusInactive, StatusCompleted:
		return true
	}
	return false
}

// Class is owned by the user who created it; mutation and deletion require
// the acting user to match OwnerID.
type Class struct {
	ID         string
	Name       string
	Instructor string
	Capacity   int
	Schedule   string
	Status     Status
	OwnerID    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// New creates an active class with a fresh prefixed ID.
func New(ownerID, name, instructor string, capacity int, schedule string) (*Class, error) {
	name = strings.TrimSpace(name)
	if ownerID == "" {
		return nil, fmt.Errorf("owner ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("class name is required")
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("capacity must be a positive integer")
	}

	now := biztime.NowUTC()
	return &Class{
		ID:         id.NewClassID(),
		Name:       name,
		Instructor: strings.TrimSpace(instructor),
		Capacity:   capacity,
		Schedule:   schedule,
		Status:     StatusActive,
		OwnerID:    ownerID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// OwnedBy reports whether userID owns the class.
func (c *Class) OwnedBy(userID string) bool {
	return c.OwnerID == userID
}
