// Package memory implements every repository over in-process maps. One coarse
// RWMutex guards the whole store, so multi-step operations (cascading deletes,
// uniqueness checks) execute atomically without finer locking.
package memory

import (
	"sync"

	"github.com/pharris560/ace-attendance/internal/domain/apikey"
	"github.com/pharris560/ace-attendance/internal/domain/attendance"
	"github.com/pharris560/ace-attendance/internal/domain/class"
	"github.com/pharris560/ace-attendance/internal/domain/enrollment"
	"github.com/pharris560/ace-attendance/internal/domain/student"
	"github.com/pharris560/ace-attendance/internal/domain/user"
)

// Store owns every table. Entities are stored by value and returned as
// copies, so callers can never mutate store state through a returned pointer.
type Store struct {
	mu sync.RWMutex

	users            map[string]user.User
	userIDByUsername map[string]string

	sessions map[string]user.Session // keyed by token hash

	apiKeys        map[string]apikey.APIKey
	apiKeyIDByHash map[string]string

	classes map[string]class.Class

	students          map[string]student.Student
	studentIDByNumber map[string]string

	enrollments map[string]enrollment.Enrollment

	attendance map[string]attendance.Record
}

func NewStore() *Store {
	return &Store{
		users:             make(map[string]user.User),
		userIDByUsername:  make(map[string]string),
		sessions:          make(map[string]user.Session),
		apiKeys:           make(map[string]apikey.APIKey),
		apiKeyIDByHash:    make(map[string]string),
		classes:           make(map[string]class.Class),
		students:          make(map[string]student.Student),
		studentIDByNumber: make(map[string]string),
		enrollments:       make(map[string]enrollment.Enrollment),
		attendance:        make(map[string]attendance.Record),
	}
}

func cloneRecord(r attendance.Record) attendance.Record {
	if r.Location != nil {
		loc := *r.Location
		r.Location = &loc
	}
	if r.CheckIn != nil {
		t := *r.CheckIn
		r.CheckIn = &t
	}
	if r.CheckOut != nil {
		t := *r.CheckOut
		r.CheckOut = &t
	}
	return r
}

func cloneAPIKey(k apikey.APIKey) apikey.APIKey {
	if k.LastUsedAt != nil {
		t := *k.LastUsedAt
		k.LastUsedAt = &t
	}
	return k
}
