package memory

import (
	"context"
	"sort"

	"github.com/pharris560/ace-attendance/internal/domain/class"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
)

type ClassRepository struct {
	store *Store
}

func NewClassRepository(store *Store) class.Repository {
	return &ClassRepository{store: store}
}

func (r *ClassRepository) Create(ctx context.Context, c *class.Class) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.classes[c.ID] = *c
	return nil
}

func (r *ClassRepository) GetByID(ctx context.Context, id string) (*class.Class, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.classes[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *ClassRepository) GetByIDs(ctx context.Context, ids []string) ([]*class.Class, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	classes := make([]*class.Class, 0, len(ids))
	for _, id := range ids {
		if c, ok := s.classes[id]; ok {
			c := c
			classes = append(classes, &c)
		}
	}
	return classes, nil
}

func (r *ClassRepository) List(ctx context.Context) ([]*class.Class, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	classes := make([]*class.Class, 0, len(s.classes))
	for _, c := range s.classes {
		c := c
		classes = append(classes, &c)
	}
	sortClasses(classes)
	return classes, nil
}

func (r *ClassRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]*class.Class, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var classes []*class.Class
	for _, c := range s.classes {
		if c.OwnerID == ownerID {
			c := c
			classes = append(classes, &c)
		}
	}
	sortClasses(classes)
	return classes, nil
}

func (r *ClassRepository) Update(ctx context.Context, c *class.Class) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.classes[c.ID]; !ok {
		return errors.NewNotFoundError("class not found")
	}
	s.classes[c.ID] = *c
	return nil
}

// Delete cascades: enrollments and attendance records referencing the class
// are removed under the same lock acquisition, so no orphan is ever visible.
func (r *ClassRepository) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.classes[id]; !ok {
		return errors.NewNotFoundError("class not found")
	}

	for eid, e := range s.enrollments {
		if e.ClassID == id {
			delete(s.enrollments, eid)
		}
	}
	for aid, rec := range s.attendance {
		if rec.ClassID == id {
			delete(s.attendance, aid)
		}
	}
	delete(s.classes, id)
	return nil
}

func sortClasses(classes []*class.Class) {
	sort.Slice(classes, func(i, j int) bool {
		if classes[i].CreatedAt.Equal(classes[j].CreatedAt) {
			return classes[i].ID < classes[j].ID
		}
		return classes[i].CreatedAt.Before(classes[j].CreatedAt)
	})
}
