package gallery

import (
	"context"
	"sort"
	"sync"

	"github.com/rangeviz/rangeviz/pkg/errors"
)

// MemoryStore is an in-memory gallery for development and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	charts map[string]*Chart
}

// NewMemoryStore creates an empty in-memory gallery.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{charts: make(map[string]*Chart)}
}

// Put implements [Store].
func (s *MemoryStore) Put(_ context.Context, c *Chart) error {
	if c.ID == "" {
		return errors.New(errors.ErrCodeInvalidInput, "chart id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *c
	s.charts[c.ID] = &cp
	return nil
}

// Get implements [Store].
func (s *MemoryStore) Get(_ context.Context, id string) (*Chart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.charts[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "chart not found: %s", id)
	}
	cp := *c
	return &cp, nil
}

// List implements [Store].
func (s *MemoryStore) List(_ context.Context, limit int) ([]*Chart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Chart, 0, len(s.charts))
	for _, c := range s.charts {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Delete implements [Store].
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.charts[id]; !ok {
		return errors.New(errors.ErrCodeNotFound, "chart not found: %s", id)
	}
	delete(s.charts, id)
	return nil
}

// Close implements [Store].
func (s *MemoryStore) Close(context.Context) error {
	return nil
}

var _ Store = (*MemoryStore)(nil)
