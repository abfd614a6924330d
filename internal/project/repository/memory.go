package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/devfolio/api/internal/project"
)

var ErrNotFound = errors.New("project not found")

// ProjectRepository defines persistence operations for projects. The mongo
// implementation backs the running service; the memory implementation backs
// unit tests.
type ProjectRepository interface {
	Create(ctx context.Context, p *project.Project) error
	Get(ctx context.Context, id int64) (*project.Project, error)
	List(ctx context.Context) ([]project.Project, error)
	Update(ctx context.Context, p *project.Project) error
	Delete(ctx context.Context, id int64) error
}

// MemoryRepo is an in-memory repository used in unit tests. Ids are assigned
// from a monotonically increasing counter, matching the mongo counters
// collection behaviour.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	store  map[int64]project.Project
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[int64]project.Project)}
}

func (m *MemoryRepo) Create(ctx context.Context, p *project.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	p.ID = m.nextID
	m.store[p.ID] = *p
	return nil
}

func (m *MemoryRepo) Get(ctx context.Context, id int64) (*project.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (m *MemoryRepo) List(ctx context.Context) ([]project.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]project.Project, 0, len(m.store))
	for _, p := range m.store {
		out = append(out, p)
	}
	return out, nil
}

// Update replaces the whole stored row. There is no version check: two
// concurrent read-merge-write cycles resolve last-writer-wins at row
// granularity.
func (m *MemoryRepo) Update(ctx context.Context, p *project.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[p.ID]; !ok {
		return ErrNotFound
	}
	m.store[p.ID] = *p
	return nil
}

func (m *MemoryRepo) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return ErrNotFound
	}
	delete(m.store, id)
	return nil
}
