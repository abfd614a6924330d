package repository

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/devfolio/api/internal/skill"
)

var ErrNotFound = errors.New("skill not found")

// SkillRepository defines persistence for skills. List returns rows sorted by
// category ascending, then percentage descending.
type SkillRepository interface {
	Create(ctx context.Context, s *skill.Skill) error
	List(ctx context.Context) ([]skill.Skill, error)
	Delete(ctx context.Context, id int64) error
}

// MemoryRepo is the in-memory implementation used by unit tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	store  map[int64]skill.Skill
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[int64]skill.Skill)}
}

func (m *MemoryRepo) Create(ctx context.Context, s *skill.Skill) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	s.ID = m.nextID
	m.store[s.ID] = *s
	return nil
}

func (m *MemoryRepo) List(ctx context.Context) ([]skill.Skill, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]skill.Skill, 0, len(m.store))
	for _, s := range m.store {
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Percentage > out[j].Percentage
	})
	return out, nil
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
