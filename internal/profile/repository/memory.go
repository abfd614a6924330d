package repository

import (
	"context"
	"sync"

	"github.com/devfolio/api/internal/profile"
)

// MemoryRepo holds the singleton profile in memory for unit tests.
type MemoryRepo struct {
	mu  sync.RWMutex
	cur *profile.Profile
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) Get(ctx context.Context) (*profile.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.cur == nil {
		return nil, nil
	}
	cp := *m.cur
	return &cp, nil
}

func (m *MemoryRepo) Put(ctx context.Context, p *profile.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.cur = &cp
	return nil
}
