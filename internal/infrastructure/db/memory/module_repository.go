package memory

import (
	"context"
	"sync"

	"github.com/opsdeck/console/internal/core/domain"
)

// ModuleRepository keeps the catalog in the order modules were first saved.
type ModuleRepository struct {
	mu      sync.RWMutex
	order   []string
	modules map[string]domain.AvailableModule
}

func NewModuleRepository() *ModuleRepository {
	return &ModuleRepository{modules: make(map[string]domain.AvailableModule)}
}

func (r *ModuleRepository) List(_ context.Context) ([]domain.AvailableModule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.AvailableModule, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.modules[id].Clone())
	}
	return out, nil
}

func (r *ModuleRepository) Get(_ context.Context, id string) (*domain.AvailableModule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.modules[id]
	if !ok {
		return nil, domain.ErrModuleNotFound
	}
	clone := m.Clone()
	return &clone, nil
}

func (r *ModuleRepository) Save(_ context.Context, m *domain.AvailableModule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.modules[m.ID]; !ok {
		r.order = append(r.order, m.ID)
	}
	r.modules[m.ID] = m.Clone()
	return nil
}

// Len reports how many modules are in the catalog.
func (r *ModuleRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
