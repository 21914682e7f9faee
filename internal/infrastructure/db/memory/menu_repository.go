// Package memory provides the volatile repositories the console runs on.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/opsdeck/console/internal/core/domain"
)

// MenuRepository keeps configurations in insertion order and indexes which
// configurations hold each item id, so module cascades only visit the
// configurations they change.
type MenuRepository struct {
	mu      sync.RWMutex
	order   []string
	configs map[string]domain.MenuConfiguration
	members map[string]map[string]struct{} // item id -> configuration ids
}

func NewMenuRepository() *MenuRepository {
	return &MenuRepository{
		configs: make(map[string]domain.MenuConfiguration),
		members: make(map[string]map[string]struct{}),
	}
}

func (r *MenuRepository) List(_ context.Context) ([]domain.MenuConfiguration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.MenuConfiguration, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.configs[id].Clone())
	}
	return out, nil
}

func (r *MenuRepository) Get(_ context.Context, id string) (*domain.MenuConfiguration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg, ok := r.configs[id]
	if !ok {
		return nil, domain.ErrConfigNotFound
	}
	clone := cfg.Clone()
	return &clone, nil
}

func (r *MenuRepository) Save(_ context.Context, cfg *domain.MenuConfiguration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.configs[cfg.ID]; ok {
		r.unindex(old)
	} else {
		r.order = append(r.order, cfg.ID)
	}
	clone := cfg.Clone()
	r.configs[cfg.ID] = clone
	r.index(clone)
	return nil
}

func (r *MenuRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.configs[id]
	if !ok {
		return domain.ErrConfigNotFound
	}
	r.unindex(old)
	delete(r.configs, id)
	r.order = slices.DeleteFunc(r.order, func(s string) bool { return s == id })
	return nil
}

func (r *MenuRepository) Containing(_ context.Context, itemID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := r.members[itemID]
	out := make([]string, 0, len(set))
	for _, id := range r.order {
		if _, ok := set[id]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

// Len reports how many configurations are stored.
func (r *MenuRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

func (r *MenuRepository) index(cfg domain.MenuConfiguration) {
	for _, item := range cfg.Items {
		set, ok := r.members[item.ID]
		if !ok {
			set = make(map[string]struct{})
			r.members[item.ID] = set
		}
		set[cfg.ID] = struct{}{}
	}
}

func (r *MenuRepository) unindex(cfg domain.MenuConfiguration) {
	for _, item := range cfg.Items {
		set := r.members[item.ID]
		delete(set, cfg.ID)
		if len(set) == 0 {
			delete(r.members, item.ID)
		}
	}
}
