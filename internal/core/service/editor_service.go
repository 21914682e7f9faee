package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/opsdeck/console/internal/core/domain"
	"github.com/opsdeck/console/internal/core/ports"
)

// EditorService stages edits to a single configuration. It is Idle when
// draft is nil and Editing otherwise; dirty tracks unsaved edits.
//
// The draft is a full copy: Commit replaces the stored configuration in
// one Upsert and Discard just forgets the copy.
//
// The store refuses any write that would land on a dirty draft, and
// refreshes a clean one after writing.
type EditorService struct {
	store  ports.MenuService
	draft  *domain.MenuConfiguration
	dirty  bool
	logger zerolog.Logger
}

func NewEditorService(store ports.MenuService, logger zerolog.Logger) *EditorService {
	return &EditorService{store: store, logger: logger}
}

// BeginEdit opens configID. It refuses to leave a dirty draft of another
// configuration and resumes a dirty draft of the same one.
func (s *EditorService) BeginEdit(ctx context.Context, configID string) (*domain.MenuConfiguration, error) {
	if s.draft != nil && s.dirty {
		if s.draft.ID != configID {
			return nil, fmt.Errorf("%w: %s", domain.ErrUncommittedChanges, s.draft.ID)
		}
		return s.snapshot(), nil
	}

	cfg, err := s.store.Get(ctx, configID)
	if err != nil {
		return nil, err
	}
	s.draft = cfg
	s.dirty = false

	s.logger.Debug().Str("config_id", configID).Msg("draft opened")
	return s.snapshot(), nil
}

func (s *EditorService) Draft() (*domain.MenuConfiguration, bool, error) {
	if s.draft == nil {
		return nil, false, domain.ErrNoActiveDraft
	}
	return s.snapshot(), s.dirty, nil
}

// Reorder moves the item at from to position to. A to past the end is
// clamped to the last position.
func (s *EditorService) Reorder(from, to int) (*domain.MenuConfiguration, error) {
	if s.draft == nil {
		return nil, domain.ErrNoActiveDraft
	}
	n := len(s.draft.Items)
	if from < 0 || from >= n {
		return nil, fmt.Errorf("%w: from %d not in [0,%d]", domain.ErrIndexOutOfRange, from, n-1)
	}
	if to < 0 {
		return nil, fmt.Errorf("%w: to %d not in [0,%d]", domain.ErrIndexOutOfRange, to, n-1)
	}
	to = min(to, n-1)
	if from == to {
		return s.snapshot(), nil
	}

	item := s.draft.Items[from]
	s.draft.Items = slices.Delete(s.draft.Items, from, from+1)
	s.draft.Items = slices.Insert(s.draft.Items, to, item)
	s.draft.Renumber()
	s.dirty = true
	return s.snapshot(), nil
}

// SetVisible shows or hides an item.
func (s *EditorService) SetVisible(itemID string, visible bool) (*domain.MenuItem, error) {
	return s.update(itemID, func(item *domain.MenuItem) bool {
		if item.Visible == visible {
			return false
		}
		item.Visible = visible
		return true
	})
}

// SetDisabled is accepted on hidden items too; it only shows once the
// item becomes visible again.
func (s *EditorService) SetDisabled(itemID string, disabled bool) (*domain.MenuItem, error) {
	return s.update(itemID, func(item *domain.MenuItem) bool {
		if item.Disabled == disabled {
			return false
		}
		item.Disabled = disabled
		return true
	})
}

func (s *EditorService) AddItem(in ports.ItemInput) (*domain.MenuItem, error) {
	if s.draft == nil {
		return nil, domain.ErrNoActiveDraft
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	icon, err := domain.ParseIcon(in.Icon)
	if err != nil {
		return nil, err
	}

	item := domain.MenuItem{
		ID:      s.newItemID(),
		Label:   strings.TrimSpace(in.Label),
		Icon:    icon,
		Path:    strings.TrimSpace(in.Path),
		Visible: true,
		Order:   len(s.draft.Items) + 1,
	}
	s.draft.Items = append(s.draft.Items, item)
	s.dirty = true
	return &item, nil
}

// EditItem changes label, icon and path only.
func (s *EditorService) EditItem(itemID string, patch ports.ItemPatch) (*domain.MenuItem, error) {
	if s.draft == nil {
		return nil, domain.ErrNoActiveDraft
	}
	if err := validateInput(patch); err != nil {
		return nil, err
	}
	var icon domain.Icon
	if patch.Icon != nil {
		parsed, err := domain.ParseIcon(*patch.Icon)
		if err != nil {
			return nil, err
		}
		icon = parsed
	}

	return s.update(itemID, func(item *domain.MenuItem) bool {
		before := *item
		if patch.Label != nil {
			item.Label = strings.TrimSpace(*patch.Label)
		}
		if patch.Icon != nil {
			item.Icon = icon
		}
		if patch.Path != nil {
			item.Path = strings.TrimSpace(*patch.Path)
		}
		return *item != before
	})
}

// RemoveItem deletes unconditionally; confirmation belongs to the caller.
func (s *EditorService) RemoveItem(itemID string) error {
	if s.draft == nil {
		return domain.ErrNoActiveDraft
	}
	i := s.draft.IndexOf(itemID)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	s.draft.Items = slices.Delete(s.draft.Items, i, i+1)
	s.draft.Renumber()
	s.dirty = true
	return nil
}

// Commit writes the draft back. The editor stays on the stored result as a
// clean draft, so a repeated commit stores the same configuration. On
// failure the draft keeps its edits.
func (s *EditorService) Commit(ctx context.Context) (*domain.MenuConfiguration, error) {
	if s.draft == nil {
		return nil, domain.ErrNoActiveDraft
	}

	// The store refuses writes over a dirty draft; this write is the draft.
	dirty := s.dirty
	s.dirty = false
	saved, err := s.store.Upsert(ctx, *s.snapshot())
	if err != nil {
		s.dirty = dirty
		return nil, fmt.Errorf("commit %s: %w", s.draft.ID, err)
	}

	s.logger.Info().Str("config_id", saved.ID).Bool("dirty", dirty).Msg("draft committed")
	committed := saved.Clone()
	s.draft = &committed
	return saved, nil
}

func (s *EditorService) Discard() {
	if s.draft != nil {
		s.logger.Info().Str("config_id", s.draft.ID).Bool("dirty", s.dirty).Msg("draft discarded")
	}
	s.draft = nil
	s.dirty = false
}

func (s *EditorService) HasUncommitted(configID string) bool {
	return s.draft != nil && s.dirty && s.draft.ID == configID
}

// Refresh keeps a clean draft in step with writes that bypassed it.
func (s *EditorService) Refresh(ctx context.Context, configID string) {
	if s.draft == nil || s.dirty || s.draft.ID != configID {
		return
	}
	cfg, err := s.store.Get(ctx, configID)
	if err != nil {
		s.logger.Debug().Str("config_id", configID).Msg("draft dropped: configuration gone")
		s.draft = nil
		return
	}
	s.draft = cfg
}

func (s *EditorService) update(itemID string, apply func(*domain.MenuItem) bool) (*domain.MenuItem, error) {
	if s.draft == nil {
		return nil, domain.ErrNoActiveDraft
	}
	i := s.draft.IndexOf(itemID)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	if apply(&s.draft.Items[i]) {
		s.dirty = true
	}
	item := s.draft.Items[i]
	return &item, nil
}

func (s *EditorService) newItemID() string {
	for {
		id := "item-" + shortID()
		if !s.draft.Has(id) {
			return id
		}
	}
}

func (s *EditorService) snapshot() *domain.MenuConfiguration {
	clone := s.draft.Clone()
	return &clone
}
