package service

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/opsdeck/console/internal/core/domain"
	"github.com/opsdeck/console/internal/core/ports"
)

func strPtr(s string) *string { return &s }

func TestEditorService_NoDraft(t *testing.T) {
	f := newFixture(t)

	if _, err := f.editor.Reorder(0, 1); !errors.Is(err, domain.ErrNoActiveDraft) {
		t.Fatalf("expected ErrNoActiveDraft from Reorder, got %v", err)
	}
	if err := f.editor.RemoveItem("tasks"); !errors.Is(err, domain.ErrNoActiveDraft) {
		t.Fatalf("expected ErrNoActiveDraft from RemoveItem, got %v", err)
	}
	if _, err := f.editor.Commit(context.Background()); !errors.Is(err, domain.ErrNoActiveDraft) {
		t.Fatalf("expected ErrNoActiveDraft from Commit, got %v", err)
	}
}

func TestEditorService_RemoveItem_RenumbersAndCommits(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.editor.BeginEdit(ctx, "admin-menu"); err != nil {
		t.Fatalf("begin edit: %v", err)
	}
	if err := f.editor.RemoveItem("publications"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	draft, dirty, _ := f.editor.Draft()
	if !dirty {
		t.Fatal("expected dirty draft after remove")
	}
	if len(draft.Items) != 6 {
		t.Fatalf("expected 6 items, got %d", len(draft.Items))
	}
	assertDense(t, draft)

	saved, err := f.editor.Commit(ctx)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if saved.Has("publications") || len(saved.Items) != 6 {
		t.Fatalf("expected publications gone from stored config, got %v", itemIDs(saved))
	}
	assertDense(t, saved)

	draft, dirty, err = f.editor.Draft()
	if err != nil || dirty {
		t.Fatalf("expected clean draft after commit, got dirty=%v err=%v", dirty, err)
	}
	if !reflect.DeepEqual(draft, saved) {
		t.Fatalf("expected draft to match stored config, got %v", itemIDs(draft))
	}
}

func TestEditorService_Reorder(t *testing.T) {
	tests := []struct {
		name      string
		from, to  int
		wantFirst string
		wantLast  string
		wantDirty bool
		wantErr   error
	}{
		{name: "move first to second", from: 0, to: 1, wantFirst: "incidents", wantLast: "publications", wantDirty: true},
		{name: "same index is a no-op", from: 0, to: 0, wantFirst: "tasks", wantLast: "publications"},
		{name: "target past end is clamped", from: 0, to: 99, wantFirst: "incidents", wantLast: "tasks", wantDirty: true},
		{name: "last to clamped end is a no-op", from: 4, to: 50, wantFirst: "tasks", wantLast: "publications"},
		{name: "negative source", from: -1, to: 0, wantErr: domain.ErrIndexOutOfRange},
		{name: "source past end", from: 5, to: 0, wantErr: domain.ErrIndexOutOfRange},
		{name: "negative target", from: 0, to: -1, wantErr: domain.ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if _, err := f.editor.BeginEdit(context.Background(), "employee-menu"); err != nil {
				t.Fatalf("begin edit: %v", err)
			}

			draft, err := f.editor.Reorder(tt.from, tt.to)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if draft.Items[0].ID != tt.wantFirst || draft.Items[len(draft.Items)-1].ID != tt.wantLast {
				t.Fatalf("unexpected order %v", itemIDs(draft))
			}
			assertDense(t, draft)
			if _, dirty, _ := f.editor.Draft(); dirty != tt.wantDirty {
				t.Fatalf("expected dirty=%v, got %v", tt.wantDirty, dirty)
			}
		})
	}
}

func TestEditorService_SetVisible_OnlyRealChangesDirty(t *testing.T) {
	f := newFixture(t)
	if _, err := f.editor.BeginEdit(context.Background(), "employee-menu"); err != nil {
		t.Fatalf("begin edit: %v", err)
	}

	if _, err := f.editor.SetVisible("tasks", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, dirty, _ := f.editor.Draft(); dirty {
		t.Fatal("expected clean draft when visibility did not change")
	}

	item, err := f.editor.SetVisible("tasks", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Visible {
		t.Fatal("expected item hidden")
	}
	if _, dirty, _ := f.editor.Draft(); !dirty {
		t.Fatal("expected dirty draft")
	}

	if _, err := f.editor.SetDisabled("ghost", true); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestEditorService_AddItem(t *testing.T) {
	f := newFixture(t)
	if _, err := f.editor.BeginEdit(context.Background(), "employee-menu"); err != nil {
		t.Fatalf("begin edit: %v", err)
	}

	item, err := f.editor.AddItem(ports.ItemInput{Label: " Wiki ", Path: "/wiki"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(item.ID, "item-") {
		t.Fatalf("unexpected id %q", item.ID)
	}
	if item.Label != "Wiki" || item.Icon != domain.IconFallback || !item.Visible || item.Disabled {
		t.Fatalf("unexpected item %+v", item)
	}
	if item.Order != 6 {
		t.Fatalf("expected order 6, got %d", item.Order)
	}
}

func TestEditorService_AddItem_Validation(t *testing.T) {
	tests := []struct {
		name  string
		in    ports.ItemInput
		field string
	}{
		{name: "blank label", in: ports.ItemInput{Label: "  ", Path: "/x"}, field: "label"},
		{name: "missing path", in: ports.ItemInput{Label: "X"}, field: "path"},
		{name: "unknown icon", in: ports.ItemInput{Label: "X", Path: "/x", Icon: "Rocket"}, field: "icon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if _, err := f.editor.BeginEdit(context.Background(), "employee-menu"); err != nil {
				t.Fatalf("begin edit: %v", err)
			}

			_, err := f.editor.AddItem(tt.in)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) || ve.Field != tt.field {
				t.Fatalf("expected validation error on %s, got %v", tt.field, err)
			}
			if _, dirty, _ := f.editor.Draft(); dirty {
				t.Fatal("expected rejected input to leave the draft clean")
			}
		})
	}
}

func TestEditorService_EditItem(t *testing.T) {
	f := newFixture(t)
	if _, err := f.editor.BeginEdit(context.Background(), "employee-menu"); err != nil {
		t.Fatalf("begin edit: %v", err)
	}

	item, err := f.editor.EditItem("tasks", ports.ItemPatch{Label: strPtr("To-dos"), Icon: strPtr("List")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Label != "To-dos" || item.Icon != domain.IconList || item.Path != "/tasks" {
		t.Fatalf("unexpected item %+v", item)
	}

	if _, err := f.editor.EditItem("tasks", ports.ItemPatch{Path: strPtr(" ")}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for blank path, got %v", err)
	}
}

func TestEditorService_BeginEdit_GuardsDirtyDraft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.editor.BeginEdit(ctx, "employee-menu"); err != nil {
		t.Fatalf("begin edit: %v", err)
	}
	if err := f.editor.RemoveItem("exams"); err != nil {
		t.Fatalf("remove item: %v", err)
	}

	if _, err := f.editor.BeginEdit(ctx, "admin-menu"); !errors.Is(err, domain.ErrUncommittedChanges) {
		t.Fatalf("expected ErrUncommittedChanges, got %v", err)
	}

	resumed, err := f.editor.BeginEdit(ctx, "employee-menu")
	if err != nil {
		t.Fatalf("unexpected error resuming: %v", err)
	}
	if resumed.Has("exams") {
		t.Fatal("expected resumed draft to keep its edits")
	}

	f.editor.Discard()
	if _, err := f.editor.BeginEdit(ctx, "admin-menu"); err != nil {
		t.Fatalf("expected begin edit after discard, got %v", err)
	}
	if !f.config(t, "employee-menu").Has("exams") {
		t.Fatal("expected discarded edit never stored")
	}
}

func TestEditorService_CommitIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.editor.BeginEdit(ctx, "manager-menu"); err != nil {
		t.Fatalf("begin edit: %v", err)
	}
	if _, err := f.editor.Reorder(2, 0); err != nil {
		t.Fatalf("reorder: %v", err)
	}
	first, err := f.editor.Commit(ctx)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	second, err := f.editor.Commit(ctx)
	if err != nil {
		t.Fatalf("second commit: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical stored configuration, got %+v and %+v", first, second)
	}
	if stored := f.config(t, "manager-menu"); !reflect.DeepEqual(stored, second) {
		t.Fatalf("expected store to hold the committed configuration, got %v", itemIDs(stored))
	}
	if first.Items[0].ID != "history" {
		t.Fatalf("expected reorder kept, got %v", itemIDs(first))
	}
}

// failingStore serves reads from the real store and refuses every write.
type failingStore struct {
	ports.MenuService
	err error
}

func (s failingStore) Upsert(context.Context, domain.MenuConfiguration) (*domain.MenuConfiguration, error) {
	return nil, s.err
}

func TestEditorService_CommitFailureKeepsEdits(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	editor := NewEditorService(failingStore{MenuService: f.menus, err: errors.New("store unavailable")}, zerolog.Nop())

	if _, err := editor.BeginEdit(ctx, "employee-menu"); err != nil {
		t.Fatalf("begin edit: %v", err)
	}
	if _, err := editor.SetVisible("tasks", false); err != nil {
		t.Fatalf("set visible: %v", err)
	}
	if _, err := editor.Commit(ctx); err == nil {
		t.Fatal("expected commit error")
	}

	draft, dirty, err := editor.Draft()
	if err != nil || !dirty {
		t.Fatalf("expected dirty draft kept, got dirty=%v err=%v", dirty, err)
	}
	if draft.Items[draft.IndexOf("tasks")].Visible {
		t.Fatal("expected edit kept after failed commit")
	}
}

func TestEditorService_CleanDraftFollowsStoreWrites(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.editor.BeginEdit(ctx, "employee-menu"); err != nil {
		t.Fatalf("begin edit: %v", err)
	}
	if _, err := f.modules.Toggle(ctx, "reports"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	draft, dirty, _ := f.editor.Draft()
	if dirty || !draft.Has("reports") {
		t.Fatalf("expected clean draft refreshed with reports, got %v", itemIDs(draft))
	}
}
