package ports

import (
	"context"

	"github.com/opsdeck/console/internal/core/domain"
)

// MenuRepository holds menu configurations in a stable sequence.
type MenuRepository interface {
	List(ctx context.Context) ([]domain.MenuConfiguration, error)
	Get(ctx context.Context, id string) (*domain.MenuConfiguration, error)
	// Save inserts cfg at the end of the sequence, or replaces the stored
	// configuration with the same id in place.
	Save(ctx context.Context, cfg *domain.MenuConfiguration) error
	Delete(ctx context.Context, id string) error
	// Containing returns, in sequence order, the ids of the configurations
	// that hold an item with itemID.
	Containing(ctx context.Context, itemID string) ([]string, error)
}
