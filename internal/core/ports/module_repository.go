package ports

import (
	"context"

	"github.com/opsdeck/console/internal/core/domain"
)

// ModuleRepository holds the module catalog in catalog order.
type ModuleRepository interface {
	List(ctx context.Context) ([]domain.AvailableModule, error)
	Get(ctx context.Context, id string) (*domain.AvailableModule, error)
	Save(ctx context.Context, m *domain.AvailableModule) error
}
