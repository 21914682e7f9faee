package ports

import "github.com/opsdeck/console/internal/core/domain"

// FlagService is the process-wide feature flag registry.
type FlagService interface {
	Get() domain.FeatureFlags
	// Update merges partial over the current flags. Any unknown key rejects
	// the whole update.
	Update(partial map[string]bool) (domain.FeatureFlags, error)
	Keys() []domain.FeatureKey
}
