package service

import (
	"maps"

	"github.com/rs/zerolog"

	"github.com/opsdeck/console/internal/core/domain"
)

// FlagService is the process-wide feature flag registry.
type FlagService struct {
	flags  domain.FeatureFlags
	logger zerolog.Logger
}

// NewFlagService starts from initial; keys missing there start enabled.
func NewFlagService(initial domain.FeatureFlags, logger zerolog.Logger) *FlagService {
	flags := domain.AllEnabled()
	for k, v := range initial {
		if _, known := flags[k]; known {
			flags[k] = v
		}
	}
	return &FlagService{flags: flags, logger: logger}
}

func (s *FlagService) Get() domain.FeatureFlags {
	return s.flags.Clone()
}

func (s *FlagService) Keys() []domain.FeatureKey {
	return append([]domain.FeatureKey(nil), domain.FeatureKeys...)
}

// Update validates every key before touching state, so a bad key leaves the
// registry as it was.
func (s *FlagService) Update(partial map[string]bool) (domain.FeatureFlags, error) {
	parsed := make(domain.FeatureFlags, len(partial))
	for raw, v := range partial {
		k, err := domain.ParseFeatureKey(raw)
		if err != nil {
			s.logger.Warn().Str("key", raw).Msg("flag update rejected")
			return nil, err
		}
		parsed[k] = v
	}

	maps.Copy(s.flags, parsed)
	for k, v := range parsed {
		s.logger.Info().Str("key", string(k)).Bool("enabled", v).Msg("feature flag updated")
	}
	return s.flags.Clone(), nil
}
