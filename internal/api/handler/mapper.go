package handler

import (
	"github.com/opsdeck/console/internal/core/domain"
	"github.com/opsdeck/console/internal/core/ports"
)

// --- Request → Core input ---

func toMenuConfiguration(id string, req upsertMenuRequest) (domain.MenuConfiguration, error) {
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return domain.MenuConfiguration{}, err
	}

	cfg := domain.MenuConfiguration{
		ID:    id,
		Name:  req.Name,
		Role:  role,
		Items: make([]domain.MenuItem, 0, len(req.Items)),
	}
	for _, it := range req.Items {
		icon, err := domain.ParseIcon(it.Icon)
		if err != nil {
			return domain.MenuConfiguration{}, err
		}
		cfg.Items = append(cfg.Items, domain.MenuItem{
			ID:       it.ID,
			Label:    it.Label,
			Icon:     icon,
			Path:     it.Path,
			Visible:  it.Visible,
			Disabled: it.Disabled,
			Order:    it.Order,
		})
	}
	return cfg, nil
}

func toItemPatch(req editItemRequest) ports.ItemPatch {
	return ports.ItemPatch{Label: req.Label, Icon: req.Icon, Path: req.Path}
}

// --- Core result → Response ---

func toToggleResponse(res ports.ToggleResult) toggleResponse {
	affected := res.AffectedConfigurations
	if affected == nil {
		affected = []string{}
	}
	return toggleResponse{Module: res.Module, AffectedConfigurations: affected}
}

func toFlagsResponse(keys []domain.FeatureKey, flags domain.FeatureFlags) flagsResponse {
	out := flagsResponse{Flags: make([]flagEntry, 0, len(keys))}
	for _, k := range keys {
		out.Flags = append(out.Flags, flagEntry{Key: k, Enabled: flags[k]})
	}
	return out
}
