package domain

import (
	"fmt"
	"slices"
)

// MenuItem is one navigation entry. ID is unique within its configuration
// only.
type MenuItem struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Icon     Icon   `json:"icon"`
	Path     string `json:"path"`
	Visible  bool   `json:"visible"`
	Disabled bool   `json:"disabled"`
	Order    int    `json:"order"`
}

// MenuConfiguration is an ordered set of menu items bound to a role, or to
// nobody when Role is RoleCustom.
type MenuConfiguration struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Role      Role       `json:"role"`
	Items     []MenuItem `json:"items"`
	IsDefault bool       `json:"is_default"`
}

// Clone deep-copies the configuration.
func (c MenuConfiguration) Clone() MenuConfiguration {
	out := c
	out.Items = append([]MenuItem(nil), c.Items...)
	return out
}

// IndexOf returns the position of the item with id, or -1.
func (c MenuConfiguration) IndexOf(id string) int {
	for i, item := range c.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Has reports whether an item with id is present.
func (c MenuConfiguration) Has(id string) bool {
	return c.IndexOf(id) >= 0
}

// Renumber assigns order 1..N following the current sequence.
func (c *MenuConfiguration) Renumber() {
	for i := range c.Items {
		c.Items[i].Order = i + 1
	}
}

// Normalize sorts items by their order, ties keeping sequence position, and
// then renumbers them 1..N.
func (c *MenuConfiguration) Normalize() {
	slices.SortStableFunc(c.Items, func(a, b MenuItem) int {
		return a.Order - b.Order
	})
	c.Renumber()
}

// CheckItemIDs rejects empty or repeated item ids.
func (c MenuConfiguration) CheckItemIDs() error {
	seen := make(map[string]struct{}, len(c.Items))
	for _, item := range c.Items {
		if item.ID == "" {
			return NewValidationError("items", "contain an item without id")
		}
		if _, dup := seen[item.ID]; dup {
			return NewValidationError("items", fmt.Sprintf("contain duplicate id %q", item.ID))
		}
		seen[item.ID] = struct{}{}
	}
	return nil
}
