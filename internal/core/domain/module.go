package domain

// Category groups catalog modules for the module manager.
type Category string

const (
	CategoryProductivity  Category = "productivity"
	CategoryOperations    Category = "operations"
	CategoryHR            Category = "hr"
	CategoryAnalytics     Category = "analytics"
	CategoryCommunication Category = "communication"
	CategoryOther         Category = "other"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryProductivity,
	CategoryOperations,
	CategoryHR,
	CategoryAnalytics,
	CategoryCommunication,
	CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// AvailableModule is an installable catalog entry. When active, a MenuItem
// with the same id is present in every menu configuration.
type AvailableModule struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        Icon     `json:"icon"`
	Category    Category `json:"category"`
	Path        string   `json:"path"`
	IsActive    bool     `json:"is_active"`
	IsPremium   bool     `json:"is_premium"`
	Features    []string `json:"features"`
}

// Clone returns a copy that shares no slices with m.
func (m AvailableModule) Clone() AvailableModule {
	out := m
	out.Features = append([]string(nil), m.Features...)
	return out
}

// MenuItem builds the entry injected into configurations on activation.
// Order is left to the caller.
func (m AvailableModule) MenuItem() MenuItem {
	return MenuItem{
		ID:      m.ID,
		Label:   m.Name,
		Icon:    m.Icon,
		Path:    m.Path,
		Visible: true,
	}
}
