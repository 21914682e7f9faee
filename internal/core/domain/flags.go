package domain

import "fmt"

// FeatureKey names a built-in module that can be switched off process-wide.
type FeatureKey string

const (
	FeatureTasks          FeatureKey = "tasks"
	FeatureIncidents      FeatureKey = "incidents"
	FeatureHistory        FeatureKey = "history"
	FeatureExams          FeatureKey = "exams"
	FeatureMessages       FeatureKey = "messages"
	FeaturePublications   FeatureKey = "publications"
	FeatureAdministration FeatureKey = "administration"
)

// FeatureKeys is the fixed enumeration in display order.
var FeatureKeys = []FeatureKey{
	FeatureTasks,
	FeatureIncidents,
	FeatureHistory,
	FeatureExams,
	FeatureMessages,
	FeaturePublications,
	FeatureAdministration,
}

// ParseFeatureKey rejects anything outside FeatureKeys.
func ParseFeatureKey(s string) (FeatureKey, error) {
	k := FeatureKey(s)
	for _, known := range FeatureKeys {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFlagKey, s)
}

// FeatureFlags maps every FeatureKey to its enabled state.
type FeatureFlags map[FeatureKey]bool

// AllEnabled returns a flag set with every key on.
func AllEnabled() FeatureFlags {
	f := make(FeatureFlags, len(FeatureKeys))
	for _, k := range FeatureKeys {
		f[k] = true
	}
	return f
}

// Clone returns an independent snapshot.
func (f FeatureFlags) Clone() FeatureFlags {
	out := make(FeatureFlags, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Suppresses reports whether an item id, read as a flag key, is switched
// off. Ids that are not flag keys are never suppressed.
func (f FeatureFlags) Suppresses(itemID string) bool {
	enabled, ok := f[FeatureKey(itemID)]
	return ok && !enabled
}
