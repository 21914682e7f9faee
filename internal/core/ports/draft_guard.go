package ports

import "context"

// DraftGuard lets writers that bypass the draft editor respect an open
// edit session.
type DraftGuard interface {
	// HasUncommitted reports whether configID is open with unsaved edits.
	HasUncommitted(configID string) bool
	// Refresh re-reads a clean draft of configID from the store, or drops it
	// when the configuration no longer exists.
	Refresh(ctx context.Context, configID string)
}
