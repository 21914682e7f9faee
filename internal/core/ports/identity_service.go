package ports

import (
	"context"

	"github.com/opsdeck/console/internal/core/domain"
)

// IdentityService holds the single operator session.
type IdentityService interface {
	Login(ctx context.Context, creds Credentials) (domain.User, error)
	Logout()
	// SwitchRole is a no-op when role is not permitted; changed reports
	// whether the current role moved.
	SwitchRole(role domain.Role) (user domain.User, changed bool, err error)
	Current() (domain.User, bool)
}
