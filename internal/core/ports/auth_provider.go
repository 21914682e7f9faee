package ports

import (
	"context"

	"github.com/opsdeck/console/internal/core/domain"
)

// Credentials is what the login form submits.
type Credentials struct {
	Email    string `validate:"required,notblank"`
	Password string `validate:"required,notblank"`
	Company  string
}

// Identity is what an authentication provider vouches for.
type Identity struct {
	UserID         string
	PermittedRoles []domain.Role
}

// AuthProvider turns credentials into an identity.
type AuthProvider interface {
	Authenticate(ctx context.Context, creds Credentials) (*Identity, error)
}
