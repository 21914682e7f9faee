// Package auth holds the authentication providers the console can sign in
// against.
package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/opsdeck/console/internal/core/domain"
	"github.com/opsdeck/console/internal/core/ports"
)

// MockProvider accepts any non-empty credentials and derives the role set
// from the email address. It never checks or stores the password.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Authenticate grants admin, manager and employee to addresses containing
// "admin"; manager and employee to those containing "manager"; employee to
// everyone else. The user id is stable for a given address.
func (p *MockProvider) Authenticate(_ context.Context, creds ports.Credentials) (*ports.Identity, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	if email == "" || strings.TrimSpace(creds.Password) == "" {
		return nil, domain.ErrUnauthenticated
	}

	return &ports.Identity{
		UserID:         uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+email)).String(),
		PermittedRoles: rolesFor(email),
	}, nil
}

func rolesFor(email string) []domain.Role {
	switch {
	case strings.Contains(email, "admin"):
		return []domain.Role{domain.RoleAdmin, domain.RoleManager, domain.RoleEmployee}
	case strings.Contains(email, "manager"):
		return []domain.Role{domain.RoleManager, domain.RoleEmployee}
	default:
		return []domain.Role{domain.RoleEmployee}
	}
}
