package auth

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/opsdeck/console/internal/core/domain"
	"github.com/opsdeck/console/internal/core/ports"
)

func TestMockProvider_RolesFromEmail(t *testing.T) {
	tests := []struct {
		email string
		want  []domain.Role
	}{
		{"admin@acme.io", []domain.Role{domain.RoleAdmin, domain.RoleManager, domain.RoleEmployee}},
		{"Sys.Admin@acme.io", []domain.Role{domain.RoleAdmin, domain.RoleManager, domain.RoleEmployee}},
		{"manager.north@acme.io", []domain.Role{domain.RoleManager, domain.RoleEmployee}},
		{"ana@acme.io", []domain.Role{domain.RoleEmployee}},
	}

	p := NewMockProvider()
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			id, err := p.Authenticate(context.Background(), ports.Credentials{Email: tt.email, Password: "pw"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(id.PermittedRoles, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, id.PermittedRoles)
			}
		})
	}
}

func TestMockProvider_StableUserID(t *testing.T) {
	p := NewMockProvider()
	ctx := context.Background()

	a, _ := p.Authenticate(ctx, ports.Credentials{Email: "ana@acme.io", Password: "one"})
	b, _ := p.Authenticate(ctx, ports.Credentials{Email: " ANA@acme.io", Password: "two"})
	c, _ := p.Authenticate(ctx, ports.Credentials{Email: "bob@acme.io", Password: "one"})

	if a.UserID != b.UserID {
		t.Fatalf("expected same id for same address, got %s and %s", a.UserID, b.UserID)
	}
	if a.UserID == c.UserID {
		t.Fatal("expected different ids for different addresses")
	}
}

func TestMockProvider_EmptyCredentials(t *testing.T) {
	_, err := NewMockProvider().Authenticate(context.Background(), ports.Credentials{Email: "ana@acme.io"})
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
