package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/opsdeck/console/internal/core/domain"
	"github.com/opsdeck/console/internal/core/ports"
)

func TestIdentityService_Login(t *testing.T) {
	provider := &stubProvider{roles: []domain.Role{domain.RoleManager, domain.RoleEmployee}}
	svc := NewIdentityService(provider, zerolog.Nop())

	user, err := svc.Login(context.Background(), ports.Credentials{Email: "ana@acme.io", Password: "pw"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.CurrentRole != domain.RoleManager {
		t.Fatalf("expected first permitted role, got %s", user.CurrentRole)
	}
	if user.Name != "ana" || user.Company != "My Company" {
		t.Fatalf("unexpected profile %+v", user)
	}
	if cur, ok := svc.Current(); !ok || cur.ID != user.ID {
		t.Fatalf("expected session for %s, got %+v", user.ID, cur)
	}
}

func TestIdentityService_Login_Validation(t *testing.T) {
	provider := &stubProvider{roles: []domain.Role{domain.RoleEmployee}}
	svc := NewIdentityService(provider, zerolog.Nop())

	_, err := svc.Login(context.Background(), ports.Credentials{Email: " ", Password: "pw"})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "email" {
		t.Fatalf("expected validation error on email, got %v", err)
	}
	if provider.calls != 0 {
		t.Fatal("expected provider not called for invalid credentials")
	}
}

func TestIdentityService_Login_NoRoles(t *testing.T) {
	svc := NewIdentityService(&stubProvider{}, zerolog.Nop())

	_, err := svc.Login(context.Background(), ports.Credentials{Email: "x@y.z", Password: "pw"})
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if _, ok := svc.Current(); ok {
		t.Fatal("expected to stay anonymous")
	}
}

func TestIdentityService_SwitchRole(t *testing.T) {
	provider := &stubProvider{roles: []domain.Role{domain.RoleManager, domain.RoleEmployee}}
	svc := NewIdentityService(provider, zerolog.Nop())

	if _, _, err := svc.SwitchRole(domain.RoleEmployee); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated while anonymous, got %v", err)
	}

	if _, err := svc.Login(context.Background(), ports.Credentials{Email: "m@acme.io", Password: "pw"}); err != nil {
		t.Fatalf("login: %v", err)
	}

	user, changed, err := svc.SwitchRole(domain.RoleAdmin)
	if err != nil || changed || user.CurrentRole != domain.RoleManager {
		t.Fatalf("expected unpermitted switch to be a no-op, got role=%s changed=%v err=%v", user.CurrentRole, changed, err)
	}

	user, changed, err = svc.SwitchRole(domain.RoleEmployee)
	if err != nil {
		t.Fatalf("switch role: %v", err)
	}
	if !changed || user.CurrentRole != domain.RoleEmployee {
		t.Fatalf("expected switch to employee, got role=%s changed=%v", user.CurrentRole, changed)
	}
}

func TestIdentityService_Logout(t *testing.T) {
	svc := NewIdentityService(&stubProvider{roles: []domain.Role{domain.RoleEmployee}}, zerolog.Nop())
	if _, err := svc.Login(context.Background(), ports.Credentials{Email: "e@acme.io", Password: "pw"}); err != nil {
		t.Fatalf("login: %v", err)
	}

	svc.Logout()
	if _, ok := svc.Current(); ok {
		t.Fatal("expected anonymous after logout")
	}
	svc.Logout()
}
