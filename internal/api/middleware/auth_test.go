package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/opsdeck/console/internal/core/domain"
)

type stubSessions struct {
	user domain.User
	ok   bool
}

func (s stubSessions) Session(context.Context) (domain.User, bool, error) {
	return s.user, s.ok, nil
}

var manager = domain.User{
	ID:          "u-1",
	Email:       "manager@acme.io",
	Roles:       []domain.Role{domain.RoleManager, domain.RoleEmployee},
	CurrentRole: domain.RoleManager,
}

func serve(t *testing.T, header string, sessions SessionSource, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := Auth("secret", sessions)(next)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func mustNotRun(t *testing.T) echo.HandlerFunc {
	return func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	signed, err := IssueToken("secret", "u-1", time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	called := false
	rec := serve(t, "Bearer "+signed, stubSessions{user: manager, ok: true}, func(c echo.Context) error {
		called = true
		if c.Get(KeyUserID) != "u-1" {
			t.Fatalf("user_id not set")
		}
		if c.Get(KeyRole) != "manager" {
			t.Fatalf("role not set")
		}
		user, err := CurrentUser(c)
		if err != nil || user.Email != manager.Email {
			t.Fatalf("user not set: %v", err)
		}
		return c.NoContent(http.StatusOK)
	})

	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	valid, _ := IssueToken("secret", "u-1", time.Hour)
	expired, _ := IssueToken("secret", "u-1", -time.Minute)
	foreign, _ := IssueToken("other-secret", "u-1", time.Hour)
	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "u-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)

	tests := []struct {
		name     string
		header   string
		sessions stubSessions
	}{
		{"missing header", "", stubSessions{user: manager, ok: true}},
		{"invalid header format", "Token abc", stubSessions{user: manager, ok: true}},
		{"invalid token", "Bearer not-a-token", stubSessions{user: manager, ok: true}},
		{"expired token", "Bearer " + expired, stubSessions{user: manager, ok: true}},
		{"wrong secret", "Bearer " + foreign, stubSessions{user: manager, ok: true}},
		{"unsigned token", "Bearer " + none, stubSessions{user: manager, ok: true}},
		{"logged out", "Bearer " + valid, stubSessions{}},
		{"different user signed in", "Bearer " + valid, stubSessions{user: domain.User{ID: "u-2"}, ok: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, tt.header, tt.sessions, mustNotRun(t))
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}
