package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/opsdeck/console/internal/core/domain"
)

// Context keys set by Auth.
const (
	KeyUserID = "user_id"
	KeyRole   = "role"
	KeyUser   = "user"
)

// SessionSource reports who is signed in right now.
type SessionSource interface {
	Session(ctx context.Context) (domain.User, bool, error)
}

// IssueToken signs a session token for userID valid for ttl.
func IssueToken(jwtSecret, userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(jwtSecret))
}

// Auth validates the JWT, checks that its subject is still the signed-in
// user and injects the user and its current role into context.
func Auth(jwtSecret string, sessions SessionSource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := &jwt.RegisteredClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid || claims.Subject == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, ok, err := sessions.Session(c.Request().Context())
			if err != nil {
				return err
			}
			if !ok || user.ID != claims.Subject {
				return echo.NewHTTPError(http.StatusUnauthorized, "session ended")
			}

			c.Set(KeyUserID, user.ID)
			c.Set(KeyRole, string(user.CurrentRole))
			c.Set(KeyUser, user)

			return next(c)
		}
	}
}

// CurrentUser returns the user injected by Auth.
func CurrentUser(c echo.Context) (domain.User, error) {
	user, ok := c.Get(KeyUser).(domain.User)
	if !ok {
		return domain.User{}, errors.New("auth middleware did not run")
	}
	return user, nil
}
