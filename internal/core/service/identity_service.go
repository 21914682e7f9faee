package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/opsdeck/console/internal/core/domain"
	"github.com/opsdeck/console/internal/core/ports"
)

const defaultCompany = "My Company"

// IdentityService keeps the operator currently signed in. It has two
// states: anonymous (user == nil) and authenticated.
type IdentityService struct {
	provider ports.AuthProvider
	user     *domain.User
	logger   zerolog.Logger
}

func NewIdentityService(provider ports.AuthProvider, logger zerolog.Logger) *IdentityService {
	return &IdentityService{provider: provider, logger: logger}
}

// Login authenticates creds and makes the first permitted role current.
func (s *IdentityService) Login(ctx context.Context, creds ports.Credentials) (domain.User, error) {
	if err := validateInput(creds); err != nil {
		return domain.User{}, err
	}

	identity, err := s.provider.Authenticate(ctx, creds)
	if err != nil {
		return domain.User{}, err
	}
	if len(identity.PermittedRoles) == 0 {
		return domain.User{}, domain.ErrUnauthenticated
	}

	company := strings.TrimSpace(creds.Company)
	if company == "" {
		company = defaultCompany
	}
	name, _, _ := strings.Cut(creds.Email, "@")

	user := domain.User{
		ID:          identity.UserID,
		Email:       creds.Email,
		Name:        name,
		Company:     company,
		Roles:       append([]domain.Role(nil), identity.PermittedRoles...),
		CurrentRole: identity.PermittedRoles[0],
	}
	s.user = &user

	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.CurrentRole)).Msg("user logged in")
	return user.Clone(), nil
}

func (s *IdentityService) Logout() {
	if s.user != nil {
		s.logger.Info().Str("user_id", s.user.ID).Msg("user logged out")
	}
	s.user = nil
}

// SwitchRole replaces the current role when role is permitted and silently
// keeps the session unchanged otherwise.
func (s *IdentityService) SwitchRole(role domain.Role) (domain.User, bool, error) {
	if s.user == nil {
		return domain.User{}, false, domain.ErrUnauthenticated
	}
	if !s.user.HasRole(role) || s.user.CurrentRole == role {
		return s.user.Clone(), false, nil
	}

	s.user.CurrentRole = role
	s.logger.Info().Str("user_id", s.user.ID).Str("role", string(role)).Msg("role switched")
	return s.user.Clone(), true, nil
}

func (s *IdentityService) Current() (domain.User, bool) {
	if s.user == nil {
		return domain.User{}, false
	}
	return s.user.Clone(), true
}
