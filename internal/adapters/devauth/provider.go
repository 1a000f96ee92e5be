// Package devauth provides a config-driven identity provider for local
// development. It accepts a fixed set of email/password pairs and never talks
// to a real issuer.
package devauth

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	domainauth "github.com/medflow/medflow/internal/domain/auth"
	"github.com/medflow/medflow/internal/ports"
)

// User is one dev credential. Subject doubles as the profiles table key, so
// seeded profiles and dev sign-ins line up.
type User struct {
	Subject     string
	Email       string
	Password    string
	DisplayName string
}

// Config controls the dev auth provider behavior.
type Config struct {
	Users           []User
	SessionDuration time.Duration // default 8h when zero
}

// Provider implements ports.IdentityProvider for local development.
type Provider struct {
	users           map[string]User // keyed by lowercase email
	sessionDuration time.Duration
}

// NewProvider constructs a dev auth provider from Config.
func NewProvider(cfg Config) (*Provider, error) {
	if len(cfg.Users) == 0 {
		return nil, errors.New("dev auth: at least one user is required")
	}

	users := make(map[string]User, len(cfg.Users))
	for _, u := range cfg.Users {
		if u.Subject == "" || u.Email == "" || u.Password == "" {
			return nil, errors.New("dev auth: subject, email and password are required for every user")
		}
		users[strings.ToLower(u.Email)] = u
	}

	dur := cfg.SessionDuration
	if dur == 0 {
		dur = 8 * time.Hour
	}
	return &Provider{users: users, sessionDuration: dur}, nil
}

// SignIn matches credentials against the configured users.
func (p *Provider) SignIn(_ context.Context, email, password string) (domainauth.Identity, error) {
	u, ok := p.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return domainauth.Identity{}, ports.ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) != 1 {
		return domainauth.Identity{}, ports.ErrInvalidCredentials
	}
	return domainauth.Identity{
		Subject:     u.Subject,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		ExpiresAt:   time.Now().Add(p.sessionDuration),
	}, nil
}

// SignOut is a no-op; dev credentials have no provider-side state.
func (p *Provider) SignOut(context.Context, string) error { return nil }
