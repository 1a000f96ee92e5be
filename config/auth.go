package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthMode represents the authentication mode for the application.
type AuthMode string

const (
	// AuthModePassword uses OIDC resource-owner password credentials.
	AuthModePassword AuthMode = "password"
	// AuthModeMock uses an in-memory user table (for development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "password", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: password, mock)", v)
	}
}

// OIDCConfig contains OIDC provider configuration (used when Mode=password).
type OIDCConfig struct {
	IssuerURL    string `env:"ISSUER_URL"`
	ClientID     string `env:"CLIENT_ID"     envDefault:"medflow"`
	ClientSecret string `env:"CLIENT_SECRET" envDefault:"medflow"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email"`

	// Claim paths (JMESPath) for optional provider metadata. Defaults match
	// providers that nest user metadata under user_metadata.
	DisplayNamePath string `env:"DISPLAY_NAME_PATH" envDefault:"user_metadata.full_name"`
	AvatarPath      string `env:"AVATAR_PATH"       envDefault:"user_metadata.avatar_url"`
}

// DevAuthConfig controls mock authentication identities.
// Used when AUTH_MODE=mock for development and testing.
//
// Users holds entries of the form subject:email:password:display name,
// separated by semicolons.
type DevAuthConfig struct {
	Users           []string      `env:"USERS"            envDefault:"dev-admin:admin@medflow.local:admin:Dev Admin" envSeparator:";"`
	SessionDuration time.Duration `env:"SESSION_DURATION" envDefault:"8h"`
}

// DevUser is one parsed mock credential.
type DevUser struct {
	Subject     string
	Email       string
	Password    string
	DisplayName string
}

// ParseUsers parses the raw Users entries. Malformed entries are an error so a
// typo doesn't silently drop a dev credential.
func (d DevAuthConfig) ParseUsers() ([]DevUser, error) {
	const fields = 4
	users := make([]DevUser, 0, len(d.Users))
	for _, raw := range d.Users {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		parts := strings.SplitN(raw, ":", fields)
		if len(parts) != fields {
			return nil, fmt.Errorf("invalid dev auth user %q (want subject:email:password:name)", raw)
		}
		users = append(users, DevUser{
			Subject:     strings.TrimSpace(parts[0]),
			Email:       strings.TrimSpace(parts[1]),
			Password:    parts[2],
			DisplayName: strings.TrimSpace(parts[3]),
		})
	}
	return users, nil
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which identity provider adapter to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"password"`

	// OIDC configuration (used when Mode=password).
	OIDC OIDCConfig `envPrefix:"OIDC_"`

	// DevAuth configuration (used when Mode=mock).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`
}
