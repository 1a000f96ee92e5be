package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAuthModeUnmarshalText(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    AuthMode
		expectError bool
	}{
		{name: "password", input: "password", expected: AuthModePassword},
		{name: "mock", input: "mock", expected: AuthModeMock},
		{name: "uppercase normalized", input: "PASSWORD", expected: AuthModePassword},
		{name: "unknown mode", input: "saml", expectError: true},
		{name: "empty", input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mode AuthMode
			err := mode.UnmarshalText([]byte(tt.input))
			if tt.expectError {
				if err == nil {
					t.Fatalf("UnmarshalText(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("UnmarshalText(%q) unexpected error: %v", tt.input, err)
			}
			if mode != tt.expected {
				t.Errorf("UnmarshalText(%q) = %v, want %v", tt.input, mode, tt.expected)
			}
		})
	}
}

func TestDevAuthConfigParseUsers(t *testing.T) {
	cfg := DevAuthConfig{Users: []string{
		"subject-1:doctor@medflow.local:secret:Sarah Johnson",
		" dev-admin:admin@medflow.local:admin:Dev Admin ",
		"",
	}}

	users, err := cfg.ParseUsers()
	if err != nil {
		t.Fatalf("ParseUsers() unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("ParseUsers() returned %d users, want 2", len(users))
	}
	if users[0].Subject != "subject-1" || users[0].DisplayName != "Sarah Johnson" {
		t.Errorf("ParseUsers()[0] = %+v", users[0])
	}
	if users[1].Email != "admin@medflow.local" {
		t.Errorf("ParseUsers()[1].Email = %q, want admin@medflow.local", users[1].Email)
	}
}

func TestDevAuthConfigParseUsersMalformed(t *testing.T) {
	cfg := DevAuthConfig{Users: []string{"broken-entry"}}
	if _, err := cfg.ParseUsers(); err == nil {
		t.Fatal("ParseUsers() expected error for malformed entry, got nil")
	}
}

func TestHTTPConfigSanitize(t *testing.T) {
	cfg := HTTPConfig{MaxConns: -3}
	cfg.Sanitize()

	if cfg.MaxConns != 1 {
		t.Errorf("Sanitize() MaxConns = %d, want 1", cfg.MaxConns)
	}
	if cfg.ReadTimeout != 15*time.Second {
		t.Errorf("Sanitize() ReadTimeout = %v, want 15s", cfg.ReadTimeout)
	}
	if cfg.WriteTimeout != 30*time.Second {
		t.Errorf("Sanitize() WriteTimeout = %v, want 30s", cfg.WriteTimeout)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("Sanitize() ShutdownTimeout = %v, want 10s", cfg.ShutdownTimeout)
	}
}

func TestAppConfigDefaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("env.Parse() unexpected error: %v", err)
	}
	cfg.Sanitize()

	if cfg.Auth.Mode != AuthModePassword {
		t.Errorf("default Auth.Mode = %v, want password", cfg.Auth.Mode)
	}
	if cfg.Postgres.Port != 5432 {
		t.Errorf("default Postgres.Port = %d, want 5432", cfg.Postgres.Port)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("default HTTP.Addr = %q, want :8080", cfg.HTTP.Addr)
	}
	if cfg.Auth.DevAuth.SessionDuration != 8*time.Hour {
		t.Errorf("default DevAuth.SessionDuration = %v, want 8h", cfg.Auth.DevAuth.SessionDuration)
	}
}
