package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/medflow/medflow/config"
)

func TestBuildAuthServiceRequiresRedis(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := BuildAuthService(context.Background(), AuthDeps{
		Auth: config.AuthConfig{
			Mode: config.AuthModeMock,
			DevAuth: config.DevAuthConfig{
				Users: []string{"dev-admin:admin@medflow.local:admin:Dev Admin"},
			},
		},
		RedisClient: nil,
		Logger:      logger,
	})
	if err == nil {
		t.Fatal("BuildAuthService() with nil redis client should fail")
	}
}

func TestBuildIdentityProviderMockMode(t *testing.T) {
	prov, err := buildIdentityProvider(context.Background(), config.AuthConfig{
		Mode: config.AuthModeMock,
		DevAuth: config.DevAuthConfig{
			Users: []string{"dev-admin:admin@medflow.local:admin:Dev Admin"},
		},
	})
	if err != nil {
		t.Fatalf("buildIdentityProvider() error = %v", err)
	}
	if prov == nil {
		t.Fatal("buildIdentityProvider() returned nil provider")
	}
}

func TestBuildIdentityProviderMockModeMalformedUsers(t *testing.T) {
	_, err := buildIdentityProvider(context.Background(), config.AuthConfig{
		Mode: config.AuthModeMock,
		DevAuth: config.DevAuthConfig{
			Users: []string{"not-enough-fields"},
		},
	})
	if err == nil {
		t.Fatal("buildIdentityProvider() with malformed users should fail")
	}
}

func TestBuildIdentityProviderUnknownMode(t *testing.T) {
	_, err := buildIdentityProvider(context.Background(), config.AuthConfig{Mode: "saml"})
	if err == nil {
		t.Fatal("buildIdentityProvider() with unknown mode should fail")
	}
}
