package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/medflow/medflow/config"
	"github.com/medflow/medflow/internal/adapters/devauth"
	"github.com/medflow/medflow/internal/adapters/oidcpw"
	redisadapter "github.com/medflow/medflow/internal/adapters/redis"
	"github.com/medflow/medflow/internal/ports"
	"github.com/medflow/medflow/internal/service"
	"github.com/medflow/medflow/internal/session"
	"github.com/redis/go-redis/v9"
)

// AuthDeps contains dependencies for building the auth service.
type AuthDeps struct {
	Auth        config.AuthConfig
	RedisClient redis.UniversalClient
	Profiles    ports.ProfileSource
	Logger      *slog.Logger
}

// AuthContainer groups the auth service with the notice store it shares with
// the router.
type AuthContainer struct {
	Auth    *service.AuthService
	Notices *redisadapter.NoticeStore
}

// BuildAuthService wires the identity provider selected by the auth mode to
// the Redis-backed session and notice stores and the profile resolver.
func BuildAuthService(ctx context.Context, deps AuthDeps) (AuthContainer, error) {
	if deps.RedisClient == nil {
		return AuthContainer{}, fmt.Errorf("auth mode %q requires a redis client", deps.Auth.Mode)
	}
	if deps.Profiles == nil {
		return AuthContainer{}, fmt.Errorf("auth mode %q requires a profile source", deps.Auth.Mode)
	}

	sessionStore := redisadapter.NewSessionStoreWithPrefix(deps.RedisClient, "session:")
	noticeStore := redisadapter.NewNoticeStore(deps.RedisClient, deps.Logger)

	provider, err := buildIdentityProvider(ctx, deps.Auth)
	if err != nil {
		return AuthContainer{}, err
	}

	resolver := session.NewResolver(session.ResolverOptions{
		Profiles: deps.Profiles,
		Notifier: noticeStore,
		Logger:   deps.Logger,
	})

	auth := service.NewAuthService(service.AuthServiceOptions{
		Provider: provider,
		Sessions: sessionStore,
		Registry: session.NewRegistry(),
		Resolver: resolver,
		Logger:   deps.Logger,
	})

	return AuthContainer{Auth: auth, Notices: noticeStore}, nil
}

//nolint:ireturn // the provider port hides which adapter the mode selected.
func buildIdentityProvider(ctx context.Context, cfg config.AuthConfig) (ports.IdentityProvider, error) {
	switch cfg.Mode {
	case config.AuthModeMock:
		users, err := cfg.DevAuth.ParseUsers()
		if err != nil {
			return nil, fmt.Errorf("parse dev auth users: %w", err)
		}
		devUsers := make([]devauth.User, 0, len(users))
		for _, u := range users {
			devUsers = append(devUsers, devauth.User{
				Subject:     u.Subject,
				Email:       u.Email,
				Password:    u.Password,
				DisplayName: u.DisplayName,
			})
		}
		prov, err := devauth.NewProvider(devauth.Config{
			Users:           devUsers,
			SessionDuration: cfg.DevAuth.SessionDuration,
		})
		if err != nil {
			return nil, fmt.Errorf("build dev auth provider: %w", err)
		}
		return prov, nil

	case config.AuthModePassword:
		prov, err := oidcpw.NewProvider(ctx, oidcpw.ProviderConfig{
			IssuerURL:       cfg.OIDC.IssuerURL,
			ClientID:        cfg.OIDC.ClientID,
			ClientSecret:    cfg.OIDC.ClientSecret,
			Scope:           cfg.OIDC.Scope,
			DisplayNamePath: cfg.OIDC.DisplayNamePath,
			AvatarPath:      cfg.OIDC.AvatarPath,
		})
		if err != nil {
			return nil, fmt.Errorf("build OIDC password provider: %w", err)
		}
		return prov, nil

	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.Mode)
	}
}
