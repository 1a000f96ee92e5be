package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/medflow/medflow/internal/domain/auth"
	"github.com/medflow/medflow/internal/ports"
	"github.com/medflow/medflow/internal/session"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Provider ports.IdentityProvider
	Sessions ports.SessionStore
	Registry *session.Registry
	Resolver *session.Resolver
	Logger   *slog.Logger
}

// AuthService orchestrates sign-in, sign-out and role refresh. It coordinates
// the identity provider, the profile-backed resolver and session persistence.
// A session is only ever issued after a resolution has completed; role state
// never rides in from the client.
type AuthService struct {
	provider ports.IdentityProvider
	sessions ports.SessionStore
	registry *session.Registry
	resolver *session.Resolver
	logger   *slog.Logger
}

var errSessionExpired = errors.New("session expired")

// ErrProfileUnresolved is returned when provider sign-in succeeded but no
// usable profile record could be loaded. The caller is left unauthenticated.
var ErrProfileUnresolved = errors.New("profile could not be resolved")

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		provider: opts.Provider,
		sessions: opts.Sessions,
		registry: opts.Registry,
		resolver: opts.Resolver,
		logger:   logger.With("component", "auth_service"),
	}
}

// LoginResult contains the session persisted by a completed login.
type LoginResult struct {
	Session domainauth.Session
}

// Login signs credentials in at the provider, resolves the profile and
// persists a session. Credential failures return ports.ErrInvalidCredentials.
// When the provider accepts the credentials but the profile cannot be
// resolved, the login fails closed with ErrProfileUnresolved and no session is
// issued.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, ports.ErrInvalidCredentials
	}

	identity, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		if errors.Is(err, ports.ErrInvalidCredentials) {
			return nil, ports.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("provider sign-in: %w", err)
	}

	sessionID := uuid.New().String()
	tracker := s.registry.GetOrCreate(sessionID)

	state, _ := s.resolver.Resolve(ctx, tracker, sessionID, &identity)
	if !state.Authenticated() {
		// Provider credential exists but no profile backs it. Undo the
		// provider sign-in best-effort and report the login as failed.
		s.registry.Remove(sessionID)
		if signOutErr := s.provider.SignOut(ctx, identity.Subject); signOutErr != nil {
			s.logger.WarnContext(ctx, "provider sign-out after failed resolution",
				"subject", identity.Subject, "err", signOutErr)
		}
		return nil, ErrProfileUnresolved
	}

	principal := state.Principal
	sess := domainauth.Session{
		ID:          sessionID,
		Subject:     principal.ID,
		DisplayName: principal.DisplayName,
		Email:       principal.Email,
		Role:        principal.Role,
		AvatarURL:   principal.AvatarURL,
		ExpiresAt:   identity.ExpiresAt,
	}
	if saveErr := s.sessions.Save(ctx, sess); saveErr != nil {
		s.registry.Remove(sessionID)
		return nil, fmt.Errorf("save session: %w", saveErr)
	}

	return &LoginResult{Session: sess}, nil
}

// Logout clears the session. Local state (session record and tracker) is
// cleared unconditionally; a provider-side sign-out failure is logged, never
// surfaced, so the user always ends up signed out locally.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	subject := ""
	if sess, err := s.sessions.Get(ctx, sessionID); err == nil {
		subject = sess.Subject
	}

	s.registry.Remove(sessionID)
	deleteErr := s.sessions.Delete(ctx, sessionID)

	// provider sign-out happens regardless of the delete outcome so a store
	// failure never leaves a live provider credential behind
	if subject != "" {
		if err := s.provider.SignOut(ctx, subject); err != nil {
			s.logger.WarnContext(ctx, "provider sign-out failed",
				"subject", subject, "err", err)
		}
	}

	if deleteErr != nil {
		return fmt.Errorf("delete session: %w", deleteErr)
	}
	return nil
}

// Refresh re-resolves the session's profile so role changes take effect
// without a new login. While the resolution is in flight the tracker reports
// Loading and guards pend. A profile that no longer resolves signs the
// session out.
func (s *AuthService) Refresh(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	sess, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	identity := domainauth.Identity{
		Subject:   sess.Subject,
		Email:     sess.Email,
		AvatarURL: sess.AvatarURL,
		ExpiresAt: sess.ExpiresAt,
	}

	tracker := s.registry.GetOrCreate(sessionID)
	state, applied := s.resolver.Resolve(ctx, tracker, sessionID, &identity)
	if !applied {
		// A newer resolution superseded this one; report its outcome instead.
		state = tracker.Snapshot()
	}
	if !state.Authenticated() {
		s.registry.Remove(sessionID)
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, fmt.Errorf("delete unresolved session: %w", deleteErr)
		}
		return nil, ErrProfileUnresolved
	}

	principal := state.Principal
	sess.DisplayName = principal.DisplayName
	sess.Role = principal.Role
	if saveErr := s.sessions.Save(ctx, *sess); saveErr != nil {
		return nil, fmt.Errorf("save refreshed session: %w", saveErr)
	}
	return sess, nil
}

// GetSession retrieves a live session by id, deleting it when expired.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if time.Now().After(sess.ExpiresAt) {
		s.registry.Remove(sessionID)
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(errSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, errSessionExpired
	}

	return &sess, nil
}

// StateFor returns the access-control snapshot guards evaluate against. A
// live tracker wins over the persisted session record so in-flight
// re-resolutions surface as Loading; without either, the state is
// unauthenticated.
func (s *AuthService) StateFor(ctx context.Context, sessionID string) domainauth.State {
	if sessionID == "" {
		return domainauth.State{}
	}
	if tracker, ok := s.registry.Lookup(sessionID); ok {
		return tracker.Snapshot()
	}
	sess, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return domainauth.State{}
	}
	return sess.State()
}
