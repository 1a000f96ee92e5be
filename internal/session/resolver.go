package session

import (
	"context"
	"log/slog"

	domainauth "github.com/medflow/medflow/internal/domain/auth"
	"github.com/medflow/medflow/internal/ports"
)

// Resolver turns an authenticated identity (or its absence) into a committed
// session state by loading the durable profile record. Role always comes from
// the profile row, never from provider claims or client state; an unresolved
// profile fails closed to the unauthenticated state.
type Resolver struct {
	profiles ports.ProfileSource
	notifier ports.Notifier
	logger   *slog.Logger
}

// ResolverOptions groups dependencies for Resolver.
type ResolverOptions struct {
	Profiles ports.ProfileSource
	Notifier ports.Notifier
	Logger   *slog.Logger
}

// NewResolver constructs a new Resolver.
func NewResolver(opts ResolverOptions) *Resolver {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{profiles: opts.Profiles, notifier: opts.Notifier, logger: logger}
}

// Resolve runs one resolution attempt against the tracker and returns the
// state it computed plus whether the commit was applied. A nil identity clears
// the session. The call is re-entrant: concurrent attempts each take their own
// generation and the tracker keeps whichever was issued last.
func (r *Resolver) Resolve(
	ctx context.Context,
	tracker *Tracker,
	sessionID string,
	identity *domainauth.Identity,
) (domainauth.State, bool) {
	gen := tracker.Begin()

	if identity == nil {
		state := domainauth.State{}
		return state, tracker.Commit(gen, state)
	}

	state := r.resolveIdentity(ctx, sessionID, *identity)
	return state, tracker.Commit(gen, state)
}

// resolveIdentity fetches the profile row and builds the resolved state.
// Every failure path terminates in the unauthenticated state plus a notice;
// nothing propagates as a fault.
func (r *Resolver) resolveIdentity(
	ctx context.Context,
	sessionID string,
	identity domainauth.Identity,
) domainauth.State {
	fullName, rawRole, err := r.profiles.GetProfile(ctx, identity.Subject)
	if err != nil {
		r.logger.WarnContext(ctx, "profile resolution failed",
			slog.String("subject", identity.Subject),
			slog.Any("error", err))
		r.notify(ctx, sessionID)
		return domainauth.State{}
	}

	role := domainauth.ParseRole(rawRole)
	if !role.Known() {
		// Tolerate future role strings: the principal resolves but can pass
		// no guard.
		r.logger.WarnContext(ctx, "profile has unrecognized role",
			slog.String("subject", identity.Subject),
			slog.String("role", rawRole))
	}

	principal := domainauth.Principal{
		ID:          identity.Subject,
		DisplayName: fullName,
		Email:       identity.Email,
		Role:        role,
		AvatarURL:   identity.AvatarURL,
	}
	return domainauth.State{Principal: &principal}
}

func (r *Resolver) notify(ctx context.Context, sessionID string) {
	if r.notifier == nil {
		return
	}
	r.notifier.Notify(ctx, sessionID, ports.Notice{
		Level:   ports.NoticeError,
		Title:   "Error",
		Message: "Failed to load user profile",
	})
}
