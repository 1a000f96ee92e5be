package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service
// and internal/session.

import (
	"context"

	domainauth "github.com/medflow/medflow/internal/domain/auth"
)

// IdentityProvider authenticates credentials against the external identity
// service. It is the source of truth for "is there a live credential", never
// for role.
type IdentityProvider interface {
	// SignIn performs a password sign-in and returns the authenticated
	// identity. A credential failure returns ErrInvalidCredentials.
	SignIn(ctx context.Context, email, password string) (domainauth.Identity, error)

	// SignOut revokes the provider-side credential for the subject. Callers
	// must clear local session state even when SignOut fails.
	SignOut(ctx context.Context, subject string) error
}

// SessionStore persists and retrieves server-side session records.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// ProfileSource is the keyed lookup for the durable profile record backing
// role resolution.
type ProfileSource interface {
	// GetProfile returns the profile's full name and raw storage role string
	// for the subject, or ErrProfileNotFound.
	GetProfile(ctx context.Context, id string) (fullName, role string, err error)
}

// Notifier delivers fire-and-forget user-facing notices (toasts). Delivery is
// best-effort; callers never depend on it succeeding.
type Notifier interface {
	Notify(ctx context.Context, sessionID string, n Notice)
}

// NoticeSource drains queued notices for delivery to the client.
type NoticeSource interface {
	// Drain returns and removes all queued notices for the session, oldest
	// first.
	Drain(ctx context.Context, sessionID string) ([]Notice, error)
}

// NoticeLevel classifies a notice for display.
type NoticeLevel string

const (
	NoticeInfo  NoticeLevel = "info"
	NoticeError NoticeLevel = "error"
)

// Notice is a single user-facing message.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
}
