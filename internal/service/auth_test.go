package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/medflow/medflow/internal/domain/auth"
	mocks "github.com/medflow/medflow/internal/mocks/auth"
	"github.com/medflow/medflow/internal/ports"
	"github.com/medflow/medflow/internal/session"
)

type authFixture struct {
	provider *mocks.MockIdentityProvider
	sessions *mocks.MemorySessionStore
	profiles *mocks.MemoryProfileSource
	notifier *mocks.RecordingNotifier
	registry *session.Registry
	service  *AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	provider := mocks.NewMockIdentityProvider()
	sessions := mocks.NewMemorySessionStore()
	profiles := mocks.NewMemoryProfileSource()
	notifier := mocks.NewRecordingNotifier()
	registry := session.NewRegistry()
	resolver := session.NewResolver(session.ResolverOptions{
		Profiles: profiles,
		Notifier: notifier,
	})

	return &authFixture{
		provider: provider,
		sessions: sessions,
		profiles: profiles,
		notifier: notifier,
		registry: registry,
		service: NewAuthService(AuthServiceOptions{
			Provider: provider,
			Sessions: sessions,
			Registry: registry,
			Resolver: resolver,
		}),
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	f := newAuthFixture(t)
	f.profiles.Put("subject-1", "Sarah Johnson", "doctor")

	res, err := f.service.Login(context.Background(), "doctor@example.com", "secret")
	require.NoError(t, err)

	assert.NotEmpty(t, res.Session.ID)
	assert.Equal(t, "subject-1", res.Session.Subject)
	assert.Equal(t, "Sarah Johnson", res.Session.DisplayName)
	assert.Equal(t, domainauth.RoleDoctor, res.Session.Role)
	assert.Equal(t, 1, f.sessions.Len())

	// The tracker holds the committed state for guards.
	state := f.service.StateFor(context.Background(), res.Session.ID)
	require.True(t, state.Authenticated())
	assert.False(t, state.Loading)
	assert.Equal(t, domainauth.RoleDoctor, state.Principal.Role)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	f := newAuthFixture(t)
	f.profiles.Put("subject-1", "Sarah Johnson", "doctor")

	_, err := f.service.Login(context.Background(), "doctor@example.com", "wrong")
	assert.ErrorIs(t, err, ports.ErrInvalidCredentials)
	assert.Equal(t, 0, f.sessions.Len())

	_, err = f.service.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, ports.ErrInvalidCredentials)
}

func TestAuthService_Login_MissingProfileFailsClosed(t *testing.T) {
	f := newAuthFixture(t)
	// Provider accepts the credentials but no profile row exists.

	_, err := f.service.Login(context.Background(), "doctor@example.com", "secret")
	assert.ErrorIs(t, err, ErrProfileUnresolved)
	assert.Equal(t, 0, f.sessions.Len(), "no session may be issued without a resolved profile")
	assert.Equal(t, []string{"subject-1"}, f.provider.SignOuts, "provider credential is revoked best-effort")
}

func TestAuthService_Login_SessionSaveFailure(t *testing.T) {
	f := newAuthFixture(t)
	f.profiles.Put("subject-1", "Sarah Johnson", "doctor")
	f.sessions.SaveErr = errors.New("redis down")

	_, err := f.service.Login(context.Background(), "doctor@example.com", "secret")
	assert.Error(t, err)
}

func TestAuthService_Logout_ClearsEvenWhenProviderFails(t *testing.T) {
	f := newAuthFixture(t)
	f.profiles.Put("subject-1", "Sarah Johnson", "doctor")

	res, err := f.service.Login(context.Background(), "doctor@example.com", "secret")
	require.NoError(t, err)

	f.provider.SignOutFunc = func(context.Context, string) error {
		return errors.New("issuer unreachable")
	}

	require.NoError(t, f.service.Logout(context.Background(), res.Session.ID))
	assert.Equal(t, 0, f.sessions.Len())

	state := f.service.StateFor(context.Background(), res.Session.ID)
	assert.False(t, state.Authenticated())
}

func TestAuthService_Logout_SignsOutProviderWhenDeleteFails(t *testing.T) {
	f := newAuthFixture(t)
	f.profiles.Put("subject-1", "Sarah Johnson", "doctor")

	res, err := f.service.Login(context.Background(), "doctor@example.com", "secret")
	require.NoError(t, err)

	f.sessions.DeleteErr = errors.New("redis unavailable")

	err = f.service.Logout(context.Background(), res.Session.ID)
	require.Error(t, err)

	// the provider credential is revoked even though the store failed
	assert.Equal(t, []string{"subject-1"}, f.provider.SignOuts)
}

func TestAuthService_Logout_EmptySessionID(t *testing.T) {
	f := newAuthFixture(t)
	assert.NoError(t, f.service.Logout(context.Background(), ""))
}

func TestAuthService_Refresh_PicksUpRoleChange(t *testing.T) {
	f := newAuthFixture(t)
	f.profiles.Put("subject-1", "Sarah Johnson", "doctor")

	res, err := f.service.Login(context.Background(), "doctor@example.com", "secret")
	require.NoError(t, err)

	// Role changed in the profiles table after login.
	f.profiles.Put("subject-1", "Sarah Johnson", "admin")

	refreshed, err := f.service.Refresh(context.Background(), res.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleAdmin, refreshed.Role)

	stored, err := f.sessions.Get(context.Background(), res.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleAdmin, stored.Role)
}

func TestAuthService_Refresh_UnresolvedProfileSignsOut(t *testing.T) {
	f := newAuthFixture(t)
	f.profiles.Put("subject-1", "Sarah Johnson", "doctor")

	res, err := f.service.Login(context.Background(), "doctor@example.com", "secret")
	require.NoError(t, err)

	f.profiles.Err = errors.New("profiles table unavailable")

	_, err = f.service.Refresh(context.Background(), res.Session.ID)
	assert.ErrorIs(t, err, ErrProfileUnresolved)
	assert.Equal(t, 0, f.sessions.Len())
	assert.NotEmpty(t, f.notifier.For(res.Session.ID), "user gets a profile-load notice")
}

func TestAuthService_GetSession_Expired(t *testing.T) {
	f := newAuthFixture(t)

	sess := domainauth.Session{
		ID:        "expired-session",
		Subject:   "subject-1",
		Role:      domainauth.RoleNurse,
		ExpiresAt: time.Now().Add(time.Minute),
	}
	require.NoError(t, f.sessions.Save(context.Background(), sess))

	// Expire it in place.
	sess.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, f.sessions.Save(context.Background(), sess))

	_, err := f.service.GetSession(context.Background(), "expired-session")
	assert.Error(t, err)
	assert.Equal(t, 0, f.sessions.Len())
}

func TestAuthService_StateFor_UnknownSession(t *testing.T) {
	f := newAuthFixture(t)
	state := f.service.StateFor(context.Background(), "no-such-session")
	assert.False(t, state.Authenticated())
	assert.False(t, state.Loading)
}
