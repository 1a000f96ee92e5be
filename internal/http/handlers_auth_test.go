package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/medflow/medflow/internal/mocks/auth"
	"github.com/medflow/medflow/internal/service"
	"github.com/medflow/medflow/internal/session"
)

type authRouterFixture struct {
	router   http.Handler
	provider *mocks.MockIdentityProvider
	profiles *mocks.MemoryProfileSource
	sessions *mocks.MemorySessionStore
	notifier *mocks.RecordingNotifier
}

func newAuthRouter(t *testing.T) *authRouterFixture {
	t.Helper()

	provider := mocks.NewMockIdentityProvider()
	sessions := mocks.NewMemorySessionStore()
	profiles := mocks.NewMemoryProfileSource()
	notifier := mocks.NewRecordingNotifier()
	registry := session.NewRegistry()
	resolver := session.NewResolver(session.ResolverOptions{Profiles: profiles, Notifier: notifier})

	authSvc := service.NewAuthService(service.AuthServiceOptions{
		Provider: provider,
		Sessions: sessions,
		Registry: registry,
		Resolver: resolver,
	})

	router := NewRouter(RouterServices{
		Auth:    authSvc,
		Notices: notifier,
	})

	return &authRouterFixture{
		router:   router,
		provider: provider,
		profiles: profiles,
		sessions: sessions,
		notifier: notifier,
	}
}

func (f *authRouterFixture) login(t *testing.T, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	body := strings.NewReader(`{"email":"` + email + `","password":"` + password + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	return nil
}

func TestAuthRoutes_LoginSuccess(t *testing.T) {
	f := newAuthRouter(t)
	f.profiles.Put("subject-1", "Sarah Johnson", "doctor")

	rec := f.login(t, "doctor@example.com", "secret")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie, "login must set the session cookie")
	assert.True(t, cookie.HttpOnly)
	assert.Positive(t, cookie.MaxAge)

	var resp struct {
		User struct {
			DisplayName string `json:"display_name"`
			Role        string `json:"role"`
		} `json:"user"`
		RedirectTo string `json:"redirect_to"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Sarah Johnson", resp.User.DisplayName)
	assert.Equal(t, "DOCTOR", resp.User.Role)
	assert.Equal(t, "/dashboard", resp.RedirectTo)
}

func TestAuthRoutes_LoginInvalidCredentials(t *testing.T) {
	f := newAuthRouter(t)
	f.profiles.Put("subject-1", "Sarah Johnson", "doctor")

	rec := f.login(t, "doctor@example.com", "wrong")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_credentials")
	assert.Nil(t, sessionCookie(rec))
}

func TestAuthRoutes_LoginUnresolvedProfile(t *testing.T) {
	f := newAuthRouter(t)
	// Provider accepts the credentials but no profile row exists.

	rec := f.login(t, "doctor@example.com", "secret")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "profile_unresolved")
	assert.Nil(t, sessionCookie(rec))
	assert.Equal(t, 0, f.sessions.Len())
}

func TestAuthRoutes_MeRequiresSession(t *testing.T) {
	f := newAuthRouter(t)
	f.profiles.Put("subject-1", "Sarah Johnson", "doctor")

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	loginRec := f.login(t, "doctor@example.com", "secret")
	cookie := sessionCookie(loginRec)
	require.NotNil(t, cookie)

	req = httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sarah Johnson")
}

func TestAuthRoutes_LogoutClearsSession(t *testing.T) {
	f := newAuthRouter(t)
	f.profiles.Put("subject-1", "Sarah Johnson", "doctor")

	loginRec := f.login(t, "doctor@example.com", "secret")
	cookie := sessionCookie(loginRec)
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cleared := sessionCookie(rec)
	require.NotNil(t, cleared)
	assert.Negative(t, cleared.MaxAge)
	assert.Equal(t, 0, f.sessions.Len())

	// The old cookie no longer opens any door.
	req = httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRoutes_RefreshPicksUpRoleChange(t *testing.T) {
	f := newAuthRouter(t)
	f.profiles.Put("subject-1", "Sarah Johnson", "doctor")

	loginRec := f.login(t, "doctor@example.com", "secret")
	cookie := sessionCookie(loginRec)
	require.NotNil(t, cookie)

	f.profiles.Put("subject-1", "Sarah Johnson", "admin")

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"ADMIN"`)
}
