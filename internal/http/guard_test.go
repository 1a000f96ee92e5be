package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/medflow/medflow/internal/domain/auth"
	"github.com/medflow/medflow/internal/ports"
)

// fakeStateProvider serves a fixed state and session per session id.
type fakeStateProvider struct {
	states   map[string]domainauth.State
	sessions map[string]*domainauth.Session
}

func (f *fakeStateProvider) StateFor(_ context.Context, sessionID string) domainauth.State {
	return f.states[sessionID]
}

func (f *fakeStateProvider) GetSession(_ context.Context, sessionID string) (*domainauth.Session, error) {
	if s, ok := f.sessions[sessionID]; ok {
		return s, nil
	}
	return nil, ports.ErrSessionNotFound
}

func newFakeProvider() *fakeStateProvider {
	return &fakeStateProvider{
		states:   make(map[string]domainauth.State),
		sessions: make(map[string]*domainauth.Session),
	}
}

func (f *fakeStateProvider) addSession(id string, role domainauth.Role) {
	session := &domainauth.Session{
		ID:          id,
		Subject:     "subject-" + id,
		DisplayName: "Sarah Johnson",
		Role:        role,
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	f.sessions[id] = session
	f.states[id] = session.State()
}

func apiRequest(sessionID string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/api/medical-records", nil)
	r.Header.Set("Accept", "application/json")
	if sessionID != "" {
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionID})
	}
	return r
}

func browserRequest(path, sessionID string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, path, nil)
	r.Header.Set("Accept", "text/html,application/xhtml+xml")
	if sessionID != "" {
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionID})
	}
	return r
}

func TestGuard_AllowPassesSessionToHandler(t *testing.T) {
	provider := newFakeProvider()
	provider.addSession("s1", domainauth.RoleDoctor)

	var seen *domainauth.Session
	handler := Guard(provider, domainauth.NewPolicy(domainauth.RoleDoctor))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = GetSessionFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, apiRequest("s1"))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "Sarah Johnson", seen.DisplayName)
}

func TestGuard_UnauthenticatedAPI(t *testing.T) {
	provider := newFakeProvider()
	handler := guardHandler(provider, domainauth.NewPolicy(domainauth.RoleDoctor))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, apiRequest(""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "authentication_required")
}

func TestGuard_UnauthenticatedBrowserRedirectsToLogin(t *testing.T) {
	provider := newFakeProvider()
	handler := guardHandler(provider, domainauth.NewPolicy(domainauth.RoleDoctor))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, browserRequest("/medical-records", ""))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestGuard_WrongRoleAPI(t *testing.T) {
	provider := newFakeProvider()
	provider.addSession("s1", domainauth.RolePatient)
	handler := guardHandler(provider, domainauth.NewPolicy(
		domainauth.RoleAdmin, domainauth.RoleDoctor, domainauth.RoleNurse))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, apiRequest("s1"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "insufficient_permissions")
}

func TestGuard_WrongRoleBrowserRedirectsToDashboard(t *testing.T) {
	provider := newFakeProvider()
	provider.addSession("s1", domainauth.RolePatient)
	handler := guardHandler(provider, domainauth.NewPolicy(domainauth.RoleAdmin))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, browserRequest("/staff", "s1"))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestGuard_PendingAPI(t *testing.T) {
	provider := newFakeProvider()
	provider.states["s1"] = domainauth.State{Loading: true}
	handler := guardHandler(provider, domainauth.NewPolicy(domainauth.RoleDoctor))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, apiRequest("s1"))

	// Pending is never a terminal answer: retry, don't redirect.
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "session_resolving")
}

func TestGuard_PendingBrowserInterstitial(t *testing.T) {
	provider := newFakeProvider()
	provider.states["s1"] = domainauth.State{Loading: true}
	handler := guardHandler(provider, domainauth.NewPolicy(domainauth.RoleDoctor))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, browserRequest("/medical-records", "s1"))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Empty(t, rec.Header().Get("Location"), "pending must not redirect")
	assert.Contains(t, rec.Body.String(), "http-equiv=\"refresh\"")
}

func TestGuard_UnknownRoleDeniedEverywhere(t *testing.T) {
	provider := newFakeProvider()
	principal := &domainauth.Principal{ID: "subject-s1", Role: domainauth.RoleUnknown}
	provider.states["s1"] = domainauth.State{Principal: principal}

	handler := guardHandler(provider, domainauth.NewPolicy(
		domainauth.RoleAdmin, domainauth.RoleDoctor, domainauth.RoleNurse,
		domainauth.RoleReceptionist, domainauth.RolePatient))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, apiRequest("s1"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGuard_EmptyPolicyDenies(t *testing.T) {
	provider := newFakeProvider()
	provider.addSession("s1", domainauth.RoleAdmin)
	handler := guardHandler(provider, domainauth.Policy{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, apiRequest("s1"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGuard_SessionGoneBetweenEvaluateAndFetch(t *testing.T) {
	provider := newFakeProvider()
	principal := &domainauth.Principal{ID: "subject-s1", Role: domainauth.RoleDoctor}
	provider.states["s1"] = domainauth.State{Principal: principal}
	// No session record behind the state.

	handler := guardHandler(provider, domainauth.NewPolicy(domainauth.RoleDoctor))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, apiRequest("s1"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func guardHandler(provider StateProvider, policy domainauth.Policy) http.Handler {
	return Guard(provider, policy)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}
