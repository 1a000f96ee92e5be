package httpx

import (
	"context"
	"errors"
	"io"
	"net/http"

	domainauth "github.com/medflow/medflow/internal/domain/auth"
)

// StateProvider yields the current access-control snapshot for a session.
// In-flight profile resolutions surface as a Loading state.
type StateProvider interface {
	StateFor(ctx context.Context, sessionID string) domainauth.State
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
}

// SessionCookieName is the cookie carrying the session id.
const SessionCookieName = "session_id"

// pendingInterstitial is served to browsers while the session state is still
// resolving. It retries the same URL; no terminal decision is made.
const pendingInterstitial = `<!doctype html>
<html><head><meta charset="utf-8"><meta http-equiv="refresh" content="1">
<title>Loading</title></head>
<body><p>Checking your session&hellip;</p></body></html>`

// Guard returns middleware enforcing the given role policy on a route subtree.
// The decision tree is total:
//
//   - Pending (resolution in flight): 503 + Retry-After for API clients; an
//     auto-retrying interstitial for browsers. Never a redirect, never a
//     terminal answer.
//   - Deny, unauthenticated: 401 for API clients, redirect to /login for
//     browsers.
//   - Deny, authenticated but wrong role: 403 for API clients, redirect to
//     /dashboard for browsers.
//   - Allow: the session lands in the request context and the chain continues.
//
// Guards compose outer-to-inner; the first non-Allow wins because the handler
// chain simply stops.
func Guard(provider StateProvider, policy domainauth.Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := sessionIDFromRequest(r)
			state := domainauth.State{}
			if sessionID != "" {
				state = provider.StateFor(r.Context(), sessionID)
			}

			switch domainauth.Evaluate(state, policy) {
			case domainauth.DecisionPending:
				writePending(w, r)
			case domainauth.DecisionDeny:
				writeDenied(w, r, state)
			case domainauth.DecisionAllow:
				session, err := provider.GetSession(r.Context(), sessionID)
				if err != nil {
					// The session vanished between evaluation and fetch.
					writeDenied(w, r, domainauth.State{})
					return
				}
				ctx := SetSessionInContext(r.Context(), session)
				next.ServeHTTP(w, r.WithContext(ctx))
			}
		})
	}
}

func sessionIDFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func writePending(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Retry-After", "1")
	if IsBrowserRequest(r) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, pendingInterstitial)
		return
	}
	WriteError(w, ErrorParams{
		Code:    http.StatusServiceUnavailable,
		ErrCode: "session_resolving",
		Err:     errors.New("session state is still resolving, retry shortly"),
	})
}

func writeDenied(w http.ResponseWriter, r *http.Request, state domainauth.State) {
	if state.Authenticated() {
		if IsBrowserRequest(r) {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
			return
		}
		WriteError(w, ErrorParams{
			Code:    http.StatusForbidden,
			ErrCode: "insufficient_permissions",
			Err:     errors.New("insufficient permissions"),
		})
		return
	}

	if IsBrowserRequest(r) {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	WriteError(w, ErrorParams{
		Code:    http.StatusUnauthorized,
		ErrCode: "authentication_required",
		Err:     errors.New("authentication required"),
	})
}
