package session

// Package session implements the access-control session lifecycle: a tracked
// per-session state with subscribe/notify semantics, and the identity
// resolution that turns provider events into principals. Durable session
// records live in the session store adapter; everything here is a derived,
// rebuildable cache.

import (
	"sync"

	domainauth "github.com/medflow/medflow/internal/domain/auth"
)

// subscriberBuffer is the channel depth for state subscribers. Slow consumers
// miss intermediate states rather than blocking mutations.
const subscriberBuffer = 4

// Tracker holds one session's access-control state. It starts loading and is
// mutated only through Begin/Commit pairs: each resolution attempt takes a
// monotonically increasing generation, and a completion is applied only when
// its generation is still the newest issued. Stale resolutions therefore run
// to completion but never overwrite the result of a newer one
// (last-resolved-wins).
type Tracker struct {
	mu     sync.Mutex
	state  domainauth.State
	issued uint64
	subs   map[chan domainauth.State]struct{}
}

// NewTracker creates a tracker in the initial state: no principal, loading.
func NewTracker() *Tracker {
	return &Tracker{
		state: domainauth.State{Loading: true},
		subs:  make(map[chan domainauth.State]struct{}),
	}
}

// Snapshot returns the current state.
func (t *Tracker) Snapshot() domainauth.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Begin starts a resolution attempt: it marks the state loading, notifies
// subscribers, and returns the attempt's generation. The existing principal is
// kept visible while loading so identity displays do not flicker; access
// decisions are pended by the Loading flag regardless.
func (t *Tracker) Begin() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.issued++
	t.state.Loading = true
	t.notifyLocked()
	return t.issued
}

// Commit applies the completed state for the given generation. It reports
// false, leaving the tracker untouched, when a newer attempt has been issued
// since: out-of-order completions must not win.
func (t *Tracker) Commit(gen uint64, state domainauth.State) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.issued {
		return false
	}
	t.state = state
	t.notifyLocked()
	return true
}

// Clear unconditionally resets the tracker to the signed-out state,
// invalidating any in-flight resolutions. Used by logout, which must never
// leave a principal behind.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.issued++
	t.state = domainauth.State{}
	t.notifyLocked()
}

// Subscribe registers a state listener. The returned cancel func must be
// called to release the subscription.
func (t *Tracker) Subscribe() (<-chan domainauth.State, func()) {
	ch := make(chan domainauth.State, subscriberBuffer)
	t.mu.Lock()
	t.subs[ch] = struct{}{}
	ch <- t.state
	t.mu.Unlock()

	cancel := func() {
		t.mu.Lock()
		if _, ok := t.subs[ch]; ok {
			delete(t.subs, ch)
			close(ch)
		}
		t.mu.Unlock()
	}
	return ch, cancel
}

// notifyLocked fans the current state out to subscribers without blocking;
// a full subscriber simply misses the intermediate state.
func (t *Tracker) notifyLocked() {
	for ch := range t.subs {
		select {
		case ch <- t.state:
		default:
		}
	}
}

// Registry maps live session ids to their trackers so that in-flight
// re-resolutions (e.g. a role refresh) surface as Loading to route guards.
type Registry struct {
	mu       sync.Mutex
	trackers map[string]*Tracker
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{trackers: make(map[string]*Tracker)}
}

// GetOrCreate returns the tracker for the session id, creating one when absent.
func (r *Registry) GetOrCreate(sessionID string) *Tracker {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.trackers[sessionID]
	if !ok {
		t = NewTracker()
		r.trackers[sessionID] = t
	}
	return t
}

// Lookup returns the tracker for the session id if one exists.
func (r *Registry) Lookup(sessionID string) (*Tracker, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.trackers[sessionID]
	return t, ok
}

// Remove drops the tracker for the session id, clearing it first so that any
// subscribers observe the signed-out state.
func (r *Registry) Remove(sessionID string) {
	r.mu.Lock()
	t, ok := r.trackers[sessionID]
	delete(r.trackers, sessionID)
	r.mu.Unlock()
	if ok {
		t.Clear()
	}
}
