package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/medflow/medflow/internal/domain/auth"
	"github.com/medflow/medflow/internal/ports"
)

// fakeProfileSource serves canned rows and can block per-call to exercise
// completion ordering.
type fakeProfileSource struct {
	mu      sync.Mutex
	rows    map[string][2]string // subject -> {fullName, role}
	err     error
	release map[string]chan struct{} // subject -> gate; lookup blocks until closed
	started map[string]chan struct{} // subject -> closed once the gated lookup is entered
}

func (f *fakeProfileSource) GetProfile(_ context.Context, id string) (string, string, error) {
	f.mu.Lock()
	gate := f.release[id]
	started := f.started[id]
	f.mu.Unlock()
	if started != nil {
		close(started)
	}
	if gate != nil {
		<-gate
	}
	if f.err != nil {
		return "", "", f.err
	}
	row, ok := f.rows[id]
	if !ok {
		return "", "", ports.ErrProfileNotFound
	}
	return row[0], row[1], nil
}

// recordingNotifier captures notices for assertions.
type recordingNotifier struct {
	mu      sync.Mutex
	notices []ports.Notice
}

func (n *recordingNotifier) Notify(_ context.Context, _ string, notice ports.Notice) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.notices)
}

func newTestResolver(profiles ports.ProfileSource, notifier ports.Notifier) *Resolver {
	return NewResolver(ResolverOptions{Profiles: profiles, Notifier: notifier})
}

func identity(subject string) *domainauth.Identity {
	return &domainauth.Identity{
		Subject:   subject,
		Email:     subject + "@medcenter.com",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestResolver_ResolvesPrincipalFromProfile(t *testing.T) {
	profiles := &fakeProfileSource{rows: map[string][2]string{
		"u1": {"Sarah Johnson", "doctor"},
	}}
	r := newTestResolver(profiles, nil)
	tr := NewTracker()

	state, applied := r.Resolve(context.Background(), tr, "s1", identity("u1"))

	require.True(t, applied)
	require.NotNil(t, state.Principal)
	assert.Equal(t, "Sarah Johnson", state.Principal.DisplayName)
	assert.Equal(t, domainauth.RoleDoctor, state.Principal.Role)
	assert.Equal(t, "u1@medcenter.com", state.Principal.Email)
	assert.False(t, state.Loading)
	assert.Equal(t, state, tr.Snapshot())
}

func TestResolver_NilIdentityClearsSession(t *testing.T) {
	r := newTestResolver(&fakeProfileSource{}, nil)
	tr := NewTracker()
	gen := tr.Begin()
	tr.Commit(gen, doctorState())

	state, applied := r.Resolve(context.Background(), tr, "s1", nil)

	require.True(t, applied)
	assert.Nil(t, state.Principal)
	assert.False(t, state.Loading)
}

func TestResolver_MissingProfileFailsClosed(t *testing.T) {
	notifier := &recordingNotifier{}
	r := newTestResolver(&fakeProfileSource{rows: map[string][2]string{}}, notifier)
	tr := NewTracker()

	state, applied := r.Resolve(context.Background(), tr, "s1", identity("ghost"))

	require.True(t, applied)
	assert.Nil(t, state.Principal, "unresolved profile must never grant access")
	assert.False(t, state.Loading)
	assert.Equal(t, 1, notifier.count(), "exactly one error notice")
}

func TestResolver_FetchErrorFailsClosed(t *testing.T) {
	notifier := &recordingNotifier{}
	r := newTestResolver(&fakeProfileSource{err: errors.New("connection refused")}, notifier)
	tr := NewTracker()

	state, _ := r.Resolve(context.Background(), tr, "s1", identity("u1"))

	assert.Nil(t, state.Principal)
	assert.Equal(t, 1, notifier.count())
}

func TestResolver_UnknownRoleResolvesButDeniesEverywhere(t *testing.T) {
	profiles := &fakeProfileSource{rows: map[string][2]string{
		"u2": {"Pat Example", "surgeon"},
	}}
	r := newTestResolver(profiles, nil)
	tr := NewTracker()

	state, _ := r.Resolve(context.Background(), tr, "s1", identity("u2"))

	require.NotNil(t, state.Principal)
	assert.Equal(t, domainauth.RoleUnknown, state.Principal.Role)
	allRoles := domainauth.NewPolicy(
		domainauth.RoleAdmin, domainauth.RoleDoctor, domainauth.RoleNurse,
		domainauth.RoleReceptionist, domainauth.RolePatient,
	)
	assert.Equal(t, domainauth.DecisionDeny, domainauth.Evaluate(state, allRoles))
}

func TestResolver_StaleCompletionDoesNotWin(t *testing.T) {
	gate := make(chan struct{})
	started := make(chan struct{})
	profiles := &fakeProfileSource{
		rows: map[string][2]string{
			"old": {"Old User", "patient"},
			"new": {"New User", "admin"},
		},
		release: map[string]chan struct{}{"old": gate},
		started: map[string]chan struct{}{"old": started},
	}
	r := newTestResolver(profiles, nil)
	tr := NewTracker()

	// Older event starts first and stalls in the profile fetch.
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, applied := r.Resolve(context.Background(), tr, "s1", identity("old"))
		assert.False(t, applied, "superseded resolution must be discarded")
	}()

	// Wait for the older attempt to take its generation and reach the gated
	// profile lookup.
	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("older attempt never reached the profile lookup")
	}

	// Newer event resolves while the older one is still in flight.
	state, applied := r.Resolve(context.Background(), tr, "s1", identity("new"))
	require.True(t, applied)
	require.NotNil(t, state.Principal)

	// Release the stalled older attempt; it runs to completion but loses.
	close(gate)
	<-done

	snap := tr.Snapshot()
	require.NotNil(t, snap.Principal)
	assert.Equal(t, "New User", snap.Principal.DisplayName)
	assert.Equal(t, domainauth.RoleAdmin, snap.Principal.Role)
}
