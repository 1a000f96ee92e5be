package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/medflow/medflow/internal/domain/auth"
)

func doctorState() domainauth.State {
	p := domainauth.Principal{ID: "u1", DisplayName: "Sarah Johnson", Role: domainauth.RoleDoctor}
	return domainauth.State{Principal: &p}
}

func TestTracker_InitialStateIsLoading(t *testing.T) {
	tr := NewTracker()
	state := tr.Snapshot()
	assert.True(t, state.Loading)
	assert.False(t, state.Authenticated())
}

func TestTracker_BeginMarksLoading(t *testing.T) {
	tr := NewTracker()
	gen := tr.Begin()
	require.True(t, tr.Commit(gen, doctorState()))
	assert.False(t, tr.Snapshot().Loading)

	tr.Begin()
	snap := tr.Snapshot()
	assert.True(t, snap.Loading)
	// Existing principal stays visible during a re-resolution.
	require.NotNil(t, snap.Principal)
	assert.Equal(t, domainauth.RoleDoctor, snap.Principal.Role)
}

func TestTracker_StaleCommitDiscarded(t *testing.T) {
	tr := NewTracker()
	older := tr.Begin()
	newer := tr.Begin()

	// The newer attempt completes first.
	require.True(t, tr.Commit(newer, doctorState()))

	// The older attempt finishes afterwards and must not win.
	assert.False(t, tr.Commit(older, domainauth.State{}))

	snap := tr.Snapshot()
	require.NotNil(t, snap.Principal)
	assert.Equal(t, "u1", snap.Principal.ID)
}

func TestTracker_CommitOncePerGeneration(t *testing.T) {
	tr := NewTracker()
	gen := tr.Begin()
	require.True(t, tr.Commit(gen, doctorState()))
	// A later Begin invalidates the old generation entirely.
	tr.Begin()
	assert.False(t, tr.Commit(gen, domainauth.State{}))
}

func TestTracker_ClearInvalidatesInFlight(t *testing.T) {
	tr := NewTracker()
	gen := tr.Begin()
	tr.Clear()

	assert.False(t, tr.Commit(gen, doctorState()), "resolution in flight at logout must be discarded")
	snap := tr.Snapshot()
	assert.False(t, snap.Loading)
	assert.Nil(t, snap.Principal)
}

func TestTracker_SubscribeObservesTransitions(t *testing.T) {
	tr := NewTracker()
	ch, cancel := tr.Subscribe()
	defer cancel()

	// Initial state is delivered on subscribe.
	first := <-ch
	assert.True(t, first.Loading)

	gen := tr.Begin()
	tr.Commit(gen, doctorState())

	var last domainauth.State
	for len(ch) > 0 {
		last = <-ch
	}
	require.NotNil(t, last.Principal)
	assert.Equal(t, domainauth.RoleDoctor, last.Principal.Role)
}

func TestTracker_CancelStopsDelivery(t *testing.T) {
	tr := NewTracker()
	ch, cancel := tr.Subscribe()
	cancel()
	cancel() // idempotent

	// commits after cancel must not reach the subscriber
	gen := tr.Begin()
	tr.Commit(gen, doctorState())

	// the initial state was buffered before the close and is still delivered
	first, open := <-ch
	assert.True(t, open)
	assert.True(t, first.Loading)

	_, open = <-ch
	assert.False(t, open)
}

func TestRegistry_GetOrCreateReturnsSameTracker(t *testing.T) {
	reg := NewRegistry()
	a := reg.GetOrCreate("s1")
	b := reg.GetOrCreate("s1")
	assert.Same(t, a, b)

	c := reg.GetOrCreate("s2")
	assert.NotSame(t, a, c)
}

func TestRegistry_RemoveClearsTracker(t *testing.T) {
	reg := NewRegistry()
	tr := reg.GetOrCreate("s1")
	gen := tr.Begin()
	tr.Commit(gen, doctorState())

	reg.Remove("s1")
	assert.Nil(t, tr.Snapshot().Principal)

	_, ok := reg.Lookup("s1")
	assert.False(t, ok)
}
