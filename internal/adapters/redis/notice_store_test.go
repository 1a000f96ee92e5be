package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medflow/medflow/internal/ports"
	"github.com/medflow/medflow/internal/testutil"
)

func TestNoticeStore_NotifyAndDrain(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()

	store := NewNoticeStore(client, nil)
	ctx := context.Background()

	store.Notify(ctx, "sess-1", ports.Notice{
		Level:   ports.NoticeError,
		Title:   "Error",
		Message: "Failed to load user profile",
	})
	store.Notify(ctx, "sess-1", ports.Notice{
		Level:   ports.NoticeInfo,
		Title:   "Welcome",
		Message: "Signed in",
	})

	notices, err := store.Drain(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, notices, 2)
	assert.Equal(t, ports.NoticeError, notices[0].Level)
	assert.Equal(t, "Failed to load user profile", notices[0].Message)
	assert.Equal(t, "Welcome", notices[1].Title)

	// Drained queue is empty on the next fetch.
	notices, err = store.Drain(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, notices)
}

func TestNoticeStore_SessionsAreIsolated(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()

	store := NewNoticeStore(client, nil)
	ctx := context.Background()

	store.Notify(ctx, "sess-a", ports.Notice{Level: ports.NoticeInfo, Message: "for a"})

	notices, err := store.Drain(ctx, "sess-b")
	require.NoError(t, err)
	assert.Empty(t, notices)

	notices, err = store.Drain(ctx, "sess-a")
	require.NoError(t, err)
	require.Len(t, notices, 1)
	assert.Equal(t, "for a", notices[0].Message)
}

func TestNoticeStore_QueueIsCapped(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()

	store := NewNoticeStore(client, nil)
	ctx := context.Background()

	for i := 0; i < noticeQueueMax+10; i++ {
		store.Notify(ctx, "sess-cap", ports.Notice{Level: ports.NoticeInfo, Message: "m"})
	}

	notices, err := store.Drain(ctx, "sess-cap")
	require.NoError(t, err)
	assert.Len(t, notices, noticeQueueMax)
}

func TestNoticeStore_Discard(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()

	store := NewNoticeStore(client, nil)
	ctx := context.Background()

	store.Notify(ctx, "sess-d", ports.Notice{Level: ports.NoticeInfo, Message: "m"})
	require.NoError(t, store.Discard(ctx, "sess-d"))

	notices, err := store.Drain(ctx, "sess-d")
	require.NoError(t, err)
	assert.Empty(t, notices)
}
