package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/medflow/medflow/internal/ports"
)

const (
	noticeQueueMax = 20
	noticeTTL      = 24 * time.Hour
)

// NoticeStore queues user-facing notices per session in a Redis list. Notices
// accumulate while the client is away and drain on the next fetch.
type NoticeStore struct {
	client redis.UniversalClient
	prefix string
	logger *slog.Logger
}

// NewNoticeStore creates a new Redis-based notice store.
func NewNoticeStore(client redis.UniversalClient, logger *slog.Logger) *NoticeStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &NoticeStore{client: client, prefix: "notices:", logger: logger.With("component", "notice_store")}
}

// Notify implements ports.Notifier. Delivery is best-effort; failures are
// logged and swallowed. The queue is capped so an unattended session cannot
// grow without bound.
func (s *NoticeStore) Notify(ctx context.Context, sessionID string, n ports.Notice) {
	if sessionID == "" {
		return
	}

	data, err := json.Marshal(n)
	if err != nil {
		s.logger.ErrorContext(ctx, "marshal notice", "err", err)
		return
	}

	key := s.prefix + sessionID
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.LTrim(ctx, key, -noticeQueueMax, -1)
	pipe.Expire(ctx, key, noticeTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.ErrorContext(ctx, "push notice", "err", err, "session_id", sessionID)
	}
}

// Drain returns and removes all queued notices for the session, oldest first.
func (s *NoticeStore) Drain(ctx context.Context, sessionID string) ([]ports.Notice, error) {
	if sessionID == "" {
		return nil, nil
	}

	key := s.prefix + sessionID
	pipe := s.client.TxPipeline()
	itemsCmd := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("drain notices: %w", err)
	}

	items := itemsCmd.Val()
	notices := make([]ports.Notice, 0, len(items))
	for _, item := range items {
		var n ports.Notice
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			// Skip entries a newer build cannot read rather than wedge the queue.
			continue
		}
		notices = append(notices, n)
	}
	return notices, nil
}

// Discard drops any queued notices for the session, used on logout.
func (s *NoticeStore) Discard(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.client.Del(ctx, s.prefix+sessionID).Err()
}
