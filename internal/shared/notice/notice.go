package notice

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"garden-members-backend/pkg/cache"
)

// CookieName is the cookie that carries the per-client notice token.
const CookieName = "notice_token"

// Queue holds one-shot notices ("member registered", "member deleted")
// between a write request and the next rendered listing. Notices are
// keyed by a per-client token, TTL-bounded, and consumed on read.
type Queue struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewQueue(c cache.Cache, ttl time.Duration) *Queue {
	return &Queue{cache: c, ttl: ttl}
}

func key(token string) string {
	return fmt.Sprintf("notices:%s", token)
}

// Push appends a notice for the given client token. Notices are
// best-effort: failures are logged, never surfaced to the caller.
func (q *Queue) Push(ctx context.Context, token, message string) {
	if token == "" {
		return
	}

	var notices []string
	if _, err := q.cache.Get(ctx, key(token), &notices); err != nil {
		log.Warn().Err(err).Msg("failed to read notice queue")
		return
	}

	notices = append(notices, message)
	if err := q.cache.Set(ctx, key(token), notices, q.ttl); err != nil {
		log.Warn().Err(err).Msg("failed to push notice")
	}
}

// Consume returns the pending notices for the token and clears them,
// so each notice is rendered exactly once.
func (q *Queue) Consume(ctx context.Context, token string) []string {
	if token == "" {
		return nil
	}

	var notices []string
	found, err := q.cache.Get(ctx, key(token), &notices)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read notice queue")
		return nil
	}
	if !found {
		return nil
	}

	if err := q.cache.Delete(ctx, key(token)); err != nil {
		log.Warn().Err(err).Msg("failed to clear notice queue")
	}
	return notices
}
