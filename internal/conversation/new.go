package conversation

import (
	"context"
	"fmt"

	"zitta/config"
	"zitta/pkg/log"
)

// New builds the store selected by cfg.Backend. limit is the number of
// messages kept per session.
func New(ctx context.Context, cfg config.ConversationConfig, limit int, l log.Logger) (Store, error) {
	switch cfg.Backend {
	case "", BackendMemory:
		return NewMemoryStore(cfg.MaxSessions, cfg.TTL, limit), nil
	case BackendRedis:
		return NewRedisStore(ctx, cfg.RedisURL, cfg.TTL, limit, l)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
