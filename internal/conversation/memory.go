package conversation

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MemoryStore keeps histories in an LRU whose entries expire after ttl.
type MemoryStore struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, []Message]
	limit    int
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(maxSessions int, ttl time.Duration, limit int) *MemoryStore {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &MemoryStore{
		sessions: expirable.NewLRU[string, []Message](maxSessions, nil, ttl),
		limit:    limit,
	}
}

func (s *MemoryStore) History(ctx context.Context, sessionID string) ([]Message, error) {
	if sessionID == "" {
		return nil, ErrEmptySession
	}
	msgs, _ := s.sessions.Get(sessionID)
	return slices.Clone(msgs), nil
}

// Append adds msgs and refreshes the session's expiry.
func (s *MemoryStore) Append(ctx context.Context, sessionID string, msgs ...Message) error {
	if sessionID == "" {
		return ErrEmptySession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history, _ := s.sessions.Get(sessionID)
	history = append(slices.Clone(history), msgs...)
	if over := len(history) - s.limit; over > 0 {
		history = history[over:]
	}
	s.sessions.Add(sessionID, history)
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	s.sessions.Remove(sessionID)
	return nil
}

func (s *MemoryStore) Close() error {
	s.sessions.Purge()
	return nil
}
