package conversation

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"zitta/pkg/log"
)

// Set ZITTA_TEST_REDIS_URL (e.g. redis://localhost:6379/15) to run against a live server.
func newLiveRedis(t *testing.T, limit int) *RedisStore {
	t.Helper()
	url := os.Getenv("ZITTA_TEST_REDIS_URL")
	if url == "" {
		t.Skip("ZITTA_TEST_REDIS_URL not set")
	}
	s, err := NewRedisStore(context.Background(), url, time.Minute, limit, log.NewNop())
	if err != nil {
		t.Fatalf("NewRedisStore() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRedisStore_Key(t *testing.T) {
	s := &RedisStore{}
	if got := s.key("abc"); got != "zitta:conversation:abc" {
		t.Errorf("key() = %q", got)
	}
}

func TestRedisStore_Live(t *testing.T) {
	ctx := context.Background()
	s := newLiveRedis(t, 3)
	session := uuid.NewString()
	t.Cleanup(func() { _ = s.Clear(ctx, session) })

	for _, text := range []string{"a", "b", "c", "d"} {
		if err := s.Append(ctx, session, UserMessage(text)); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	got, err := s.History(ctx, session)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(got) != 3 || got[0].Text != "b" || got[2].Text != "d" {
		t.Errorf("unexpected history %+v", got)
	}

	ttl, err := s.client.TTL(ctx, s.key(session)).Result()
	if err != nil || ttl <= 0 {
		t.Errorf("expected ttl on key, got %v %v", ttl, err)
	}

	if err := s.Clear(ctx, session); err != nil {
		t.Fatal(err)
	}
	if got, _ := s.History(ctx, session); len(got) != 0 {
		t.Errorf("expected empty history after Clear")
	}
}
