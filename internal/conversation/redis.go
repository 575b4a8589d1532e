package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"zitta/pkg/log"
)

// RedisStore keeps each history as a capped Redis list that expires after ttl.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	limit  int
	l      log.Logger
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore connects to redisURL and verifies the connection.
func NewRedisStore(ctx context.Context, redisURL string, ttl time.Duration, limit int, l log.Logger) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, redisDialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	return newRedisStore(client, ttl, limit, l), nil
}

func newRedisStore(client *redis.Client, ttl time.Duration, limit int, l log.Logger) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &RedisStore{client: client, ttl: ttl, limit: limit, l: l}
}

func (s *RedisStore) key(sessionID string) string {
	return redisKeyPrefix + sessionID
}

func (s *RedisStore) History(ctx context.Context, sessionID string) ([]Message, error) {
	if sessionID == "" {
		return nil, ErrEmptySession
	}

	raw, err := s.client.LRange(ctx, s.key(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: lrange: %w", LogPrefixRedis, err)
	}

	msgs := make([]Message, 0, len(raw))
	for _, item := range raw {
		var m Message
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			s.l.Warnf(ctx, "%s: skip corrupt entry in %s: %v", LogPrefixRedis, sessionID, err)
			continue
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

// Append pushes msgs, trims the list to the newest entries and refreshes the TTL
// in one transaction.
func (s *RedisStore) Append(ctx context.Context, sessionID string, msgs ...Message) error {
	if sessionID == "" {
		return ErrEmptySession
	}
	if len(msgs) == 0 {
		return nil
	}

	values := make([]any, 0, len(msgs))
	for _, m := range msgs {
		data, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("%s: marshal: %w", LogPrefixRedis, err)
		}
		values = append(values, data)
	}

	key := s.key(sessionID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, values...)
		pipe.LTrim(ctx, key, int64(-s.limit), -1)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: append: %w", LogPrefixRedis, err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("%s: del: %w", LogPrefixRedis, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
