package conversation

import "time"

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"

	DefaultTTL         = 30 * time.Minute
	DefaultMaxSessions = 1000
	DefaultLimit       = 20

	redisKeyPrefix   = "zitta:conversation:"
	redisDialTimeout = 5 * time.Second

	LogPrefixRedis = "internal.conversation.RedisStore"
)
