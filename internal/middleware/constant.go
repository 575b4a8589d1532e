package middleware

import "time"

const (
	LogPrefixRateLimit = "internal.middleware.RateLimit"

	HeaderRequestID     = "X-Request-ID"
	ContextKeyRequestID = "request_id"

	limiterCacheSize = 1000
	limiterTTL       = 5 * time.Minute
)
