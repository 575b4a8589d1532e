package httpserver

import "time"

const (
	APIPrefix = "/api/v1"

	EnvironmentProduction = "production"

	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
)
