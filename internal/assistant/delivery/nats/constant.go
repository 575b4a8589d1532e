package nats

import "time"

const (
	LogPrefixConnect = "internal.assistant.delivery.nats.Connect"
	LogPrefixHandle  = "internal.assistant.delivery.nats.handleChat"

	DefaultSubject = "zitta.chat"
	DefaultTimeout = 30 * time.Second

	reconnectWait = 2 * time.Second
)
