// Package builtin holds the plugins compiled into the binary.
package builtin

import "zitta/internal/plugin"

const (
	KeyGreeting = "greeting"
	KeyClock    = "clock"
)

// Factories returns the compiled-in plugin table keyed by registry key.
func Factories() map[string]plugin.Factory {
	return map[string]plugin.Factory{
		KeyGreeting: func() plugin.Plugin { return NewGreeting() },
		KeyClock:    func() plugin.Plugin { return NewClock() },
	}
}
