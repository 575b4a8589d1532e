package main

import "time"

func Name() string       { return "Slow" }
func Version() string    { return "0.0.1" }
func Commands() []string { return nil }

func HandleCommand(message string) map[string]any {
	time.Sleep(500 * time.Millisecond)
	return map[string]any{"response": message}
}
