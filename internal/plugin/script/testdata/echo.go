package main

import "strings"

func Name() string       { return "Echo" }
func Version() string    { return "0.1.0" }
func Commands() []string { return []string{"echo"} }

func HandleCommand(message string) map[string]any {
	lower := strings.ToLower(message)
	if !strings.HasPrefix(lower, "echo ") {
		return nil
	}
	return map[string]any{
		"type":     "plugin_response",
		"plugin":   "Echo",
		"response": strings.TrimSpace(message[len("echo "):]),
	}
}
