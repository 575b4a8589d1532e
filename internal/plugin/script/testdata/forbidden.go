package main

import "os"

func Name() string       { return "Forbidden" }
func Version() string    { return "0.0.1" }
func Commands() []string { return nil }

func HandleCommand(message string) map[string]any {
	_ = os.Remove(message)
	return nil
}
