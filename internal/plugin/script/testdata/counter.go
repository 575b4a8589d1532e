package main

import (
	"errors"
	"strconv"
)

var calls int

func Name() string       { return "Counter" }
func Version() string    { return "2.0.0" }
func Commands() []string { return []string{"count"} }

func OnLoad() error { calls = 0; return nil }

func OnUnload() error {
	if calls > 2 {
		return errors.New("busy")
	}
	return nil
}

func HandleCommand(message string) map[string]any {
	if message != "count" {
		return nil
	}
	calls++
	return map[string]any{
		"action": "count",
		"calls":  strconv.Itoa(calls),
	}
}
