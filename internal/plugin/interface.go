package plugin

import (
	"context"

	"zitta/internal/intent"
)

// Plugin is a command handler consulted before built-in routing.
type Plugin interface {
	Name() string
	Version() string
	OnLoad(ctx context.Context) error
	OnUnload(ctx context.Context) error
	// HandleCommand returns a nil Result when the message is not for this plugin.
	HandleCommand(ctx context.Context, message string, pc Context) (Result, error)
	Commands() []string
}

// Context is what a plugin may know about the caller.
type Context struct {
	SessionID        string
	CurrentDirectory string
}

// Factory builds a compiled-in plugin.
type Factory func() Plugin

// Loader turns a plugin source file into a Plugin.
type Loader interface {
	Ext() string
	Load(ctx context.Context, path string) (Plugin, error)
}

// Info describes a registered plugin.
type Info struct {
	Key      string   `json:"key"`
	Name     string   `json:"name"`
	Version  string   `json:"version"`
	Enabled  bool     `json:"enabled"`
	Origin   string   `json:"origin"`
	Commands []string `json:"commands"`
}

// Dispatcher is the part of Manager the engine depends on.
type Dispatcher interface {
	HandleCommand(ctx context.Context, message string, pc Context) (intent.Intent, bool)
}
