package plugin

import "errors"

var (
	ErrPluginNotFound = errors.New("plugin not found")
	ErrAlreadyLoaded  = errors.New("plugin already loaded")
	ErrNoSource       = errors.New("no compiled-in factory or source file for plugin")
	ErrPluginPanicked = errors.New("plugin panicked")
	ErrNoPluginDir    = errors.New("plugin directory is not configured")
)
