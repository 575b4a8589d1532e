package http

import (
	"context"

	"zitta/internal/plugin"
	"zitta/pkg/log"
)

// Registry is the part of plugin.Manager exposed over HTTP.
type Registry interface {
	List() []plugin.Info
	LoadPlugin(ctx context.Context, key string) error
	UnloadPlugin(ctx context.Context, key string) error
	SetEnabled(key string, enabled bool) error
}

var _ Registry = (*plugin.Manager)(nil)

type handler struct {
	l        log.Logger
	registry Registry
}

func New(l log.Logger, registry Registry) *handler {
	return &handler{l: l, registry: registry}
}
