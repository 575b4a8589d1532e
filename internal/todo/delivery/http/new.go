package http

import (
	"zitta/internal/todo"
	"zitta/pkg/log"
)

type handler struct {
	l  log.Logger
	uc todo.UseCase
}

// New creates the HTTP handler for the todo store.
func New(l log.Logger, uc todo.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
