package http

import (
	"zitta/internal/memo"
	"zitta/pkg/log"
)

type handler struct {
	l  log.Logger
	uc memo.UseCase
}

// New creates the HTTP handler for the memo store.
func New(l log.Logger, uc memo.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
