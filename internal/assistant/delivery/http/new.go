package http

import (
	"zitta/internal/assistant"
	"zitta/pkg/log"
)

type handler struct {
	l  log.Logger
	uc assistant.UseCase
}

func New(l log.Logger, uc assistant.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
