package http

import (
	"zitta/internal/fileexplorer"
	"zitta/pkg/log"
)

type handler struct {
	l        log.Logger
	explorer fileexplorer.Explorer
}

func New(l log.Logger, explorer fileexplorer.Explorer) *handler {
	return &handler{l: l, explorer: explorer}
}
