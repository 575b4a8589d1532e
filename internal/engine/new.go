package engine

import (
	"errors"

	"zitta/internal/fileexplorer"
	"zitta/internal/memo"
	"zitta/internal/plugin"
	"zitta/internal/router"
	"zitta/internal/todo"
	"zitta/pkg/log"
)

// Options are the engine's collaborators. Plugins may be nil.
type Options struct {
	Plugins plugin.Dispatcher
	Router  router.Router
	Todos   todo.UseCase
	Memos   memo.UseCase
	Files   fileexplorer.Explorer
}

// Engine turns a message into a DispatchResult. It never calls the LLM;
// callers resolve pending results and finalize them with ProcessLLMResponse.
type Engine struct {
	plugins plugin.Dispatcher
	router  router.Router
	todos   todo.UseCase
	memos   memo.UseCase
	files   fileexplorer.Explorer
	l       log.Logger
}

func New(l log.Logger, opt Options) (*Engine, error) {
	e := &Engine{
		plugins: opt.Plugins,
		router:  opt.Router,
		todos:   opt.Todos,
		memos:   opt.Memos,
		files:   opt.Files,
		l:       l,
	}
	if err := e.validate(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) validate() error {
	switch {
	case e.l == nil:
		return errors.New("engine: logger is required")
	case e.router == nil:
		return errors.New("engine: router is required")
	case e.todos == nil:
		return errors.New("engine: todo store is required")
	case e.memos == nil:
		return errors.New("engine: memo store is required")
	case e.files == nil:
		return errors.New("engine: file explorer is required")
	}
	return nil
}
