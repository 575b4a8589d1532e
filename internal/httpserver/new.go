package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"zitta/internal/assistant"
	"zitta/internal/fileexplorer"
	"zitta/internal/memo"
	"zitta/internal/middleware"
	pluginHTTP "zitta/internal/plugin/delivery/http"
	"zitta/internal/todo"
	"zitta/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	version     string
	mw          middleware.Middleware
	ready       func(ctx context.Context) error

	// Domains
	assistant assistant.UseCase
	todos     todo.UseCase
	memos     memo.UseCase
	files     fileexplorer.Explorer
	plugins   pluginHTTP.Registry
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger         log.Logger
	Port           int
	Mode           string
	Environment    string
	Version        string
	RequestsPerMin int
	// Ready reports whether backing stores are reachable. Nil means always ready.
	Ready func(ctx context.Context) error

	Assistant assistant.UseCase
	Todos     todo.UseCase
	Memos     memo.UseCase
	Files     fileexplorer.Explorer
	// Plugins is optional; without it the plugin routes are not registered.
	Plugins pluginHTTP.Registry
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		version:     cfg.Version,
		mw:          middleware.New(logger, cfg.RequestsPerMin),
		ready:       cfg.Ready,
		assistant:   cfg.Assistant,
		todos:       cfg.Todos,
		memos:       cfg.Memos,
		files:       cfg.Files,
		plugins:     cfg.Plugins,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.assistant == nil {
		return errors.New("assistant is required")
	}
	if srv.todos == nil || srv.memos == nil {
		return errors.New("todo and memo stores are required")
	}
	if srv.files == nil {
		return errors.New("file explorer is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
