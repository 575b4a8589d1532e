// Package app wires the stores, plugins, engine and assistant from configuration.
// Both the API server and the terminal chat start from here.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/afero"

	"zitta/config"
	"zitta/internal/assistant"
	"zitta/internal/conversation"
	"zitta/internal/engine"
	"zitta/internal/fileexplorer"
	"zitta/internal/memo"
	memoRepo "zitta/internal/memo/repository/sqlite"
	memoUC "zitta/internal/memo/usecase"
	"zitta/internal/plugin"
	"zitta/internal/plugin/builtin"
	"zitta/internal/plugin/script"
	"zitta/internal/router"
	"zitta/internal/todo"
	todoRepo "zitta/internal/todo/repository/sqlite"
	todoUC "zitta/internal/todo/usecase"
	"zitta/pkg/llmprovider"
	"zitta/pkg/log"
	"zitta/pkg/sqlite"
)

// App holds the long-lived components.
type App struct {
	DB        *sql.DB
	Todos     todo.UseCase
	Memos     memo.UseCase
	Files     fileexplorer.Explorer
	Plugins   *plugin.Manager
	Assistant assistant.UseCase
	Model     string

	history conversation.Store
	l       log.Logger
}

// New builds every component. Plugins are loaded before it returns.
func New(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	a := &App{l: l}
	ok := false
	defer func() {
		if !ok {
			a.Close(context.WithoutCancel(ctx))
		}
	}()

	// 1. Storage
	db, err := sqlite.Connect(ctx, cfg.Storage.DBPath)
	if err != nil {
		return nil, err
	}
	a.DB = db
	l.Infof(ctx, "%s: database at %s", LogPrefixApp, cfg.Storage.DBPath)

	tr, err := todoRepo.New(ctx, db, l)
	if err != nil {
		return nil, err
	}
	mr, err := memoRepo.New(ctx, db, l)
	if err != nil {
		return nil, err
	}
	a.Todos = todoUC.New(tr, l)
	a.Memos = memoUC.New(mr, l)
	a.Files = fileexplorer.New(afero.NewOsFs(), l)

	// 2. Routing
	rules, err := router.LoadRules(cfg.Router.RulesPath)
	if err != nil {
		return nil, err
	}
	kr, err := router.New(rules)
	if err != nil {
		return nil, err
	}

	a.Plugins = plugin.NewManager(plugin.Config{
		Dir:       cfg.Plugin.Dir,
		Builtins:  cfg.Plugin.Enabled,
		Factories: builtin.Factories(),
		Loader:    script.NewLoader(cfg.Plugin.ScriptTimeout, l),
	}, l)
	n := a.Plugins.LoadPlugins(ctx)
	l.Infof(ctx, "%s: %d plugin(s) loaded", LogPrefixApp, n)

	eng, err := engine.New(l, engine.Options{
		Plugins: a.Plugins,
		Router:  kr,
		Todos:   a.Todos,
		Memos:   a.Memos,
		Files:   a.Files,
	})
	if err != nil {
		return nil, err
	}

	// 3. LLM
	llm, err := newLLM(ctx, &cfg.LLM, l)
	if err != nil {
		return nil, err
	}
	a.Model = llm.Primary()

	a.history, err = conversation.New(ctx, cfg.Conversation, cfg.LLM.HistoryLimit, l)
	if err != nil {
		return nil, err
	}

	a.Assistant = assistant.New(l, eng, llm, a.history, assistant.Config{
		SystemPrompt: cfg.LLM.SystemPrompt,
		Temperature:  cfg.LLM.Temperature,
		HistoryLimit: cfg.LLM.HistoryLimit,
	})

	ok = true
	return a, nil
}

func newLLM(ctx context.Context, cfg *config.LLMConfig, l log.Logger) (*llmprovider.Manager, error) {
	providers, err := llmprovider.InitializeProviders(ctx, cfg, l)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixApp, err)
	}
	for _, p := range providers {
		l.Infof(ctx, "%s: LLM provider %s (%s)", LogPrefixApp, p.Name(), p.Model())
	}

	return llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      parseDuration(cfg.RetryDelay),
		MaxTotalTimeout: parseDuration(cfg.MaxTotalTimeout),
	}, l), nil
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}

// Ready reports whether the database is reachable.
func (a *App) Ready(ctx context.Context) error {
	if a.DB == nil {
		return errNoDatabase
	}
	return a.DB.PingContext(ctx)
}

// Close unloads plugins and releases the stores.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.Plugins != nil {
		errs = append(errs, a.Plugins.Close(ctx))
	}
	if a.history != nil {
		errs = append(errs, a.history.Close())
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	return errors.Join(errs...)
}
