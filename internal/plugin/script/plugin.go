package script

import (
	"context"
	"fmt"
	"time"

	"zitta/internal/plugin"
)

type scriptPlugin struct {
	path     string
	name     string
	version  string
	commands []string
	timeout  time.Duration

	// busy holds one token while interpreted code runs, including calls that
	// already timed out. One interpreter never runs two calls at once.
	busy chan struct{}

	handle   func(string) map[string]any
	onLoad   func() error
	onUnload func() error
}

func (s *scriptPlugin) Name() string       { return s.name }
func (s *scriptPlugin) Version() string    { return s.version }
func (s *scriptPlugin) Commands() []string { return s.commands }

func (s *scriptPlugin) OnLoad(ctx context.Context) error {
	if s.onLoad == nil {
		return nil
	}
	return s.run(ctx, s.onLoad)
}

func (s *scriptPlugin) OnUnload(ctx context.Context) error {
	if s.onUnload == nil {
		return nil
	}
	return s.run(ctx, s.onUnload)
}

func (s *scriptPlugin) HandleCommand(ctx context.Context, message string, pc plugin.Context) (plugin.Result, error) {
	var out map[string]any
	err := s.run(ctx, func() error {
		out = s.handle(message)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return plugin.RawMapping(out), nil
}

// run calls fn on its own goroutine and gives up after timeout. Interpreted code
// cannot be interrupted, so a timed out call keeps running in the background and
// keeps the interpreter busy until it returns.
func (s *scriptPlugin) run(ctx context.Context, fn func() error) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	select {
	case s.busy <- struct{}{}:
	case <-ctx.Done():
		return fmt.Errorf("%w: interpreter busy: %w", ErrTimeout, ctx.Err())
	}

	done := make(chan error, 1)
	go func() {
		defer func() { <-s.busy }()
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("%w: %v", plugin.ErrPluginPanicked, r)
			}
		}()
		done <- fn()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrTimeout, ctx.Err())
	}
}
