package script

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"zitta/internal/intent"
	"zitta/internal/plugin"
	"zitta/pkg/log"
)

func load(t *testing.T, ld *Loader, name string) (plugin.Plugin, error) {
	t.Helper()
	return ld.Load(context.Background(), filepath.Join("testdata", name))
}

func TestLoad_Echo(t *testing.T) {
	ld := NewLoader(time.Second, log.NewNop())

	p, err := load(t, ld, "echo.go")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.Name() != "Echo" || p.Version() != "0.1.0" {
		t.Errorf("unexpected identity %s %s", p.Name(), p.Version())
	}
	if len(p.Commands()) != 1 || p.Commands()[0] != "echo" {
		t.Errorf("unexpected commands %v", p.Commands())
	}

	ctx := context.Background()
	if err := p.OnLoad(ctx); err != nil {
		t.Fatalf("OnLoad() error = %v", err)
	}

	res, err := p.HandleCommand(ctx, "echo 반가워요", plugin.Context{})
	if err != nil {
		t.Fatalf("HandleCommand() error = %v", err)
	}
	in, ok := plugin.Normalize(res, p.Name())
	if !ok {
		t.Fatal("expected handled result")
	}
	if in.Type() != intent.TypePlugin || in.Action() != intent.ActionRespond {
		t.Errorf("unexpected intent %s/%s", in.Type(), in.Action())
	}
	if in.String(intent.KeyResponse) != "반가워요" {
		t.Errorf("unexpected response %q", in.String(intent.KeyResponse))
	}

	res, err = p.HandleCommand(ctx, "something else", plugin.Context{})
	if err != nil || res != nil {
		t.Errorf("expected unhandled, got %v, %v", res, err)
	}
}

func TestLoad_OptionalHooksAndState(t *testing.T) {
	ld := NewLoader(time.Second, log.NewNop())
	ctx := context.Background()

	p, err := load(t, ld, "counter.go")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := p.OnLoad(ctx); err != nil {
		t.Fatalf("OnLoad() error = %v", err)
	}

	var last intent.Intent
	for range 3 {
		res, err := p.HandleCommand(ctx, "count", plugin.Context{})
		if err != nil {
			t.Fatalf("HandleCommand() error = %v", err)
		}
		last, _ = plugin.Normalize(res, p.Name())
	}

	if last.Action() != "count" || last.String("calls") != "3" {
		t.Errorf("unexpected intent %s %v", last.Action(), last.Payload())
	}
	if err := p.OnUnload(ctx); err == nil {
		t.Error("expected OnUnload to refuse after 3 calls")
	}
}

func TestLoad_Rejects(t *testing.T) {
	ld := NewLoader(time.Second, log.NewNop())

	tests := []struct {
		file string
		want error
	}{
		{file: "forbidden.go", want: ErrForbiddenImport},
		{file: "incomplete.go", want: ErrMissingSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			_, err := load(t, ld, tt.file)
			if !errors.Is(err, tt.want) {
				t.Errorf("Load(%s) = %v, want %v", tt.file, err, tt.want)
			}
		})
	}

	if _, err := load(t, ld, "missing.go"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestHandleCommand_Timeout(t *testing.T) {
	ld := NewLoader(20*time.Millisecond, log.NewNop())

	p, err := load(t, ld, "slow.go")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	_, err = p.HandleCommand(context.Background(), "hi", plugin.Context{})
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("expected ErrTimeout, got %v", err)
	}

	// The timed out call is still sleeping, so the next one cannot enter the interpreter.
	_, err = p.HandleCommand(context.Background(), "again", plugin.Context{})
	if !errors.Is(err, ErrTimeout) || !strings.Contains(err.Error(), "busy") {
		t.Errorf("expected busy ErrTimeout, got %v", err)
	}
}

func TestHandleCommand_ConcurrentCallers(t *testing.T) {
	ld := NewLoader(5*time.Second, log.NewNop())
	ctx := context.Background()

	p, err := load(t, ld, "counter.go")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := p.OnLoad(ctx); err != nil {
		t.Fatalf("OnLoad() error = %v", err)
	}

	const workers, calls = 8, 50
	var wg sync.WaitGroup
	errs := make(chan error, workers*calls)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range calls {
				if _, err := p.HandleCommand(ctx, "count", plugin.Context{}); err != nil {
					errs <- err
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("HandleCommand() error = %v", err)
	}

	res, err := p.HandleCommand(ctx, "count", plugin.Context{})
	if err != nil {
		t.Fatalf("HandleCommand() error = %v", err)
	}
	in, _ := plugin.Normalize(res, p.Name())
	if got := in.String("calls"); got != "401" {
		t.Errorf("expected every call to be counted once, got calls=%s", got)
	}
}
