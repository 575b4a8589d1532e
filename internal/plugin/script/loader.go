// Package script loads plugins written as Go source files and runs them with
// the yaegi interpreter.
//
// A script is a package main file exporting:
//
//	func Name() string
//	func Version() string
//	func Commands() []string
//	func HandleCommand(message string) map[string]any
//
// and optionally func OnLoad() error and func OnUnload() error. Returning a nil
// or empty map from HandleCommand means "not handled".
package script

import (
	"context"
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"strconv"
	"time"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"zitta/internal/plugin"
	"zitta/pkg/log"
)

// Loader implements plugin.Loader for Go source scripts.
type Loader struct {
	timeout time.Duration
	l       log.Logger
}

var _ plugin.Loader = (*Loader)(nil)

// NewLoader creates a loader; timeout bounds every call into a script.
func NewLoader(timeout time.Duration, l log.Logger) *Loader {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Loader{timeout: timeout, l: l}
}

func (ld *Loader) Ext() string { return Ext }

// Load interprets the file at path in a fresh interpreter.
func (ld *Loader) Load(ctx context.Context, path string) (plugin.Plugin, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixLoad, err)
	}
	if err := validateImports(path, src); err != nil {
		return nil, err
	}

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("%s: load stdlib: %w", LogPrefixLoad, err)
	}
	if _, err := i.Eval(string(src)); err != nil {
		return nil, fmt.Errorf("%s: eval %s: %w", LogPrefixLoad, path, err)
	}

	p := &scriptPlugin{path: path, timeout: ld.timeout, busy: make(chan struct{}, 1)}

	nameFn, err := lookup[func() string](i, symName)
	if err != nil {
		return nil, err
	}
	versionFn, err := lookup[func() string](i, symVersion)
	if err != nil {
		return nil, err
	}
	commandsFn, err := lookup[func() []string](i, symCommands)
	if err != nil {
		return nil, err
	}
	if p.handle, err = lookup[func(string) map[string]any](i, symHandleCommand); err != nil {
		return nil, err
	}

	// Optional hooks.
	p.onLoad, _ = lookup[func() error](i, symOnLoad)
	p.onUnload, _ = lookup[func() error](i, symOnUnload)

	p.name, p.version, p.commands = nameFn(), versionFn(), commandsFn()
	if p.name == "" {
		return nil, fmt.Errorf("%w: %s returned an empty name", ErrMissingSymbol, symName)
	}

	ld.l.Debugf(ctx, "%s: %s v%s from %s", LogPrefixLoad, p.name, p.version, path)
	return p, nil
}

func lookup[T any](i *interp.Interpreter, sym string) (T, error) {
	var zero T
	v, err := i.Eval(sym)
	if err != nil {
		return zero, fmt.Errorf("%w: %s: %v", ErrMissingSymbol, sym, err)
	}
	fn, ok := v.Interface().(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s has type %s", ErrMissingSymbol, sym, v.Type())
	}
	return fn, nil
}

func validateImports(path string, src []byte) error {
	f, err := parser.ParseFile(token.NewFileSet(), path, src, parser.ImportsOnly)
	if err != nil {
		return fmt.Errorf("%s: parse %s: %w", LogPrefixLoad, path, err)
	}

	for _, imp := range f.Imports {
		pkg, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			return fmt.Errorf("%s: bad import %s: %w", LogPrefixLoad, imp.Path.Value, err)
		}
		if !allowedImports[pkg] {
			return fmt.Errorf("%w: %q in %s", ErrForbiddenImport, pkg, path)
		}
	}
	return nil
}
