package plugin

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"zitta/internal/intent"
	"zitta/pkg/log"
)

// Config wires the manager to its plugin sources.
type Config struct {
	// Dir holds script plugins. Empty disables directory scanning.
	Dir string
	// Builtins names compiled-in factories to load, in order.
	Builtins  []string
	Factories map[string]Factory
	// Loader interprets files in Dir. Nil disables script plugins.
	Loader Loader
}

type entry struct {
	key     string
	plugin  Plugin
	origin  string
	enabled atomic.Bool
}

// Manager owns the plugin registry. Registration order is dispatch order.
type Manager struct {
	mu      sync.RWMutex
	entries []*entry
	cfg     Config
	l       log.Logger
}

var _ Dispatcher = (*Manager)(nil)

// NewManager creates an empty manager; call LoadPlugins to populate it.
func NewManager(cfg Config, l log.Logger) *Manager {
	return &Manager{cfg: cfg, l: l}
}

// LoadPlugins loads the configured builtins, then every script in Dir in
// directory order. A failing plugin is logged and skipped. It returns the
// number of plugins registered by this call.
func (m *Manager) LoadPlugins(ctx context.Context) int {
	loaded := 0
	for _, name := range m.cfg.Builtins {
		if err := m.LoadPlugin(ctx, name); err != nil {
			m.l.Errorf(ctx, "%s: builtin %q: %v", LogPrefixLoad, name, err)
			continue
		}
		loaded++
	}

	if m.cfg.Dir == "" || m.cfg.Loader == nil {
		return loaded
	}

	if err := os.MkdirAll(m.cfg.Dir, 0o755); err != nil {
		m.l.Errorf(ctx, "%s: create %s: %v", LogPrefixLoad, m.cfg.Dir, err)
		return loaded
	}

	files, err := os.ReadDir(m.cfg.Dir)
	if err != nil {
		m.l.Errorf(ctx, "%s: read %s: %v", LogPrefixLoad, m.cfg.Dir, err)
		return loaded
	}

	for _, f := range files {
		key, ok := m.scriptKey(f.Name())
		if f.IsDir() || !ok {
			continue
		}
		if err := m.LoadPlugin(ctx, key); err != nil {
			m.l.Errorf(ctx, "%s: script %q: %v", LogPrefixLoad, f.Name(), err)
			continue
		}
		loaded++
	}

	m.l.Infof(ctx, "%s: %d plugin(s) loaded", LogPrefixLoad, loaded)
	return loaded
}

// LoadPlugin loads one plugin by key: a compiled-in factory when one exists,
// otherwise <Dir>/<key><ext> through the Loader.
func (m *Manager) LoadPlugin(ctx context.Context, key string) error {
	if m.has(key) {
		return fmt.Errorf("%w: %s", ErrAlreadyLoaded, key)
	}

	if factory, ok := m.cfg.Factories[key]; ok {
		return m.register(ctx, key, factory(), OriginBuiltin)
	}

	if m.cfg.Loader == nil || m.cfg.Dir == "" {
		return fmt.Errorf("%w: %s", ErrNoSource, key)
	}

	path := filepath.Join(m.cfg.Dir, key+m.cfg.Loader.Ext())
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", ErrNoSource, key)
	}

	p, err := m.cfg.Loader.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return m.register(ctx, key, p, OriginScript)
}

// Register adds an already constructed plugin under key.
func (m *Manager) Register(ctx context.Context, key string, p Plugin) error {
	return m.register(ctx, key, p, OriginManual)
}

func (m *Manager) register(ctx context.Context, key string, p Plugin, origin string) error {
	if p == nil {
		return fmt.Errorf("%w: %s", ErrNoSource, key)
	}
	if err := safeCall(func() error { return p.OnLoad(ctx) }); err != nil {
		return fmt.Errorf("on_load %s: %w", key, err)
	}

	e := &entry{key: key, plugin: p, origin: origin}
	e.enabled.Store(true)

	m.mu.Lock()
	if m.indexOf(key) >= 0 {
		m.mu.Unlock()
		// Lost a race with a concurrent load of the same key.
		if err := safeCall(func() error { return p.OnUnload(ctx) }); err != nil {
			m.l.Warnf(ctx, "%s: %s: discard duplicate: %v", LogPrefixLoad, key, err)
		}
		return fmt.Errorf("%w: %s", ErrAlreadyLoaded, key)
	}
	m.entries = append(m.entries, e)
	m.mu.Unlock()

	m.l.Infof(ctx, "%s: %s v%s loaded as %q (%s)", LogPrefixLoad, p.Name(), p.Version(), key, origin)
	return nil
}

// UnloadPlugin calls OnUnload and removes the plugin. The entry stays when OnUnload fails.
func (m *Manager) UnloadPlugin(ctx context.Context, key string) error {
	m.mu.RLock()
	idx := m.indexOf(key)
	var e *entry
	if idx >= 0 {
		e = m.entries[idx]
	}
	m.mu.RUnlock()

	if e == nil {
		return fmt.Errorf("%w: %s", ErrPluginNotFound, key)
	}

	if err := safeCall(func() error { return e.plugin.OnUnload(ctx) }); err != nil {
		m.l.Errorf(ctx, "%s: %s: %v", LogPrefixUnload, key, err)
		return fmt.Errorf("on_unload %s: %w", key, err)
	}

	m.mu.Lock()
	if i := slices.Index(m.entries, e); i >= 0 {
		m.entries = slices.Delete(m.entries, i, i+1)
	}
	m.mu.Unlock()

	m.l.Infof(ctx, "%s: %q unloaded", LogPrefixUnload, key)
	return nil
}

// HandleCommand offers message to each enabled plugin in registration order and
// returns the first normalized result. Plugin errors and panics are logged and
// skipped.
func (m *Manager) HandleCommand(ctx context.Context, message string, pc Context) (intent.Intent, bool) {
	m.mu.RLock()
	snapshot := slices.Clone(m.entries)
	m.mu.RUnlock()

	for _, e := range snapshot {
		if !e.enabled.Load() {
			continue
		}

		var res Result
		err := safeCall(func() error {
			var herr error
			res, herr = e.plugin.HandleCommand(ctx, message, pc)
			return herr
		})
		if err != nil {
			m.l.Warnf(ctx, "%s: %q: %v", LogPrefixHandle, e.key, err)
			continue
		}

		if in, ok := Normalize(res, e.plugin.Name()); ok {
			m.l.Debugf(ctx, "%s: handled by %q", LogPrefixHandle, e.key)
			return in, true
		}
	}
	return intent.Intent{}, false
}

// SetEnabled toggles a plugin without unloading it.
func (m *Manager) SetEnabled(key string, enabled bool) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexOf(key)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPluginNotFound, key)
	}
	m.entries[i].enabled.Store(enabled)
	return nil
}

// List describes the registered plugins in dispatch order.
func (m *Manager) List() []Info {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Info, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, Info{
			Key:      e.key,
			Name:     e.plugin.Name(),
			Version:  e.plugin.Version(),
			Enabled:  e.enabled.Load(),
			Origin:   e.origin,
			Commands: e.plugin.Commands(),
		})
	}
	return out
}

// Close unloads every plugin in reverse registration order.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.RLock()
	keys := make([]string, 0, len(m.entries))
	for i := len(m.entries) - 1; i >= 0; i-- {
		keys = append(keys, m.entries[i].key)
	}
	m.mu.RUnlock()

	var errs []error
	for _, k := range keys {
		if err := m.UnloadPlugin(ctx, k); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Manager) has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.indexOf(key) >= 0
}

// indexOf must be called with mu held.
func (m *Manager) indexOf(key string) int {
	return slices.IndexFunc(m.entries, func(e *entry) bool { return e.key == key })
}

// scriptKey reports the registry key for a file in Dir.
func (m *Manager) scriptKey(filename string) (string, bool) {
	if m.cfg.Loader == nil {
		return "", false
	}
	ext := m.cfg.Loader.Ext()
	if !strings.HasSuffix(filename, ext) || strings.HasSuffix(filename, "_test"+ext) || strings.HasPrefix(filename, "_") {
		return "", false
	}
	return strings.TrimSuffix(filename, ext), true
}

func safeCall(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v\n%s", ErrPluginPanicked, r, debug.Stack())
		}
	}()
	return fn()
}
