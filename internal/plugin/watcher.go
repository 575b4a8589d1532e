package plugin

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads script plugins as files in Dir are created, written or removed.
// It blocks until ctx is done.
func (m *Manager) Watch(ctx context.Context) error {
	if m.cfg.Dir == "" || m.cfg.Loader == nil {
		return ErrNoPluginDir
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%s: %w", LogPrefixWatch, err)
	}
	defer w.Close()

	if err := w.Add(m.cfg.Dir); err != nil {
		return fmt.Errorf("%s: watch %s: %w", LogPrefixWatch, m.cfg.Dir, err)
	}
	m.l.Infof(ctx, "%s: watching %s", LogPrefixWatch, m.cfg.Dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			m.handleEvent(ctx, ev)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			m.l.Warnf(ctx, "%s: %v", LogPrefixWatch, err)
		}
	}
}

func (m *Manager) handleEvent(ctx context.Context, ev fsnotify.Event) {
	key, ok := m.scriptKey(filepath.Base(ev.Name))
	if !ok || m.origin(key) == OriginBuiltin {
		return
	}

	switch {
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		if m.has(key) {
			if err := m.UnloadPlugin(ctx, key); err != nil {
				m.l.Warnf(ctx, "%s: unload %q: %v", LogPrefixWatch, key, err)
			}
		}

	case ev.Has(fsnotify.Create), ev.Has(fsnotify.Write):
		if m.has(key) {
			if err := m.UnloadPlugin(ctx, key); err != nil {
				m.l.Warnf(ctx, "%s: reload %q: %v", LogPrefixWatch, key, err)
				return
			}
		}
		if err := m.LoadPlugin(ctx, key); err != nil {
			m.l.Warnf(ctx, "%s: load %q: %v", LogPrefixWatch, key, err)
		}
	}
}

func (m *Manager) origin(key string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i := m.indexOf(key); i >= 0 {
		return m.entries[i].origin
	}
	return ""
}
