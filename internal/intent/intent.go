package intent

import (
	"fmt"
	"maps"
	"reflect"
)

// Intent is the routing decision for one message. It is immutable: the payload is
// copied in and handed out as copies.
type Intent struct {
	typ     Type
	action  Action
	payload map[string]any
	source  string
}

// New builds an Intent and normalizes it so that chat never carries an action and
// a file listing always carries a valid filter.
func New(t Type, a Action, payload map[string]any, source string) Intent {
	if t == TypeChat {
		a = ActionNone
	}

	var p map[string]any
	if len(payload) > 0 {
		p = maps.Clone(payload)
	}

	if t == TypeFile && a == ActionList {
		f, _ := filterOf(p)
		if !f.Valid() {
			if p == nil {
				p = make(map[string]any, 1)
			}
			p[KeyFilter] = string(FilterAll)
		}
	}

	return Intent{typ: t, action: a, payload: p, source: source}
}

// Chat is the catch-all intent.
func Chat(source string) Intent {
	return New(TypeChat, ActionNone, nil, source)
}

// FileList is a file listing narrowed by f.
func FileList(f Filter, source string) Intent {
	return New(TypeFile, ActionList, map[string]any{KeyFilter: string(f)}, source)
}

// PluginResponse is the canonical intent for a plugin that answered with text.
func PluginResponse(pluginName, response string) Intent {
	return New(TypePlugin, ActionRespond, map[string]any{
		KeyPlugin:   pluginName,
		KeyResponse: response,
	}, PluginSource(pluginName))
}

func (i Intent) Type() Type       { return i.typ }
func (i Intent) Action() Action   { return i.action }
func (i Intent) Source() string   { return i.source }
func (i Intent) IsZero() bool     { return i.typ == "" }
func (i Intent) HasPayload() bool { return len(i.payload) > 0 }

// Payload returns a copy of the payload, or nil when there is none.
func (i Intent) Payload() map[string]any {
	if len(i.payload) == 0 {
		return nil
	}
	return maps.Clone(i.payload)
}

// Value looks up a single payload entry.
func (i Intent) Value(key string) (any, bool) {
	v, ok := i.payload[key]
	return v, ok
}

// String returns the payload entry as text, or "" when absent.
func (i Intent) String(key string) string {
	v, ok := i.payload[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Filter returns the file filter, defaulting to FilterAll.
func (i Intent) Filter() Filter {
	if f, ok := filterOf(i.payload); ok && f.Valid() {
		return f
	}
	return FilterAll
}

// WithSource returns a copy of i with a different provenance tag.
func (i Intent) WithSource(source string) Intent {
	return Intent{typ: i.typ, action: i.action, payload: i.payload, source: source}
}

// Equal reports whether both intents carry the same decision.
func (i Intent) Equal(o Intent) bool {
	if i.typ != o.typ || i.action != o.action || i.source != o.source {
		return false
	}
	if len(i.payload) == 0 && len(o.payload) == 0 {
		return true
	}
	return reflect.DeepEqual(i.payload, o.payload)
}

func filterOf(p map[string]any) (Filter, bool) {
	v, ok := p[KeyFilter]
	if !ok {
		return "", false
	}
	switch f := v.(type) {
	case string:
		return Filter(f), true
	case Filter:
		return f, true
	}
	return "", false
}
