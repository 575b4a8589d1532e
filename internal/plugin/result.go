package plugin

import (
	"fmt"

	"zitta/internal/intent"
)

// Result is what a plugin returns for a handled message. Exactly one of
// LegacyResponse, StructuredIntent or RawMapping.
type Result interface {
	isResult()
}

// LegacyResponse is the plain "plugin answered with text" shape.
type LegacyResponse struct {
	Plugin   string
	Response string
}

// StructuredIntent carries a fully built intent.
type StructuredIntent struct {
	Intent intent.Intent
}

// RawMapping is a loosely typed result, typically from a script plugin.
type RawMapping map[string]any

func (LegacyResponse) isResult()   {}
func (StructuredIntent) isResult() {}
func (RawMapping) isResult()       {}

// Respond is shorthand for a LegacyResponse.
func Respond(pluginName, response string) LegacyResponse {
	return LegacyResponse{Plugin: pluginName, Response: response}
}

// Normalize converts a plugin result into an Intent. pluginName stamps the source.
// The bool is false when the result means "not handled".
func Normalize(r Result, pluginName string) (intent.Intent, bool) {
	source := intent.PluginSource(pluginName)

	switch v := r.(type) {
	case nil:
		return intent.Intent{}, false

	case StructuredIntent:
		if v.Intent.IsZero() {
			return intent.Intent{}, false
		}
		if v.Intent.Source() == "" {
			return v.Intent.WithSource(source), true
		}
		return v.Intent, true

	case LegacyResponse:
		return respondIntent(orDefault(v.Plugin, pluginName), v.Response, source), true

	case RawMapping:
		if len(v) == 0 {
			return intent.Intent{}, false
		}
		if str(v["type"]) == LegacyTypePluginResponse {
			return respondIntent(orDefault(str(v["plugin"]), pluginName), str(v["response"]), source), true
		}

		action := intent.Action(str(v["action"]))
		if action == intent.ActionNone {
			action = intent.ActionRespond
		}
		payload := map[string]any(v)
		if inner, ok := v["payload"].(map[string]any); ok && len(inner) > 0 {
			payload = inner
		}
		return intent.New(intent.TypePlugin, action, payload, source), true
	}

	return intent.New(intent.TypePlugin, intent.ActionRespond, map[string]any{intent.KeyResult: r}, source), true
}

func respondIntent(pluginName, response, source string) intent.Intent {
	return intent.New(intent.TypePlugin, intent.ActionRespond, map[string]any{
		intent.KeyPlugin:   pluginName,
		intent.KeyResponse: response,
	}, source)
}

func str(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
