package plugin

import (
	"testing"

	"zitta/internal/intent"
)

func TestNormalize(t *testing.T) {
	t.Run("nil is not handled", func(t *testing.T) {
		if _, ok := Normalize(nil, "X"); ok {
			t.Error("expected not handled")
		}
	})

	t.Run("legacy mapping", func(t *testing.T) {
		in, ok := Normalize(RawMapping{"type": "plugin_response", "plugin": "X", "response": "R"}, "X")
		if !ok {
			t.Fatal("expected handled")
		}
		if in.Type() != intent.TypePlugin || in.Action() != intent.ActionRespond {
			t.Errorf("unexpected %s/%s", in.Type(), in.Action())
		}
		if in.String(intent.KeyPlugin) != "X" || in.String(intent.KeyResponse) != "R" {
			t.Errorf("unexpected payload %v", in.Payload())
		}
		if in.Source() != "plugin:X" {
			t.Errorf("unexpected source %q", in.Source())
		}
		if len(in.Payload()) != 2 {
			t.Errorf("legacy payload should only carry plugin and response, got %v", in.Payload())
		}
	})

	t.Run("legacy mapping without plugin name", func(t *testing.T) {
		in, _ := Normalize(RawMapping{"type": "plugin_response", "response": "R"}, "Fallback")
		if in.String(intent.KeyPlugin) != "Fallback" {
			t.Errorf("expected plugin name fallback, got %q", in.String(intent.KeyPlugin))
		}
	})

	t.Run("legacy response value", func(t *testing.T) {
		in, ok := Normalize(Respond("X", "R"), "Registered")
		if !ok || in.String(intent.KeyResponse) != "R" || in.String(intent.KeyPlugin) != "X" {
			t.Errorf("unexpected %v", in.Payload())
		}
		if in.Source() != "plugin:Registered" {
			t.Errorf("unexpected source %q", in.Source())
		}
	})

	t.Run("other mapping is wrapped", func(t *testing.T) {
		raw := RawMapping{"weather": "sunny", "temp": 21}
		in, ok := Normalize(raw, "W")
		if !ok {
			t.Fatal("expected handled")
		}
		if in.Type() != intent.TypePlugin || in.Action() != intent.ActionRespond {
			t.Errorf("unexpected %s/%s", in.Type(), in.Action())
		}
		if v, _ := in.Value("temp"); v != 21 {
			t.Errorf("expected raw mapping as payload, got %v", in.Payload())
		}
	})

	t.Run("mapping with inner payload and action", func(t *testing.T) {
		in, _ := Normalize(RawMapping{"action": "play", "payload": map[string]any{"track": "a"}}, "M")
		if in.Action() != "play" || in.String("track") != "a" {
			t.Errorf("unexpected %s %v", in.Action(), in.Payload())
		}
	})

	t.Run("empty mapping is not handled", func(t *testing.T) {
		if _, ok := Normalize(RawMapping{}, "X"); ok {
			t.Error("expected not handled")
		}
	})

	t.Run("structured intent kept", func(t *testing.T) {
		src := intent.New(intent.TypePlugin, "custom", map[string]any{"k": "v"}, "")
		in, ok := Normalize(StructuredIntent{Intent: src}, "S")
		if !ok {
			t.Fatal("expected handled")
		}
		if in.Action() != "custom" || in.String("k") != "v" {
			t.Errorf("unexpected %s %v", in.Action(), in.Payload())
		}
		if in.Source() != "plugin:S" {
			t.Errorf("expected stamped source, got %q", in.Source())
		}

		stamped := intent.New(intent.TypePlugin, "custom", nil, "elsewhere")
		if got, _ := Normalize(StructuredIntent{Intent: stamped}, "S"); got.Source() != "elsewhere" {
			t.Errorf("existing source must be kept, got %q", got.Source())
		}
	})

	t.Run("zero structured intent", func(t *testing.T) {
		if _, ok := Normalize(StructuredIntent{}, "S"); ok {
			t.Error("expected not handled")
		}
	})
}
