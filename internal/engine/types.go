package engine

import "zitta/internal/intent"

// DispatchResult is what the presentation layer receives for one message.
// Exactly one of Response and NeedsLLM is active: when NeedsLLM is true,
// Response is nil and LLMPrompt holds the text to send to the LLM.
type DispatchResult struct {
	Type       intent.Type    `json:"type"`
	Action     intent.Action  `json:"action,omitempty"`
	Response   *string        `json:"response"`
	NeedsLLM   bool           `json:"needs_llm"`
	LLMPrompt  string         `json:"llm_prompt,omitempty"`
	Payload    map[string]any `json:"payload,omitempty"`
	PluginName string         `json:"plugin_name,omitempty"`
}

// Pending reports whether the caller must consult the LLM before the result can be shown.
func (r DispatchResult) Pending() bool { return r.NeedsLLM }

// Finalized reports whether Response can be shown as is.
func (r DispatchResult) Finalized() bool { return !r.NeedsLLM && r.Response != nil }

// Text returns the response or "" when there is none.
func (r DispatchResult) Text() string {
	if r.Response == nil {
		return ""
	}
	return *r.Response
}

// IsCreate reports whether the result is the first phase of a todo or memo create.
func (r DispatchResult) IsCreate() bool {
	return r.NeedsLLM && r.Action == intent.ActionCreate &&
		(r.Type == intent.TypeTodo || r.Type == intent.TypeMemo)
}

func finalized(t intent.Type, a intent.Action, response string) DispatchResult {
	return DispatchResult{Type: t, Action: a, Response: &response}
}

func pending(t intent.Type, a intent.Action, prompt string) DispatchResult {
	return DispatchResult{Type: t, Action: a, NeedsLLM: true, LLMPrompt: prompt}
}
