package assistant

import "zitta/internal/engine"

// Config tunes the LLM calls made on behalf of the engine.
type Config struct {
	SystemPrompt string
	Temperature  float64
	// HistoryLimit is the number of past messages sent with a chat turn.
	HistoryLimit int
}

// Reply is the outcome of one user message.
type Reply struct {
	SessionID string                `json:"session_id"`
	Text      string                `json:"text"`
	Result    engine.DispatchResult `json:"result"`
	// Model is set when an LLM produced or shaped the reply.
	Model string `json:"model,omitempty"`
}
