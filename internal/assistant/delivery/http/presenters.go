package http

import (
	"zitta/internal/assistant"
	"zitta/internal/engine"
	"zitta/internal/intent"
)

type chatReq struct {
	SessionID        string `json:"session_id"`
	Message          string `json:"message" binding:"required"`
	CurrentDirectory string `json:"current_directory"`
}

type finalizeReq struct {
	SessionID string `json:"session_id"`
	LLMText   string `json:"llm_text"`
	Type      string `json:"type" binding:"required"`
	Action    string `json:"action"`
}

func (r finalizeReq) kind() (intent.Type, intent.Action) {
	return intent.Type(r.Type), intent.Action(r.Action)
}

type chatResp struct {
	SessionID string                `json:"session_id"`
	Text      string                `json:"text"`
	Model     string                `json:"model,omitempty"`
	Result    engine.DispatchResult `json:"result"`
}

func newChatResp(r assistant.Reply) chatResp {
	return chatResp{SessionID: r.SessionID, Text: r.Text, Model: r.Model, Result: r.Result}
}

type dispatchResp struct {
	SessionID string                `json:"session_id"`
	Result    engine.DispatchResult `json:"result"`
}
