package nats

import "zitta/internal/engine"

const (
	statusOK    = "ok"
	statusError = "error"

	errorCodeParse    = "PARSE_ERROR"
	errorCodeInvalid  = "INVALID_REQUEST"
	errorCodeInternal = "INTERNAL_ERROR"
)

type chatRequest struct {
	SessionID        string `json:"session_id"`
	Message          string `json:"message"`
	CurrentDirectory string `json:"current_directory"`
}

type chatResponse struct {
	SessionID    string                 `json:"session_id"`
	Status       string                 `json:"status"`
	Text         string                 `json:"text,omitempty"`
	Result       *engine.DispatchResult `json:"result,omitempty"`
	Model        string                 `json:"model,omitempty"`
	ErrorCode    string                 `json:"error_code,omitempty"`
	ErrorMessage string                 `json:"error_message,omitempty"`
}
