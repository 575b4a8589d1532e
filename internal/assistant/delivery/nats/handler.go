package nats

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"zitta/internal/assistant"
	"zitta/pkg/log"
)

type handler struct {
	uc      assistant.UseCase
	l       log.Logger
	timeout time.Duration
}

func newHandler(uc assistant.UseCase, l log.Logger, timeout time.Duration) handler {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return handler{uc: uc, l: l, timeout: timeout}
}

// process decodes one request, runs it and builds the reply payload.
func (h handler) process(ctx context.Context, data []byte) chatResponse {
	var req chatRequest
	if err := json.Unmarshal(data, &req); err != nil {
		h.l.Warnf(ctx, "%s: parse request: %v", LogPrefixHandle, err)
		return errorResponse(req.SessionID, errorCodeParse, "invalid request format")
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	reply, err := h.uc.Chat(ctx, req.SessionID, req.Message, req.CurrentDirectory)
	if err != nil {
		if errors.Is(err, assistant.ErrEmptyMessage) {
			return errorResponse(req.SessionID, errorCodeInvalid, err.Error())
		}
		h.l.Errorf(ctx, "%s: session=%s: %v", LogPrefixHandle, req.SessionID, err)
		return errorResponse(req.SessionID, errorCodeInternal, err.Error())
	}

	return chatResponse{
		SessionID: reply.SessionID,
		Status:    statusOK,
		Text:      reply.Text,
		Result:    &reply.Result,
		Model:     reply.Model,
	}
}

func errorResponse(sessionID, code, message string) chatResponse {
	return chatResponse{
		SessionID:    sessionID,
		Status:       statusError,
		ErrorCode:    code,
		ErrorMessage: message,
	}
}
