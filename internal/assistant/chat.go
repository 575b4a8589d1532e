package assistant

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"zitta/internal/conversation"
	"zitta/internal/engine"
	"zitta/internal/intent"
	"zitta/pkg/llmprovider"
)

func (uc *implUseCase) Chat(ctx context.Context, sessionID, message, currentDirectory string) (Reply, error) {
	if strings.TrimSpace(message) == "" {
		return Reply{}, ErrEmptyMessage
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	ctx = engine.WithSession(ctx, sessionID)

	res := uc.engine.Handle(ctx, message, currentDirectory)
	reply := Reply{SessionID: sessionID, Result: res}

	switch {
	case !res.Pending():
		reply.Text = res.Text()
	case res.IsCreate():
		reply = uc.completeCreate(ctx, reply)
	default:
		reply = uc.completeChat(ctx, reply, message)
	}

	uc.remember(ctx, sessionID, message, reply.Text)
	return reply, nil
}

// completeCreate runs the title extraction prompt without history and hands the answer back to the engine.
// A failed LLM call never reaches the store.
func (uc *implUseCase) completeCreate(ctx context.Context, reply Reply) Reply {
	res := reply.Result
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages:    []llmprovider.Message{llmprovider.TextMessage(llmprovider.RoleUser, res.LLMPrompt)},
		Temperature: uc.cfg.Temperature,
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: %s %s extraction failed: %v", LogPrefixChat, res.Type, res.Action, err)
		reply.Text = uc.describeLLMError(ctx, err)
		reply.Result = resolve(res, reply.Text)
		return reply
	}

	reply.Model = resp.ModelName
	reply.Result = uc.engine.ProcessLLMResponse(ctx, resp.Content.Text(), res.Type, res.Action)
	reply.Text = reply.Result.Text()
	return reply
}

func (uc *implUseCase) completeChat(ctx context.Context, reply Reply, message string) Reply {
	res := reply.Result

	msgs := uc.historyMessages(ctx, reply.SessionID)
	msgs = append(msgs, llmprovider.TextMessage(llmprovider.RoleUser, res.LLMPrompt))

	system := llmprovider.TextMessage(llmprovider.RoleUser, uc.cfg.SystemPrompt)
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &system,
		Messages:          msgs,
		Temperature:       uc.cfg.Temperature,
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: chat failed: %v", LogPrefixChat, err)
		reply.Text = uc.describeLLMError(ctx, err)
		reply.Result = resolve(res, reply.Text)
		return reply
	}

	text := strings.TrimSpace(resp.Content.Text())
	if text == "" {
		text = emptyLLMReply
	}
	reply.Model = resp.ModelName
	reply.Text = text
	reply.Result = resolve(res, text)
	return reply
}

func (uc *implUseCase) historyMessages(ctx context.Context, sessionID string) []llmprovider.Message {
	if uc.history == nil || uc.cfg.HistoryLimit == 0 {
		return nil
	}
	past, err := uc.history.History(ctx, sessionID)
	if err != nil {
		uc.l.Warnf(ctx, "%s: load history for %s: %v", LogPrefixChat, sessionID, err)
		return nil
	}
	if len(past) > uc.cfg.HistoryLimit {
		past = past[len(past)-uc.cfg.HistoryLimit:]
	}

	msgs := make([]llmprovider.Message, 0, len(past)+1)
	for _, m := range past {
		role := llmprovider.RoleUser
		if m.Role == conversation.RoleAssistant {
			role = llmprovider.RoleAssistant
		}
		msgs = append(msgs, llmprovider.TextMessage(role, m.Text))
	}
	return msgs
}

func (uc *implUseCase) remember(ctx context.Context, sessionID, message, answer string) {
	if uc.history == nil || answer == "" {
		return
	}
	err := uc.history.Append(ctx, sessionID,
		conversation.UserMessage(message),
		conversation.AssistantMessage(answer))
	if err != nil {
		uc.l.Warnf(ctx, "%s: append history for %s: %v", LogPrefixChat, sessionID, err)
	}
}

func (uc *implUseCase) Dispatch(ctx context.Context, sessionID, message, currentDirectory string) engine.DispatchResult {
	return uc.engine.Handle(engine.WithSession(ctx, sessionID), message, currentDirectory)
}

func (uc *implUseCase) Finalize(ctx context.Context, sessionID, llmText string, t intent.Type, a intent.Action) (Reply, error) {
	if t == "" {
		return Reply{}, ErrEmptyType
	}
	res := uc.engine.ProcessLLMResponse(engine.WithSession(ctx, sessionID), llmText, t, a)
	uc.l.Debugf(ctx, "%s: %s %s finalized", LogPrefixFinalize, t, a)
	return Reply{SessionID: sessionID, Text: res.Text(), Result: res}, nil
}

func (uc *implUseCase) ClearSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrEmptySession
	}
	if uc.history == nil {
		return nil
	}
	return uc.history.Clear(ctx, sessionID)
}

// resolve turns a pending result into a finalized one carrying text.
func resolve(res engine.DispatchResult, text string) engine.DispatchResult {
	res.NeedsLLM = false
	res.LLMPrompt = ""
	res.Response = &text
	return res
}
