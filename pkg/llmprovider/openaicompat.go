package llmprovider

import (
	"context"
	"errors"
	"fmt"

	"zitta/pkg/openaicompat"
)

const (
	ProviderQwen     = "qwen"
	ProviderDeepSeek = "deepseek"
)

// presets maps provider names to chat-completions vendors.
var presets = map[string]openaicompat.Preset{
	ProviderQwen:     openaicompat.Qwen,
	ProviderDeepSeek: openaicompat.DeepSeek,
}

// CompatAdapter adapts an openaicompat client to Provider.
type CompatAdapter struct {
	client openaicompat.IClient
}

func NewCompatAdapter(client openaicompat.IClient) *CompatAdapter {
	return &CompatAdapter{client: client}
}

func (a *CompatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	creq := &openaicompat.Request{
		Messages:    make([]openaicompat.Message, 0, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		creq.System = req.SystemInstruction.Text()
	}
	for _, m := range req.Messages {
		role := openaicompat.RoleUser
		if m.Role == RoleAssistant {
			role = openaicompat.RoleAssistant
		}
		creq.Messages = append(creq.Messages, openaicompat.Message{Role: role, Content: m.Text()})
	}

	resp, err := a.client.GenerateContent(ctx, creq)
	if err != nil {
		if errors.Is(err, openaicompat.ErrRateLimited) {
			err = fmt.Errorf("%w: %w", ErrProviderRateLimited, err)
		}
		return nil, &ProviderError{Provider: a.client.Vendor(), Err: err}
	}

	return &Response{
		Content:      TextMessage(RoleAssistant, resp.Text),
		ProviderName: a.client.Vendor(),
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *CompatAdapter) Name() string  { return a.client.Vendor() }
func (a *CompatAdapter) Model() string { return a.client.Model() }
