package llmprovider

import (
	"context"

	"zitta/pkg/gemini"
)

const ProviderGemini = "gemini"

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	geminiReq := &gemini.Request{
		Contents:        make([]gemini.Content, 0, len(req.Messages)),
		Temperature:     req.Temperature,
		MaxOutputTokens: req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		geminiReq.SystemInstruction = req.SystemInstruction.Text()
	}
	for _, m := range req.Messages {
		role := gemini.RoleUser
		if m.Role == RoleAssistant {
			role = gemini.RoleModel
		}
		geminiReq.Contents = append(geminiReq.Contents, gemini.Content{Role: role, Text: m.Text()})
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: ProviderGemini, Err: err}
	}

	return &Response{
		Content:      TextMessage(RoleAssistant, resp.Text),
		ProviderName: ProviderGemini,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CandidateTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return ProviderGemini
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// ListModels implements ModelLister
func (a *GeminiAdapter) ListModels(ctx context.Context) ([]string, error) {
	return a.client.ListModels(ctx)
}
