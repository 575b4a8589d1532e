package gemini

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"google.golang.org/genai"
)

type geminiImpl struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func newGeminiImpl(ctx context.Context, cfg Config) (*geminiImpl, error) {
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &geminiImpl{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}, nil
}

// GenerateContent sends a generation request to Gemini API
func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Contents) == 0 {
		return nil, ErrEmptyRequest
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, toContents(req.Contents), toConfig(req))
	if err != nil {
		return nil, fmt.Errorf("gemini: generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, ErrEmptyResponse
	}

	out := &Response{Text: text}
	if u := resp.UsageMetadata; u != nil {
		out.Usage = Usage{
			PromptTokens:    int(u.PromptTokenCount),
			CandidateTokens: int(u.CandidatesTokenCount),
			TotalTokens:     int(u.TotalTokenCount),
		}
	}
	return out, nil
}

// Model returns the model being used
func (g *geminiImpl) Model() string {
	return g.model
}

// ListModels returns the short names of models that support generateContent
func (g *geminiImpl) ListModels(ctx context.Context) ([]string, error) {
	var names []string
	for m, err := range g.client.Models.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("gemini: list models: %w", err)
		}
		if !slices.Contains(m.SupportedActions, "generateContent") {
			continue
		}
		names = append(names, strings.TrimPrefix(m.Name, "models/"))
	}
	slices.Sort(names)
	return names, nil
}

func toContents(in []Content) []*genai.Content {
	out := make([]*genai.Content, 0, len(in))
	for _, c := range in {
		role := genai.Role(genai.RoleUser)
		if c.Role == RoleModel {
			role = genai.RoleModel
		}
		out = append(out, genai.NewContentFromText(c.Text, role))
	}
	return out
}

func toConfig(req *Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	if req.Temperature > 0 {
		cfg.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if req.MaxOutputTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxOutputTokens)
	}
	return cfg
}
