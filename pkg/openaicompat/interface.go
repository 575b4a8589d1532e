package openaicompat

import (
	"context"
	"net/http"
	"strings"
)

// IClient talks to one chat-completions endpoint. Safe for concurrent use.
type IClient interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
	Vendor() string
}

// New validates cfg, filling blanks from cfg.Preset.
func New(cfg Config) (IClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		cfg.Model = cfg.Preset.Model
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = cfg.Preset.BaseURL
	}
	if cfg.BaseURL == "" {
		return nil, ErrMissingURL
	}
	if cfg.HTTPClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		cfg.HTTPClient = &http.Client{Timeout: timeout}
	}
	vendor := cfg.Preset.Name
	if vendor == "" {
		vendor = "openai-compatible"
	}

	return &client{
		vendor:  vendor,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    cfg.HTTPClient,
	}, nil
}
