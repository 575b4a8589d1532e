package gemini

import (
	"errors"
	"time"
)

// Config holds the client settings.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string // empty uses the public endpoint
	Timeout time.Duration
}

// Validate fills defaults and rejects unusable settings.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

// Request is one generateContent call. Contents alternate user and model turns.
type Request struct {
	SystemInstruction string
	Contents          []Content
	Temperature       float64
	MaxOutputTokens   int
}

// Content is a single text turn.
type Content struct {
	Role string // RoleUser or RoleModel
	Text string
}

// Response carries the concatenated candidate text.
type Response struct {
	Text  string
	Usage Usage
}

type Usage struct {
	PromptTokens    int
	CandidateTokens int
	TotalTokens     int
}

var (
	ErrMissingAPIKey = errors.New("gemini: api key is required")
	ErrEmptyRequest  = errors.New("gemini: request has no contents")
	ErrEmptyResponse = errors.New("gemini: empty response")
)
