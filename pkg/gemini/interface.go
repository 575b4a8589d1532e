package gemini

import "context"

// IGemini defines the interface for Gemini API client.
// Implementations are safe for concurrent use.
type IGemini interface {
	// GenerateContent sends a generation request to Gemini API
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string

	// ListModels returns the short names of models that support generateContent
	ListModels(ctx context.Context) ([]string, error)
}

// New creates a new Gemini client with the given configuration
func New(ctx context.Context, cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(ctx, cfg)
}
