package assistant

import (
	"context"

	"zitta/internal/engine"
	"zitta/internal/intent"
	"zitta/pkg/llmprovider"
)

// Engine is the dispatch core the service drives.
type Engine interface {
	Handle(ctx context.Context, message, currentDirectory string) engine.DispatchResult
	ProcessLLMResponse(ctx context.Context, llmText string, t intent.Type, a intent.Action) engine.DispatchResult
}

// LLM is satisfied by *llmprovider.Manager.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
	ListModels(ctx context.Context) ([]string, error)
	Primary() string
}

// UseCase is what the delivery layers expose.
type UseCase interface {
	// Chat runs a message through the engine and resolves it with the LLM when needed.
	Chat(ctx context.Context, sessionID, message, currentDirectory string) (Reply, error)
	// Dispatch runs only the engine; pending results are returned unresolved.
	Dispatch(ctx context.Context, sessionID, message, currentDirectory string) engine.DispatchResult
	// Finalize completes a pending result with text the caller obtained itself.
	Finalize(ctx context.Context, sessionID, llmText string, t intent.Type, a intent.Action) (Reply, error)
	ClearSession(ctx context.Context, sessionID string) error
}
