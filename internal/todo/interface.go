package todo

import "context"

// UseCase is the todo store used by the engine and the HTTP API.
type UseCase interface {
	Add(ctx context.Context, input CreateInput) (Todo, error)
	List(ctx context.Context, input ListInput) ([]Todo, error)
	Get(ctx context.Context, id int64) (Todo, error)
	Update(ctx context.Context, input UpdateInput) (Todo, error)
	Delete(ctx context.Context, id int64) error
}
