package memo

import "context"

// UseCase is the memo store used by the engine and the HTTP API.
type UseCase interface {
	Add(ctx context.Context, input CreateInput) (Memo, error)
	// List returns memos by most recent update first.
	List(ctx context.Context, input ListInput) ([]Memo, error)
	Get(ctx context.Context, id int64) (Memo, error)
	Update(ctx context.Context, input UpdateInput) (Memo, error)
	Delete(ctx context.Context, id int64) error
}
