package conversation

import "context"

// Store keeps the recent chat history of each session. Sessions expire after
// a period of inactivity and only the newest turns are retained.
type Store interface {
	History(ctx context.Context, sessionID string) ([]Message, error)
	Append(ctx context.Context, sessionID string, msgs ...Message) error
	Clear(ctx context.Context, sessionID string) error
	Close() error
}
