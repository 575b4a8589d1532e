package conversation

import "errors"

var (
	ErrUnknownBackend = errors.New("unknown conversation backend")
	ErrEmptySession   = errors.New("session id is empty")
)
