package assistant

import "errors"

var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrEmptySession = errors.New("session id is empty")
	ErrEmptyType    = errors.New("result type is empty")
)
