package script

import "errors"

var (
	ErrForbiddenImport = errors.New("forbidden import")
	ErrMissingSymbol   = errors.New("missing or mistyped export")
	ErrTimeout         = errors.New("script timed out")
)
