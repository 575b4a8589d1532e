package fileexplorer

import "errors"

var (
	ErrNotFound = errors.New("path not found")
	ErrNoAccess = errors.New("permission denied")
)
