package fileexplorer

import "context"

// Explorer reads the local filesystem on behalf of the assistant.
type Explorer interface {
	// ListDirectory returns directories first, then files, each by
	// case-insensitive name. Unreadable directories yield an empty slice.
	ListDirectory(ctx context.Context, path string) []Entry
	FileInfo(ctx context.Context, path string) (Info, error)
	// SearchFiles returns paths of files whose name contains pattern, ignoring case.
	SearchFiles(ctx context.Context, dir, pattern string, recursive bool) []string
}
