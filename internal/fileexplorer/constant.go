package fileexplorer

const (
	LogPrefixList   = "internal.fileexplorer.ListDirectory"
	LogPrefixInfo   = "internal.fileexplorer.FileInfo"
	LogPrefixSearch = "internal.fileexplorer.SearchFiles"

	DefaultDirectory = "."
)
