package script

import "time"

const (
	LogPrefixLoad = "internal.plugin.script.Load"

	// Ext is the file extension of script plugins.
	Ext = ".go"

	DefaultTimeout = 2 * time.Second
)

// Symbols a script must export from package main.
const (
	symName          = "main.Name"
	symVersion       = "main.Version"
	symCommands      = "main.Commands"
	symHandleCommand = "main.HandleCommand"
	symOnLoad        = "main.OnLoad"
	symOnUnload      = "main.OnUnload"
)

// allowedImports is the stdlib subset scripts may use.
var allowedImports = map[string]bool{
	"strings":         true,
	"strconv":         true,
	"fmt":             true,
	"math":            true,
	"regexp":          true,
	"encoding/json":   true,
	"encoding/base64": true,
	"time":            true,
	"sort":            true,
	"bytes":           true,
	"unicode":         true,
	"unicode/utf8":    true,
	"errors":          true,
}
