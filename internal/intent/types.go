package intent

// Type is the domain a message was routed to.
type Type string

const (
	TypeTodo   Type = "todo"
	TypeMemo   Type = "memo"
	TypeFile   Type = "file"
	TypeChat   Type = "chat"
	TypePlugin Type = "plugin"
)

// Action is the operation requested within a domain. Plugins may use their own values.
type Action string

const (
	ActionNone    Action = ""
	ActionCreate  Action = "create"
	ActionList    Action = "list"
	ActionRespond Action = "respond"
)

// Filter narrows a file listing.
type Filter string

const (
	FilterAll  Filter = "all"
	FilterDir  Filter = "dir"
	FilterFile Filter = "file"
)

// Valid reports whether f is one of the known filters.
func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterDir, FilterFile:
		return true
	}
	return false
}

// Payload keys.
const (
	KeyFilter   = "filter"
	KeyPlugin   = "plugin"
	KeyResponse = "response"
	KeyResult   = "result"
)

// Sources.
const (
	SourceRouter       = "router"
	SourcePluginPrefix = "plugin:"
)

// PluginSource returns the provenance tag for a plugin-produced intent.
func PluginSource(name string) string {
	return SourcePluginPrefix + name
}
