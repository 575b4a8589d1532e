package plugin

const (
	LogPrefixLoad   = "internal.plugin.LoadPlugins"
	LogPrefixHandle = "internal.plugin.HandleCommand"
	LogPrefixUnload = "internal.plugin.UnloadPlugin"
	LogPrefixWatch  = "internal.plugin.Watch"
)

const (
	OriginBuiltin = "builtin"
	OriginScript  = "script"
	OriginManual  = "manual"

	// LegacyTypePluginResponse is the "type" value of the legacy text reply mapping.
	LegacyTypePluginResponse = "plugin_response"
)
