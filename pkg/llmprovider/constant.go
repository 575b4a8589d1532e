package llmprovider

const (
	LogPrefixManager = "pkg.llmprovider.Manager"
	LogPrefixFactory = "pkg.llmprovider.InitializeProviders"
)
