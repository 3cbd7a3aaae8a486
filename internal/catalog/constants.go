package catalog

// Item icons
const (
	IconGun    = "🔫"
	IconKnife  = "🗡️"
	IconTarget = "🎯"
	IconSwords = "⚔️"
)

// Log messages
const (
	LogMsgCatalogLoaded   = "Catalog loaded"
	LogMsgCatalogOverride = "Applying catalog override"
)

// Error messages
const (
	ErrMsgReadCatalogFailed  = "failed to read catalog file %s: %w"
	ErrMsgParseCatalogFailed = "failed to parse catalog file %s: %w"
	ErrMsgInvalidCatalog     = "invalid catalog: %s"
)
