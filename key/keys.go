// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Listings API - these keys control how shows and episodes are fetched.
const (
	APIBaseURL            = "api.base_url"
	APITimeoutSeconds     = "api.timeout_seconds"
	APICache              = "api.cache"
	APICacheHours         = "api.cache_hours"
	APIImpersonateBrowser = "api.impersonate_browser"
)

// Browsing - these keys define what is shown on startup and in which order.
const (
	BrowseDefaultShow = "browse.default_show"
	BrowseReverse     = "browse.reverse"
)

// History Tracking - these keys configure the persistence of recently viewed shows.
const (
	HistorySave = "history.save"
)

// Search Interaction - these keys define the UI/UX parameters for episode search.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the primary interactive environment's styling and logic.
const (
	TUIItemSpacing        = "tui.item_spacing"
	TUISearchPromptString = "tui.search_prompt"
	TUIShowURLs           = "tui.show_urls"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
