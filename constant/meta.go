// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Epibrowse is the canonical application identifier used for filesystem paths and CLI branding.
	Epibrowse = "epibrowse"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// Repository is the GitHub owner/name pair releases are published under.
	Repository = "epibrowse/epibrowse"

	// UserAgent is sent with every request to the listings API.
	UserAgent = Epibrowse + "/" + Version + " (+https://github.com/" + Repository + ")"
)

// Build metadata, overridden through -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
