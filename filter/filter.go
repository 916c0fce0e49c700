// Package filter narrows an episode list by a free text search term.
package filter

import (
	"strings"

	"github.com/epibrowse/epibrowse/source"
	"github.com/samber/lo"
)

// IsBlank reports whether term means "no filter".
func IsBlank(term string) bool {
	return strings.TrimSpace(term) == ""
}

// Matches reports whether the episode name or its plain text summary
// contains term, ignoring case. Markup in the summary never matches.
func Matches(episode *source.Episode, term string) bool {
	needle := strings.ToLower(term)
	if strings.Contains(strings.ToLower(episode.Name.OrEmpty()), needle) {
		return true
	}

	return strings.Contains(strings.ToLower(episode.PlainSummary()), needle)
}

// Episodes returns the episodes matching term, in input order. The input is
// not modified. Callers check IsBlank first; a blank term here matches by
// plain substring rules.
func Episodes(episodes []*source.Episode, term string) []*source.Episode {
	return lo.Filter(episodes, func(e *source.Episode, _ int) bool {
		return Matches(e, term)
	})
}
