// Package format turns raw episode fields into display text.
package format

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/mo"
	"golang.org/x/net/html"
)

// NoSummary is shown when an episode has no summary at all.
const NoSummary = "No summary available."

// A tag opens with a letter, "/" or "!" and holds no other "<", so a stray
// "<" stays text.
var tagRegex = regexp.MustCompile(`</?[A-Za-z!][^<>]*>`)

// Code formats season and number as S01E05. Anything non-positive falls
// back to S00E00.
func Code(season, number int) string {
	if season <= 0 || number <= 0 {
		season, number = 0, 0
	}

	return fmt.Sprintf("S%02dE%02d", season, number)
}

// PlainText removes markup tags and decodes entities. Entities are decoded
// after stripping so escaped markup stays text.
func PlainText(markup string) string {
	if markup == "" {
		return ""
	}

	stripped := tagRegex.ReplaceAllString(markup, "")
	return strings.TrimSpace(html.UnescapeString(stripped))
}

// Summary is PlainText with the NoSummary fallback for absent or empty input.
func Summary(markup mo.Option[string]) string {
	value, ok := markup.Get()
	if !ok || strings.TrimSpace(value) == "" {
		return NoSummary
	}

	return PlainText(value)
}
