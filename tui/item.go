package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/epibrowse/epibrowse/browse"
	"github.com/epibrowse/epibrowse/format"
	"github.com/epibrowse/epibrowse/icon"
	"github.com/epibrowse/epibrowse/source"
	"github.com/epibrowse/epibrowse/style"
)

// listItem wraps shows and episode selector options for the list bubbles.
type listItem struct {
	internal any
	marked   bool
}

func (t *listItem) getMark() string {
	switch t.internal.(type) {
	case *source.Show:
		return lipgloss.NewStyle().Foreground(style.AccentColor).Render(icon.Get(icon.Show))
	case browse.Option:
		return lipgloss.NewStyle().Bold(true).Foreground(style.AccentColor).Render(icon.Get(icon.Mark))
	default:
		return ""
	}
}

func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case *source.Show:
		title = e.String()
	case browse.Option:
		title = e.Label
	case string:
		title = e
	default:
		title = t.FilterValue()
	}

	if title != "" && t.marked {
		title = fmt.Sprintf("%s %s", title, t.getMark())
	}

	return
}

func (t *listItem) Description() (description string) {
	switch e := t.internal.(type) {
	case *source.Show:
		var parts []string

		if year := e.Year(); year != "" {
			parts = append(parts, year)
		}

		if len(e.Genres) > 0 {
			parts = append(parts, strings.Join(e.Genres, ", "))
		}

		if e.Language != "" {
			parts = append(parts, e.Language)
		}

		if len(parts) == 0 {
			if summary, ok := e.Summary.Get(); ok {
				parts = append(parts, format.PlainText(summary))
			}
		}

		description = lipgloss.NewStyle().Foreground(style.FaintColor).Render(strings.Join(parts, " • "))
	case browse.Option:
		if e.Value == browse.AllValue {
			description = "Show every episode"
		}
	}

	return
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *source.Show:
		return e.Name
	case browse.Option:
		return e.Label
	case string:
		return e
	default:
		return ""
	}
}
