package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/epibrowse/epibrowse/icon"
	"github.com/epibrowse/epibrowse/style"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

// Display shows a set of cards. Each call replaces whatever the previous
// call showed.
type Display interface {
	Show(cards []Card) error
}

// TextDisplay writes cards as styled text blocks.
type TextDisplay struct {
	Out io.Writer
	// Width wraps summaries, 0 disables wrapping.
	Width int
	// Links includes the episode link under each card.
	Links bool
	// Clear is called before writing, usually to blank the terminal.
	Clear func()
}

func (d *TextDisplay) Show(cards []Card) error {
	if d.Clear != nil {
		d.Clear()
	}

	var b strings.Builder
	for i, card := range cards {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatCard(card, d.Width, d.Links))
		b.WriteString("\n")
	}

	_, err := io.WriteString(d.Out, b.String())
	return err
}

// FormatCard renders a single card as text. The summary is wrapped to width
// and indented under the header.
func FormatCard(card Card, width int, links bool) string {
	var b strings.Builder

	b.WriteString(style.Fg(style.AccentColor)(withIcon(icon.Episode, card.Code)))
	b.WriteString(" ")
	b.WriteString(style.Bold(card.Name))
	b.WriteString("\n")

	summary := card.Summary
	if width > 4 {
		summary = wordwrap.String(summary, width-2)
	}
	b.WriteString(indent.String(summary, 2))

	if links && card.Link != NoLink {
		b.WriteString("\n")
		b.WriteString(indent.String(style.Faint(withIcon(icon.Link, card.Link)), 2))
	}

	return b.String()
}

func withIcon(i icon.Icon, s string) string {
	if symbol := icon.Get(i); symbol != "" {
		return symbol + " " + s
	}
	return s
}

// JSONDisplay writes each set of cards as one JSON array.
type JSONDisplay struct {
	Out    io.Writer
	Indent bool
}

func (d *JSONDisplay) Show(cards []Card) error {
	if cards == nil {
		cards = []Card{}
	}

	encoder := json.NewEncoder(d.Out)
	if d.Indent {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(cards); err != nil {
		return fmt.Errorf("encode cards: %w", err)
	}
	return nil
}
