// Package tui is the interactive terminal front end.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/epibrowse/epibrowse/browse"
	"github.com/epibrowse/epibrowse/tvmaze"
)

// Options configures Run.
type Options struct {
	browse.StartOptions
}

// Run starts the TUI and blocks until the user quits.
func Run(ctx context.Context, options *Options) error {
	bubble := newBubble(ctx, tvmaze.FromConfig(), options)
	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
