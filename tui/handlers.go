package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/epibrowse/epibrowse/browse"
	"github.com/epibrowse/epibrowse/history"
	"github.com/epibrowse/epibrowse/internal/ui"
	"github.com/epibrowse/epibrowse/key"
	"github.com/epibrowse/epibrowse/log"
	"github.com/epibrowse/epibrowse/open"
	"github.com/epibrowse/epibrowse/query"
	"github.com/epibrowse/epibrowse/render"
	"github.com/epibrowse/epibrowse/source"
	"github.com/spf13/viper"
)

// startMsg carries the show list and the show to open first.
type startMsg struct {
	shows []*source.Show
	show  *source.Show
	err   error
}

func (b *statefulBubble) loadShows() tea.Cmd {
	return func() tea.Msg {
		shows := b.client.Shows(b.ctx)
		show, err := browse.InitialShow(b.ctx, b.client, shows, b.options.StartOptions)
		return startMsg{shows: shows, show: show, err: err}
	}
}

// selectShow starts loading the episodes of a show. It returns nil when
// the reducer did not start a request.
func (b *statefulBubble) selectShow(id int) tea.Cmd {
	next := browse.Reduce(b.view, browse.ShowSelected{ID: id})
	if next.Pending == b.view.Pending {
		return nil
	}

	b.view = next
	b.sync()
	b.syncShows()

	name := "show"
	if show := b.view.Show(); show != nil {
		name = show.String()
	}
	b.progressStatus = loadingStatus(name)
	b.newState(loadingState)

	return tea.Batch(b.spinnerC.Tick, b.fetchEpisodes(next.Pending, id))
}

func (b *statefulBubble) fetchEpisodes(seq, showID int) tea.Cmd {
	ctx, client := b.ctx, b.client
	reverse := viper.GetBool(key.BrowseReverse)
	return func() tea.Msg {
		return browse.Fetch(ctx, client, seq, showID, reverse)
	}
}

func (b *statefulBubble) saveHistory() tea.Cmd {
	show := b.view.Show()
	if show == nil {
		return nil
	}

	episodes := len(b.view.Full)
	return func() tea.Msg {
		if err := history.Save(show, episodes); err != nil {
			log.Warnf("failed to save history: %v", err)
		}
		return nil
	}
}

func (b *statefulBubble) rememberQuery(term string) tea.Cmd {
	return func() tea.Msg {
		if err := query.Remember(term, 1); err != nil {
			log.Warnf("failed to remember query: %v", err)
		}
		return nil
	}
}

// openTopCard opens the link of the first displayed card.
func (b *statefulBubble) openTopCard() tea.Cmd {
	if len(b.view.Displayed) == 0 {
		return ui.Notify("Nothing to open")
	}

	card := render.NewCard(b.view.Displayed[0])
	if err := open.Start(card.Link); err != nil {
		log.Warn(err)
		return ui.Notify("No link for " + card.Name)
	}

	return ui.Notify("Opened " + card.Name)
}
