package tui

import (
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/epibrowse/epibrowse/browse"
	"github.com/epibrowse/epibrowse/filter"
	"github.com/epibrowse/epibrowse/internal/ui"
	"github.com/epibrowse/epibrowse/log"
	"github.com/epibrowse/epibrowse/query"
	"github.com/epibrowse/epibrowse/source"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, ok := b.notifierC.Update(msg); ok {
		return b, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil
	case startMsg:
		return b, b.onStart(msg)
	case browse.EpisodesLoaded:
		return b, b.onEpisodes(msg.Seq, msg)
	case browse.EpisodesFailed:
		return b, b.onEpisodes(msg.Seq, msg)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	switch b.state {
	case loadingState:
		return b.updateLoading(msg)
	case errorState:
		return b.updateError(msg)
	case showsState:
		return b.updateShows(msg)
	case episodesState:
		return b.updateEpisodes(msg)
	case selectState:
		return b.updateSelect(msg)
	}

	return b, nil
}

func (b *statefulBubble) onStart(msg startMsg) tea.Cmd {
	b.view = browse.Reduce(b.view, browse.ShowsLoaded{Shows: msg.shows})
	b.syncShows()

	if msg.err != nil {
		log.Warn(msg.err)
		b.newState(showsState)
		return ui.Notify(msg.err.Error())
	}

	if msg.show == nil {
		b.newState(showsState)
		return nil
	}

	b.view = browse.WithShow(b.view, msg.show)
	b.syncShows()
	return b.selectShow(msg.show.ID)
}

func (b *statefulBubble) onEpisodes(seq int, event browse.Event) tea.Cmd {
	if seq != b.view.Pending {
		return nil
	}

	b.view = browse.Reduce(b.view, event)
	b.blurSearch()
	b.sync()

	if b.view.Failed() {
		if b.state == loadingState || b.state == episodesState {
			b.newState(errorState)
		}
		return nil
	}

	if b.state == loadingState {
		b.newState(episodesState)
	}
	return b.saveHistory()
}

func (b *statefulBubble) dispatch(event browse.Event) {
	b.view = browse.Reduce(b.view, event)
	b.sync()
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.back) {
		if b.statesHistory.Len() == 0 {
			return b, tea.Quit
		}
		b.previousState()
		return b, nil
	}

	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.retry):
			return b, b.selectShow(b.view.ShowID)
		case bubblesKey.Matches(msg, b.keymap.selectShow):
			b.newState(showsState)
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		}
	}

	return b, nil
}

func (b *statefulBubble) updateShows(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && b.showsC.FilterState() != list.Filtering {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			item, ok := b.showsC.SelectedItem().(*listItem)
			if !ok {
				return b, nil
			}
			return b, b.selectShow(item.internal.(*source.Show).ID)
		case bubblesKey.Matches(msg, b.keymap.back) && b.showsC.FilterState() == list.Unfiltered:
			b.previousState()
			return b, nil
		}
	}

	b.showsC, cmd = b.showsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateEpisodes(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if b.inputC.Focused() {
		return b.updateSearch(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.search):
			if !b.view.Search.Enabled {
				return b, ui.Notify("Search is off while one episode is selected, press a to show all")
			}
			b.focusSearch()
			return b, textinput.Blink
		case bubblesKey.Matches(msg, b.keymap.selectEpisode):
			b.newState(selectState)
			b.selectCurrentOption()
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.selectShow):
			b.newState(showsState)
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.showAll):
			b.dispatch(browse.EpisodeSelected{Value: browse.AllValue, Generation: b.view.Options.Generation})
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.openURL):
			return b, b.openTopCard()
		case bubblesKey.Matches(msg, b.keymap.showHelp):
			b.helpC.ShowAll = !b.helpC.ShowAll
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		}
	}

	b.cardsC, cmd = b.cardsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back), bubblesKey.Matches(msg, b.keymap.confirm):
			term := b.inputC.Value()
			b.blurSearch()
			if !filter.IsBlank(term) {
				return b, b.rememberQuery(term)
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.acceptSearchSuggestion):
			suggestion, ok := b.searchSuggestion.Get()
			if !ok {
				return b, nil
			}
			b.inputC.SetValue(suggestion)
			b.inputC.CursorEnd()
			b.searchSuggestion = mo.None[string]()
			b.dispatch(browse.SearchChanged{Term: suggestion})
			return b, nil
		}
	}

	b.inputC, cmd = b.inputC.Update(msg)

	if value := b.inputC.Value(); value != b.view.Search.Value {
		b.dispatch(browse.SearchChanged{Term: value})
		b.searchSuggestion = query.Suggest(value)
	}

	return b, cmd
}

func (b *statefulBubble) updateSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && b.selectC.FilterState() != list.Filtering {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			item, ok := b.selectC.SelectedItem().(*listItem)
			if !ok {
				return b, nil
			}
			option := item.internal.(browse.Option)
			b.dispatch(browse.EpisodeSelected{Value: option.Value, Generation: b.selectGeneration})
			b.selectC.ResetFilter()
			b.previousState()
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.back) && b.selectC.FilterState() == list.Unfiltered:
			b.previousState()
			return b, nil
		}
	}

	b.selectC, cmd = b.selectC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) selectCurrentOption() {
	selected := b.view.Selected()
	_, index, ok := lo.FindIndexOf(b.view.Options.Items, func(o browse.Option) bool {
		return o.Value == selected
	})
	if ok {
		b.selectC.Select(index)
	}
}
