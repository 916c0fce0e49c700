package mini

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/epibrowse/epibrowse/browse"
	"github.com/epibrowse/epibrowse/history"
	"github.com/epibrowse/epibrowse/icon"
	"github.com/epibrowse/epibrowse/key"
	"github.com/epibrowse/epibrowse/log"
	"github.com/epibrowse/epibrowse/query"
	"github.com/epibrowse/epibrowse/render"
	"github.com/epibrowse/epibrowse/source"
	"github.com/epibrowse/epibrowse/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

type state int

const (
	showSelectState state = iota + 1
	menuState
	searchState
	episodeSelectState
	quitState
)

const (
	actionSearch  = "Search episodes"
	actionEpisode = "Pick an episode"
	actionAll     = "Show all episodes"
	actionShow    = "Change show"
	actionRetry   = "Retry"
	actionQuit    = "Quit"
)

func (m *mini) load(showID int) {
	erase := progress(m.out, icon.Get(icon.Progress)+" Fetching episodes..")
	m.view = browse.Select(m.ctx, m.view, m.client, showID, viper.GetBool(key.BrowseReverse))
	erase()

	if show := m.view.Show(); show != nil && !m.view.Failed() {
		if err := history.Save(show, len(m.view.Full)); err != nil {
			log.Warnf("failed to save history: %v", err)
		}
	}

	m.show()
}

func (m *mini) show() {
	if m.view.Failed() {
		_, _ = fmt.Fprintf(m.out, "%s %s\n%s\n",
			icon.Get(icon.Fail),
			style.Fg(style.ErrorColor)(m.view.Status.Message),
			style.Faint(m.view.Status.Detail),
		)
		return
	}

	if err := m.display.Show(render.Cards(m.view.Displayed)); err != nil {
		log.Error(err)
	}

	if m.view.CountVisible() {
		_, _ = fmt.Fprintf(m.out, "\n%s %s\n", style.Bold(m.title()), style.Faint(m.view.Count()))
	}
}

func (m *mini) title() string {
	if show := m.view.Show(); show != nil {
		return show.String()
	}
	return "Episodes"
}

func (m *mini) handleShowSelectState() error {
	if len(m.view.Shows) == 0 {
		return errors.New("no shows available")
	}

	options := lo.Map(m.view.Shows, func(s *source.Show, _ int) string { return s.String() })
	var index int
	err := m.ask(&survey.Select{
		Message:  "Select a show",
		Options:  options,
		PageSize: 15,
	}, &index)
	if err != nil {
		return err
	}

	m.load(m.view.Shows[index].ID)
	m.newState(menuState)
	return nil
}

func (m *mini) handleMenuState() error {
	var actions []string
	if m.view.Failed() {
		actions = []string{actionRetry, actionShow, actionQuit}
	} else {
		if m.view.Search.Enabled {
			actions = append(actions, actionSearch)
		}
		actions = append(actions, actionEpisode)
		if m.view.Filter.Kind != browse.FilterNone {
			actions = append(actions, actionAll)
		}
		actions = append(actions, actionShow, actionQuit)
	}

	var action string
	if err := m.ask(&survey.Select{Message: m.title(), Options: actions}, &action); err != nil {
		return err
	}

	switch action {
	case actionSearch:
		m.newState(searchState)
	case actionEpisode:
		m.newState(episodeSelectState)
	case actionAll:
		m.dispatch(browse.EpisodeSelected{Value: browse.AllValue, Generation: m.view.Options.Generation})
	case actionShow:
		m.newState(showSelectState)
	case actionRetry:
		m.load(m.view.ShowID)
	case actionQuit:
		m.state = quitState
	}

	return nil
}

func (m *mini) handleSearchState() error {
	var term string
	err := m.ask(&survey.Input{
		Message: "Search",
		Default: m.view.Search.Value,
		Help:    m.view.Search.Placeholder,
		Suggest: query.SuggestMany,
	}, &term)
	if err != nil {
		return err
	}

	if strings.TrimSpace(term) != "" {
		if err := query.Remember(term, 1); err != nil {
			log.Warnf("failed to remember query: %v", err)
		}
	}

	m.dispatch(browse.SearchChanged{Term: term})
	m.previousState()
	return nil
}

func (m *mini) handleEpisodeSelectState() error {
	options := m.view.Options
	labels := lo.Map(options.Items, func(o browse.Option, _ int) string { return o.Label })

	current, _ := lo.Find(options.Items, func(o browse.Option) bool { return o.Value == m.view.Selected() })

	var index int
	err := m.ask(&survey.Select{
		Message:  "Select an episode",
		Options:  labels,
		Default:  current.Label,
		PageSize: 15,
	}, &index)
	if err != nil {
		return err
	}

	m.dispatch(browse.EpisodeSelected{Value: options.Items[index].Value, Generation: options.Generation})
	m.previousState()
	return nil
}

func (m *mini) dispatch(event browse.Event) {
	m.view = browse.Reduce(m.view, event)
	m.show()
}
