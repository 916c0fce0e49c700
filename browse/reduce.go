package browse

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/epibrowse/epibrowse/filter"
	"github.com/epibrowse/epibrowse/log"
	"github.com/epibrowse/epibrowse/source"
	"github.com/epibrowse/epibrowse/tvmaze"
	"github.com/samber/lo"
)

// NoShow is the show id of the "select a show" placeholder.
const NoShow = 0

// Reduce returns the state after applying event. The input state is not modified.
func Reduce(state State, event Event) State {
	switch e := event.(type) {
	case SearchChanged:
		return searchChanged(state, e)
	case EpisodeSelected:
		return episodeSelected(state, e)
	case ShowSelected:
		return showSelected(state, e)
	case EpisodesLoaded:
		return episodesLoaded(state, e)
	case EpisodesFailed:
		return episodesFailed(state, e)
	case ShowsLoaded:
		return showsLoaded(state, e)
	default:
		return state
	}
}

func searchChanged(state State, e SearchChanged) State {
	if !state.Search.Enabled {
		return state
	}

	term := strings.TrimSpace(e.Term)
	if filter.IsBlank(term) {
		state = showAll(state)
	} else {
		state.Filter = Filter{Kind: FilterSearch, Term: term}
		state.Displayed = filter.Episodes(state.Full, term)
	}

	state.Search.Value = e.Term
	return state
}

func episodeSelected(state State, e EpisodeSelected) State {
	if e.Generation != state.Options.Generation {
		log.Debugf("ignoring selection %q from options generation %d", e.Value, e.Generation)
		return state
	}

	if e.Value == AllValue {
		state = showAll(state)
		state.Search = SearchBox{Enabled: true, Placeholder: SearchPlaceholder}
		return state
	}

	index, err := strconv.Atoi(e.Value)
	if err != nil || index < 0 || index >= len(state.Full) {
		log.Debugf("ignoring selection %q outside of %d episodes", e.Value, len(state.Full))
		return state
	}

	state.Filter = Filter{Kind: FilterSelection, Index: index}
	state.Displayed = []*source.Episode{state.Full[index]}
	state.Search = SearchBox{Enabled: false, Placeholder: SearchDisabledPlaceholder}
	return state
}

func showSelected(state State, e ShowSelected) State {
	if e.ID == NoShow {
		return state
	}

	state.ShowID = e.ID
	state.Pending++
	state.Status = Status{Kind: StatusLoading}
	state.Search = SearchBox{Enabled: true, Placeholder: SearchPlaceholder}
	state = showAll(state)
	state.Options = Options{
		Generation: state.Options.Generation + 1,
		Items:      []Option{{Value: AllValue, Label: AllLabel}},
	}
	return state
}

func episodesLoaded(state State, e EpisodesLoaded) State {
	if e.Seq != state.Pending {
		log.Debugf("dropping stale episodes response %d, waiting for %d", e.Seq, state.Pending)
		return state
	}

	full := e.Episodes
	if full == nil {
		full = []*source.Episode{}
	}

	state.ShowID = e.ShowID
	state.Full = full
	state.Status = Status{Kind: StatusIdle}
	state.Options = buildOptions(full, state.Options.Generation+1)
	state.Search = SearchBox{Enabled: true, Placeholder: SearchPlaceholder}
	return showAll(state)
}

func episodesFailed(state State, e EpisodesFailed) State {
	if e.Seq != state.Pending {
		log.Debugf("dropping stale episodes failure %d, waiting for %d", e.Seq, state.Pending)
		return state
	}

	state.Full = []*source.Episode{}
	state.Displayed = []*source.Episode{}
	state.Filter = Filter{}
	state.Search = SearchBox{Enabled: true, Placeholder: SearchPlaceholder}
	state.Status = failure(e.Err)
	state.Options = Options{
		Generation: state.Options.Generation + 1,
		Items:      []Option{{Value: AllValue, Label: AllLabel}},
	}
	return state
}

func showsLoaded(state State, e ShowsLoaded) State {
	shows := lo.Filter(e.Shows, func(s *source.Show, _ int) bool { return s != nil })
	sort.SliceStable(shows, func(i, j int) bool {
		return strings.ToLower(shows[i].Name) < strings.ToLower(shows[j].Name)
	})

	state.Shows = shows
	return state
}

func showAll(state State) State {
	state.Filter = Filter{}
	state.Displayed = state.Full
	return state
}

func buildOptions(episodes []*source.Episode, generation int) Options {
	items := make([]Option, 0, len(episodes)+1)
	items = append(items, Option{Value: AllValue, Label: AllLabel})
	for i, e := range episodes {
		items = append(items, Option{Value: strconv.Itoa(i), Label: e.String()})
	}

	return Options{Generation: generation, Items: items}
}

func (o Options) valueOf(index int) string {
	value := strconv.Itoa(index)
	if lo.ContainsBy(o.Items, func(item Option) bool { return item.Value == value }) {
		return value
	}
	return AllValue
}

func failure(err error) Status {
	status := Status{Kind: StatusFailed, Message: "Failed to load episodes."}

	var fetchErr *tvmaze.FetchError
	if errors.As(err, &fetchErr) {
		status.Detail = fetchErr.Detail()
	} else if err != nil {
		status.Detail = err.Error()
	}

	return status
}
