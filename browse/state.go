// Package browse holds the view state of the episode browser and the reducer
// that moves it between states in response to user input and fetch results.
package browse

import (
	"fmt"

	"github.com/epibrowse/epibrowse/source"
)

const (
	// AllValue is the episode selector option meaning "no single episode".
	AllValue = "all"
	// AllLabel is the label of the AllValue option.
	AllLabel = "All episodes"

	SearchPlaceholder         = "Search episodes..."
	SearchDisabledPlaceholder = "Select all episodes to search"
)

// FilterKind tells which narrowing, if any, is applied to the full list.
type FilterKind int

const (
	FilterNone FilterKind = iota
	FilterSearch
	FilterSelection
)

func (k FilterKind) String() string {
	switch k {
	case FilterSearch:
		return "search"
	case FilterSelection:
		return "selection"
	default:
		return "none"
	}
}

// Filter is the active filter. Term is set for FilterSearch, Index for
// FilterSelection. At most one kind is active.
type Filter struct {
	Kind  FilterKind
	Term  string
	Index int
}

// SearchBox mirrors the search input.
type SearchBox struct {
	Value       string
	Enabled     bool
	Placeholder string
}

// Option is an entry of the episode selector.
type Option struct {
	Value string
	Label string
}

// Options is the episode selector content. Generation changes every time the
// options are rebuilt so values picked from an older list can be told apart.
type Options struct {
	Generation int
	Items      []Option
}

// StatusKind is the loading status of the episode list.
type StatusKind int

const (
	StatusIdle StatusKind = iota
	StatusLoading
	StatusFailed
)

// Status is the loading status plus the failure text when failed.
type Status struct {
	Kind    StatusKind
	Message string
	Detail  string
}

// State is the whole view state. Displayed is always derived from Full and
// Filter, never patched.
type State struct {
	Shows     []*source.Show
	ShowID    int
	Full      []*source.Episode
	Displayed []*source.Episode
	Filter    Filter
	Search    SearchBox
	Options   Options
	Status    Status
	// Pending is the sequence number of the latest episodes request.
	Pending int
}

// New returns the initial state: nothing loaded, search enabled.
func New() State {
	return State{
		Full:      []*source.Episode{},
		Displayed: []*source.Episode{},
		Search: SearchBox{
			Enabled:     true,
			Placeholder: SearchPlaceholder,
		},
		Options: Options{Items: []Option{{Value: AllValue, Label: AllLabel}}},
	}
}

// Count is the "{displayed} / {total}" label.
func (s State) Count() string {
	return fmt.Sprintf("%d / %d", len(s.Displayed), len(s.Full))
}

// CountVisible reports whether the count label should be shown.
func (s State) CountVisible() bool {
	return s.Status.Kind == StatusIdle
}

// Loading reports whether an episodes request is in flight.
func (s State) Loading() bool {
	return s.Status.Kind == StatusLoading
}

// Failed reports whether the last episodes request failed.
func (s State) Failed() bool {
	return s.Status.Kind == StatusFailed
}

// Show returns the currently selected show, nil if it is not in Shows.
func (s State) Show() *source.Show {
	for _, show := range s.Shows {
		if show.ID == s.ShowID {
			return show
		}
	}
	return nil
}

// Selected is the value the episode selector currently shows.
func (s State) Selected() string {
	if s.Filter.Kind == FilterSelection {
		return s.Options.valueOf(s.Filter.Index)
	}
	return AllValue
}
