package browse

import "github.com/epibrowse/epibrowse/source"

// Event is an input to Reduce.
type Event interface {
	event()
}

// SearchChanged is sent on every edit of the search input.
type SearchChanged struct {
	Term string
}

// EpisodeSelected is sent when an episode selector option is picked.
// Generation is the Options generation the value was taken from.
type EpisodeSelected struct {
	Value      string
	Generation int
}

// ShowSelected is sent when a show is picked. ID 0 is the "select a show" placeholder.
type ShowSelected struct {
	ID int
}

// EpisodesLoaded carries a successful episodes response for request Seq.
type EpisodesLoaded struct {
	Seq      int
	ShowID   int
	Episodes []*source.Episode
}

// EpisodesFailed carries a failed episodes response for request Seq.
type EpisodesFailed struct {
	Seq int
	Err error
}

// ShowsLoaded fills the show selector.
type ShowsLoaded struct {
	Shows []*source.Show
}

func (SearchChanged) event()   {}
func (EpisodeSelected) event() {}
func (ShowSelected) event()    {}
func (EpisodesLoaded) event()  {}
func (EpisodesFailed) event()  {}
func (ShowsLoaded) event()     {}
