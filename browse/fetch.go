package browse

import (
	"context"

	"github.com/epibrowse/epibrowse/log"
	"github.com/epibrowse/epibrowse/source"
	"golang.org/x/exp/slices"
)

// EpisodeFetcher loads the episodes of a show.
type EpisodeFetcher interface {
	Episodes(ctx context.Context, showID int) ([]*source.Episode, error)
}

// Fetch runs the episodes request numbered seq and returns the event to
// feed back into Reduce. With reverse the list is returned newest first.
func Fetch(ctx context.Context, fetcher EpisodeFetcher, seq, showID int, reverse bool) Event {
	episodes, err := fetcher.Episodes(ctx, showID)
	if err != nil {
		log.WithField("show", showID).Errorf("failed to load episodes: %v", err)
		return EpisodesFailed{Seq: seq, Err: err}
	}

	if reverse {
		episodes = slices.Clone(episodes)
		slices.Reverse(episodes)
	}

	log.WithField("show", showID).Infof("loaded %d episodes", len(episodes))
	return EpisodesLoaded{Seq: seq, ShowID: showID, Episodes: episodes}
}

// Select applies ShowSelected and, when it started a request, runs it.
// Front ends without an event loop use it to change shows synchronously.
func Select(ctx context.Context, state State, fetcher EpisodeFetcher, showID int, reverse bool) State {
	next := Reduce(state, ShowSelected{ID: showID})
	if next.Pending == state.Pending {
		return next
	}

	return Reduce(next, Fetch(ctx, fetcher, next.Pending, showID, reverse))
}

// Client is what the front ends need from the listings API.
type Client interface {
	EpisodeFetcher
	Shows(ctx context.Context) []*source.Show
	Resolve(ctx context.Context, ref string) (*source.Show, error)
}
