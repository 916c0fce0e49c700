package browse

import (
	"context"
	"errors"
	"strconv"

	"github.com/epibrowse/epibrowse/history"
	"github.com/epibrowse/epibrowse/key"
	"github.com/epibrowse/epibrowse/source"
	"github.com/spf13/viper"
)

// ErrNoHistory is returned when continuing without any viewed show.
var ErrNoHistory = errors.New("no recently viewed shows")

// StartOptions selects the show opened on start.
type StartOptions struct {
	// Continue opens the most recently viewed show.
	Continue bool
	// Show is a show id or name.
	Show string
}

// InitialShow resolves the show to open first. A nil show with a nil error
// means the user has to pick one.
func InitialShow(ctx context.Context, client Client, shows []*source.Show, options StartOptions) (*source.Show, error) {
	ref := options.Show

	if options.Continue {
		last, ok := history.Last().Get()
		if !ok {
			return nil, ErrNoHistory
		}
		ref = strconv.Itoa(last.ShowID)
	}

	if ref == "" {
		id := viper.GetInt(key.BrowseDefaultShow)
		if id <= 0 {
			return nil, nil
		}
		ref = strconv.Itoa(id)
	}

	if id, err := strconv.Atoi(ref); err == nil {
		for _, show := range shows {
			if show.ID == id {
				return show, nil
			}
		}
	}

	return client.Resolve(ctx, ref)
}

// WithShow makes sure show is part of the show selector.
func WithShow(state State, show *source.Show) State {
	if show == nil {
		return state
	}

	for _, s := range state.Shows {
		if s.ID == show.ID {
			return state
		}
	}

	shows := make([]*source.Show, 0, len(state.Shows)+1)
	shows = append(shows, state.Shows...)
	shows = append(shows, show)
	return Reduce(state, ShowsLoaded{Shows: shows})
}
