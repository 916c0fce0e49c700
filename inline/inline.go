package inline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/epibrowse/epibrowse/browse"
	"github.com/epibrowse/epibrowse/history"
	"github.com/epibrowse/epibrowse/key"
	"github.com/epibrowse/epibrowse/log"
	"github.com/epibrowse/epibrowse/render"
	"github.com/epibrowse/epibrowse/style"
	"github.com/spf13/viper"
)

// ErrNoShow is returned when neither a show nor a default show is configured.
var ErrNoShow = errors.New("no show given, use --show or set " + key.BrowseDefaultShow)

// Run loads a show, applies the requested narrowing and prints the cards.
func Run(ctx context.Context, client browse.Client, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	show, err := browse.InitialShow(ctx, client, nil, options.StartOptions)
	if err != nil {
		return err
	}

	if show == nil {
		return ErrNoShow
	}

	state := browse.WithShow(browse.New(), show)
	state = browse.Select(ctx, state, client, show.ID, viper.GetBool(key.BrowseReverse))
	if state.Failed() {
		return fmt.Errorf("%s %s", state.Status.Message, state.Status.Detail)
	}

	if err := history.Save(show, len(state.Full)); err != nil {
		log.Warnf("failed to save history: %v", err)
	}

	if options.Search != "" {
		state = browse.Reduce(state, browse.SearchChanged{Term: options.Search})
	}

	if options.Episode != "" {
		value, err := ParseEpisode(options.Episode, len(state.Full))
		if err != nil {
			return err
		}
		state = browse.Reduce(state, browse.EpisodeSelected{Value: value, Generation: state.Options.Generation})
	}

	if options.Json {
		return writeJson(options.Out, newOutput(show, state))
	}

	display := &render.TextDisplay{
		Out:   options.Out,
		Width: options.Width,
		Links: viper.GetBool(key.TUIShowURLs),
	}

	if err := display.Show(render.Cards(state.Displayed)); err != nil {
		return err
	}

	_, err = fmt.Fprintf(options.Out, "\n%s %s\n", style.Bold(show.String()), style.Faint(state.Count()))
	return err
}

// Shows prints the show list, one "id name" line per show.
func Shows(ctx context.Context, client browse.Client, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	state := browse.Reduce(browse.New(), browse.ShowsLoaded{Shows: client.Shows(ctx)})
	if options.Json {
		shows := make([]Show, len(state.Shows))
		for i, s := range state.Shows {
			shows[i] = Show{ID: s.ID, Name: s.Name, URL: s.URL}
		}
		return writeJson(options.Out, shows)
	}

	var b strings.Builder
	for _, s := range state.Shows {
		b.WriteString(strconv.Itoa(s.ID))
		b.WriteString("\t")
		b.WriteString(s.Name)
		b.WriteString("\n")
	}

	_, err := fmt.Fprint(options.Out, b.String())
	return err
}
