// Package mini is a prompt driven front end for terminals where the full TUI is not wanted.
package mini

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/epibrowse/epibrowse/browse"
	"github.com/epibrowse/epibrowse/key"
	"github.com/epibrowse/epibrowse/render"
	"github.com/epibrowse/epibrowse/tvmaze"
	"github.com/epibrowse/epibrowse/util"
	"github.com/spf13/viper"
)

// Options configures Run.
type Options struct {
	browse.StartOptions
}

type askFunc func(p survey.Prompt, response any, opts ...survey.AskOpt) error

type mini struct {
	ctx    context.Context
	client browse.Client
	ask    askFunc
	out    io.Writer

	display render.Display

	state         state
	statesHistory util.Stack[state]

	view browse.State
}

func newMini(ctx context.Context, client browse.Client, out io.Writer) *mini {
	width := 0
	if w, _, err := util.TerminalSize(); err == nil {
		width = w
	}

	return &mini{
		ctx:    ctx,
		client: client,
		ask:    survey.AskOne,
		out:    out,
		display: &render.TextDisplay{
			Out:   out,
			Width: width,
			Links: viper.GetBool(key.TUIShowURLs),
		},
		statesHistory: util.Stack[state]{},
		view:          browse.New(),
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.state = m.statesHistory.Pop()
	}
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	if m.state != 0 {
		m.statesHistory.Push(m.state)
	}
	m.state = s
}

// Run starts the prompt loop and returns when the user quits.
func Run(ctx context.Context, options *Options) error {
	m := newMini(ctx, tvmaze.FromConfig(), os.Stdout)
	m.display.(*render.TextDisplay).Clear = util.ClearScreen

	err := m.run(options)
	if errors.Is(err, terminal.InterruptErr) {
		return nil
	}
	return err
}

func (m *mini) run(options *Options) error {
	if err := m.start(options); err != nil {
		return err
	}

	for m.state != quitState {
		if err := m.handleState(); err != nil {
			return err
		}
	}

	return nil
}

func (m *mini) start(options *Options) error {
	erase := progress(m.out, "Fetching shows..")
	m.view = browse.Reduce(m.view, browse.ShowsLoaded{Shows: m.client.Shows(m.ctx)})
	erase()

	show, err := browse.InitialShow(m.ctx, m.client, m.view.Shows, options.StartOptions)
	if err != nil {
		return err
	}

	if show == nil {
		m.newState(showSelectState)
		return nil
	}

	m.view = browse.WithShow(m.view, show)
	m.load(show.ID)
	m.newState(menuState)
	return nil
}

func (m *mini) handleState() error {
	switch m.state {
	case showSelectState:
		return m.handleShowSelectState()
	case menuState:
		return m.handleMenuState()
	case searchState:
		return m.handleSearchState()
	case episodeSelectState:
		return m.handleEpisodeSelectState()
	default:
		return fmt.Errorf("unknown state %d", m.state)
	}
}

func progress(out io.Writer, msg string) (eraser func()) {
	if out != os.Stdout {
		return func() {}
	}
	return util.PrintErasable(msg)
}
