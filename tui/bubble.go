package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/epibrowse/epibrowse/browse"
	"github.com/epibrowse/epibrowse/internal/ui"
	"github.com/epibrowse/epibrowse/key"
	"github.com/epibrowse/epibrowse/render"
	"github.com/epibrowse/epibrowse/source"
	"github.com/epibrowse/epibrowse/style"
	"github.com/epibrowse/epibrowse/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// statefulBubble is the TUI model. Everything it shows about episodes is
// derived from view.
type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap

	// components
	spinnerC  spinner.Model
	inputC    textinput.Model
	showsC    list.Model
	selectC   list.Model
	cardsC    viewport.Model
	helpC     help.Model
	notifierC *ui.Model

	ctx     context.Context
	client  browse.Client
	options *Options

	view browse.State
	// selectGeneration is the options generation selectC was built from
	selectGeneration int

	progressStatus   string
	searchSuggestion mo.Option[string]

	width, height int
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	// transient states are never returned to
	if !lo.Contains([]state{loadingState, errorState}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	styledWidth := width - x
	styledHeight := height - y

	listWidth := width - xx
	listHeight := height - yy

	b.showsC.SetSize(listWidth, listHeight)
	b.showsC.Help.Width = listWidth

	b.selectC.SetSize(listWidth, listHeight)
	b.selectC.Help.Width = listWidth

	b.width = styledWidth
	b.height = styledHeight
	b.helpC.Width = listWidth
	b.inputC.Width = util.Max(styledWidth-lipgloss.Width(b.inputC.Prompt)-1, 1)

	b.cardsC.Width = styledWidth
	b.cardsC.Height = util.Max(styledHeight-episodesHeaderHeight-1, 1)
	b.refreshCards()
}

// sync copies view into the components that mirror it.
func (b *statefulBubble) sync() {
	b.inputC.Placeholder = b.view.Search.Placeholder
	if b.inputC.Value() != b.view.Search.Value {
		b.inputC.SetValue(b.view.Search.Value)
	}
	if !b.view.Search.Enabled {
		b.blurSearch()
	}

	selected := b.view.Selected()
	b.selectGeneration = b.view.Options.Generation
	b.selectC.SetItems(lo.Map(b.view.Options.Items, func(o browse.Option, _ int) list.Item {
		return &listItem{internal: o, marked: o.Value == selected && o.Value != browse.AllValue}
	}))

	b.refreshCards()
}

func (b *statefulBubble) syncShows() {
	b.showsC.SetItems(lo.Map(b.view.Shows, func(s *source.Show, _ int) list.Item {
		return &listItem{internal: s, marked: s.ID == b.view.ShowID}
	}))
}

func (b *statefulBubble) refreshCards() {
	links := viper.GetBool(key.TUIShowURLs)
	spacing := strings.Repeat("\n", util.Max(viper.GetInt(key.TUIItemSpacing), 0)+1)

	cards := render.Cards(b.view.Displayed)
	blocks := lo.Map(cards, func(card render.Card, _ int) string {
		return render.FormatCard(card, b.cardsC.Width, links)
	})

	content := strings.Join(blocks, spacing)
	if len(cards) == 0 {
		content = style.Faint("No episodes to show.")
	}

	b.cardsC.SetContent(content)
	b.cardsC.GotoTop()
}

func (b *statefulBubble) focusSearch() {
	b.inputC.Focus()
	b.keymap.searching = true
}

func (b *statefulBubble) blurSearch() {
	b.inputC.Blur()
	b.keymap.searching = false
	b.searchSuggestion = mo.None[string]()
}

func (b *statefulBubble) title() string {
	if show := b.view.Show(); show != nil {
		return show.String()
	}
	return "Episodes"
}

func newBubble(ctx context.Context, client browse.Client, options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,
		ctx:           ctx,
		client:        client,
		options:       options,
		view:          browse.New(),
		notifierC:     &ui.Model{},
	}

	type listOptions struct {
		TitleStyle mo.Option[lipgloss.Style]
	}

	makeList := func(title string, description bool, options *listOptions) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.ShowDescription = description
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.NoItems = paddingStyle
		if titleStyle, ok := options.TitleStyle.Get(); ok {
			listC.Styles.Title = titleStyle
		}
		listC.StatusMessageLifetime = time.Second * 3
		listC.SetShowPagination(false)
		listC.SetShowStatusBar(false)

		return listC
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = browse.SearchPlaceholder
	bubble.inputC.CharLimit = 80
	bubble.inputC.Prompt = viper.GetString(key.TUISearchPromptString)

	bubble.showsC = makeList("Shows", true, &listOptions{
		TitleStyle: mo.Some(
			lipgloss.NewStyle().Foreground(style.Base).Background(style.Lavender).Padding(0, 1),
		),
	})
	bubble.showsC.SetStatusBarItemName("show", "shows")

	bubble.selectC = makeList("Episodes", false, &listOptions{
		TitleStyle: mo.Some(
			lipgloss.NewStyle().Foreground(style.Base).Background(style.Peach).Padding(0, 1),
		),
	})
	bubble.selectC.SetStatusBarItemName("episode", "episodes")

	bubble.cardsC = viewport.New(0, 0)
	bubble.cardsC.KeyMap = keymap.forViewport()

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.progressStatus = "Fetching shows..."
	bubble.setState(loadingState)

	return &bubble
}

func loadingStatus(name string) string {
	return fmt.Sprintf("Loading episodes of %s...", name)
}
