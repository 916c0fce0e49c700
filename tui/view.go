package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/epibrowse/epibrowse/icon"
	"github.com/epibrowse/epibrowse/style"
	"github.com/muesli/reflow/wrap"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

// episodesHeaderHeight is the number of lines above the cards.
const episodesHeaderHeight = 4

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case errorState:
		output = b.viewError()
	case showsState:
		output = b.viewShows()
	case episodesState:
		output = b.viewEpisodes()
	case selectState:
		output = b.viewSelect()
	default:
		output = "Unknown state"
	}

	return b.notifierC.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " " + b.progressStatus,
		},
	)
}

func (b *statefulBubble) viewError() string {
	status := b.view.Status
	message := style.Fg(style.ErrorColor)(icon.Get(icon.Fail) + " " + status.Message)

	lines := []string{
		style.ErrorTitle("Error"),
		"",
		wrap.String(message, b.width),
	}

	if status.Detail != "" {
		lines = append(lines, "", wrap.String(style.Faint(status.Detail), b.width))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewShows() string {
	return listExtraPaddingStyle.Render(b.showsC.View())
}

func (b *statefulBubble) viewSelect() string {
	return listExtraPaddingStyle.Render(b.selectC.View())
}

func (b *statefulBubble) viewEpisodes() string {
	header := style.Title(b.title())
	if b.view.CountVisible() {
		header += " " + style.Faint(b.view.Count())
	}

	search := b.inputC.View()
	if suggestion, ok := b.searchSuggestion.Get(); ok && b.inputC.Focused() {
		search += "  " + style.Faint(icon.Get(icon.Search)+" "+suggestion)
	}

	lines := []string{
		header,
		"",
		search,
		"",
		b.cardsC.View(),
	}

	l := strings.Join(lines, "\n")
	l += "\n" + b.helpC.View(b.keymap)
	return paddingStyle.Render(l)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
