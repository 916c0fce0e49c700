package tui

import (
	"context"
	"net/http"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/epibrowse/epibrowse/filesystem"
	"github.com/epibrowse/epibrowse/key"
	"github.com/epibrowse/epibrowse/source"
	"github.com/epibrowse/epibrowse/tvmaze"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

type fakeClient struct {
	shows    []*source.Show
	episodes []*source.Episode
	err      error
}

func (f *fakeClient) Shows(context.Context) []*source.Show { return f.shows }

func (f *fakeClient) Episodes(context.Context, int) ([]*source.Episode, error) {
	return f.episodes, f.err
}

func (f *fakeClient) Resolve(context.Context, string) (*source.Show, error) {
	return nil, tvmaze.ErrNotFound
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(b *statefulBubble, text string) {
	for _, r := range text {
		b.Update(runes(string(r)))
	}
}

// started returns a bubble that went through startup and received the
// response of the first episodes request.
func started(client *fakeClient) *statefulBubble {
	b := newBubble(context.Background(), client, &Options{})
	b.resize(100, 40)

	b.Update(b.loadShows()())
	if b.state == loadingState {
		b.Update(b.fetchEpisodes(b.view.Pending, b.view.ShowID)())
	}
	return b
}

func TestBubble(t *testing.T) {
	Convey("Given the default show has three episodes", t, func() {
		viper.Set(key.BrowseDefaultShow, 82)
		client := &fakeClient{
			shows: []*source.Show{{ID: 82, Name: "Game of Thrones"}},
			episodes: []*source.Episode{
				{ID: 1, Name: mo.Some("Pilot"), Season: mo.Some(1), Number: mo.Some(1)},
				{ID: 2, Name: mo.Some("Fly"), Season: mo.Some(1), Number: mo.Some(2)},
				{ID: 3, Name: mo.Some("Pilot Part 2"), Season: mo.Some(1), Number: mo.Some(3)},
			},
		}

		b := started(client)

		Convey("Then the episodes view should show all of them", func() {
			So(b.state, ShouldEqual, episodesState)
			So(b.view.Count(), ShouldEqual, "3 / 3")
			So(b.View(), ShouldContainSubstring, "3 / 3")
			So(b.View(), ShouldContainSubstring, "Pilot Part 2")
		})

		Convey("When searching for pilot", func() {
			b.Update(runes("/"))
			typeText(b, "pilot")

			Convey("Then the list should narrow on every keystroke", func() {
				So(b.inputC.Focused(), ShouldBeTrue)
				So(b.view.Count(), ShouldEqual, "2 / 3")
				So(b.View(), ShouldNotContainSubstring, "Fly")
			})

			Convey("And the search is left", func() {
				b.Update(tea.KeyMsg{Type: tea.KeyEsc})

				Convey("Then the filter should stay applied", func() {
					So(b.inputC.Focused(), ShouldBeFalse)
					So(b.view.Count(), ShouldEqual, "2 / 3")
				})
			})
		})

		Convey("When an episode is picked from the selector", func() {
			b.Update(runes("e"))
			So(b.state, ShouldEqual, selectState)

			b.Update(tea.KeyMsg{Type: tea.KeyDown})
			b.Update(tea.KeyMsg{Type: tea.KeyDown})
			b.Update(tea.KeyMsg{Type: tea.KeyEnter})

			Convey("Then only that episode should be shown and search disabled", func() {
				So(b.state, ShouldEqual, episodesState)
				So(b.view.Count(), ShouldEqual, "1 / 3")
				So(b.view.Displayed[0].ID, ShouldEqual, 2)
				So(b.view.Search.Enabled, ShouldBeFalse)
			})

			Convey("And search is requested", func() {
				b.Update(runes("/"))

				Convey("Then the input should stay unfocused", func() {
					So(b.inputC.Focused(), ShouldBeFalse)
				})
			})

			Convey("And all episodes are requested", func() {
				b.Update(runes("a"))

				Convey("Then everything should be back", func() {
					So(b.view.Count(), ShouldEqual, "3 / 3")
					So(b.view.Search.Enabled, ShouldBeTrue)
				})
			})
		})

		Convey("When the show selector is opened", func() {
			b.Update(runes("s"))

			Convey("Then the show list should be visible", func() {
				So(b.state, ShouldEqual, showsState)
				So(b.View(), ShouldContainSubstring, "Game of Thrones")
			})
		})
	})

	Convey("Given the episodes request fails", t, func() {
		viper.Set(key.BrowseDefaultShow, 82)
		client := &fakeClient{
			shows: []*source.Show{{ID: 82, Name: "Game of Thrones"}},
			err:   &tvmaze.FetchError{Kind: tvmaze.StatusFailure, StatusCode: http.StatusInternalServerError},
		}

		b := started(client)

		Convey("Then the error view should be shown without a count", func() {
			So(b.state, ShouldEqual, errorState)
			So(b.View(), ShouldContainSubstring, "500")
			So(b.View(), ShouldNotContainSubstring, "0 / 0")
		})

		Convey("When retrying", func() {
			client.err = nil
			client.episodes = []*source.Episode{{ID: 1, Name: mo.Some("Pilot")}}
			b.Update(runes("r"))

			So(b.state, ShouldEqual, loadingState)
			b.Update(b.fetchEpisodes(b.view.Pending, b.view.ShowID)())

			Convey("Then the episodes should be shown", func() {
				So(b.state, ShouldEqual, episodesState)
				So(b.view.Count(), ShouldEqual, "1 / 1")
			})
		})

		Convey("When a stale response arrives", func() {
			b.Update(runes("r"))
			pending := b.view.Pending
			b.Update(b.fetchEpisodes(pending-1, b.view.ShowID)())

			Convey("Then it should be ignored", func() {
				So(b.state, ShouldEqual, loadingState)
				So(b.view.Loading(), ShouldBeTrue)
			})
		})
	})
}
