package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/epibrowse/epibrowse/source"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func fullEpisode() *source.Episode {
	return &source.Episode{
		ID:      1,
		Name:    mo.Some("Pilot"),
		Season:  mo.Some(1),
		Number:  mo.Some(1),
		Image:   mo.Some(source.Image{Medium: "http://img/1.jpg"}),
		URL:     mo.Some("http://ep/1"),
		Summary: mo.Some("<p>Walter <b>starts</b>.</p>"),
	}
}

func TestNewCard(t *testing.T) {
	Convey("Given an episode with every field", t, func() {
		card := NewCard(fullEpisode())

		Convey("Then the card should carry its values", func() {
			So(card.Name, ShouldEqual, "Pilot")
			So(card.Code, ShouldEqual, "S01E01")
			So(card.Image, ShouldResemble, Image{URL: "http://img/1.jpg", Alt: "Pilot thumbnail"})
			So(card.Link, ShouldEqual, "http://ep/1")
			So(card.Summary, ShouldEqual, "Walter starts.")
		})
	})

	Convey("Given an episode with nothing but an id", t, func() {
		card := NewCard(&source.Episode{ID: 2})

		Convey("Then every field should fall back", func() {
			So(card.Name, ShouldEqual, UnknownName)
			So(card.Code, ShouldEqual, NoCode)
			So(card.Image, ShouldResemble, Image{URL: PlaceholderImage, Alt: PlaceholderAlt})
			So(card.Link, ShouldEqual, NoLink)
			So(card.Summary, ShouldEqual, "No summary available.")
		})
	})

	Convey("Given an episode with empty name, link and summary", t, func() {
		card := NewCard(&source.Episode{ID: 3, Name: mo.Some(""), URL: mo.Some(""), Summary: mo.Some("")})

		Convey("Then they should fall back like absent ones", func() {
			So(card.Name, ShouldEqual, UnknownName)
			So(card.Link, ShouldEqual, NoLink)
			So(card.Summary, ShouldEqual, "No summary available.")
		})
	})

	Convey("Given an episode with a zero season", t, func() {
		e := fullEpisode()
		e.Season = mo.Some(0)

		Convey("Then the code should be N/A", func() {
			So(NewCard(e).Code, ShouldEqual, NoCode)
		})
	})

	Convey("Given an episode with an empty name", t, func() {
		e := fullEpisode()
		e.Name = mo.Some("")

		Convey("Then the fallback name should be used in the alt text", func() {
			card := NewCard(e)
			So(card.Name, ShouldEqual, UnknownName)
			So(card.Image.Alt, ShouldEqual, "Unknown Episode thumbnail")
		})
	})
}

func TestCards(t *testing.T) {
	Convey("Given a list of episodes", t, func() {
		second := fullEpisode()
		second.Name = mo.Some("Fly")
		cards := Cards([]*source.Episode{fullEpisode(), second})

		Convey("Then one card per episode should be built in order", func() {
			So(cards, ShouldHaveLength, 2)
			So(cards[0].Name, ShouldEqual, "Pilot")
			So(cards[1].Name, ShouldEqual, "Fly")
		})
	})

	Convey("Given no episodes", t, func() {
		So(Cards(nil), ShouldBeEmpty)
	})
}

func TestTextDisplay(t *testing.T) {
	Convey("Given a text display", t, func() {
		var out bytes.Buffer
		cleared := 0
		display := &TextDisplay{Out: &out, Width: 40, Links: true, Clear: func() {
			cleared++
			out.Reset()
		}}

		Convey("When cards are shown twice", func() {
			So(display.Show(Cards([]*source.Episode{fullEpisode()})), ShouldBeNil)
			So(display.Show(Cards([]*source.Episode{{ID: 9, Name: mo.Some("Fly")}})), ShouldBeNil)

			Convey("Then only the last set should remain", func() {
				So(cleared, ShouldEqual, 2)
				So(out.String(), ShouldContainSubstring, "Fly")
				So(out.String(), ShouldNotContainSubstring, "Pilot")
			})
		})

		Convey("When a card has a link", func() {
			So(display.Show(Cards([]*source.Episode{fullEpisode()})), ShouldBeNil)

			Convey("Then the link should be printed", func() {
				So(out.String(), ShouldContainSubstring, "http://ep/1")
				So(out.String(), ShouldContainSubstring, "S01E01")
			})
		})
	})
}

func TestJSONDisplay(t *testing.T) {
	Convey("Given a JSON display", t, func() {
		var out bytes.Buffer
		display := &JSONDisplay{Out: &out}

		Convey("When no cards are shown", func() {
			So(display.Show(nil), ShouldBeNil)

			Convey("Then an empty array should be written", func() {
				So(out.String(), ShouldEqual, "[]\n")
			})
		})

		Convey("When cards are shown", func() {
			So(display.Show(Cards([]*source.Episode{fullEpisode()})), ShouldBeNil)

			Convey("Then they should decode back", func() {
				var cards []Card
				So(json.Unmarshal(out.Bytes(), &cards), ShouldBeNil)
				So(cards, ShouldHaveLength, 1)
				So(cards[0].Image.Alt, ShouldEqual, "Pilot thumbnail")
			})
		})
	})
}
