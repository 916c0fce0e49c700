package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/epibrowse/epibrowse/browse"
	"github.com/epibrowse/epibrowse/filesystem"
	"github.com/epibrowse/epibrowse/key"
	"github.com/epibrowse/epibrowse/source"
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

func (f *fakeClient) Resolve(_ context.Context, ref string) (*source.Show, error) {
	for _, s := range f.shows {
		if s.Name == ref {
			return s, nil
		}
	}
	return &source.Show{ID: 82, Name: "Game of Thrones"}, nil
}

func newClient() *fakeClient {
	return &fakeClient{
		shows: []*source.Show{{ID: 82, Name: "Game of Thrones"}, {ID: 1, Name: "Under the Dome"}},
		episodes: []*source.Episode{
			{ID: 1, Name: mo.Some("Pilot"), Season: mo.Some(1), Number: mo.Some(1), Summary: mo.Some("<p>Start</p>")},
			{ID: 2, Name: mo.Some("Fly"), Season: mo.Some(1), Number: mo.Some(2)},
			{ID: 3, Name: mo.Some("Pilot Part 2"), Season: mo.Some(1), Number: mo.Some(3)},
		},
	}
}

func TestRun(t *testing.T) {
	Convey("Given a show with three episodes", t, func() {
		viper.Set(key.BrowseDefaultShow, 82)
		client := newClient()
		var buf bytes.Buffer

		Convey("When searching with json output", func() {
			err := Run(context.Background(), client, &Options{Out: &buf, Search: "PILOT", Json: true})

			Convey("Then the output should hold the matching cards", func() {
				So(err, ShouldBeNil)

				var output Output
				So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
				So(output.Show.ID, ShouldEqual, 82)
				So(output.Filter, ShouldEqual, "search")
				So(output.Count.Label, ShouldEqual, "2 / 3")
				So(output.Cards, ShouldHaveLength, 2)
				So(output.Cards[0].Summary, ShouldEqual, "Start")
				So(output.Cards[1].Image.Alt, ShouldEqual, "No image available")
			})
		})

		Convey("When picking the last episode as text", func() {
			err := Run(context.Background(), client, &Options{Out: &buf, Episode: "last"})

			Convey("Then only that episode should be printed", func() {
				So(err, ShouldBeNil)
				So(buf.String(), ShouldContainSubstring, "Pilot Part 2")
				So(buf.String(), ShouldContainSubstring, "1 / 3")
				So(buf.String(), ShouldNotContainSubstring, "Fly")
			})
		})

		Convey("When picking an episode out of range", func() {
			err := Run(context.Background(), client, &Options{Out: &buf, Episode: "10"})

			Convey("Then an error should be returned", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When a named show is requested", func() {
			err := Run(context.Background(), client, &Options{
				Out:          &buf,
				Json:         true,
				StartOptions: browse.StartOptions{Show: "Under the Dome"},
			})

			Convey("Then that show should be used", func() {
				So(err, ShouldBeNil)
				var output Output
				So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
				So(output.Show.Name, ShouldEqual, "Under the Dome")
			})
		})

		Convey("When the episodes request fails", func() {
			client.err = errors.New("connection refused")
			err := Run(context.Background(), client, &Options{Out: &buf})

			Convey("Then the failure should be returned", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "connection refused")
			})
		})

		Convey("When no show is configured", func() {
			viper.Set(key.BrowseDefaultShow, 0)
			Reset(func() { viper.Set(key.BrowseDefaultShow, 82) })

			err := Run(context.Background(), client, &Options{Out: &buf})

			Convey("Then ErrNoShow should be returned", func() {
				So(errors.Is(err, ErrNoShow), ShouldBeTrue)
			})
		})
	})
}

func TestShows(t *testing.T) {
	Convey("Given a show list", t, func() {
		var buf bytes.Buffer

		Convey("When listing as text", func() {
			So(Shows(context.Background(), newClient(), &Options{Out: &buf}), ShouldBeNil)

			Convey("Then shows should be printed sorted by name", func() {
				So(buf.String(), ShouldEqual, "82\tGame of Thrones\n1\tUnder the Dome\n")
			})
		})

		Convey("When listing as json", func() {
			So(Shows(context.Background(), newClient(), &Options{Out: &buf, Json: true}), ShouldBeNil)

			var shows []Show
			So(json.Unmarshal(buf.Bytes(), &shows), ShouldBeNil)
			So(shows, ShouldHaveLength, 2)
		})
	})
}

func TestParseEpisode(t *testing.T) {
	Convey("Given episode selectors", t, func() {
		for selector, want := range map[string]string{
			"all": "all", "": "all", "first": "0", "last": "4", "2": "2", " ALL ": "all",
		} {
			got, err := ParseEpisode(selector, 5)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, want)
		}

		for _, selector := range []string{"5", "-1", "abc"} {
			_, err := ParseEpisode(selector, 5)
			So(err, ShouldNotBeNil)
		}

		Convey("When the show has no episodes", func() {
			_, err := ParseEpisode("last", 0)
			So(err, ShouldNotBeNil)
		})
	})
}
