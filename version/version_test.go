package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/epibrowse/epibrowse/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCompare(t *testing.T) {
	Convey("Given two versions", t, func() {
		cases := []struct {
			a, b string
			want int
		}{
			{"1.0.0", "1.0.0", 0},
			{"v1.2.0", "1.1.9", 1},
			{"0.3.0", "0.10.0", -1},
			{"2.0.0-rc1", "2.0.0", 0},
		}

		for _, c := range cases {
			got, err := Compare(c.a, c.b)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, c.want)
		}

		Convey("When one is not a version", func() {
			_, err := Compare("latest", "1.0.0")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestLatest(t *testing.T) {
	Convey("Given a releases endpoint", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name": "v9.8.7"}`))
		}))
		defer server.Close()

		previous := ReleasesAPI
		ReleasesAPI = server.URL
		Reset(func() { ReleasesAPI = previous })

		Convey("When asking for the latest version", func() {
			latest, err := Latest(context.Background())

			Convey("Then the tag should be returned without the prefix", func() {
				So(err, ShouldBeNil)
				So(latest, ShouldEqual, "9.8.7")
			})
		})
	})
}
