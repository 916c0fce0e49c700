package source

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEpisodeDecode(t *testing.T) {
	Convey("Given an episode payload", t, func() {
		Convey("When every field is present", func() {
			var e Episode
			err := json.Unmarshal([]byte(`{
				"id": 1,
				"name": "Pilot",
				"season": 1,
				"number": 2,
				"image": {"medium": "http://img/m.jpg", "original": "http://img/o.jpg"},
				"url": "http://ep/1",
				"summary": "<p>Hello</p>"
			}`), &e)

			Convey("Then it should decode without error", func() {
				So(err, ShouldBeNil)
				So(e.Name.MustGet(), ShouldEqual, "Pilot")
				So(e.Code(), ShouldEqual, "S01E02")
				So(e.HasCode(), ShouldBeTrue)
				So(e.Image.MustGet().Medium, ShouldEqual, "http://img/m.jpg")
				So(e.PlainSummary(), ShouldEqual, "Hello")
			})
		})

		Convey("When optional fields are null or missing", func() {
			var e Episode
			err := json.Unmarshal([]byte(`{"id": 2, "season": null, "image": null}`), &e)

			Convey("Then they should be absent", func() {
				So(err, ShouldBeNil)
				So(e.Name.IsAbsent(), ShouldBeTrue)
				So(e.Season.IsAbsent(), ShouldBeTrue)
				So(e.Number.IsAbsent(), ShouldBeTrue)
				So(e.Image.IsAbsent(), ShouldBeTrue)
				So(e.Summary.IsAbsent(), ShouldBeTrue)
				So(e.Code(), ShouldEqual, "S00E00")
				So(e.HasCode(), ShouldBeFalse)
			})
		})

		Convey("When season and number are strings", func() {
			var e Episode
			err := json.Unmarshal([]byte(`{"id": 3, "season": "2", "number": "x"}`), &e)

			Convey("Then numeric strings should be accepted and junk ignored", func() {
				So(err, ShouldBeNil)
				So(e.Season.MustGet(), ShouldEqual, 2)
				So(e.Number.IsAbsent(), ShouldBeTrue)
			})
		})

		Convey("When season is zero", func() {
			var e Episode
			_ = json.Unmarshal([]byte(`{"id": 4, "season": 0, "number": 1}`), &e)

			Convey("Then the code should not be usable", func() {
				So(e.HasCode(), ShouldBeFalse)
				So(e.String(), ShouldEqual, "S00E00 - Unknown Episode")
			})
		})
	})
}

func TestShow(t *testing.T) {
	Convey("Given a show", t, func() {
		Convey("When it has a name", func() {
			s := &Show{ID: 82, Name: "Game of Thrones", Premiered: "2011-04-17"}
			So(s.String(), ShouldEqual, "Game of Thrones")
			So(s.Year(), ShouldEqual, "2011")
		})

		Convey("When it has no name", func() {
			s := &Show{ID: 7}
			So(s.String(), ShouldEqual, "Show #7")
			So(s.Year(), ShouldBeEmpty)
		})
	})
}
