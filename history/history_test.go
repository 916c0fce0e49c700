package history

import (
	"testing"
	"time"

	"github.com/epibrowse/epibrowse/filesystem"
	"github.com/epibrowse/epibrowse/key"
	"github.com/epibrowse/epibrowse/source"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given history saving is enabled", t, func() {
		viper.Set(key.HistorySave, true)
		Reset(func() {
			_ = Remove(1)
			_ = Remove(2)
		})

		first := &source.Show{ID: 1, Name: "Pilot Show"}
		second := &source.Show{ID: 2, Name: "Other Show"}

		Convey("When two shows are viewed", func() {
			So(Save(first, 10), ShouldBeNil)
			time.Sleep(time.Millisecond)
			So(Save(second, 3), ShouldBeNil)

			Convey("Then the latest one should come first", func() {
				entries, err := Recent()
				So(err, ShouldBeNil)
				So(len(entries), ShouldBeGreaterThanOrEqualTo, 2)
				So(entries[0].ShowID, ShouldEqual, 2)
				So(Last().MustGet().ShowName, ShouldEqual, "Other Show")
			})

			Convey("And the first one is viewed again", func() {
				time.Sleep(time.Millisecond)
				So(Save(first, 11), ShouldBeNil)

				Convey("Then it should move to the front without duplicates", func() {
					entries, err := Recent()
					So(err, ShouldBeNil)
					So(entries[0].ShowID, ShouldEqual, 1)
					So(entries[0].Episodes, ShouldEqual, 11)

					count := 0
					for _, e := range entries {
						if e.ShowID == 1 {
							count++
						}
					}
					So(count, ShouldEqual, 1)
				})
			})

			Convey("And one is removed", func() {
				So(Remove(2), ShouldBeNil)

				Convey("Then it should be gone", func() {
					saved, err := Get()
					So(err, ShouldBeNil)
					So(saved, ShouldNotContainKey, 2)
				})
			})
		})
	})

	Convey("Given history saving is disabled", t, func() {
		viper.Set(key.HistorySave, false)
		Reset(func() { viper.Set(key.HistorySave, true) })

		Convey("When a show is viewed", func() {
			So(Save(&source.Show{ID: 99, Name: "Hidden"}, 1), ShouldBeNil)

			Convey("Then it should not be recorded", func() {
				saved, err := Get()
				So(err, ShouldBeNil)
				So(saved, ShouldNotContainKey, 99)
			})
		})
	})
}

func TestTrim(t *testing.T) {
	Convey("Given more entries than the limit", t, func() {
		saved := make(map[int]*Entry)
		now := time.Now()
		for i := 1; i <= Limit+5; i++ {
			saved[i] = &Entry{ShowID: i, ViewedAt: now.Add(time.Duration(i) * time.Minute)}
		}

		Convey("Then only the most recent ones should be kept", func() {
			trimmed := trim(saved)
			So(trimmed, ShouldHaveLength, Limit)
			So(trimmed, ShouldContainKey, Limit+5)
			So(trimmed, ShouldNotContainKey, 1)
		})
	})
}

func TestEntryDescription(t *testing.T) {
	Convey("Given an entry viewed two hours ago", t, func() {
		entry := &Entry{ShowID: 82, Episodes: 1234, ViewedAt: time.Now().Add(-2 * time.Hour)}

		Convey("Then the description should be humanized", func() {
			So(entry.Description(), ShouldEqual, "1,234 episodes, viewed 2 hours ago")
			So(entry.String(), ShouldEqual, "Show #82")
		})
	})
}
