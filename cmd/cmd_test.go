package cmd

import (
	"testing"

	"github.com/epibrowse/epibrowse/filesystem"
	"github.com/epibrowse/epibrowse/key"
	"github.com/epibrowse/epibrowse/query"
	"github.com/epibrowse/epibrowse/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestEnvVariables(t *testing.T) {
	Convey("Given the registered config keys", t, func() {
		names := envVariables()

		Convey("Then every variable should carry the prefix and be sorted", func() {
			So(names, ShouldContain, "EPIBROWSE_API_BASE_URL")
			So(names, ShouldContain, "EPIBROWSE_BROWSE_DEFAULT_SHOW")
			So(names, ShouldContain, where.EnvConfigPath)
			So(slices.IsSorted(names), ShouldBeTrue)
		})
	})
}

func TestErrUnknownKey(t *testing.T) {
	Convey("Given a misspelled key", t, func() {
		err := errUnknownKey("browse.default_shw")

		Convey("Then the closest key should be suggested", func() {
			So(err.Error(), ShouldContainSubstring, "browse.default_show")
		})
	})
}

func TestStartFlags(t *testing.T) {
	Convey("Given the inline command flags", t, func() {
		So(inlineCmd.ParseFlags([]string{"--show", "Lost", "--search", "island"}), ShouldBeNil)

		Convey("Then the start options should be read from them", func() {
			options := startOptions(inlineCmd)
			So(options.Show, ShouldEqual, "Lost")
			So(options.Continue, ShouldBeFalse)
		})
	})
}

func TestRememberSearch(t *testing.T) {
	Convey("Given an inline search term", t, func() {
		viper.Set(key.SearchShowQuerySuggestions, true)

		Convey("When it is remembered", func() {
			rememberSearch("winterfell")
			rememberSearch("")

			Convey("Then it should be offered as a suggestion", func() {
				So(query.SuggestMany("wint"), ShouldContain, "winterfell")
			})
		})
	})
}
