package config

import (
	"testing"

	"github.com/epibrowse/epibrowse/filesystem"
	"github.com/epibrowse/epibrowse/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetInt(key.BrowseDefaultShow), ShouldEqual, 82)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("api.base_url"), ShouldEqual, "api_base_url")
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		So(Setup(), ShouldBeNil)

		Reset(func() {
			viper.Set(key.APIBaseURL, Default[key.APIBaseURL].Value)
			viper.Set(key.APITimeoutSeconds, Default[key.APITimeoutSeconds].Value)
		})

		Convey("A relative base url is rejected", func() {
			viper.Set(key.APIBaseURL, "api.tvmaze.com")
			So(Validate(), ShouldNotBeNil)
		})

		Convey("A zero timeout is rejected", func() {
			viper.Set(key.APITimeoutSeconds, 0)
			So(Validate(), ShouldNotBeNil)
		})

		Convey("Defaults are valid", func() {
			So(Validate(), ShouldBeNil)
		})
	})
}

func TestFieldEnv(t *testing.T) {
	Convey("Field.Env prefixes the application name", t, func() {
		f := Default[key.APIBaseURL]
		So(f.Env(), ShouldEqual, "EPIBROWSE_API_BASE_URL")
	})
}

func TestClosest(t *testing.T) {
	Convey("Given a misspelled key", t, func() {
		Convey("When looking up the closest key", func() {
			Convey("Then the registered key should be suggested", func() {
				So(Closest("api.base_ur"), ShouldEqual, key.APIBaseURL)
				So(Closest("browse.revers"), ShouldEqual, key.BrowseReverse)
			})
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Given command line values", t, func() {
		Convey("Then they should be converted to the default's type", func() {
			v, err := Parse(key.APITimeoutSeconds, []string{"30"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 30)

			v, err = Parse(key.BrowseReverse, []string{"true"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)

			v, err = Parse(key.APIBaseURL, []string{"http://localhost:8080"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "http://localhost:8080")
		})

		Convey("Then bad values should be rejected", func() {
			_, err := Parse(key.APITimeoutSeconds, []string{"soon"})
			So(err, ShouldNotBeNil)

			_, err = Parse(key.BrowseReverse, []string{"maybe"})
			So(err, ShouldNotBeNil)

			_, err = Parse(key.BrowseReverse, nil)
			So(err, ShouldNotBeNil)

			_, err = Parse("no.such_key", []string{"1"})
			So(err, ShouldNotBeNil)
		})
	})
}
