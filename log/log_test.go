package log

import (
	"bytes"
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
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)

		Convey("Nothing is emitted", func() {
			So(logger.IsLevelEnabled(0), ShouldBeTrue) // panic level only
			So(logger.IsLevelEnabled(4), ShouldBeFalse)
		})
	})

	Convey("Given logging is configured with a writer", t, func() {
		var buf bytes.Buffer
		viper.Set(key.LogsJson, true)
		viper.Set(key.LogsLevel, "debug")
		So(configure(&buf), ShouldBeNil)

		Convey("Structured fields end up in the output", func() {
			WithField("show", 82).Info("episodes loaded")
			So(buf.String(), ShouldContainSubstring, `"show":82`)
			So(buf.String(), ShouldContainSubstring, "episodes loaded")
		})

		Convey("An unknown level falls back to info", func() {
			viper.Set(key.LogsLevel, "chatty")
			So(configure(&buf), ShouldBeNil)
			Debug("hidden")
			So(buf.String(), ShouldNotContainSubstring, "hidden")
		})
	})
}
