package where

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/epibrowse/epibrowse/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Directories are created on demand", func() {
			for _, dir := range []func() string{Config, Cache, Logs, API} {
				path := dir()
				So(path, ShouldNotBeEmpty)
				So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			}
		})

		Convey("Files live inside their parent directories", func() {
			So(filepath.Dir(History()), ShouldEqual, Config())
			So(filepath.Dir(Queries()), ShouldEqual, Cache())
		})

		Convey("The config path can be overridden", func() {
			custom := filepath.Join(os.TempDir(), "epibrowse-test-config")
			So(os.Setenv(EnvConfigPath, custom), ShouldBeNil)
			defer os.Unsetenv(EnvConfigPath)

			So(Config(), ShouldEqual, custom)
		})
	})
}
