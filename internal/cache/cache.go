// Package cache prunes cached API response files that outlived their lifetime.
package cache

import (
	"io/fs"
	"time"

	"github.com/epibrowse/epibrowse/filesystem"
	"github.com/epibrowse/epibrowse/log"
	"github.com/spf13/afero"
)

// CollectGarbage removes regular files under dir not modified within ttl.
// It returns the number of removed files.
func CollectGarbage(dir string, ttl time.Duration, now time.Time) int {
	var removed int

	_ = afero.Walk(filesystem.API(), dir, func(path string, info fs.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		if now.Sub(info.ModTime()) <= ttl {
			return nil
		}

		if err := filesystem.API().Remove(path); err != nil {
			log.Warnf("failed to remove stale cache file %s: %v", path, err)
			return nil
		}

		removed++
		return nil
	})

	if removed > 0 {
		log.Debugf("removed %d stale cache files from %s", removed, dir)
	}

	return removed
}
