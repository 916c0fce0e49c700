// Package where resolves the application's config, cache and log locations.
package where

import (
	"os"
	"path/filepath"

	"github.com/epibrowse/epibrowse/constant"
	"github.com/epibrowse/epibrowse/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the configuration directory when set.
const EnvConfigPath = "EPIBROWSE_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the configuration directory: EPIBROWSE_CONFIG_PATH, else the user config dir.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base, err := os.UserConfigDir()
	if err != nil {
		base = filepath.Join(".", "config")
	}
	return ensureDir(filepath.Join(base, constant.Epibrowse))
}

// Cache is the persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Epibrowse))
}

// Logs is the directory holding daily log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// API is the directory holding cached listings responses.
func API() string {
	return ensureDir(filepath.Join(Cache(), "api"))
}

// History is the file recording recently viewed shows.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Queries is the file recording past episode search terms.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}
