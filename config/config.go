// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/epibrowse/epibrowse/constant"
	"github.com/epibrowse/epibrowse/filesystem"
	"github.com/epibrowse/epibrowse/key"
	"github.com/epibrowse/epibrowse/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup loads defaults, environment bindings and the optional epibrowse.toml, then validates the result.
func Setup() error {
	viper.SetConfigName(constant.Epibrowse)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Epibrowse)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	return Validate()
}

// Validate rejects values that would make every API call fail.
func Validate() error {
	base := viper.GetString(key.APIBaseURL)
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s: invalid url %q", key.APIBaseURL, base)
	}

	if viper.GetInt(key.APITimeoutSeconds) <= 0 {
		return fmt.Errorf("%s must be positive", key.APITimeoutSeconds)
	}

	if viper.GetInt(key.APICacheHours) <= 0 {
		return fmt.Errorf("%s must be positive", key.APICacheHours)
	}

	return nil
}
