// Package main is the entry point for epibrowse.
package main

import (
	"time"

	"github.com/epibrowse/epibrowse/cmd"
	"github.com/epibrowse/epibrowse/config"
	"github.com/epibrowse/epibrowse/internal/cache"
	"github.com/epibrowse/epibrowse/key"
	"github.com/epibrowse/epibrowse/log"
	"github.com/epibrowse/epibrowse/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go cache.CollectGarbage(where.API(), time.Duration(viper.GetInt(key.APICacheHours))*time.Hour, time.Now())

	cmd.Execute()
}
