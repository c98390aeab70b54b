// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the swerr CLI.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/swerr/internal/config"
	"github.com/pdiddy/swerr/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the swerr CLI.
var rootCmd = &cobra.Command{
	Use:   "swerr",
	Short: "Create documentation from your errors",
	Long: `swerr scans a source tree for /** ... */ comment blocks tagged with
@error, collects them into a scheme, and renders that scheme with the
converters listed in the configuration (markdown, html, json, yaml, sqlite).

Start with "swerr init" to write a configuration file, then "swerr run".`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./"+config.DefaultFileName+" or ~/.config/swerr/"+config.DefaultFileName+")")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, success, warn, error")
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	viper.SetEnvPrefix(config.EnvPrefix)
	viper.BindEnv("log-level", config.EnvPrefix+"_LOG_LEVEL")
}

// newLogger returns the console logger for the current invocation.
func newLogger() *logger.ConsoleLogger {
	return logger.New(os.Stderr, viper.GetString("log-level"))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		newLogger().Errorf("%v", err)
		os.Exit(1)
	}
}
