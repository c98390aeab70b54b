// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/swerr/internal/config"
	"github.com/pdiddy/swerr/internal/convert"
	"github.com/pdiddy/swerr/internal/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run [configPath]",
	Short: "Create swerr documentation based on the config file",
	Long: `Run loads the configuration, scans sourceFile.inputDir for @error comment
blocks, translates them into a scheme, optionally saves the scheme to
sourceFile.export, and runs each configured converter in order.

The config path may be given as an argument or with --config.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	log := newLogger()

	path, _ := cmd.Flags().GetString("config")
	if len(args) > 0 {
		path = args[0]
	}

	v := config.New(path)
	cfg, err := config.Load(v)
	if errors.Is(err, config.ErrNotFound) {
		return fmt.Errorf("no configuration found; run \"swerr init\" first or pass a config path")
	}
	if err != nil {
		return err
	}
	log.Successf("Configuration loaded from %s", v.ConfigFileUsed())

	_, err = pipeline.Run(cmd.Context(), cfg, convert.DefaultRegistry(), log)
	return err
}

func init() {
	rootCmd.AddCommand(runCmd)
}
