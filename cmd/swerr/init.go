// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/swerr/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a basic swerr config file",
	Long: `Init writes a starter configuration with a markdown and an html
converter. The file goes to the path named by --config, or to
./`+config.DefaultFileName+` when no path is given. An existing file is left
alone unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	log := newLogger()

	out, _ := cmd.Flags().GetString("config")
	if out == "" {
		out = config.DefaultFileName
	}
	force, _ := cmd.Flags().GetBool("force")

	path, err := filepath.Abs(out)
	if err != nil {
		return err
	}

	replaced, err := config.WriteTemplate(path, force)
	if err != nil {
		return err
	}

	name := filepath.Base(path)
	if replaced {
		log.Successf("%s file has been overwritten successfully.", name)
	} else {
		log.Successf("%s file has been created successfully.", name)
	}
	return nil
}

func init() {
	initCmd.Flags().BoolP("force", "f", false, "overwrite existing config file if it exists")

	rootCmd.AddCommand(initCmd)
}
