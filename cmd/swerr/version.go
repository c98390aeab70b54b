package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of swerr",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("swerr %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
