// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/swerr/internal/catalog"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search an error catalog written by the sqlite converter",
	Long: `Search queries the SQLite catalog produced by the sqlite converter.
The query matches error names and descriptions; --name and --tag narrow
the results further.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	name, _ := cmd.Flags().GetString("name")
	tag, _ := cmd.Flags().GetString("tag")
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	store, err := catalog.OpenExisting(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.Search(cmd.Context(), catalog.QueryOptions{
		Query:      strings.Join(args, " "),
		Name:       name,
		Tag:        tag,
		MaxResults: limit,
	})
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-24s  %-50s  %s\n", "Rank", "Name", "Description", "Source")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))

	for i, r := range results {
		desc := strings.Join(strings.Fields(r.Description), " ")
		if len(desc) > 50 {
			desc = desc[:47] + "..."
		}
		errName := r.Name
		if len(errName) > 24 {
			errName = errName[:21] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-24s  %-50s  %s:%d\n", i+1, errName, desc, r.SourceFile, r.SourceLine)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

func init() {
	searchCmd.Flags().String("db", "docs/"+catalog.DefaultFileName, "catalog database path")
	searchCmd.Flags().String("name", "", "filter by exact error name")
	searchCmd.Flags().String("tag", "", "filter by tag name (e.g. status)")
	searchCmd.Flags().Int("limit", 0, "maximum number of results (default 20)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}
