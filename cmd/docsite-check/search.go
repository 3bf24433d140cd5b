//go:build !(js && wasm)

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchAll bool

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Show which page a search jumps to",
	Long: `Runs a query the way the search box does: case-insensitive substring
match over each page's title, description and body text. Prints the page that
pressing Enter would open, or every matching page with --all.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchAll, "all", false, "list every matching page in table order")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	table, err := loadContent()
	if err != nil {
		return err
	}
	query := strings.ToLower(strings.Join(args, " "))
	out := cmd.OutOrStdout()

	if !searchAll {
		p, ok := table.FirstMatch(query)
		if !ok {
			return fmt.Errorf("no page matches %q", query)
		}
		fmt.Fprintf(out, "%s\t%s\n", p.ID, p.Title)
		return nil
	}

	found := 0
	for id, p := range table.All() {
		if p.Matches(query) {
			fmt.Fprintf(out, "%s\t%s\n", id, p.Title)
			found++
		}
	}
	if found == 0 {
		return fmt.Errorf("no page matches %q", query)
	}
	return nil
}
