//go:build !(js && wasm)

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that navigation, toggles and page markup are consistent",
	Long: `Renders every page through the site controller and reports:

  - nav entries pointing at pages that do not exist
  - pages no nav entry links to
  - platform and detail-level buttons outside the configured sets
  - page platform tags and level bodies outside the configured sets
  - in-page links to missing pages, tabs without a panel, copy buttons
    outside a code block`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	in, err := loadInputs()
	if err != nil {
		return err
	}

	report, err := Audit(in.shell, in.table, in.cfg, in.logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, p := range report.Problems {
		fmt.Fprintln(out, p)
	}
	fmt.Fprintf(out, "%d pages rendered, %d problems\n", report.Pages, len(report.Problems))
	if len(report.Problems) > 0 {
		return fmt.Errorf("%d problems found", len(report.Problems))
	}
	return nil
}
