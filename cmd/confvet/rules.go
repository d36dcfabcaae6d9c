package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"confvet-hq/confvet/pkg/cli"
	"confvet-hq/confvet/pkg/rules"
)

var rulesFlags struct {
	format string
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the security rule table",
	Long: `Print the security rules every validation applies, in evaluation order.

The rule set is fixed: every check run applies all of these rules to
every key, in this order. Errors make a configuration invalid; warnings
only fail the exit code under --strict.

Examples:
  # List the rules
  confvet rules

  # JSON output
  confvet rules --format json`,
	RunE: runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)

	rulesCmd.Flags().StringVar(&rulesFlags.format, "format", "text", "output format: text, json")
}

func runRules(cmd *cobra.Command, args []string) error {
	table := rules.Default()

	if rulesFlags.format == "json" {
		type row struct {
			Name        string `json:"name"`
			Severity    string `json:"severity"`
			Description string `json:"description"`
		}
		rows := make([]row, 0, len(table))
		for _, r := range table {
			rows = append(rows, row{Name: r.Name, Severity: string(r.Severity), Description: r.Description})
		}
		return cli.NewFormatter(cli.FormatJSON).FormatTo(os.Stdout, rows)
	}

	fmt.Printf("Security rules (%d, in evaluation order):\n", len(table))
	for _, r := range table {
		fmt.Printf("  %s [%s]\n    %s\n", r.Name, r.Severity, r.Description)
	}
	return nil
}
