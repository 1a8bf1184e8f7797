// Package summary handles aggregate reporting commands
package summary

import (
	"fmt"

	"github.com/birosrichard/simple-expense-analyzer/cmd/root"
	"github.com/birosrichard/simple-expense-analyzer/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Show totals, category breakdown and monthly series for a statement",
	Long: `Normalize a statement (or load a previously saved one with --key) and
print its summary totals, per-category expense breakdown and monthly
income/expense series.`,
	Run: summaryFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Format, "format", "f", "text", "Output format (text or json)")
	Cmd.Flags().StringVarP(&root.StoreKey, "key", "k", "", "Load a previously saved parse instead of --input")
}

func summaryFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Summary command called")

	if root.SharedFlags.Input == "" && root.StoreKey == "" {
		root.Log.Fatal("Either an input file or a store key is required")
	}

	input, err := root.LoadParsedInput()
	if err != nil {
		root.Log.Fatalf("Error loading statement: %v", err)
	}

	rep := report.Build(input.Data)
	out, err := report.Generate(rep, root.Format)
	if err != nil {
		root.Log.Fatalf("Error generating report: %v", err)
	}

	fmt.Println(string(out))
}
