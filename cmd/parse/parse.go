// Package parse handles statement normalization commands
package parse

import (
	"github.com/birosrichard/simple-expense-analyzer/cmd/root"
	"github.com/birosrichard/simple-expense-analyzer/internal/common"
	"github.com/birosrichard/simple-expense-analyzer/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Normalize a bank-statement CSV export",
	Long: `Detect the bank behind a statement CSV export, normalize it into the
canonical transaction schema and optionally write the result as a
canonical CSV file or save it under a key for later commands.`,
	Run: parseFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.SaveKey, "save", "s", "", "Save the parsed statement under this key")
}

func parseFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Parse command called")
	root.Log.Infof("Input file: %s", root.SharedFlags.Input)

	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Input file is required")
	}

	input, err := root.LoadParsedInput()
	if err != nil {
		root.Log.Fatalf("Error parsing statement: %v", err)
	}

	root.Log.Infof("Detected bank: %s", input.Data.BankName)
	root.Log.Infof("Transactions: %d (%s - %s)",
		len(input.Data.Transactions),
		input.Data.DateRange.From.Format("02.01.2006"),
		input.Data.DateRange.To.Format("02.01.2006"))

	if root.SharedFlags.Output != "" {
		if err := common.WriteTransactionsToCSV(input.Data.Transactions, root.SharedFlags.Output); err != nil {
			root.Log.Fatalf("Error writing canonical CSV: %v", err)
		}
		root.Log.Infof("Canonical CSV written to %s", root.SharedFlags.Output)
	}

	if root.SaveKey != "" {
		dataStore := store.NewParsedDataStore(input.Config.Data.Directory)
		if err := dataStore.Save(root.SaveKey, input.Data); err != nil {
			root.Log.Fatalf("Error saving parsed statement: %v", err)
		}
		root.Log.Infof("Parsed statement saved under key %q", root.SaveKey)
	}
}
