// Package analyze handles AI-assisted spending analysis commands
package analyze

import (
	"context"
	"fmt"
	"time"

	"github.com/birosrichard/simple-expense-analyzer/cmd/root"
	"github.com/birosrichard/simple-expense-analyzer/internal/analyzer"

	"github.com/spf13/cobra"
)

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Request an AI spending analysis for a statement",
	Long: `Normalize a statement (or load a saved one with --key) and send a
reduced projection of it - amounts and categories only - to the Gemini
API for a natural-language spending analysis.`,
	Run: analyzeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Period, "period", "p", "", "Human-readable period label (e.g. 'březen 2026')")
	Cmd.Flags().StringVarP(&root.StoreKey, "key", "k", "", "Load a previously saved parse instead of --input")
}

func analyzeFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Analyze command called")

	if root.SharedFlags.Input == "" && root.StoreKey == "" {
		root.Log.Fatal("Either an input file or a store key is required")
	}

	input, err := root.LoadParsedInput()
	if err != nil {
		root.Log.Fatalf("Error loading statement: %v", err)
	}

	if !input.Config.AI.Enabled {
		root.Log.Fatal("AI analysis is disabled - set ai.enabled in the config file or EXPENSE_AI_ENABLED=true")
	}

	period := root.Period
	if period == "" {
		period = fmt.Sprintf("%s - %s",
			input.Data.DateRange.From.Format("02.01.2006"),
			input.Data.DateRange.To.Format("02.01.2006"))
	}

	a, err := analyzer.New(context.Background(), input.Config.AI.APIKey, input.Config.AI.Model)
	if err != nil {
		root.Log.Fatalf("Error creating analyzer: %v", err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			root.Log.Warnf("Failed to close analyzer: %v", err)
		}
	}()

	timeout := time.Duration(input.Config.AI.TimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	analysis, err := a.Analyze(ctx, input.Data, period)
	if err != nil {
		root.Log.Fatalf("Error requesting analysis: %v", err)
	}

	fmt.Println(analysis)
}
