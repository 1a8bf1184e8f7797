// Package root contains the root command for the application
package root

import (
	"os"

	"github.com/birosrichard/simple-expense-analyzer/internal/analyzer"
	"github.com/birosrichard/simple-expense-analyzer/internal/bankformat"
	"github.com/birosrichard/simple-expense-analyzer/internal/categorizer"
	"github.com/birosrichard/simple-expense-analyzer/internal/common"
	"github.com/birosrichard/simple-expense-analyzer/internal/config"
	"github.com/birosrichard/simple-expense-analyzer/internal/models"
	"github.com/birosrichard/simple-expense-analyzer/internal/pipeline"
	"github.com/birosrichard/simple-expense-analyzer/internal/report"
	"github.com/birosrichard/simple-expense-analyzer/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "expense-analyzer",
		Short: "A CLI tool to normalize Czech bank-statement CSV exports and analyze spending.",
		Long: `expense-analyzer detects the bank behind a statement CSV export
(Česká spořitelna, ČSOB, Komerční banka, Air Bank, or a generic layout),
normalizes it into one transaction schema and provides summaries,
category breakdowns and AI-assisted spending analysis.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to expense-analyzer!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			bankformat.SetLogger(Log)
			categorizer.SetLogger(Log)
			pipeline.SetLogger(Log)
			common.SetLogger(Log)
			store.SetLogger(Log)
			report.SetLogger(Log)
			analyzer.SetLogger(Log)

			if delim := os.Getenv("CSV_DELIMITER"); delim != "" {
				Log.WithField("delimiter", delim).Debug("Setting CSV delimiter from environment")
				common.SetDelimiter([]rune(delim)[0])
			}
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific parse command flags
	SaveKey string

	// Specific summary command flags
	Format   string
	StoreKey string

	// Specific analyze command flags
	Period string

	// Specific categories command flags
	NewCategory string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input statement CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}

// ParsedInput bundles a normalized statement with the resolved
// application configuration for the command that requested it.
type ParsedInput struct {
	Data   *models.ParsedData
	Config *config.Config
}

// applyConfig pushes resolved configuration into the packages that
// keep process-wide settings.
func applyConfig(cfg *config.Config) {
	if cfg.CSV.Delimiter != "" {
		common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
	}
	models.SetDefaultCurrency(cfg.CSV.Currency)
}

// LoadParsedInput reads and normalizes the input file from the shared
// flags, or loads a previously saved parse when --key is given.
// Commands that consume a normalized statement share this path.
func LoadParsedInput() (*ParsedInput, error) {
	cfg, err := config.InitializeConfig()
	if err != nil {
		return nil, err
	}
	applyConfig(cfg)

	if StoreKey != "" {
		dataStore := store.NewParsedDataStore(cfg.Data.Directory)
		data, err := dataStore.Load(StoreKey)
		if err != nil {
			return nil, err
		}
		return &ParsedInput{Data: data, Config: cfg}, nil
	}

	raw, err := os.ReadFile(SharedFlags.Input)
	if err != nil {
		return nil, err
	}
	data, err := pipeline.Parse(string(raw))
	if err != nil {
		return nil, err
	}
	return &ParsedInput{Data: data, Config: cfg}, nil
}
