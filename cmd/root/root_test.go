package root_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/birosrichard/simple-expense-analyzer/cmd/root"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandMetadata(t *testing.T) {
	assert.Equal(t, "expense-analyzer", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "bank-statement")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestRootCommandFlags(t *testing.T) {
	root.Init()

	inputFlag := root.Cmd.PersistentFlags().Lookup("input")
	require.NotNil(t, inputFlag)
	assert.Equal(t, "i", inputFlag.Shorthand)

	outputFlag := root.Cmd.PersistentFlags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)
}

func TestRootCommandRun(t *testing.T) {
	assert.NotPanics(t, func() {
		root.Cmd.Run(&cobra.Command{}, nil)
	})
}

func TestLoadParsedInput(t *testing.T) {
	file := filepath.Join(t.TempDir(), "statement.csv")
	content := "Datum;Částka;Popis\n15.03.2026;-100,00;LIDL\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	root.SharedFlags.Input = file
	root.StoreKey = ""
	defer func() { root.SharedFlags.Input = "" }()

	input, err := root.LoadParsedInput()
	require.NoError(t, err)
	require.NotNil(t, input.Config)
	require.Len(t, input.Data.Transactions, 1)
	assert.Equal(t, "Bankovní výpis", input.Data.BankName)

	// The configured currency fallback flows through to the parse.
	assert.Equal(t, input.Config.CSV.Currency, input.Data.Transactions[0].Currency)
}

func TestLoadParsedInputMissingFile(t *testing.T) {
	root.SharedFlags.Input = filepath.Join(t.TempDir(), "missing.csv")
	root.StoreKey = ""
	defer func() { root.SharedFlags.Input = "" }()

	_, err := root.LoadParsedInput()
	assert.Error(t, err)
}
