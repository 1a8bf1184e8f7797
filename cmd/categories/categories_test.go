package categories_test

import (
	"testing"

	"github.com/birosrichard/simple-expense-analyzer/cmd/categories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesCommandMetadata(t *testing.T) {
	assert.Equal(t, "categories", categories.Cmd.Use)
	assert.Contains(t, categories.Cmd.Short, "taxonomy")
	assert.NotNil(t, categories.Cmd.Run)
}

func TestCategoriesCommandFlags(t *testing.T) {
	addFlag := categories.Cmd.Flags().Lookup("add")
	require.NotNil(t, addFlag)
	assert.Equal(t, "a", addFlag.Shorthand)
	assert.Equal(t, "", addFlag.DefValue)
}
