package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCategoryStoreMissingFile(t *testing.T) {
	s := NewUserCategoryStore(filepath.Join(t.TempDir(), "categories.yaml"))

	names, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, names)
}

func TestUserCategoryStoreAdd(t *testing.T) {
	s := NewUserCategoryStore(filepath.Join(t.TempDir(), "categories.yaml"))

	require.NoError(t, s.Add("Dovolená"))
	require.NoError(t, s.Add("  Mazlíčci  "))

	names, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"Dovolená", "Mazlíčci"}, names)
}

func TestUserCategoryStoreAddIsIdempotent(t *testing.T) {
	s := NewUserCategoryStore(filepath.Join(t.TempDir(), "categories.yaml"))

	require.NoError(t, s.Add("Dovolená"))
	require.NoError(t, s.Add("Dovolená"))

	names, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"Dovolená"}, names)
}

func TestUserCategoryStoreAddRejectsEmpty(t *testing.T) {
	s := NewUserCategoryStore(filepath.Join(t.TempDir(), "categories.yaml"))

	assert.Error(t, s.Add(""))
	assert.Error(t, s.Add("   "))
}

func TestUserCategoryStoreSaveCreatesDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nested", "categories.yaml")
	s := NewUserCategoryStore(file)

	require.NoError(t, s.Save([]string{"Dovolená"}))

	names, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"Dovolená"}, names)
}
