package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// userCategoriesFile is the serialized form of the user taxonomy
// extension. Only names are stored; colors, icons and keywords exist
// solely for the built-in table.
type userCategoriesFile struct {
	Categories []string `yaml:"categories"`
}

// UserCategoryStore persists the user-defined category names that are
// merged read-only with the built-in taxonomy at display time.
type UserCategoryStore struct {
	File string
}

// NewUserCategoryStore creates a store backed by the given YAML file.
func NewUserCategoryStore(file string) *UserCategoryStore {
	if file == "" {
		file = "categories.yaml"
	}
	return &UserCategoryStore{File: file}
}

// Load returns the user-defined category names. A missing file is not
// an error; it means no extensions have been added yet.
func (s *UserCategoryStore) Load() ([]string, error) {
	raw, err := os.ReadFile(s.File)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("file", s.File).Debug("User categories file not found")
			return nil, nil
		}
		return nil, fmt.Errorf("error reading user categories: %w", err)
	}

	var parsed userCategoriesFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("error parsing user categories: %w", err)
	}
	return parsed.Categories, nil
}

// Save writes the full user-defined name list, replacing the file.
func (s *UserCategoryStore) Save(names []string) error {
	out, err := yaml.Marshal(&userCategoriesFile{Categories: names})
	if err != nil {
		return fmt.Errorf("error marshaling user categories: %w", err)
	}

	if dir := filepath.Dir(s.File); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}
	if err := os.WriteFile(s.File, out, 0644); err != nil {
		return fmt.Errorf("error writing user categories: %w", err)
	}

	log.WithField("count", len(names)).Debug("Saved user categories")
	return nil
}

// Add appends one name if it is not present yet.
func (s *UserCategoryStore) Add(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("category name must not be empty")
	}

	names, err := s.Load()
	if err != nil {
		return err
	}
	for _, existing := range names {
		if existing == name {
			return nil
		}
	}
	return s.Save(append(names, name))
}
