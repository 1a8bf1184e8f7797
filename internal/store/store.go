// Package store provides keyed on-disk persistence of parsed
// statements and of user-defined category names.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/birosrichard/simple-expense-analyzer/internal/dateutils"
	"github.com/birosrichard/simple-expense-analyzer/internal/models"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// storedTransaction is the serialized form of one transaction. Dates
// are stored as ISO day strings, so a round trip through the store
// normalizes any time-of-day component away by construction.
type storedTransaction struct {
	ID             int    `yaml:"id"`
	Date           string `yaml:"date"`
	Amount         string `yaml:"amount"`
	Currency       string `yaml:"currency"`
	Counterparty   string `yaml:"counterparty,omitempty"`
	Description    string `yaml:"description,omitempty"`
	Note           string `yaml:"note,omitempty"`
	OperationType  string `yaml:"operationType,omitempty"`
	VariableSymbol string `yaml:"variableSymbol,omitempty"`
	Category       string `yaml:"category"`
	Internal       bool   `yaml:"internal"`
}

type storedParsedData struct {
	BankName     string              `yaml:"bankName"`
	From         string              `yaml:"from"`
	To           string              `yaml:"to"`
	Transactions []storedTransaction `yaml:"transactions"`
}

// ParsedDataStore persists ParsedData records under string keys, one
// YAML file per key inside Directory.
type ParsedDataStore struct {
	Directory string
}

// NewParsedDataStore creates a store rooted at the given directory.
func NewParsedDataStore(directory string) *ParsedDataStore {
	if directory == "" {
		directory = "data"
	}
	return &ParsedDataStore{Directory: directory}
}

func (s *ParsedDataStore) pathFor(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid store key: %q", key)
	}
	return filepath.Join(s.Directory, key+".yaml"), nil
}

// Save serializes parsed data under the given key, overwriting any
// previous record with the same key.
func (s *ParsedDataStore) Save(key string, data *models.ParsedData) error {
	if data == nil {
		return fmt.Errorf("cannot save nil parsed data")
	}
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}

	stored := storedParsedData{
		BankName: data.BankName,
		From:     dateutils.ToISODate(data.DateRange.From),
		To:       dateutils.ToISODate(data.DateRange.To),
	}
	for _, tx := range data.Transactions {
		stored.Transactions = append(stored.Transactions, storedTransaction{
			ID:             tx.ID,
			Date:           dateutils.ToISODate(tx.Date),
			Amount:         tx.Amount.String(),
			Currency:       tx.Currency,
			Counterparty:   tx.Counterparty,
			Description:    tx.Description,
			Note:           tx.Note,
			OperationType:  tx.OperationType,
			VariableSymbol: tx.VariableSymbol,
			Category:       tx.Category,
			Internal:       tx.Internal,
		})
	}

	out, err := yaml.Marshal(&stored)
	if err != nil {
		return fmt.Errorf("error marshaling parsed data: %w", err)
	}

	if err := os.MkdirAll(s.Directory, 0750); err != nil {
		return fmt.Errorf("error creating store directory: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("error writing parsed data: %w", err)
	}

	log.WithFields(logrus.Fields{
		"key":   key,
		"count": len(stored.Transactions),
	}).Debug("Saved parsed data")
	return nil
}

// Load reads the parsed data stored under the given key.
func (s *ParsedDataStore) Load(key string) (*models.ParsedData, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading parsed data %q: %w", key, err)
	}

	var stored storedParsedData
	if err := yaml.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("error parsing stored data %q: %w", key, err)
	}

	data := &models.ParsedData{BankName: stored.BankName}
	if data.DateRange.From, err = dateutils.FromISODate(stored.From); err != nil {
		return nil, fmt.Errorf("error parsing stored date range: %w", err)
	}
	if data.DateRange.To, err = dateutils.FromISODate(stored.To); err != nil {
		return nil, fmt.Errorf("error parsing stored date range: %w", err)
	}

	for _, st := range stored.Transactions {
		date, err := dateutils.FromISODate(st.Date)
		if err != nil {
			return nil, fmt.Errorf("error parsing stored transaction date: %w", err)
		}
		tx := models.Transaction{
			ID:             st.ID,
			Date:           date,
			Amount:         models.ParseAmount(st.Amount),
			Currency:       st.Currency,
			Counterparty:   st.Counterparty,
			Description:    st.Description,
			Note:           st.Note,
			OperationType:  st.OperationType,
			VariableSymbol: st.VariableSymbol,
			Category:       st.Category,
			Internal:       st.Internal,
		}
		tx.SyncDateText()
		data.Transactions = append(data.Transactions, tx)
	}

	return data, nil
}

// List returns the keys of all stored records, sorted.
func (s *ParsedDataStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.Directory)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading store directory: %w", err)
	}

	var keys []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".yaml") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, ".yaml"))
	}
	sort.Strings(keys)
	return keys, nil
}

// Delete removes the record stored under the given key.
func (s *ParsedDataStore) Delete(key string) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("error deleting parsed data %q: %w", key, err)
	}
	return nil
}
