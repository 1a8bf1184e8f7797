package store

import (
	"testing"
	"time"

	"github.com/birosrichard/simple-expense-analyzer/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleParsedData() *models.ParsedData {
	tx := models.Transaction{
		ID:             0,
		Date:           time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Amount:         decimal.RequireFromString("-250.50"),
		Currency:       "CZK",
		Counterparty:   "ALBERT 0652 BRNO",
		Description:    "Platba kartou",
		Note:           "nákup",
		OperationType:  "Karetní transakce",
		VariableSymbol: "123456",
		Category:       models.CategoryGroceries,
	}
	tx.SyncDateText()

	return &models.ParsedData{
		BankName:     "Česká spořitelna",
		Transactions: []models.Transaction{tx},
		DateRange: models.DateRange{
			From: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestParsedDataStoreRoundTrip(t *testing.T) {
	s := NewParsedDataStore(t.TempDir())
	data := sampleParsedData()

	require.NoError(t, s.Save("march", data))

	loaded, err := s.Load("march")
	require.NoError(t, err)

	assert.Equal(t, data.BankName, loaded.BankName)
	assert.Equal(t, data.DateRange, loaded.DateRange)
	require.Len(t, loaded.Transactions, 1)

	got := loaded.Transactions[0]
	want := data.Transactions[0]
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Date, got.Date)
	assert.True(t, want.Amount.Equal(got.Amount))
	assert.Equal(t, want.Counterparty, got.Counterparty)
	assert.Equal(t, want.Category, got.Category)
	assert.Equal(t, want.DateText, got.DateText)
}

func TestParsedDataStoreRoundTripDropsTimeOfDay(t *testing.T) {
	s := NewParsedDataStore(t.TempDir())
	data := sampleParsedData()
	data.Transactions[0].Date = time.Date(2026, 3, 15, 18, 45, 12, 0, time.UTC)

	require.NoError(t, s.Save("march", data))
	loaded, err := s.Load("march")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), loaded.Transactions[0].Date)
}

func TestParsedDataStoreSaveValidation(t *testing.T) {
	s := NewParsedDataStore(t.TempDir())

	assert.Error(t, s.Save("key", nil))
	assert.Error(t, s.Save("", sampleParsedData()))
	assert.Error(t, s.Save("../escape", sampleParsedData()))
	assert.Error(t, s.Save(`sub\dir`, sampleParsedData()))
}

func TestParsedDataStoreListAndDelete(t *testing.T) {
	s := NewParsedDataStore(t.TempDir())

	keys, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, keys)

	require.NoError(t, s.Save("brezen", sampleParsedData()))
	require.NoError(t, s.Save("duben", sampleParsedData()))

	keys, err = s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"brezen", "duben"}, keys)

	require.NoError(t, s.Delete("brezen"))
	keys, err = s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"duben"}, keys)

	assert.Error(t, s.Delete("brezen"))
}

func TestParsedDataStoreLoadMissingKey(t *testing.T) {
	s := NewParsedDataStore(t.TempDir())
	_, err := s.Load("nope")
	assert.Error(t, err)
}

func TestParsedDataStoreListMissingDirectory(t *testing.T) {
	s := NewParsedDataStore("does-not-exist-anywhere")
	keys, err := s.List()
	require.NoError(t, err)
	assert.Nil(t, keys)
}
