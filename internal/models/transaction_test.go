package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionDirection(t *testing.T) {
	expense := Transaction{Amount: decimal.NewFromInt(-250)}
	income := Transaction{Amount: decimal.NewFromInt(35000)}
	zero := Transaction{}

	assert.True(t, expense.IsExpense())
	assert.False(t, expense.IsIncome())
	assert.True(t, income.IsIncome())
	assert.False(t, income.IsExpense())
	assert.False(t, zero.IsExpense())
	assert.False(t, zero.IsIncome())
}

func TestSetDefaultCurrency(t *testing.T) {
	original := DefaultCurrency
	defer SetDefaultCurrency(original)

	SetDefaultCurrency("EUR")
	assert.Equal(t, "EUR", DefaultCurrency)

	// Empty codes never clear the fallback.
	SetDefaultCurrency("")
	assert.Equal(t, "EUR", DefaultCurrency)
}

func TestSyncDateText(t *testing.T) {
	tx := Transaction{Date: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)}
	tx.SyncDateText()
	assert.Equal(t, "15.03.2026", tx.DateText)

	tx.Date = time.Time{}
	tx.SyncDateText()
	assert.Equal(t, "", tx.DateText)
}
