// Package models provides the data structures used throughout the application.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a statement carries no currency column.
// Configurable via csv.currency; Czech exports rarely need anything
// but CZK.
var DefaultCurrency = "CZK"

// SetDefaultCurrency overrides the fallback currency code.
func SetDefaultCurrency(code string) {
	if code != "" {
		DefaultCurrency = code
	}
}

// Transaction represents one normalized bank ledger entry.
// The pipeline assigns IDs as a dense 0-based index after the final
// sort; callers may change Category and Internal afterwards but must
// not renumber or resort the list.
type Transaction struct {
	ID             int             `csv:"ID" json:"id"`
	Date           time.Time       `csv:"-" json:"date"`
	Amount         decimal.Decimal `csv:"Amount" json:"amount"`
	Currency       string          `csv:"Currency" json:"currency"`
	Counterparty   string          `csv:"Counterparty" json:"counterparty"`
	Description    string          `csv:"Description" json:"description"`
	Note           string          `csv:"Note" json:"note"`
	OperationType  string          `csv:"OperationType" json:"operationType"`
	VariableSymbol string          `csv:"VariableSymbol" json:"variableSymbol"`
	Category       string          `csv:"Category" json:"category"`
	Internal       bool            `csv:"Internal" json:"internal"`

	// DateText mirrors Date in DD.MM.YYYY form for CSV export, where
	// gocsv has no layout control over time.Time columns.
	DateText string `csv:"Date" json:"-"`
}

// IsExpense returns true for outgoing money (negative amount).
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// IsIncome returns true for incoming money (positive amount).
func (t *Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// SyncDateText refreshes the textual date column from Date.
func (t *Transaction) SyncDateText() {
	if t.Date.IsZero() {
		t.DateText = ""
		return
	}
	t.DateText = t.Date.Format("02.01.2006")
}

// DateRange is the span covered by a parsed statement. It is always
// derived from the transaction list, never read from the source file.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// ParsedData is the pipeline's output unit: the detected bank's
// display name, the sorted transaction list and the derived range.
type ParsedData struct {
	BankName     string        `json:"bankName"`
	Transactions []Transaction `json:"transactions"`
	DateRange    DateRange     `json:"dateRange"`
}
