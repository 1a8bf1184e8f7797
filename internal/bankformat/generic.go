package bankformat

import (
	"github.com/birosrichard/simple-expense-analyzer/internal/categorizer"
	"github.com/birosrichard/simple-expense-analyzer/internal/dateutils"
	"github.com/birosrichard/simple-expense-analyzer/internal/models"
)

// Generic is the catch-all layout tried after every bank-specific
// format. Its detector accepts anything; the header locator still has
// to find a line with date and amount tokens, otherwise the parse
// fails with a header-not-found error. The delimiter is sniffed from
// the header line (Delimiter stays zero).
var Generic = Format{
	Name:        "generic",
	DisplayName: "Bankovní výpis",

	Detect: func(sample []string) bool {
		return true
	},

	LocateHeader: func(lines []string) int {
		return locateHeaderByKeywords(lines,
			[]string{"datum", "částka"},
			[]string{"datum", "castka"},
			[]string{"date", "amount"},
		)
	},

	MapRow: func(row map[string]string) (MappedRow, error) {
		mapped := MappedRow{
			Amount:         models.ParseAmount(fieldLookup(row, "částka", "castka", "amount")),
			Currency:       fieldLookup(row, "měna", "mena", "currency"),
			Counterparty:   fieldLookup(row, "protiúčet", "protiucet", "protistran", "counterparty"),
			Description:    fieldLookup(row, "popis", "description", "poznámka", "poznamka", "note"),
			Note:           fieldLookup(row, "zpráva", "zprava", "message"),
			OperationType:  fieldLookup(row, "typ", "type"),
			VariableSymbol: fieldLookup(row, "variabilní", "variabilni", "vs"),
		}

		if raw := fieldLookup(row, "datum", "date"); raw != "" {
			if date, err := dateutils.ParseStatementDate(raw); err == nil {
				mapped.Date = date
			}
		}

		if mapped.Currency == "" {
			mapped.Currency = models.DefaultCurrency
		}

		if raw := fieldLookup(row, "kategorie", "category"); raw != "" {
			mapped.Category = raw
		} else {
			mapped.Category = categorizer.InferCategory(mapped.Description + " " + mapped.Counterparty)
		}

		return mapped, nil
	},
}
