package bankformat

import (
	"github.com/birosrichard/simple-expense-analyzer/internal/categorizer"
	"github.com/birosrichard/simple-expense-analyzer/internal/dateutils"
	"github.com/birosrichard/simple-expense-analyzer/internal/models"
)

// CSOB describes the ČSOB internet-banking CSV export. The export has
// no category column, so categories are inferred from the description
// and counterparty text.
var CSOB = Format{
	Name:        "csob",
	DisplayName: "ČSOB",
	Delimiter:   ';',

	Detect: func(sample []string) bool {
		if sampleContains(sample, "čsob") || sampleContains(sample, "csob") {
			return true
		}
		for _, line := range sample {
			if lineHasAll(line, "výpis transakcí", "účet") {
				return true
			}
		}
		return false
	},

	LocateHeader: func(lines []string) int {
		return locateHeaderByKeywords(lines,
			[]string{"datum zaúčtování", "název účtu protistrany"},
			[]string{"datum zauctovani", "nazev uctu protistrany"},
		)
	},

	MapRow: func(row map[string]string) (MappedRow, error) {
		mapped := MappedRow{
			Amount:         models.ParseAmount(fieldLookup(row, "Částka", "částka", "castka")),
			Currency:       fieldLookup(row, "Měna", "měna", "mena"),
			Counterparty:   fieldLookup(row, "Název účtu protistrany", "protistrany", "protiúčet", "protiucet"),
			Description:    fieldLookup(row, "Popis", "popis"),
			Note:           fieldLookup(row, "Poznámka", "poznámka", "poznamka"),
			OperationType:  fieldLookup(row, "Typ operace", "typ"),
			VariableSymbol: fieldLookup(row, "Variabilní symbol", "variabilní", "variabilni"),
		}

		if raw := fieldLookup(row, "Datum zaúčtování", "datum zaúčtování", "datum zauctovani", "datum"); raw != "" {
			if date, err := dateutils.ParseStatementDate(raw); err == nil {
				mapped.Date = date
			}
		}

		if mapped.Currency == "" {
			mapped.Currency = models.DefaultCurrency
		}

		mapped.Category = categorizer.InferCategory(mapped.Description + " " + mapped.Counterparty)

		return mapped, nil
	},
}
