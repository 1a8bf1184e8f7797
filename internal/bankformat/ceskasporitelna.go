package bankformat

import (
	"github.com/birosrichard/simple-expense-analyzer/internal/dateutils"
	"github.com/birosrichard/simple-expense-analyzer/internal/models"
)

// CeskaSporitelna describes the Česká spořitelna (George) CSV export.
// The export opens with account metadata lines before the header and
// is the only supported layout carrying its own category column.
var CeskaSporitelna = Format{
	Name:        "ceska-sporitelna",
	DisplayName: "Česká spořitelna",
	Delimiter:   ';',

	Detect: func(sample []string) bool {
		if sampleContains(sample, "česká spořitelna") {
			return true
		}
		// Older George exports drop the bank name from the preamble;
		// the header column pair is still distinctive.
		for _, line := range sample {
			if lineHasAll(line, "datum zaúčtování", "název protiúčtu") {
				return true
			}
		}
		return false
	},

	LocateHeader: func(lines []string) int {
		return locateHeaderByKeywords(lines,
			[]string{"datum zaúčtování", "částka"},
			[]string{"datum zauctovani", "castka"},
		)
	},

	MapRow: func(row map[string]string) (MappedRow, error) {
		mapped := MappedRow{
			Amount:         models.ParseAmount(fieldLookup(row, "Částka", "částka", "castka")),
			Currency:       fieldLookup(row, "Měna", "měna", "mena"),
			Counterparty:   fieldLookup(row, "Název protiúčtu", "název protiúčtu", "nazev protiuctu"),
			Description:    fieldLookup(row, "Popis transakce", "popis"),
			Note:           fieldLookup(row, "Zpráva pro příjemce", "zpráva", "zprava"),
			OperationType:  fieldLookup(row, "Typ transakce", "typ"),
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

		// George assigns its own categories; an empty cell stays the
		// uncategorized sentinel rather than going through inference.
		mapped.Category = fieldLookup(row, "Kategorie transakce", "kategorie")
		if mapped.Category == "" {
			mapped.Category = models.CategoryUncategorized
		}

		return mapped, nil
	},
}
