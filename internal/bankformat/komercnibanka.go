package bankformat

import (
	"github.com/birosrichard/simple-expense-analyzer/internal/categorizer"
	"github.com/birosrichard/simple-expense-analyzer/internal/dateutils"
	"github.com/birosrichard/simple-expense-analyzer/internal/models"
)

// KomercniBanka describes the Komerční banka CSV export. KB exports
// ship with or without diacritics depending on the export encoding
// chosen in internet banking, so every key list carries both spellings.
var KomercniBanka = Format{
	Name:        "komercni-banka",
	DisplayName: "Komerční banka",
	Delimiter:   ';',

	Detect: func(sample []string) bool {
		if sampleContains(sample, "komerční banka") || sampleContains(sample, "komercni banka") {
			return true
		}
		for _, line := range sample {
			if lineHasAll(line, "datum splatnosti", "protiúčet") ||
				lineHasAll(line, "datum splatnosti", "protiucet") {
				return true
			}
		}
		return false
	},

	LocateHeader: func(lines []string) int {
		return locateHeaderByKeywords(lines,
			[]string{"datum splatnosti", "částka"},
			[]string{"datum splatnosti", "castka"},
		)
	},

	MapRow: func(row map[string]string) (MappedRow, error) {
		mapped := MappedRow{
			Amount:         models.ParseAmount(fieldLookup(row, "Částka", "částka", "castka")),
			Currency:       fieldLookup(row, "Měna", "měna", "mena"),
			Counterparty:   fieldLookup(row, "Název protiúčtu", "nazev protiuctu", "protiúčet", "protiucet"),
			Description:    fieldLookup(row, "Popis příkazce", "popis prikazce", "identifikace transakce", "popis"),
			Note:           fieldLookup(row, "Zpráva pro příjemce", "zprava pro prijemce", "AV pole"),
			OperationType:  fieldLookup(row, "Typ transakce", "typ"),
			VariableSymbol: fieldLookup(row, "VS", "variabilní symbol", "variabilni symbol"),
		}

		raw := fieldLookup(row, "Datum splatnosti", "datum splatnosti", "Datum odepsání", "datum odepsani", "datum")
		if raw != "" {
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
