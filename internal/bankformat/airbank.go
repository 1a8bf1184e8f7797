package bankformat

import (
	"strings"

	"github.com/birosrichard/simple-expense-analyzer/internal/categorizer"
	"github.com/birosrichard/simple-expense-analyzer/internal/dateutils"
	"github.com/birosrichard/simple-expense-analyzer/internal/models"
)

// AirBank describes the Air Bank CSV export. Some export versions
// report outgoing payments as positive amounts with a separate
// direction column; the mapper normalizes those to negative.
var AirBank = Format{
	Name:        "air-bank",
	DisplayName: "Air Bank",
	Delimiter:   ';',

	Detect: func(sample []string) bool {
		if sampleContains(sample, "air bank") {
			return true
		}
		for _, line := range sample {
			if lineHasAll(line, "datum provedení", "částka v měně účtu") ||
				lineHasAll(line, "datum provedeni", "castka v mene uctu") {
				return true
			}
		}
		return false
	},

	LocateHeader: func(lines []string) int {
		return locateHeaderByKeywords(lines,
			[]string{"datum provedení", "částka"},
			[]string{"datum provedeni", "castka"},
		)
	},

	MapRow: func(row map[string]string) (MappedRow, error) {
		mapped := MappedRow{
			Amount:         models.ParseAmount(fieldLookup(row, "Částka v měně účtu", "částka", "castka")),
			Currency:       fieldLookup(row, "Měna účtu", "měna", "mena"),
			Counterparty:   fieldLookup(row, "Název protistrany", "nazev protistrany", "protistran"),
			Description:    fieldLookup(row, "Poznámka k úhradě", "poznamka k uhrade", "místo", "misto"),
			Note:           fieldLookup(row, "Zpráva pro příjemce", "zprava pro prijemce"),
			OperationType:  fieldLookup(row, "Typ úhrady", "typ uhrady", "typ"),
			VariableSymbol: fieldLookup(row, "Variabilní symbol", "variabilni symbol"),
		}

		if raw := fieldLookup(row, "Datum provedení", "datum provedení", "datum provedeni", "datum"); raw != "" {
			if date, err := dateutils.ParseStatementDate(raw); err == nil {
				mapped.Date = date
			}
		}

		direction := strings.ToLower(fieldLookup(row, "Směr úhrady", "smer uhrady", "směr", "smer"))
		if strings.Contains(direction, "odchoz") && mapped.Amount.IsPositive() {
			mapped.Amount = mapped.Amount.Neg()
		}

		if mapped.Currency == "" {
			mapped.Currency = models.DefaultCurrency
		}

		mapped.Category = categorizer.InferCategory(mapped.Description + " " + mapped.Counterparty)

		return mapped, nil
	},
}
