package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a locale-formatted amount string into a decimal.
// Czech exports use a comma decimal separator and space (often NBSP)
// thousands grouping, e.g. "1 234,56".
//
// Unparseable input yields decimal.Zero rather than an error. The
// pipeline later discards zero-amount rows, so a garbage amount and a
// genuine zero are deliberately indistinguishable; callers must not
// rely on zero meaning "parsed fine".
func ParseAmount(amountStr string) decimal.Decimal {
	amount := strings.TrimSpace(amountStr)
	if amount == "" {
		return decimal.Zero
	}

	// Strip grouping spaces, including non-breaking ones.
	amount = strings.ReplaceAll(amount, " ", "")
	amount = strings.ReplaceAll(amount, " ", "")

	// Comma decimal separator to dot.
	amount = strings.ReplaceAll(amount, ",", ".")

	// Common currency markers pasted into amount cells.
	amount = strings.ReplaceAll(amount, "Kč", "")
	amount = strings.ReplaceAll(amount, "CZK", "")
	amount = strings.ReplaceAll(amount, "EUR", "")
	amount = strings.ReplaceAll(amount, "€", "")

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero
	}
	return dec
}
