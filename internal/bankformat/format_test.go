package bankformat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		sample   []string
		expected string
	}{
		{
			name: "ceska sporitelna by bank name in preamble",
			sample: []string{
				"Česká spořitelna, a.s.",
				"Výpis z účtu 123456789/0800",
			},
			expected: "ceska-sporitelna",
		},
		{
			name: "ceska sporitelna by header column pair",
			sample: []string{
				"Datum zaúčtování;Částka;Měna;Název protiúčtu;Popis transakce",
			},
			expected: "ceska-sporitelna",
		},
		{
			name: "csob by bank name",
			sample: []string{
				"ČSOB Internetové bankovnictví",
				"Výpis transakcí",
			},
			expected: "csob",
		},
		{
			name: "komercni banka without diacritics",
			sample: []string{
				"Komercni banka, a.s.",
				"Datum splatnosti;Castka;Mena",
			},
			expected: "komercni-banka",
		},
		{
			name: "air bank by header columns",
			sample: []string{
				"Datum provedení;Směr úhrady;Částka v měně účtu;Měna účtu",
			},
			expected: "air-bank",
		},
		{
			name: "unknown layout falls through to generic",
			sample: []string{
				"Datum,Částka,Popis",
				"15.03.2026,-250,Nákup",
			},
			expected: "generic",
		},
		{
			name:     "empty sample is still generic",
			sample:   nil,
			expected: "generic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectFormat(tt.sample).Name)
		})
	}
}

func TestDetectFormatOrderIsGreedy(t *testing.T) {
	// A file naming two banks resolves to whichever comes first in the
	// registry, not to the "best" match.
	sample := []string{"Česká spořitelna převod na účet u Komerční banky"}
	assert.Equal(t, "ceska-sporitelna", DetectFormat(sample).Name)
}

func TestDelimiterFor(t *testing.T) {
	tests := []struct {
		name       string
		format     Format
		headerLine string
		expected   rune
	}{
		{
			name:       "declared delimiter wins over header content",
			format:     CeskaSporitelna,
			headerLine: "a,b,c",
			expected:   ';',
		},
		{
			name:       "generic sniffs semicolon",
			format:     Generic,
			headerLine: "Datum;Částka;Popis",
			expected:   ';',
		},
		{
			name:       "generic sniffs comma",
			format:     Generic,
			headerLine: "Datum,Částka,Popis",
			expected:   ',',
		},
		{
			name:       "generic tie prefers semicolon",
			format:     Generic,
			headerLine: "Datum;Částka,Popis",
			expected:   ';',
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.DelimiterFor(tt.headerLine))
		})
	}
}

func TestLocateHeaderByKeywords(t *testing.T) {
	lines := []string{
		"Air Bank a.s.",
		"Výpis z účtu za březen 2026",
		"",
		"Datum provedení;Částka v měně účtu;Měna účtu",
		"15.03.2026;-250,50;CZK",
	}

	assert.Equal(t, 3, locateHeaderByKeywords(lines, []string{"datum provedení", "částka"}))
	assert.Equal(t, HeaderNotFound, locateHeaderByKeywords(lines, []string{"datum zaúčtování", "částka"}))
	assert.Equal(t, HeaderNotFound, locateHeaderByKeywords(nil, []string{"datum"}))
}

func TestFieldLookup(t *testing.T) {
	row := map[string]string{
		"Datum zaúčtování": "15.03.2026",
		"Částka":           " -250,50 ",
		"Název protiúčtu":  "ALBERT 0652",
	}

	t.Run("exact match", func(t *testing.T) {
		assert.Equal(t, "15.03.2026", fieldLookup(row, "Datum zaúčtování"))
	})

	t.Run("exact match trims whitespace", func(t *testing.T) {
		assert.Equal(t, "-250,50", fieldLookup(row, "Částka"))
	})

	t.Run("case-insensitive substring fallback", func(t *testing.T) {
		assert.Equal(t, "ALBERT 0652", fieldLookup(row, "protiúčtu"))
		assert.Equal(t, "15.03.2026", fieldLookup(row, "datum"))
	})

	t.Run("earlier key wins over later key", func(t *testing.T) {
		assert.Equal(t, "-250,50", fieldLookup(row, "Částka", "Datum zaúčtování"))
	})

	t.Run("no match returns empty string", func(t *testing.T) {
		assert.Equal(t, "", fieldLookup(row, "Variabilní symbol"))
	})

	t.Run("fuzzy pass is deterministic across repeated calls", func(t *testing.T) {
		// Both headers contain "datum"; the sorted fuzzy pass must pick
		// the same one every time.
		ambiguous := map[string]string{
			"Datum splatnosti": "01.03.2026",
			"Datum odepsání":   "02.03.2026",
		}
		first := fieldLookup(ambiguous, "datum")
		for i := 0; i < 20; i++ {
			assert.Equal(t, first, fieldLookup(ambiguous, "datum"))
		}
		assert.Equal(t, "02.03.2026", first)
	})
}
