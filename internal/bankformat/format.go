// Package bankformat provides the registry of supported bank-statement
// CSV layouts. Each layout is a plain value holding a detect predicate,
// a header locator and a row mapper; the registry is an ordered list
// resolved by first match, with a generic catch-all last.
package bankformat

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// HeaderNotFound is the sentinel returned by LocateHeader when no line
// matches the format's header keywords.
const HeaderNotFound = -1

// MappedRow is the canonical field set resolved from one raw record.
// A zero Date or zero Amount marks the row as unusable; the pipeline
// drops such rows silently.
type MappedRow struct {
	Date           time.Time
	Amount         decimal.Decimal
	Currency       string
	Counterparty   string
	Description    string
	Note           string
	OperationType  string
	VariableSymbol string
	Category       string
}

// Format describes one bank export layout. Formats are values, not
// implementations of an interface hierarchy: the three capabilities
// are plain function fields.
type Format struct {
	// Name is the short machine identifier of the layout.
	Name string
	// DisplayName is the human-readable bank name reported in ParsedData.
	DisplayName string
	// Delimiter is the field separator of the export. Zero means the
	// delimiter must be sniffed from the header line (generic layout).
	Delimiter rune

	// Detect inspects the first few trimmed lines of the file and
	// reports whether they look like this bank's export.
	Detect func(sample []string) bool
	// LocateHeader returns the zero-based index of the header row, or
	// HeaderNotFound.
	LocateHeader func(lines []string) int
	// MapRow resolves one header→value record into the canonical field
	// set. It must not panic; an error means "skip this row".
	MapRow func(row map[string]string) (MappedRow, error)
}

// DelimiterFor returns the delimiter to use for delimited parsing.
// Formats with a declared delimiter return it as-is; the generic
// format sniffs semicolon versus comma from the header line.
func (f Format) DelimiterFor(headerLine string) rune {
	if f.Delimiter != 0 {
		return f.Delimiter
	}
	if strings.Count(headerLine, ";") >= strings.Count(headerLine, ",") {
		return ';'
	}
	return ','
}

// Registry returns the supported formats in detection order:
// bank-specific layouts first, the generic catch-all last. Selection
// is greedy; the first format whose Detect returns true handles the
// whole file.
func Registry() []Format {
	return []Format{
		CeskaSporitelna,
		CSOB,
		KomercniBanka,
		AirBank,
		Generic,
	}
}

// DetectFormat runs the registry over the sample lines and returns the
// first matching format. It always succeeds because the generic
// format's detector accepts anything.
func DetectFormat(sample []string) Format {
	for _, f := range Registry() {
		if f.Detect(sample) {
			log.WithField("format", f.Name).Debug("Statement format detected")
			return f
		}
	}
	// Unreachable while Generic stays in the registry.
	return Generic
}

// sampleContains reports whether any sample line contains the marker,
// case-insensitively.
func sampleContains(sample []string, marker string) bool {
	marker = strings.ToLower(marker)
	for _, line := range sample {
		if strings.Contains(strings.ToLower(line), marker) {
			return true
		}
	}
	return false
}

// lineHasAll reports whether a single line contains every keyword,
// case-insensitively.
func lineHasAll(line string, keywords ...string) bool {
	line = strings.ToLower(line)
	for _, kw := range keywords {
		if !strings.Contains(line, strings.ToLower(kw)) {
			return false
		}
	}
	return true
}

// locateHeaderByKeywords returns the index of the first line containing
// all keywords of any group, or HeaderNotFound.
func locateHeaderByKeywords(lines []string, groups ...[]string) int {
	for i, line := range lines {
		for _, group := range groups {
			if lineHasAll(line, group...) {
				return i
			}
		}
	}
	return HeaderNotFound
}

// fieldLookup resolves a value from a header→value record. Each key is
// tried first as an exact header match, then as a case-insensitive
// substring of any header. Header spelling varies by export version
// and locale, which is why every format keeps an explicit key list
// instead of a single column name.
func fieldLookup(row map[string]string, keys ...string) string {
	for _, key := range keys {
		if v, ok := row[key]; ok {
			return strings.TrimSpace(v)
		}
	}
	// Fuzzy pass walks headers in sorted order: map iteration order
	// would make repeated parses of identical bytes nondeterministic.
	headers := make([]string, 0, len(row))
	for header := range row {
		headers = append(headers, header)
	}
	sort.Strings(headers)

	for _, key := range keys {
		lower := strings.ToLower(key)
		for _, header := range headers {
			if strings.Contains(strings.ToLower(header), lower) {
				return strings.TrimSpace(row[header])
			}
		}
	}
	return ""
}
