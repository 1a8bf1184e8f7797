// Package pipeline implements the statement normalization pipeline:
// format detection, header discovery, delimited parsing, row mapping
// and post-parse invariant enforcement. One call normalizes one whole
// file; there is no partial success.
package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/birosrichard/simple-expense-analyzer/internal/bankformat"
	"github.com/birosrichard/simple-expense-analyzer/internal/models"
	"github.com/birosrichard/simple-expense-analyzer/internal/parsererror"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// detectSampleSize is how many leading lines the format detectors see.
const detectSampleSize = 10

// Parse normalizes raw statement text into ParsedData. The input is
// the full file content (UTF-8, optionally BOM-prefixed); file I/O,
// size limits and MIME checks are the caller's concern.
//
// Parse is a pure function of the content: identical bytes always
// yield identical output. It holds no resources and is safe to call
// concurrently for independent files.
//
// On failure it returns exactly one of the parsererror kinds:
// HeaderNotFoundError, CriticalParseError or NoValidTransactionsError.
func Parse(content string) (*models.ParsedData, error) {
	content = strings.TrimPrefix(content, "\ufeff")
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	format := bankformat.DetectFormat(sampleLines(lines))
	log.WithField("bank", format.DisplayName).Info("Parsing bank statement")

	headerIdx := format.LocateHeader(lines)
	if headerIdx == bankformat.HeaderNotFound {
		log.WithField("bank", format.DisplayName).Warn("No header row located")
		return nil, &parsererror.HeaderNotFoundError{BankName: format.DisplayName}
	}

	records, rawCount, severeErr := parseDelimited(lines[headerIdx:], format.DelimiterFor(lines[headerIdx]))
	if rawCount == 0 && severeErr != nil {
		log.WithError(severeErr).WithField("bank", format.DisplayName).Warn("Delimited parse produced no records")
		return nil, &parsererror.CriticalParseError{BankName: format.DisplayName, Err: severeErr}
	}

	transactions := mapRecords(format, records)
	if len(transactions) == 0 {
		log.WithFields(logrus.Fields{
			"bank": format.DisplayName,
			"rows": rawCount,
		}).Warn("All rows filtered out during mapping")
		return nil, &parsererror.NoValidTransactionsError{BankName: format.DisplayName, RowCount: rawCount}
	}

	// Stable sort keeps repeated runs deterministic even though the
	// relative order of equal dates is otherwise unspecified.
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
	for i := range transactions {
		transactions[i].ID = i
	}

	result := &models.ParsedData{
		BankName:     format.DisplayName,
		Transactions: transactions,
		DateRange: models.DateRange{
			From: transactions[len(transactions)-1].Date,
			To:   transactions[0].Date,
		},
	}

	log.WithFields(logrus.Fields{
		"bank":  result.BankName,
		"count": len(transactions),
		"from":  result.DateRange.From.Format("2006-01-02"),
		"to":    result.DateRange.To.Format("2006-01-02"),
	}).Info("Statement parsed")

	return result, nil
}

// sampleLines returns the first detectSampleSize lines, trimmed.
func sampleLines(lines []string) []string {
	n := len(lines)
	if n > detectSampleSize {
		n = detectSampleSize
	}
	sample := make([]string, 0, n)
	for _, line := range lines[:n] {
		sample = append(sample, strings.TrimSpace(line))
	}
	return sample
}

// parseDelimited reads the content from the header row onward into
// header→value records. Field-count mismatches are tolerated (short
// rows leave trailing columns empty, long rows drop the excess);
// structural csv errors skip the affected row and are remembered so
// the caller can escalate when nothing was parsed at all.
func parseDelimited(lines []string, delimiter rune) ([]map[string]string, int, error) {
	reader := csv.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, 0, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.Trim(header[i], "\""))
	}

	var records []map[string]string
	var severeErr error
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			severeErr = err
			continue
		}
		if isBlank(fields) {
			continue
		}

		record := make(map[string]string, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			if i < len(fields) {
				record[name] = fields[i]
			} else {
				record[name] = ""
			}
		}
		records = append(records, record)
	}

	return records, len(records), severeErr
}

// isBlank reports whether every field of a record is empty after
// trimming. Exports often pad the end of the file with such rows.
func isBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// mapRecords applies the format's row mapper in original order and
// keeps rows that resolved to a real date and a non-zero amount.
// Mapping failures of any kind drop the row silently.
func mapRecords(format bankformat.Format, records []map[string]string) []models.Transaction {
	var transactions []models.Transaction
	for i, record := range records {
		mapped, err := mapRowSafe(format, record)
		if err != nil {
			log.WithError(err).WithField("row", i).Debug("Row mapping failed, skipping")
			continue
		}
		if mapped.Date.IsZero() || mapped.Amount.IsZero() {
			continue
		}

		category := mapped.Category
		if category == "" {
			category = models.CategoryUncategorized
		}

		tx := models.Transaction{
			// Provisional id in source order; overwritten after sorting.
			ID:             len(transactions),
			Date:           mapped.Date,
			Amount:         mapped.Amount,
			Currency:       mapped.Currency,
			Counterparty:   mapped.Counterparty,
			Description:    mapped.Description,
			Note:           mapped.Note,
			OperationType:  mapped.OperationType,
			VariableSymbol: mapped.VariableSymbol,
			Category:       category,
		}
		tx.SyncDateText()
		transactions = append(transactions, tx)
	}
	return transactions
}

// mapRowSafe shields the pipeline from a panicking row mapper; a
// malformed row must only ever cost itself, never the whole parse.
func mapRowSafe(format bankformat.Format, record map[string]string) (mapped bankformat.MappedRow, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("row mapper panic: %v", r)
			mapped = bankformat.MappedRow{}
		}
	}()
	return format.MapRow(record)
}
