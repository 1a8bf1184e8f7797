// Package parsererror defines the terminal error kinds a statement
// parse can surface. Exactly one of them is returned per failed parse;
// none of them is retryable within the same attempt.
package parsererror

import "fmt"

// HeaderNotFoundError means no descriptor located a header row in the
// file. The message guides the user towards the most common cause:
// the uploaded file is not a bank export at all.
type HeaderNotFoundError struct {
	BankName string
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("%s: no header row found - check that the file is an unmodified CSV export from your bank", e.BankName)
}

// CriticalParseError means the delimited-parse stage hit a structural
// error and produced zero records. Benign field-count mismatches never
// raise this; they are skipped as long as some records survive.
type CriticalParseError struct {
	BankName string
	Err      error
}

func (e *CriticalParseError) Error() string {
	return fmt.Sprintf("%s: statement could not be read as delimited data: %v", e.BankName, e.Err)
}

func (e *CriticalParseError) Unwrap() error {
	return e.Err
}

// NoValidTransactionsError means every row was filtered out during
// mapping (bad dates, zero amounts, mapping failures). Distinct from
// HeaderNotFoundError: the layout was recognized, the data was not.
type NoValidTransactionsError struct {
	BankName string
	RowCount int
}

func (e *NoValidTransactionsError) Error() string {
	return fmt.Sprintf("%s: none of the %d rows contained a usable transaction - the layout may be an unsupported variant of this export", e.BankName, e.RowCount)
}
