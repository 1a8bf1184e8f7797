package parsererror

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderNotFoundError(t *testing.T) {
	err := &HeaderNotFoundError{BankName: "Bankovní výpis"}
	assert.Contains(t, err.Error(), "Bankovní výpis")
	assert.Contains(t, err.Error(), "no header row")
}

func TestCriticalParseError(t *testing.T) {
	err := &CriticalParseError{BankName: "ČSOB", Err: io.ErrUnexpectedEOF}
	assert.Contains(t, err.Error(), "ČSOB")
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestNoValidTransactionsError(t *testing.T) {
	err := &NoValidTransactionsError{BankName: "Air Bank", RowCount: 7}
	assert.Contains(t, err.Error(), "Air Bank")
	assert.Contains(t, err.Error(), "7")
}

func TestErrorKindsAreDistinguishable(t *testing.T) {
	var asHeader *HeaderNotFoundError
	var asCritical *CriticalParseError
	var asNoTx *NoValidTransactionsError

	var err error = &NoValidTransactionsError{BankName: "x", RowCount: 1}
	assert.True(t, errors.As(err, &asNoTx))
	assert.False(t, errors.As(err, &asHeader))
	assert.False(t, errors.As(err, &asCritical))
}
