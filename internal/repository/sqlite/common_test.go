package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	apperrors "challenge-tracker/internal/errors"

	"github.com/stretchr/testify/assert"
)

type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestHandleDatabaseError(t *testing.T) {
	err := HandleDatabaseError("put", errors.New("disk I/O error"))
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeDatabase))

	err = HandleDatabaseError("put", fmt.Errorf("wrapped: %w", context.DeadlineExceeded))
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeTimeout))
}

func TestHandleNoRowsError(t *testing.T) {
	err := HandleNoRowsError(sql.ErrNoRows, "key", "k")
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))

	other := errors.New("other")
	assert.Equal(t, other, HandleNoRowsError(other, "key", "k"))
}

func TestValidateRowsAffected(t *testing.T) {
	assert.NoError(t, ValidateRowsAffected(fakeResult{rows: 1}, "key", "k"))

	err := ValidateRowsAffected(fakeResult{rows: 0}, "key", "k")
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))

	err = ValidateRowsAffected(fakeResult{err: errors.New("unsupported")}, "key", "k")
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeDatabase))
}

type fakeScanner struct {
	values []string
	err    error
}

func (s fakeScanner) Scan(dest ...interface{}) error {
	if s.err != nil {
		return s.err
	}
	for i, d := range dest {
		*(d.(*string)) = s.values[i]
	}
	return nil
}

func TestScanRecord(t *testing.T) {
	record, err := ScanRecord(fakeScanner{values: []string{"k", "v", "2026-01-02T03:04:05Z"}})
	assert.NoError(t, err)
	assert.Equal(t, "k", record.Key)
	assert.Equal(t, "v", record.Value)
	assert.Equal(t, 2026, record.UpdatedAt.Year())

	_, err = ScanRecord(fakeScanner{values: []string{"k", "v", "garbage"}})
	assert.Error(t, err)

	_, err = ScanRecord(fakeScanner{err: sql.ErrNoRows})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
