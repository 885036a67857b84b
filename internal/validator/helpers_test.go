package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func testOptions() Options {
	return Options{
		Limit: FixedLimit(100),
		Now:   func() time.Time { return fixedNow },
	}
}

// requireInvalidDocument asserts err is an InvalidDocumentError for property.
func requireInvalidDocument(t *testing.T, err error, schema, property string) *InvalidDocumentError {
	t.Helper()

	var invalid *InvalidDocumentError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, property, invalid.Property)
	if schema != "" {
		require.Equal(t, schema, invalid.Schema)
	}
	return invalid
}
