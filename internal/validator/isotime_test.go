package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISOTime(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
	}{
		{input: "2026-05-01T10:00:00Z", expected: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)},
		{input: "2026-05-01T10:00:00.5Z", expected: time.Date(2026, 5, 1, 10, 0, 0, 500000000, time.UTC)},
		{input: "2026-05-01T12:00:00+02:00", expected: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)},
		{input: "2026-05-01T12:00:00+0200", expected: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)},
		{input: "2026-05-01 10:00:00Z", expected: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)},
		{input: "2026-05-01T10:00:00.180394", expected: time.Date(2026, 5, 1, 10, 0, 0, 180394000, time.UTC)},
		{input: "2026-05-01T10:00", expected: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)},
		{input: "2026-05-01", expected: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)},
		{input: "  2026-05-01T10:00:00Z  ", expected: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseISOTime(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}

	for _, bad := range []string{"not-a-date", "2026-13-01", "01/05/2026", ""} {
		t.Run("invalid "+bad, func(t *testing.T) {
			_, err := ParseISOTime(bad)
			assert.ErrorIs(t, err, ErrInvalidISOTime)
		})
	}
}
