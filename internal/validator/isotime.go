package validator

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidISOTime is returned when a timestamp matches none of the accepted forms.
var ErrInvalidISOTime = errors.New("invalid ISO 8601 timestamp")

// isoLayouts are tried in order. Go accepts fractional seconds after the seconds
// field even when the layout omits them. Layouts without a zone parse as UTC.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05Z07",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05Z0700",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseISOTime parses an ISO 8601 timestamp and normalizes it to UTC.
func ParseISOTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidISOTime
}
