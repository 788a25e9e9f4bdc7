package datemath

import (
	"errors"
	"strings"
	"time"
)

const layoutDate = "2006-01-02"

// ErrUnknownExpression is returned when a day expression cannot be resolved.
var ErrUnknownExpression = errors.New("unknown date expression")

// timestampLayouts are tried in order.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	layoutDate,
}

// ParseTimestamp parses a stored timestamp. Layouts without an offset, including
// bare dates, are read in the parser's timezone. Empty or malformed input yields ok=false.
func (p *Parser) ParseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, raw, p.location); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
