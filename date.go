package marinedash

import (
	"strings"
	"time"
)

// unknownTimestamp is displayed when a payload timestamp cannot be parsed.
const unknownTimestamp = "Unknown"

// shortTimestampLayout is the "Mon D, HH:MM" display style.
const shortTimestampLayout = "Jan 2, 15:04"

// timestampLayouts are tried in order when parsing payload timestamps.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02 15:04:05",
}

// shortDateFormatter is the default DateFormatter. Locale-specific rendering
// stays behind the DateFormatter interface so hosts can swap it without
// touching widget logic.
type shortDateFormatter struct{}

// NewDateFormatter returns the default short-form timestamp formatter.
func NewDateFormatter() DateFormatter {
	return shortDateFormatter{}
}

// FormatShort renders a payload timestamp as "Jan 2, 15:04". Unparseable
// values degrade to "Unknown"; no failure ever propagates.
func (shortDateFormatter) FormatShort(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return unknownTimestamp
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(shortTimestampLayout)
		}
	}
	return unknownTimestamp
}
