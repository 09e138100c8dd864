package common

import (
	"regexp"
	"time"
)

// In-message date/time shapes, most specific first. The notification delivery
// timestamp is not a stable identity signal — the same event can be delivered
// twice — so the time written inside the message is preferred when present.
var messageTimePatterns = []struct {
	re     *regexp.Regexp
	layout string
}{
	{regexp.MustCompile(`(\d{2}-\d{2}-\d{4}\s+\d{2}:\d{2}:\d{2})`), "02-01-2006 15:04:05"},
	{regexp.MustCompile(`(\d{2}/\d{2}/\d{4}\s+\d{2}:\d{2}:\d{2})`), "02/01/2006 15:04:05"},
	{regexp.MustCompile(`(\d{2}-\d{2}-\d{2}),?\s*(\d{2}:\d{2}:\d{2})`), ""}, // handled below
	{regexp.MustCompile(`(\d{2}-\d{2}-\d{4})`), "02-01-2006"},
	{regexp.MustCompile(`(\d{2}/\d{2}/\d{4})`), "02/01/2006"},
	{regexp.MustCompile(`(\d{1,2}-[A-Za-z]{3}-\d{2})`), "2-Jan-06"},
	{regexp.MustCompile(`(\d{2}/\d{2}/\d{2})`), "02/01/06"},
	{regexp.MustCompile(`(\d{2}-\d{2}-\d{2})`), "02-01-06"},
}

// ParseMessageTime extracts the transaction time written inside the message
// text, distinct from the delivery timestamp. Returns false when no date
// shape matches.
func ParseMessageTime(message string) (time.Time, bool) {
	for _, p := range messageTimePatterns {
		m := p.re.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		if p.layout == "" {
			// Two-digit year with a separate clock component.
			if t, err := time.ParseInLocation("02-01-06 15:04:05", m[1]+" "+m[2], time.UTC); err == nil {
				return t, true
			}
			continue
		}
		if t, err := time.ParseInLocation(p.layout, m[1], time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
