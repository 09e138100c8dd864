package common

import (
	"regexp"
	"strings"
)

// Currency symbols that can stand in for a code.
var currencySymbols = []struct {
	symbol string
	code   string
}{
	{"₹", "INR"},
	{"$", "USD"},
	{"£", "GBP"},
	{"€", "EUR"},
	{"¥", "JPY"},
	{"₨", "NPR"},
}

// A 3-letter code sitting right next to an amount. Month abbreviations share
// the shape and must be rejected.
var (
	currencyBeforeAmount = regexp.MustCompile(`([A-Z]{3})\s*[0-9,]+(?:\.\d{1,2})?`)
	currencyAfterAmount  = regexp.MustCompile(`[0-9,]+(?:\.\d{1,2})?\s*([A-Z]{3})`)
)

var monthAbbreviations = map[string]struct{}{
	"JAN": {}, "FEB": {}, "MAR": {}, "APR": {}, "MAY": {}, "JUN": {},
	"JUL": {}, "AUG": {}, "SEP": {}, "OCT": {}, "NOV": {}, "DEC": {},
}

// IsMonthAbbreviation reports whether a candidate 3-letter code is actually a
// month token.
func IsMonthAbbreviation(code string) bool {
	_, ok := monthAbbreviations[strings.ToUpper(code)]
	return ok
}

// DetectCurrency scans a message for currency evidence: a known symbol first,
// then a 3-letter code adjacent to the amount. Returns false when the message
// carries no usable signal, in which case the institution default applies.
func DetectCurrency(message string) (string, bool) {
	for _, s := range currencySymbols {
		if strings.Contains(message, s.symbol) {
			return s.code, true
		}
	}
	if m := currencyBeforeAmount.FindStringSubmatch(message); m != nil {
		if !IsMonthAbbreviation(m[1]) {
			return m[1], true
		}
	}
	if m := currencyAfterAmount.FindStringSubmatch(message); m != nil {
		if !IsMonthAbbreviation(m[1]) {
			return m[1], true
		}
	}
	return "", false
}
