package common

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var nonNumericRegex = regexp.MustCompile(`[^0-9.]`)

// CleanDecimal parses a string into a decimal.Decimal, removing non-numeric characters
func CleanDecimal(text string) (decimal.Decimal, error) {
	cleanText := nonNumericRegex.ReplaceAllString(text, "")
	if cleanText == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(cleanText)
	if err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// ParseAmount converts a captured amount string (thousands separators allowed)
// into a decimal. A malformed capture is a non-match, not an error: extraction
// continues with the next pattern.
func ParseAmount(captured string) (decimal.Decimal, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(captured), ",", "")
	if s == "" {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}
