// Package bank declares one rule set per financial institution and the
// dispatch order that ties them together. Each file mirrors the phrasing of
// one institution's notifications; everything an institution does not
// override falls through to the generic rules in the parser package.
package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
	"github.com/shopspring/decimal"
)

// senderMatcher builds the usual predicate shape: exact ids, substring
// fragments, then DLT-style regexes, all against the uppercased sender.
func senderMatcher(exact []string, fragments []string, patterns ...*regexp.Regexp) func(string) bool {
	return func(sender string) bool {
		s := strings.ToUpper(sender)
		for _, e := range exact {
			if s == e {
				return true
			}
		}
		for _, f := range fragments {
			if strings.Contains(s, f) {
				return true
			}
		}
		for _, p := range patterns {
			if p.MatchString(s) {
				return true
			}
		}
		return false
	}
}

// reAmount wraps a single-capture amount pattern into an AmountRule.
func reAmount(re *regexp.Regexp) parser.AmountRule {
	return func(message string) (decimal.Decimal, bool) {
		if m := re.FindStringSubmatch(message); m != nil {
			return common.ParseAmount(m[1])
		}
		return decimal.Zero, false
	}
}

// reString wraps a single-capture pattern into a StringRule, no cleaning.
func reString(re *regexp.Regexp) parser.StringRule {
	return func(message string) (string, bool) {
		if m := re.FindStringSubmatch(message); m != nil {
			return strings.TrimSpace(m[1]), true
		}
		return "", false
	}
}

// reMerchant wraps a single-capture pattern into a merchant rule: the capture
// is normalized and must pass validation, otherwise extraction falls through.
func reMerchant(re *regexp.Regexp) parser.StringRule {
	return func(message string) (string, bool) {
		if m := re.FindStringSubmatch(message); m != nil {
			merchant := common.CleanMerchantName(strings.TrimSpace(m[1]))
			if common.IsValidMerchantName(merchant) {
				return merchant, true
			}
		}
		return "", false
	}
}

// last4Rule wraps a single-capture account pattern, keeping only the last
// four digits of whatever it captured.
func last4Rule(re *regexp.Regexp) parser.StringRule {
	return func(message string) (string, bool) {
		if m := re.FindStringSubmatch(message); m != nil {
			if d := last4(m[1]); d != "" {
				return d, true
			}
		}
		return "", false
	}
}

// last4 trims a captured account number down to its last four digits.
func last4(digits string) string {
	clean := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, digits)
	if len(clean) > 4 {
		return clean[len(clean)-4:]
	}
	return clean
}

// containsAny reports whether any of the fragments occurs in s.
func containsAny(s string, fragments ...string) bool {
	for _, f := range fragments {
		if strings.Contains(s, f) {
			return true
		}
	}
	return false
}
