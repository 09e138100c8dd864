package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
)

// Old Hickory Credit Union (US) account alerts, USD. Alerts name the account
// the transaction posted to rather than a merchant.
var (
	hickoryAmountDollar = regexp.MustCompile(`\$([0-9,]+(?:\.[0-9]{2})?)`)
	hickoryAmountTxnFor = regexp.MustCompile(`(?i)transaction for\s+\$([0-9,]+(?:\.[0-9]{2})?)`)
	hickoryAmountPosted = regexp.MustCompile(`(?i)posted.*?\$([0-9,]+(?:\.[0-9]{2})?)`)
	hickoryPostedTo     = regexp.MustCompile(`(?i)posted to\s+([^(]+)`)
	hickoryPartOf       = regexp.MustCompile(`(?i)\(part of\s+([^)]+)\)`)
	hickoryDigits       = regexp.MustCompile(`(\d{4,})`)
	hickoryThreshold    = regexp.MustCompile(`(?i)above the\s+\$([0-9,]+(?:\.[0-9]{2})?)\s+value you set`)
	hickoryNonDigit     = regexp.MustCompile(`[^\d]`)
	hickoryDLT          = regexp.MustCompile(`^[A-Z]{2}-HICKORY-[A-Z]$`)
)

// NewOldHickory builds the Old Hickory Credit Union rule set.
func NewOldHickory() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "Old Hickory Credit Union",
		Currency: "USD",
		MatchSender: func(sender string) bool {
			if hickoryNonDigit.ReplaceAllString(sender, "") == "8775907589" {
				return true
			}
			upper := strings.ToUpper(sender)
			if upper == "OLDHICKORY" || upper == "OHCU" ||
				strings.Contains(upper, "HICKORY") || strings.Contains(upper, "OLD HICKORY") {
				return true
			}
			return hickoryDLT.MatchString(upper)
		},
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if containsAny(lower,
					"transaction", "has posted", "posted to",
					"above the", "value you set", "account name") {
					return true, true
				}
				return false, false
			},
		},
		Amount: []parser.AmountRule{
			reAmount(hickoryAmountDollar),
			reAmount(hickoryAmountTxnFor),
			reAmount(hickoryAmountPosted),
		},
		Merchant: []parser.StringRule{
			func(message string) (string, bool) {
				if m := hickoryPostedTo.FindStringSubmatch(message); m != nil {
					if name := strings.TrimSpace(m[1]); name != "" {
						return "Account: " + common.CleanMerchantName(name), true
					}
				}
				return "Transaction Alert", true
			},
		},
		Reference: []parser.StringRule{
			func(message string) (string, bool) {
				if m := hickoryThreshold.FindStringSubmatch(message); m != nil {
					return "Alert threshold: $" + m[1], true
				}
				return "", false
			},
		},
		Account: []parser.StringRule{
			func(message string) (string, bool) {
				m := hickoryPartOf.FindStringSubmatch(message)
				if m == nil {
					return "", false
				}
				info := strings.TrimSpace(m[1])
				if d := hickoryDigits.FindStringSubmatch(info); d != nil {
					return last4(d[1]), true
				}
				return info, true
			},
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				switch {
				case strings.Contains(lower, "transaction") && strings.Contains(lower, "posted"),
					strings.Contains(lower, "has posted"),
					strings.Contains(lower, "transaction for"):
					return parser.Expense, true
				}
				return 0, false
			},
		},
	}
}
