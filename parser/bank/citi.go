package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
)

// Citi Bank (US) card alerts, USD.
var (
	citiAmountBefore   = regexp.MustCompile(`(?i)\$([0-9,]+(?:\.[0-9]{2})?)\s+transaction`)
	citiAmountAfter    = regexp.MustCompile(`(?i)transaction.*?\$([0-9,]+(?:\.[0-9]{2})?)`)
	citiMerchantMadeAt = regexp.MustCompile(`(?i)transaction was made at\s+([^.]+?)(?:\s+on|$)`)
	citiMerchantAt     = regexp.MustCompile(`(?i)transaction at\s+([^.]+?)(?:\s+View|\.|$)`)
	citiCardEnding     = regexp.MustCompile(`(?i)card ending in\s+(\d{4})`)
	citiRefDate        = regexp.MustCompile(`(?i)on\s+(card ending|\w+\s+\d{1,2},\s+\d{4})`)
)

// NewCiti builds the Citi Bank rule set.
func NewCiti() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "Citi Bank",
		Currency: "USD",
		MatchSender: senderMatcher(
			[]string{"CITI", "692484"},
			[]string{"CITIBANK"},
			regexp.MustCompile(`^[A-Z]{2}-CITI-[A-Z]$`),
		),
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if containsAny(lower,
					"citi alert:", "transaction was made", "card ending",
					"was not present for", "view details at citi.com") {
					return true, true
				}
				return false, false
			},
		},
		Amount: []parser.AmountRule{
			reAmount(citiAmountBefore),
			reAmount(citiAmountAfter),
		},
		Merchant: []parser.StringRule{
			reMerchant(citiMerchantMadeAt),
			reMerchant(citiMerchantAt),
		},
		Reference: []parser.StringRule{
			func(message string) (string, bool) {
				if m := citiRefDate.FindStringSubmatch(message); m != nil {
					if !strings.Contains(strings.ToLower(m[1]), "card ending") {
						return m[1], true
					}
				}
				return "", false
			},
		},
		Account: []parser.StringRule{
			reString(citiCardEnding),
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				if containsAny(lower, "transaction was made", "card ending", "was not present", "transaction") {
					return parser.Expense, true
				}
				return 0, false
			},
		},
	}
}
