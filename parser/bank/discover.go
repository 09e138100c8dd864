package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
)

// Discover Card alerts, USD.
var (
	discoverAmountTxn  = regexp.MustCompile(`(?i)transaction of\s+\$([0-9,]+(?:\.[0-9]{2})?)`)
	discoverAmountAt   = regexp.MustCompile(`(?i)\$([0-9,]+(?:\.[0-9]{2})?)\s+at`)
	discoverMerchantAt = regexp.MustCompile(`(?i)at\s+([^\s]+(?:\s+[^\s]*)*?)(?:\s+on|\s+Text|$)`)
	discoverPaypal     = regexp.MustCompile(`(?i)at\s+(PAYPAL\s+\*[^\s]+)`)
	discoverDateShape  = regexp.MustCompile(`^\w+\s+\d{1,2},\s+\d{4}$`)
	discoverRefDate    = regexp.MustCompile(`(?i)on\s+(\w+\s+\d{1,2},\s+\d{4})`)
)

// NewDiscover builds the Discover Card rule set.
func NewDiscover() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "Discover Card",
		Currency: "USD",
		MatchSender: senderMatcher(
			[]string{"DISCOVER", "347268"},
			[]string{"DISCOVERCARD"},
			regexp.MustCompile(`^[A-Z]{2}-DISCOVER-[A-Z]$`),
		),
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if strings.Contains(lower, "text stop to end") && !strings.Contains(lower, "transaction of") {
					return false, true
				}
				if containsAny(lower,
					"discover card alert:", "transaction of",
					"no action needed", "see it at https://app.discover.com") {
					return true, true
				}
				return false, false
			},
		},
		Amount: []parser.AmountRule{
			reAmount(discoverAmountTxn),
			reAmount(discoverAmountAt),
		},
		Merchant: []parser.StringRule{
			func(message string) (string, bool) {
				if m := discoverMerchantAt.FindStringSubmatch(message); m != nil {
					merchant := strings.TrimSpace(m[1])
					if merchant != "" && !discoverDateShape.MatchString(merchant) {
						return common.CleanMerchantName(merchant), true
					}
				}
				return "", false
			},
			func(message string) (string, bool) {
				if m := discoverPaypal.FindStringSubmatch(message); m != nil {
					return common.CleanMerchantName(strings.TrimSpace(m[1])), true
				}
				return "", false
			},
		},
		Reference: []parser.StringRule{
			reString(discoverRefDate),
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				if containsAny(lower, "discover card alert", "transaction of", "transaction") {
					return parser.Expense, true
				}
				return 0, false
			},
		},
	}
}
