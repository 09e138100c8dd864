package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
)

// Jio Payments Bank (JPB). UPI traffic arrives tagged as "UPI/CR/<ref>/<name>"
// or "UPI/DR/<ref>/<name>".
var (
	jpbCredited = regexp.MustCompile(`(?i)credited\s+with\s+Rs\.?\s*([\d,]+(?:\.\d{2})?)`)
	jpbSent     = regexp.MustCompile(`(?i)Rs\.?\s*([\d,]+(?:\.\d{2})?)\s+Sent\s+from`)
	jpbDebited  = regexp.MustCompile(`(?i)debited\s+with\s+Rs\.?\s*([\d,]+(?:\.\d{2})?)`)
	jpbUPIName  = regexp.MustCompile(`(?i)UPI/(?:CR|DR)/[\d]+/([^.\n]+?)(?:\s*\.|$)`)
	jpbAcct     = regexp.MustCompile(`(?i)JPB\s+A/c\s+x(\d{4})`)
	jpbAcctFrom = regexp.MustCompile(`(?i)from\s+x(\d{4})`)
	jpbBal      = regexp.MustCompile(`(?i)Avl\.?\s*Bal:\s*Rs\.?\s*([\d,]+(?:\.\d{1,2})?)`)
	jpbUPIRef   = regexp.MustCompile(`(?i)UPI/(?:CR|DR)/(\d+)`)
)

// NewJioPaymentsBank builds the Jio Payments Bank rule set.
func NewJioPaymentsBank() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "Jio Payments Bank",
		Currency: "INR",
		MatchSender: senderMatcher(
			nil,
			[]string{"JIOPBS"},
		),
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if strings.Contains(lower, "jpb a/c") ||
					strings.Contains(lower, "upi/cr") ||
					strings.Contains(lower, "upi/dr") ||
					strings.Contains(lower, "sent from") {
					return true, true
				}
				return false, false
			},
		},
		Amount: []parser.AmountRule{
			reAmount(jpbCredited),
			reAmount(jpbSent),
			reAmount(jpbDebited),
		},
		Merchant: []parser.StringRule{
			reMerchant(jpbUPIName),
			func(message string) (string, bool) {
				lower := strings.ToLower(message)
				switch {
				case strings.Contains(lower, "upi/cr"):
					return "UPI Credit", true
				case strings.Contains(lower, "upi/dr"):
					return "UPI Payment", true
				case strings.Contains(lower, "sent from"):
					return "Money Transfer", true
				}
				return "", false
			},
		},
		Reference: []parser.StringRule{
			reString(jpbUPIRef),
		},
		Account: []parser.StringRule{
			reString(jpbAcct),
			reString(jpbAcctFrom),
		},
		Balance: []parser.AmountRule{
			reAmount(jpbBal),
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				switch {
				case strings.Contains(lower, "credited"):
					return parser.Income, true
				case strings.Contains(lower, "upi/cr"):
					return parser.Income, true
				case strings.Contains(lower, "debited"):
					return parser.Expense, true
				case strings.Contains(lower, "upi/dr"):
					return parser.Expense, true
				case strings.Contains(lower, "sent from"):
					return parser.Expense, true
				}
				return 0, false
			},
		},
	}
}
