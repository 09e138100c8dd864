package bank

import (
	"regexp"

	"github.com/rudrakos/finsms/parser"
)

// American Express. Charge card alerts, always typed Credit.
var (
	amexAmountSpent    = regexp.MustCompile(`(?i)spent\s+INR\s+([0-9,]+(?:\.\d{2})?)\s+on`)
	amexAmountSpentAlt = regexp.MustCompile(`(?i)INR\s+([0-9,]+(?:\.\d{2})?)\s+spent`)
	amexMerchantAt     = regexp.MustCompile(`(?i)at\s+([^•\n]+?)\s+on\s+\d{1,2}\s+\w+`)
	amexCardMasked     = regexp.MustCompile(`(?i)AMEX\s+card\s+\*+\s*(\d+)`)
	amexCardEnding     = regexp.MustCompile(`(?i)card\s+ending\s+(\d{4})`)
)

// NewAMEX builds the American Express rule set.
func NewAMEX() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "American Express",
		Currency: "INR",
		MatchSender: senderMatcher(
			[]string{"AMEXIN", "AMEX"},
			[]string{"AMEX", "AMEXIN"},
			regexp.MustCompile(`^[A-Z]{2}-AMEXIN-S$`),
			regexp.MustCompile(`^[A-Z]{2}-AMEX-S$`),
			regexp.MustCompile(`^[A-Z]{2}-AMEXIN-[TPG]$`),
			regexp.MustCompile(`^[A-Z]{2}-AMEX-[TPG]$`),
			regexp.MustCompile(`^[A-Z]{2}-AMEXIN$`),
			regexp.MustCompile(`^[A-Z]{2}-AMEX$`),
		),
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if containsAny(lower, "offer", "reward", "membership", "statement", "due date") {
					return false, true
				}
				return false, false
			},
		},
		Amount: []parser.AmountRule{
			reAmount(amexAmountSpent),
			reAmount(amexAmountSpentAlt),
		},
		Merchant: []parser.StringRule{
			reMerchant(amexMerchantAt),
		},
		Account: []parser.StringRule{
			last4Rule(amexCardMasked),
			reString(amexCardEnding),
		},
		PostProcess: func(tx *parser.Transaction) {
			tx.SetType(parser.Credit)
		},
	}
}
