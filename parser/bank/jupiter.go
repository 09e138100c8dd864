package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
)

// Jupiter, the digital banking app on CSB Bank rails. Card messages rarely
// name the merchant, so the merchant field is a coarse label.
var (
	jupiterAmountDebit  = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+debited`)
	jupiterAmountCredit = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+credited`)
	jupiterEnding       = regexp.MustCompile(`(?i)ending\s+(\d{4})`)
	jupiterUPIRef       = regexp.MustCompile(`(?i)UPI\s+Ref\s+no\.?\s*([A-Za-z0-9]+)`)
)

// NewJupiter builds the Jupiter rule set.
func NewJupiter() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "Jupiter",
		Currency: "INR",
		MatchSender: senderMatcher(
			nil,
			nil,
			regexp.MustCompile(`^[A-Z]{2}-JTEDGE-S$`),
			regexp.MustCompile(`^[A-Z]{2}-JTEDGE-T$`),
			regexp.MustCompile(`^[A-Z]{2}-JTEDGE$`),
		),
		Amount: []parser.AmountRule{
			reAmount(jupiterAmountDebit),
			reAmount(jupiterAmountCredit),
		},
		Merchant: []parser.StringRule{
			func(message string) (string, bool) {
				lower := strings.ToLower(message)
				switch {
				case strings.Contains(lower, "edge csb bank rupay credit card"),
					strings.Contains(lower, "jupiter csb edge"),
					strings.Contains(lower, "credit card"):
					return "Credit Card Payment", true
				case strings.Contains(lower, "upi"):
					return "UPI Transaction", true
				}
				return "", false
			},
		},
		Reference: []parser.StringRule{
			reString(jupiterUPIRef),
		},
		Account: []parser.StringRule{
			reString(jupiterEnding),
		},
		PostProcess: func(tx *parser.Transaction) {
			if tx.Merchant == "" {
				tx.Merchant = "Jupiter Transaction"
			}
		},
	}
}
