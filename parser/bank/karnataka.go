package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
)

// Karnataka Bank. Debits read "DEBITED for Rs.6368/-", ACH narration
// "ACHInwDr-MERCHANT/date".
var (
	ktkAmountDebit  = regexp.MustCompile(`(?i)DEBITED\s+for\s+Rs\.?([0-9,]+(?:\.\d{2})?)/?-?`)
	ktkAmountCredit = regexp.MustCompile(`(?i)credited\s+by\s+Rs\.?([0-9,]+(?:\.\d{2})?)`)
	ktkMerchantACH  = regexp.MustCompile(`(?i)ACH[A-Za-z]*-([^/]+)/`)
	ktkMerchantFrom = regexp.MustCompile(`(?i)from\s+([^\s]+)\s+on`)
	ktkAcctMasked   = regexp.MustCompile(`(?i)Account\s+[xX]*([0-9]{4,6})[xX]*`)
	ktkAcctShort    = regexp.MustCompile(`(?i)a/c\s+[xX]{0,2}([0-9]{4,6})`)
	ktkUPIRef       = regexp.MustCompile(`(?i)UPI\s+Ref\s+no\s+([0-9]+)`)
	ktkBalance      = regexp.MustCompile(`(?i)Balance\s+is\s+Rs\.?([0-9,]+(?:\.\d{2})?)`)
)

// NewKarnataka builds the Karnataka Bank rule set.
func NewKarnataka() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "Karnataka Bank",
		Currency: "INR",
		MatchSender: senderMatcher(
			[]string{"KBLBNK", "KARBANK"},
			[]string{"KARNATAKA BANK", "KARNATAKABANK", "KBLBNK", "KTKBANK", "KARBANK"},
			regexp.MustCompile(`^[A-Z]{2}-KBLBNK-S$`),
			regexp.MustCompile(`^[A-Z]{2}-KARBANK-S$`),
			regexp.MustCompile(`^[A-Z]{2}-KBLBNK$`),
		),
		Amount: []parser.AmountRule{
			reAmount(ktkAmountDebit),
			reAmount(ktkAmountCredit),
		},
		Merchant: []parser.StringRule{
			reMerchant(ktkMerchantACH),
			reMerchant(ktkMerchantFrom),
			func(message string) (string, bool) {
				lower := strings.ToLower(message)
				switch {
				case strings.Contains(lower, "lic of india"):
					return "LIC of India", true
				case strings.Contains(lower, "upi"):
					return "UPI Transaction", true
				}
				return "", false
			},
		},
		Reference: []parser.StringRule{
			reString(ktkUPIRef),
		},
		Account: []parser.StringRule{
			last4Rule(ktkAcctMasked),
			last4Rule(ktkAcctShort),
		},
		Balance: []parser.AmountRule{
			reAmount(ktkBalance),
		},
	}
}
