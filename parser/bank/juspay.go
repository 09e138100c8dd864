package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
)

// Juspay routes Amazon Pay wallet traffic. Wallet credits and refunds are
// typed Credit; spends from the wallet balance are expenses.
var (
	juspayAmountDebit   = regexp.MustCompile(`(?i)debited\s+for\s+INR\s+([0-9,]+(?:\.[0-9]{1,2})?)`)
	juspayAmountPayment = regexp.MustCompile(`(?i)Payment\s+of\s+Rs\s+([0-9,]+(?:\.[0-9]{1,2})?)`)
	juspayAmountRs      = regexp.MustCompile(`(?i)Rs\s+([0-9,]+(?:\.[0-9]{1,2})?)`)
	juspayAmountINR     = regexp.MustCompile(`(?i)INR\s+([0-9,]+(?:\.[0-9]{1,2})?)`)
	juspaySuccessfulAt  = regexp.MustCompile(`(?i)successful\s+at\s+([^.\s]+)`)
	juspayRefNumber     = regexp.MustCompile(`(?i)Transaction\s+Reference\s+Number\s+is\s+(\d{12})`)
	juspayRefAlt        = regexp.MustCompile(`(?i)Reference\s+(?:Number|No)[:\s]+(\d{12})`)
)

// juspayBrands, first fragment match wins.
var juspayBrands = []struct {
	fragment string
	name     string
}{
	{"amazon", "Amazon"},
	{"flipkart", "Flipkart"},
	{"swiggy", "Swiggy"},
	{"zomato", "Zomato"},
	{"ola", "Ola"},
	{"uber", "Uber"},
	{"zepto", "Zepto"},
	{"blinkit", "Blinkit"},
}

// NewJuspay builds the Amazon Pay rule set.
func NewJuspay() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "Amazon Pay",
		Currency: "INR",
		MatchSender: senderMatcher(
			[]string{"AMAZON PAY"},
			[]string{"JUSPAY", "APAY"},
		),
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if containsAny(lower,
					"debited for", "payment of rs", "using apay balance",
					"transaction reference number", "updated balance is") {
					return true, true
				}
				return false, false
			},
		},
		Amount: []parser.AmountRule{
			reAmount(juspayAmountDebit),
			reAmount(juspayAmountPayment),
			reAmount(juspayAmountRs),
			reAmount(juspayAmountINR),
		},
		Merchant: []parser.StringRule{
			reString(juspaySuccessfulAt),
			func(message string) (string, bool) {
				lower := strings.ToLower(message)
				for _, b := range juspayBrands {
					if strings.Contains(lower, b.fragment) {
						return b.name, true
					}
				}
				if strings.Contains(lower, "wallet") {
					return "Amazon Pay Transaction", true
				}
				return "", false
			},
		},
		Reference: []parser.StringRule{
			reString(juspayRefNumber),
			reString(juspayRefAlt),
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				switch {
				case containsAny(lower, "debited", "payment", "charged"):
					return parser.Expense, true
				case containsAny(lower, "credited", "refunded", "received"):
					return parser.Credit, true
				}
				return 0, false
			},
		},
		PostProcess: func(tx *parser.Transaction) {
			if tx.Merchant == "" {
				tx.Merchant = "Amazon Pay"
			}
		},
	}
}
