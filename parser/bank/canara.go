package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
)

// Canara Bank. UPI payments read "Rs.23.00 paid thru A/C XX1234 ... to
// BMTC BUS".
var (
	canaraAmountPaid  = regexp.MustCompile(`(?i)Rs\.?\s*([\d,]+(?:\.\d{2})?)\s+paid`)
	canaraAmountDebit = regexp.MustCompile(`(?i)INR\s+([\d,]+(?:\.\d{2})?)\s+has\s+been\s+DEBITED`)
	canaraMerchantTo  = regexp.MustCompile(`(?i)\sto\s+([^,]+?)(?:,\s*UPI|\.|-Canara)`)
	canaraAccount     = regexp.MustCompile(`(?i)(?:account|A/C)\s+(?:XX|X\*+)?(\d{3,4})`)
	canaraBalance     = regexp.MustCompile(`(?i)(?:Total\s+)?Avail\.?bal\s+INR\s+([\d,]+(?:\.\d{2})?)`)
	canaraUPIRef      = regexp.MustCompile(`(?i)UPI\s+Ref\s+(\d+)`)
)

// NewCanara builds the Canara Bank rule set.
func NewCanara() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "Canara Bank",
		Currency: "INR",
		MatchSender: senderMatcher(
			nil,
			[]string{"CANBNK", "CANARA"},
		),
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if strings.Contains(lower, "failed due to") {
					return false, true
				}
				if containsAny(lower, "paid thru", "has been debited", "has been credited") {
					return true, true
				}
				return false, false
			},
		},
		Amount: []parser.AmountRule{
			reAmount(canaraAmountPaid),
			reAmount(canaraAmountDebit),
		},
		Merchant: []parser.StringRule{
			reMerchant(canaraMerchantTo),
			func(message string) (string, bool) {
				if strings.Contains(strings.ToUpper(message), "DEBITED") {
					return "Canara Bank Debit", true
				}
				return "", false
			},
		},
		Reference: []parser.StringRule{
			reString(canaraUPIRef),
		},
		Account: []parser.StringRule{
			reString(canaraAccount),
		},
		Balance: []parser.AmountRule{
			reAmount(canaraBalance),
		},
	}
}
