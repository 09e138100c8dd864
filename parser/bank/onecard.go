package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
)

// OneCard. Messages lead with "You've" and close with "on card ending XXXX":
// "You've fueled up for Rs. X at MERCHANT on card ending 1234".
var (
	onecardForAt   = regexp.MustCompile(`(?i)for\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+at`)
	onecardOfOn    = regexp.MustCompile(`(?i)of\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+on`)
	onecardSpent   = regexp.MustCompile(`(?i)spent\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	onecardAtCard  = regexp.MustCompile(`(?i)at\s+([^•\n]+?)\s+on\s+card`)
	onecardOnCard  = regexp.MustCompile(`(?i)on\s+([^•\n]+?)\s+on\s+card`)
	onecardAtOn    = regexp.MustCompile(`(?i)at\s+([^•\n]+?)\s+on`)
	onecardEnding  = regexp.MustCompile(`(?i)card\s+ending\s+[X]*(\d{4})`)
	onecardOnDigit = regexp.MustCompile(`(?i)on\s+card\s+[X]*(\d{4})`)
)

// NewOneCard builds the OneCard rule set. Every OneCard message is spend on a
// credit line, so the type is pinned after assembly.
func NewOneCard() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "OneCard",
		Currency: "INR",
		MatchSender: senderMatcher(
			[]string{"ONECRD", "ONECARD"},
			[]string{"ONECRD", "ONECARD"},
			regexp.MustCompile(`^[A-Z]{2}-ONECRD-S$`),
			regexp.MustCompile(`^[A-Z]{2}-ONECARD-S$`),
			regexp.MustCompile(`^[A-Z]{2}-ONECRD-[TPG]$`),
			regexp.MustCompile(`^[A-Z]{2}-ONECARD-[TPG]$`),
			regexp.MustCompile(`^[A-Z]{2}-ONECRD$`),
			regexp.MustCompile(`^[A-Z]{2}-ONECARD$`),
		),
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if containsAny(lower, "offer", "cashback offer", "get reward",
					"statement", "due date", "bill generated") {
					return false, true
				}
				if strings.HasPrefix(lower, "you've") && strings.Contains(lower, "on card ending") {
					return true, true
				}
				if strings.Contains(lower, "spent") || strings.Contains(lower, "made a") {
					return true, true
				}
				return false, false
			},
		},
		Amount: []parser.AmountRule{
			reAmount(onecardForAt),
			reAmount(onecardOfOn),
			reAmount(onecardSpent),
		},
		Merchant: []parser.StringRule{
			reMerchant(onecardAtCard),
			reMerchant(onecardOnCard),
			reMerchant(onecardAtOn),
		},
		Account: []parser.StringRule{
			reString(onecardEnding),
			reString(onecardOnDigit),
		},
		PostProcess: func(tx *parser.Transaction) {
			tx.SetType(parser.Credit)
		},
	}
}
