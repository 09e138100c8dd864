package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
)

// JioPay wallet. Wallet spends are typed Credit so the money is not counted
// twice: it was already an expense when the wallet was loaded.
var (
	jiopayPlanAmount = regexp.MustCompile(`(?i)Plan\s+Name\s*:\s*([0-9,]+(?:\.\d{2})?)`)
	jiopayRsAmount   = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	jiopayJioNumber  = regexp.MustCompile(`(?i)Jio\s+Number\s*:\s*(\d{10})`)
	jiopayPaymentTo  = regexp.MustCompile(`(?i)payment\s+successful\s+to\s+([^.\n]+)`)
	jiopayTxnID      = regexp.MustCompile(`(?i)Transaction\s+ID\s*:\s*([A-Z0-9]+)`)
)

// NewJioPay builds the JioPay rule set.
func NewJioPay() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "JioPay",
		Currency: "INR",
		MatchSender: senderMatcher(
			[]string{"JA-JIOPAY-S", "JM-JIOPAY"},
			[]string{"JIOPAY"},
		),
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if strings.Contains(lower, "recharge successful") {
					return true, true
				}
				return false, false
			},
		},
		Amount: []parser.AmountRule{
			reAmount(jiopayPlanAmount),
			reAmount(jiopayRsAmount),
		},
		Merchant: []parser.StringRule{jiopayMerchantRule},
		Reference: []parser.StringRule{
			reString(jiopayTxnID),
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				return parser.Credit, true
			},
		},
		PostProcess: func(tx *parser.Transaction) {
			if tx.Merchant == "" {
				tx.Merchant = "JioPay Transaction"
			}
		},
	}
}

func jiopayMerchantRule(message string) (string, bool) {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "recharge successful") && strings.Contains(lower, "jio number"):
		if m := jiopayJioNumber.FindStringSubmatch(message); m != nil {
			return "Jio Recharge - " + m[1][:4] + "****", true
		}
		return "Jio Recharge", true
	case strings.Contains(lower, "bill payment"):
		switch {
		case strings.Contains(lower, "electricity"):
			return "Electricity Bill", true
		case strings.Contains(lower, "water"):
			return "Water Bill", true
		case strings.Contains(lower, "gas"):
			return "Gas Bill", true
		case strings.Contains(lower, "broadband"):
			return "Broadband Bill", true
		case strings.Contains(lower, "dth"):
			return "DTH Recharge", true
		}
		return "Bill Payment", true
	case strings.Contains(lower, "recharge"):
		switch {
		case strings.Contains(lower, "mobile"):
			return "Mobile Recharge", true
		case strings.Contains(lower, "dth"):
			return "DTH Recharge", true
		case strings.Contains(lower, "data"):
			return "Data Recharge", true
		}
		return "Recharge", true
	case strings.Contains(lower, "payment successful to"):
		if m := jiopayPaymentTo.FindStringSubmatch(message); m != nil {
			return common.CleanMerchantName(strings.TrimSpace(m[1])), true
		}
		return "JioPay Payment", true
	}
	return "", false
}
