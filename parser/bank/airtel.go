package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
)

// Airtel Payments Bank. Only AIRBNK senders are wallet traffic; prepaid
// recharge senders are left alone.
var (
	airtelAmountCreditWith = regexp.MustCompile(`(?i)credited\s+with\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	airtelAmountDebitFrom  = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+debited\s+from`)
	airtelAmountDebitWith  = regexp.MustCompile(`(?i)debited\s+with\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	airtelTxnID            = regexp.MustCompile(`(?i)Txn\s+ID[:\s]+([A-Z0-9]+)`)
	airtelAltTxnID         = regexp.MustCompile(`(?i)Transaction\s+ID[:\s]+([A-Z0-9]+)`)
	airtelBal              = regexp.MustCompile(`(?i)Bal[:\s]+([0-9,]+(?:\.\d{2})?)`)
	airtelBalRs            = regexp.MustCompile(`(?i)Balance[:\s]+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
)

// NewAirtelPaymentsBank builds the Airtel Payments Bank rule set.
func NewAirtelPaymentsBank() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "Airtel Payments Bank",
		Currency: "INR",
		MatchSender: senderMatcher(
			nil,
			[]string{"AIRBNK"},
		),
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if containsAny(lower, "otp", "verification", "request", "failed") {
					return false, true
				}
				if strings.Contains(lower, "credited with") || strings.Contains(lower, "debited from") {
					return true, true
				}
				if strings.Contains(lower, "airtel payments bank") &&
					(strings.Contains(lower, "credited") || strings.Contains(lower, "debited")) {
					return true, true
				}
				return false, false
			},
		},
		Amount: []parser.AmountRule{
			reAmount(airtelAmountCreditWith),
			reAmount(airtelAmountDebitFrom),
			reAmount(airtelAmountDebitWith),
		},
		Merchant: []parser.StringRule{
			func(message string) (string, bool) {
				if strings.Contains(strings.ToLower(message), "airtel payments bank") {
					return "Airtel Payments Bank Transaction", true
				}
				return "", false
			},
		},
		Reference: []parser.StringRule{
			func(message string) (string, bool) {
				if m := airtelTxnID.FindStringSubmatch(message); m != nil {
					// Masked ids like "xxxxxxxx" are useless as references.
					if !strings.ContainsAny(m[1], "xX") {
						return m[1], true
					}
				}
				return "", false
			},
			reString(airtelAltTxnID),
		},
		Balance: []parser.AmountRule{
			reAmount(airtelBal),
			reAmount(airtelBalRs),
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				switch {
				case containsAny(lower, "credited with", "is credited", "credit"):
					return parser.Income, true
				case containsAny(lower, "debited from", "debited with", "debit"):
					return parser.Expense, true
				}
				return 0, false
			},
		},
		PostProcess: func(tx *parser.Transaction) {
			if tx.Merchant == "" {
				tx.Merchant = "Airtel Payments Bank"
			}
		},
	}
}
