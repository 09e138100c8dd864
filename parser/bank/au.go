package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
)

// AU Small Finance Bank. Format: "Credited INR 500.00 to A/c 12345 on
// 11-08-2025 Ref UPI/CR/1234567890/NAME(account). Bal INR 1,234.56".
var (
	auCredited  = regexp.MustCompile(`(?i)Credited\s+INR\s+([0-9,]+(?:\.\d{2})?)\s+to`)
	auDebited   = regexp.MustCompile(`(?i)Debited\s+INR\s+([0-9,]+(?:\.\d{2})?)\s+from`)
	auSpent     = regexp.MustCompile(`(?i)INR\s+([0-9,]+(?:\.\d{2})?)\s+spent`)
	auWithdrawn = regexp.MustCompile(`(?i)withdrawn\s+INR\s+([0-9,]+(?:\.\d{2})?)`)
	auUPIName   = regexp.MustCompile(`(?i)Ref\s+UPI/[^/]+/[^/]+/[^/]+\s+([^(]+)\([^)]+\)`)
	auUPIParen  = regexp.MustCompile(`(?i)UPI/[^/]+/[^/]+/[^/]+\s+[^(]*\(([^)]+)\)`)
	auToFrom    = regexp.MustCompile(`(?i)(?:to|from)\s+([^.\n]+?)(?:\.\s*|$)`)
	auAcct      = regexp.MustCompile(`(?i)A/c\s+(\d+)`)
	auBal       = regexp.MustCompile(`(?i)Bal\s+INR\s+([0-9,]+(?:\.\d{2})?)`)
)

// NewAU builds the AU Small Finance Bank rule set.
func NewAU() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "AU Small Finance Bank",
		Currency: "INR",
		MatchSender: senderMatcher(
			nil,
			[]string{"AUBANK"},
		),
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if containsAny(lower, "otp", "one time password", "verification code") {
					return false, true
				}
				if containsAny(lower, "credited inr", "debited inr", "withdrawn inr",
					"bal inr", "ref upi") {
					return true, true
				}
				return false, false
			},
		},
		Amount: []parser.AmountRule{
			reAmount(auCredited),
			reAmount(auDebited),
			reAmount(auSpent),
			reAmount(auWithdrawn),
		},
		Merchant: []parser.StringRule{
			reMerchant(auUPIName),
			reMerchant(auUPIParen),
			func(message string) (string, bool) {
				lower := strings.ToLower(message)
				if strings.Contains(lower, "atm") || strings.Contains(lower, "withdrawn") {
					return "ATM Withdrawal", true
				}
				return "", false
			},
			func(message string) (string, bool) {
				if m := auToFrom.FindStringSubmatch(message); m != nil {
					merchant := common.CleanMerchantName(strings.TrimSpace(m[1]))
					if common.IsValidMerchantName(merchant) &&
						!strings.Contains(strings.ToLower(merchant), "a/c") {
						return merchant, true
					}
				}
				return "", false
			},
		},
		Account: []parser.StringRule{
			last4Rule(auAcct),
		},
		Balance: []parser.AmountRule{
			reAmount(auBal),
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				switch {
				case strings.Contains(lower, "credited"),
					strings.Contains(lower, "received"),
					strings.Contains(lower, "deposited"),
					strings.Contains(lower, "refund"):
					return parser.Income, true
				case strings.Contains(lower, "credit card") && strings.Contains(lower, "spent"):
					return parser.Credit, true
				case strings.Contains(lower, "debited"),
					strings.Contains(lower, "withdrawn"),
					strings.Contains(lower, "spent"),
					strings.Contains(lower, "paid"):
					return parser.Expense, true
				}
				return 0, false
			},
		},
	}
}
