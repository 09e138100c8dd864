package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
)

// City Union Bank. UPI transfers name both legs: "Your a/c no. XXX is debited
// for Rs.111.00 ... and credited to a/c no. YYY (UPI Ref no 123456789012)".
var (
	cubDebitFor    = regexp.MustCompile(`(?i)debited\s+for\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	cubCreditFor   = regexp.MustCompile(`(?i)credited\s+for\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	cubCreditWith  = regexp.MustCompile(`(?i)credited\s+with\s+INR\s*([0-9,]+(?:\.\d{2})?)`)
	cubNEFTName    = regexp.MustCompile(`(?i)BY\s+NEFT\s+TRF:([^:]+)`)
	cubToAcct      = regexp.MustCompile(`(?i)credited\s+to\s+a/c\s+no\.\s+([A-Z0-9]+)`)
	cubFromAcct    = regexp.MustCompile(`(?i)debited\s+from\s+a/c\s+no\.\s+([A-Z0-9]+)`)
	cubAcctYour    = regexp.MustCompile(`(?i)Your\s+a/c\s+no\.\s+[X]*(\d{3,4})`)
	cubAcctSavings = regexp.MustCompile(`(?i)Savings\s+No\s+[X]*(\d{3,4})`)
	cubBal         = regexp.MustCompile(`(?i)Avl\s+Bal\s+([0-9,]+(?:\.\d{2})?)`)
	cubUPIRef      = regexp.MustCompile(`(?i)\(UPI\s+Ref\s+no\s+(\d+)\)`)
	cubNEFTRef     = regexp.MustCompile(`(?i)NEFT[:/]\s*([A-Z0-9]+)`)
)

// NewCityUnion builds the City Union Bank rule set.
func NewCityUnion() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "City Union Bank",
		Currency: "INR",
		MatchSender: senderMatcher(
			nil,
			[]string{"CUBANK", "CUBLTD", "CUB"},
		),
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if containsAny(lower, "otp", "verification", "request") {
					return false, true
				}
				if containsAny(lower, "is debited for", "is credited for", "credited with", "neft trf") {
					return true, true
				}
				return false, false
			},
		},
		Amount: []parser.AmountRule{
			reAmount(cubDebitFor),
			reAmount(cubCreditFor),
			reAmount(cubCreditWith),
		},
		Merchant: []parser.StringRule{
			cubMerchant,
		},
		Reference: []parser.StringRule{
			reString(cubUPIRef),
			reString(cubNEFTRef),
		},
		Account: []parser.StringRule{
			last4Rule(cubAcctYour),
			last4Rule(cubAcctSavings),
		},
		Balance: []parser.AmountRule{
			reAmount(cubBal),
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				switch {
				case strings.Contains(lower, "is debited"),
					strings.Contains(lower, "debited for"),
					strings.Contains(lower, "debited from"):
					return parser.Expense, true
				case strings.Contains(lower, "is credited"),
					strings.Contains(lower, "credited for"),
					strings.Contains(lower, "credited with"),
					strings.Contains(lower, "credited to"),
					strings.Contains(lower, "neft trf"):
					return parser.Income, true
				}
				return 0, false
			},
		},
	}
}

func cubMerchant(message string) (string, bool) {
	lower := strings.ToLower(message)

	if strings.Contains(lower, "neft trf") {
		if m := cubNEFTName.FindStringSubmatch(message); m != nil {
			return "NEFT - " + common.CleanMerchantName(strings.TrimSpace(m[1])), true
		}
		return "NEFT Transfer", true
	}

	if strings.Contains(lower, "upi ref") {
		if m := cubToAcct.FindStringSubmatch(message); m != nil {
			return "UPI Transfer to A/C XX" + last4OrAll(m[1]), true
		}
		if m := cubFromAcct.FindStringSubmatch(message); m != nil {
			return "UPI Transfer from A/C XX" + last4OrAll(m[1]), true
		}
		return "UPI Transfer", true
	}

	if strings.Contains(lower, "credited to a/c") || strings.Contains(lower, "debited from a/c") {
		return "Account Transfer", true
	}
	return "", false
}

func last4OrAll(s string) string {
	if len(s) >= 4 {
		return s[len(s)-4:]
	}
	return s
}
