package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
)

// South Indian Bank. UPI debits arrive as "Info:UPI/IPOS/number/MERCHANT NAME
// on" with an RRN reference.
var (
	sibAmount  = regexp.MustCompile(`(?i)(?:Rs\.?|INR)\s*([0-9,]+(?:\.\d{2})?)`)
	sibUPIInfo = regexp.MustCompile(`(?i)Info:UPI/[^/]+/[^/]+/([^/]+?)\s+on`)
	sibUPITo   = regexp.MustCompile(`(?i)to\s+([^,\s]+(?:@[^\s,]+)?)`)
	sibUPIFrom = regexp.MustCompile(`(?i)from\s+([^,\s]+(?:@[^\s,]+)?)`)
	sibCardAt  = regexp.MustCompile(`(?i)at\s+([^,\n]+?)(?:\s+on|\s*,|$)`)
	sibRRN     = regexp.MustCompile(`(?i)RRN[:\s]*(\d{12})`)
	sibRef     = regexp.MustCompile(`(?i)Ref(?:erence)?[:\s]*([A-Z0-9]+)`)
	sibAcct    = regexp.MustCompile(`(?i)A/c\s+[X*]*(\d{4})`)
	sibAcctW   = regexp.MustCompile(`(?i)Account\s+[X*]*(\d{4})`)
	sibFromNum = regexp.MustCompile(`(?i)from\s+[X*]*(\d{4})`)
	sibToNum   = regexp.MustCompile(`(?i)to\s+[X*]*(\d{4})`)
	sibBalFin  = regexp.MustCompile(`(?i)Final\s+balance\s+is\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	sibBal     = regexp.MustCompile(`(?i)Bal(?:ance)?[:\s]*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	sibBalAvlb = regexp.MustCompile(`(?i)Available\s+Bal(?:ance)?[:\s]*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	sibBalAvl  = regexp.MustCompile(`(?i)Avl\s+Bal[:\s]*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
)

// NewSouthIndian builds the South Indian Bank rule set.
func NewSouthIndian() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "South Indian Bank",
		Currency: "INR",
		MatchSender: func(sender string) bool {
			upper := strings.ToUpper(sender)
			if strings.Contains(upper, "SIBSMS") || strings.Contains(upper, "SIBBANK") {
				return true
			}
			if upper == "SOUTHINDIANBANK" {
				return true
			}
			return strings.HasPrefix(upper, "AD-SIB") ||
				strings.HasPrefix(upper, "CP-SIB") ||
				strings.HasPrefix(upper, "VM-SIB")
		},
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if containsAny(lower, "otp", "one time password", "verification code",
					"offer", "discount") {
					return false, true
				}
				if strings.Contains(lower, "upi auto pay") && strings.Contains(lower, "is scheduled on") {
					return false, true
				}
				if containsAny(lower, "debit", "credit", "withdrawn", "deposited",
					"spent", "received", "transferred", "paid",
					"purchase", "refund", "cashback", "upi") {
					return true, true
				}
				return false, true
			},
		},
		Amount: []parser.AmountRule{
			reAmount(sibAmount),
		},
		Merchant: []parser.StringRule{
			sibMerchant,
		},
		Reference: []parser.StringRule{
			reString(sibRRN),
			reString(sibRef),
		},
		Account: []parser.StringRule{
			reString(sibAcct),
			reString(sibAcctW),
			reString(sibFromNum),
			reString(sibToNum),
		},
		Balance: []parser.AmountRule{
			reAmount(sibBalFin),
			reAmount(sibBal),
			reAmount(sibBalAvlb),
			reAmount(sibBalAvl),
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				switch {
				case strings.Contains(lower, "debit"),
					strings.Contains(lower, "withdrawn"),
					strings.Contains(lower, "spent"),
					strings.Contains(lower, "purchase"),
					strings.Contains(lower, "paid"),
					strings.Contains(lower, "transfer to"):
					return parser.Expense, true
				case strings.Contains(lower, "credit"),
					strings.Contains(lower, "deposited"),
					strings.Contains(lower, "received"),
					strings.Contains(lower, "refund"),
					strings.Contains(lower, "transfer from"),
					strings.Contains(lower, "cashback"):
					return parser.Income, true
				}
				return 0, false
			},
		},
	}
}

func sibMerchant(message string) (string, bool) {
	lower := strings.ToLower(message)

	if strings.Contains(lower, "upi") {
		if m := sibUPIInfo.FindStringSubmatch(message); m != nil {
			if merchant := strings.TrimSpace(m[1]); merchant != "" {
				return common.CleanMerchantName(merchant), true
			}
		}
		if m := sibUPITo.FindStringSubmatch(message); m != nil {
			if merchant := strings.TrimSpace(m[1]); merchant != "" {
				return common.CleanMerchantName(merchant), true
			}
		}
		if strings.Contains(lower, "credit") {
			if m := sibUPIFrom.FindStringSubmatch(message); m != nil {
				if merchant := strings.TrimSpace(m[1]); merchant != "" {
					return common.CleanMerchantName(merchant), true
				}
			}
		}
		return "UPI Transaction", true
	}

	if strings.Contains(lower, "atm") || strings.Contains(lower, "withdrawn") {
		return "ATM", true
	}

	if strings.Contains(lower, "card") {
		if m := sibCardAt.FindStringSubmatch(message); m != nil {
			if merchant := strings.TrimSpace(m[1]); merchant != "" {
				return common.CleanMerchantName(merchant), true
			}
		}
	}
	return "", false
}
