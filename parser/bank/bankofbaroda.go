package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
)

// Bank of Baroda. Account alerts use "Dr. from"/"Cr. to" shorthand; BOBCARD
// credit card spends arrive as "ALERT: INR 500.00 is spent on your BOBCARD
// ending 1234".
var (
	bobAlertSpent  = regexp.MustCompile(`(?i)ALERT:\s*INR\s*([\d,]+(?:\.\d{2})?)\s+is\s+spent`)
	bobDrFrom      = regexp.MustCompile(`(?i)Rs\.?\s*([\d,]+(?:\.\d{2})?)\s+Dr\.?\s+from`)
	bobCreditWith  = regexp.MustCompile(`(?i)credited\s+with\s+INR\s+([\d,]+(?:\.\d{2})?)`)
	bobCreditTo    = regexp.MustCompile(`(?i)Rs\.?\s*([\d,]+(?:\.\d{2})?)\s+Credited\s+to`)
	bobCrTo        = regexp.MustCompile(`(?i)Rs\.?\s*([\d,]+(?:\.\d{2})?)\s+.*?Cr\.?\s+to`)
	bobCashDeposit = regexp.MustCompile(`(?i)Rs\.?\s*([\d,]+(?:\.\d{2})?)\s+deposited\s+in\s+cash`)
	bobUPIVPA      = regexp.MustCompile(`(?i)Cr\.?\s+to\s+([^\s]+@[^\s.]+)`)
	bobIMPSBy      = regexp.MustCompile(`(?i)IMPS/[\d]+\s+by\s+([^.]+?)(?:\s*\.|$)`)
	bobCardAcct    = regexp.MustCompile(`(?i)BOBCARD\s+ending\s+(\d{4})`)
	bobAcctSix     = regexp.MustCompile(`(?i)A/C\s+X*(\d{6})`)
	bobAcctMasked  = regexp.MustCompile(`(?i)A/c\s+\.+(\d{4})`)
	bobAvlBal      = regexp.MustCompile(`(?i)AvlBal:\s*Rs\.?\s*([\d,]+(?:\.\d{2})?)`)
	bobTotalBal    = regexp.MustCompile(`(?i)Total\s+Bal:\s*Rs\.?\s*([\d,]+(?:\.\d{2})?)`)
	bobAvlAmt      = regexp.MustCompile(`(?i)Avlbl\s+Amt:\s*Rs\.?\s*([\d,]+(?:\.\d{2})?)`)
	bobRef         = regexp.MustCompile(`(?i)Ref:\s*(\d+)`)
	bobUPIRefNo    = regexp.MustCompile(`(?i)UPI\s+Ref\s+No\s+(\d+)`)
	bobIMPSRef     = regexp.MustCompile(`(?i)IMPS/(\d+)`)
	bobCreditLimit = regexp.MustCompile(`(?i)Available\s+credit\s+limit\s+is\s+Rs\.?\s*([\d,]+(?:\.\d{2})?)`)
)

// NewBankOfBaroda builds the Bank of Baroda rule set.
func NewBankOfBaroda() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "Bank of Baroda",
		Currency: "INR",
		MatchSender: senderMatcher(
			[]string{"BOB", "BANKOFBARODA"},
			[]string{"BOB", "BARODA", "BOBSMS", "BOBTXN", "BOBCRD"},
			regexp.MustCompile(`^[A-Z]{2}-BOBSMS-[A-Z]$`),
			regexp.MustCompile(`^[A-Z]{2}-BOBTXN-[A-Z]$`),
			regexp.MustCompile(`^[A-Z]{2}-BOB-[A-Z]$`),
			regexp.MustCompile(`^[A-Z]{2}-BOBCRD-[A-Z]$`),
		),
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if containsAny(lower, "dr. from", "cr. to", "credited to a/c",
					"credited with inr", "deposited in cash", "is spent") {
					return true, true
				}
				return false, false
			},
		},
		Amount: []parser.AmountRule{
			reAmount(bobAlertSpent),
			reAmount(bobDrFrom),
			reAmount(bobCreditWith),
			reAmount(bobCreditTo),
			reAmount(bobCrTo),
			reAmount(bobCashDeposit),
		},
		Merchant: []parser.StringRule{
			func(message string) (string, bool) {
				if m := bobUPIVPA.FindStringSubmatch(message); m != nil {
					name := m[1]
					if i := strings.Index(name, "@"); i >= 0 {
						name = name[:i]
					}
					if name == "redacted" {
						return "UPI Payment", true
					}
					return common.CleanMerchantName(name), true
				}
				return "", false
			},
			reMerchant(bobIMPSBy),
			func(message string) (string, bool) {
				lower := strings.ToLower(message)
				if strings.Contains(lower, "upi") {
					switch {
					case strings.Contains(lower, "credited"):
						return "UPI Credit", true
					case strings.Contains(lower, "dr."):
						return "UPI Payment", true
					}
				}
				if strings.Contains(lower, "imps") {
					return "IMPS Transfer", true
				}
				if strings.Contains(lower, "deposited in cash") {
					return "Cash Deposit", true
				}
				return "", false
			},
		},
		Reference: []parser.StringRule{
			reString(bobRef),
			reString(bobUPIRefNo),
			reString(bobIMPSRef),
		},
		Account: []parser.StringRule{
			reString(bobCardAcct),
			last4Rule(bobAcctSix),
			reString(bobAcctMasked),
		},
		Balance: []parser.AmountRule{
			reAmount(bobAvlBal),
			reAmount(bobTotalBal),
			reAmount(bobAvlAmt),
		},
		Limit: []parser.AmountRule{
			reAmount(bobCreditLimit),
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				switch {
				case strings.Contains(lower, "spent on your bobcard"),
					strings.Contains(lower, "bobcard") && strings.Contains(lower, "spent"):
					return parser.Credit, true
				case strings.Contains(lower, "dr."), strings.Contains(lower, "debited"):
					return parser.Expense, true
				case strings.Contains(lower, "cr."), strings.Contains(lower, "credited"):
					return parser.Income, true
				case strings.Contains(lower, "deposited"):
					return parser.Income, true
				}
				return 0, false
			},
		},
	}
}
