package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
)

// UCO Bank. Format: "A/c XX1111 Debited with Rs.2000.00 on 21-09-2025 by
// UCO-UPI.Avl Bal Rs.11111.11."
var (
	ucoAmount       = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	ucoMerchantBy   = regexp.MustCompile(`(?i)by\s+([^.]+?)(?:\.Avl|$)`)
	ucoAcctXX       = regexp.MustCompile(`(?i)A/c\s+[X]{2}(\d{4})`)
	ucoAcctAccount  = regexp.MustCompile(`(?i)Account\s+[X]{2}(\d{4})`)
	ucoAcctAcc      = regexp.MustCompile(`(?i)Acc\s+[X]{2}(\d{4})`)
	ucoAcctStars    = regexp.MustCompile(`(?i)A/c\s+[*]{2}(\d{4})`)
	ucoBalAvl       = regexp.MustCompile(`(?i)Avl\s+Bal\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	ucoBalAvailable = regexp.MustCompile(`(?i)Available\s+Balance\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	ucoBalPlain     = regexp.MustCompile(`(?i)Balance[:.]?\s*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	ucoRef          = regexp.MustCompile(`(?i)ref[:#]?\s*([\w]+)`)
	ucoTxn          = regexp.MustCompile(`(?i)txn[:#]?\s*([\w]+)`)
	ucoTxnID        = regexp.MustCompile(`(?i)transaction\s+id[:#]?\s*([\w]+)`)
)

// NewUCO builds the UCO Bank rule set.
func NewUCO() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "UCO Bank",
		Currency: "INR",
		MatchSender: senderMatcher(
			nil,
			[]string{"UCOBNK", "UCOBANK", "UCO BANK"},
			regexp.MustCompile(`^[A-Z]{2}-UCOBNK-[ST]$`),
			regexp.MustCompile(`^[A-Z]{2}-UCOBNK$`),
			regexp.MustCompile(`^[A-Z]{2}-UCOBANK$`),
		),
		Amount: []parser.AmountRule{
			reAmount(ucoAmount),
		},
		Merchant: []parser.StringRule{
			func(message string) (string, bool) {
				if m := ucoMerchantBy.FindStringSubmatch(message); m != nil {
					merchant := strings.TrimSpace(m[1])
					if strings.Contains(strings.ToUpper(merchant), "UCO-UPI") {
						return "UPI Transfer", true
					}
					return common.CleanMerchantName(merchant), true
				}
				return "", false
			},
		},
		Reference: []parser.StringRule{
			reString(ucoRef),
			reString(ucoTxn),
			reString(ucoTxnID),
		},
		Account: []parser.StringRule{
			reString(ucoAcctXX),
			reString(ucoAcctAccount),
			reString(ucoAcctAcc),
			reString(ucoAcctStars),
		},
		Balance: []parser.AmountRule{
			reAmount(ucoBalAvl),
			reAmount(ucoBalAvailable),
			reAmount(ucoBalPlain),
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				switch {
				case strings.Contains(lower, "debited with"):
					return parser.Expense, true
				case strings.Contains(lower, "credited with"):
					return parser.Income, true
				}
				return 0, false
			},
		},
	}
}
