package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
)

// Slice is a card-first payments product; debits and UPI "sent" transfers
// both draw on the credit line.
var (
	sliceSentTo = regexp.MustCompile(`(?i)sent.*to\s+([A-Z][A-Z\s]+?)\s*\(`)
	sliceFrom   = regexp.MustCompile(`(?i)from\s+([A-Z][A-Z0-9\s]+?)(?:\s+on|\s+\(|$)`)
)

// NewSlice builds the Slice rule set.
func NewSlice() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "Slice",
		Currency: "INR",
		MatchSender: senderMatcher(
			nil,
			[]string{"SLICE", "SLICEIT", "SLCEIT"},
		),
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if strings.Contains(lower, "sent") {
					return true, true
				}
				return false, false
			},
		},
		Merchant: []parser.StringRule{
			reMerchant(sliceSentTo),
			func(message string) (string, bool) {
				if m := sliceFrom.FindStringSubmatch(message); m != nil {
					merchant := strings.TrimSpace(m[1])
					if merchant != "" && !strings.EqualFold(merchant, "NEFT") {
						return merchant, true
					}
				}
				return "", false
			},
			func(message string) (string, bool) {
				lower := strings.ToLower(message)
				switch {
				case strings.Contains(lower, "paypal"):
					return "PayPal", true
				case strings.Contains(lower, "slice") && strings.Contains(lower, "credited"):
					return "Slice Credit", true
				}
				return "", false
			},
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				switch {
				case containsAny(lower, "credited", "received", "cashback", "refund"):
					return parser.Income, true
				case containsAny(lower, "debited", "spent", "paid", "sent"):
					return parser.Credit, true
				case strings.Contains(lower, "payment") && !strings.Contains(lower, "received"):
					return parser.Credit, true
				}
				return 0, false
			},
		},
		PostProcess: func(tx *parser.Transaction) {
			if tx.Merchant == "" {
				tx.Merchant = "Slice"
			}
		},
	}
}
