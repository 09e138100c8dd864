package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
)

// India Post Payments Bank.
var (
	ippbAmount   = regexp.MustCompile(`(?i)Rs\.?\s*([\d,]+(?:\.\d{2})?)`)
	ippbAccount  = regexp.MustCompile(`(?i)[Aa]/[Cc]\s+X?(\d+)`)
	ippbBalance  = regexp.MustCompile(`(?i)Avl\s+Bal\s+Rs\.?\s*([\d,]+(?:\.\d{2})?)`)
	ippbTo       = regexp.MustCompile(`(?i)to\s+([^\s]+(?:@[^\s]+)?)`)
	ippbFromThru = regexp.MustCompile(`(?i)from\s+(.+?)\s+thru`)
	ippbRef      = regexp.MustCompile(`(?i)Ref\s+(\d+)`)
	ippbInfoUPI  = regexp.MustCompile(`(?i)Info:\s*UPI/[^/]+/(\d+)`)
)

// NewIPPB builds the India Post Payments Bank rule set.
func NewIPPB() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "India Post Payments Bank",
		Currency: "INR",
		MatchSender: senderMatcher(
			nil,
			nil,
			regexp.MustCompile(`^[A-Z]{2}-IPBMSG-[ST]$`),
		),
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if strings.Contains(lower, "debit rs") ||
					strings.Contains(lower, "received a payment") ||
					(strings.Contains(lower, "info: upi") && strings.Contains(lower, "credit")) {
					return true, true
				}
				return false, false
			},
		},
		Amount: []parser.AmountRule{
			reAmount(ippbAmount),
		},
		Merchant: []parser.StringRule{ippbMerchantRule},
		Reference: []parser.StringRule{
			reString(ippbRef),
			reString(ippbInfoUPI),
		},
		Account: []parser.StringRule{
			last4Rule(ippbAccount),
		},
		Balance: []parser.AmountRule{
			reAmount(ippbBalance),
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				switch {
				case strings.Contains(lower, "debit"):
					return parser.Expense, true
				case strings.Contains(lower, "received a payment"):
					return parser.Income, true
				case strings.Contains(lower, "info: upi/credit"):
					return parser.Income, true
				}
				return 0, false
			},
		},
	}
}

func ippbMerchantRule(message string) (string, bool) {
	lower := strings.ToLower(message)

	if strings.Contains(lower, "debit") {
		if m := ippbTo.FindStringSubmatch(message); m != nil {
			merchant := strings.TrimSpace(m[1])
			if at := strings.Index(merchant, "@"); at != -1 {
				merchant = merchant[:at]
			}
			return common.CleanMerchantName(merchant), true
		}
		if strings.Contains(lower, "for upi") {
			return "UPI Payment", true
		}
	}

	if strings.Contains(lower, "received a payment") {
		if m := ippbFromThru.FindStringSubmatch(message); m != nil {
			return common.CleanMerchantName(strings.TrimSpace(m[1])), true
		}
	}

	return "", false
}
