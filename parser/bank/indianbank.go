package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
)

// Indian Bank. Upcoming-mandate notices read "For the upcoming mandate set
// for 29-May-25 ,your account will be debited with INR 59.00 towards Spotify
// India ." and are reported as mandates, not transactions.
var (
	indbnkDebited   = regexp.MustCompile(`(?i)debited\s+Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	indbnkCredited  = regexp.MustCompile(`(?i)credited\s+Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	indbnkCreditTo  = regexp.MustCompile(`(?i)Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)\s+credited\s+to`)
	indbnkWithdrawn = regexp.MustCompile(`(?i)withdrawn\s+Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	indbnkUPIPay    = regexp.MustCompile(`(?i)UPI\s+payment\s+of\s+Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	indbnkTo        = regexp.MustCompile(`(?i)to\s+([^.\n]+?)(?:\.\s*UPI:|UPI:|$)`)
	indbnkFrom      = regexp.MustCompile(`(?i)from\s+([^.\n]+?)(?:\.\s*UPI:|UPI:|$)`)
	indbnkVPA       = regexp.MustCompile(`(?i)VPA\s+([\w.-]+@[\w]+)`)
	indbnkATMAt     = regexp.MustCompile(`(?i)ATM\s+(?:withdrawal\s+)?at\s+([^.\n]+?)(?:\s+on|$)`)
	indbnkAcctStar  = regexp.MustCompile(`(?i)A/c\s+\*(\d{4})`)
	indbnkAcctX     = regexp.MustCompile(`(?i)Account\s+X*(\d{4})`)
	indbnkAcctEnd   = regexp.MustCompile(`(?i)A/c\s+ending\s+(\d{4})`)
	indbnkUPIRef    = regexp.MustCompile(`(?i)UPI:(\d+)`)
	indbnkUPIRefNo  = regexp.MustCompile(`(?i)UPI\s+Ref\s+no\s+(\d+)`)
	indbnkRefNo     = regexp.MustCompile(`(?i)Ref\s+No\.?\s*(\w+)`)
	indbnkTxnID     = regexp.MustCompile(`(?i)Transaction\s+ID:?\s*(\w+)`)
	indbnkBal       = regexp.MustCompile(`(?i)Bal\s+Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	indbnkBalAvail  = regexp.MustCompile(`(?i)Available\s+Balance:?\s+Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	indbnkMandate   = regexp.MustCompile(`(?i)mandate\s+set\s+for\s+(\d{1,2}-\w{3}-\d{2})\s*,?\s*your\s+account\s+will\s+be\s+debited\s+with\s+INR\s+(\d+(?:\.\d{2})?)\s+towards\s+([^.]+)`)
)

// NewIndianBank builds the Indian Bank rule set.
func NewIndianBank() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "Indian Bank",
		Currency: "INR",
		MatchSender: senderMatcher(
			[]string{"INDBNK", "INDIAN"},
			[]string{"INDIAN BANK", "INDIANBANK", "INDIANBK"},
			regexp.MustCompile(`^[A-Z]{2}-INDBNK-S$`),
			regexp.MustCompile(`^[A-Z]{2}-INDBNK-[TPG]$`),
			regexp.MustCompile(`^[A-Z]{2}-INDBNK$`),
		),
		Mandates: []parser.MandateRule{
			indbnkUpcomingMandate,
		},
		Amount: []parser.AmountRule{
			reAmount(indbnkDebited),
			reAmount(indbnkCredited),
			reAmount(indbnkCreditTo),
			reAmount(indbnkWithdrawn),
			reAmount(indbnkUPIPay),
		},
		Merchant: []parser.StringRule{
			reMerchant(indbnkTo),
			reMerchant(indbnkFrom),
			func(message string) (string, bool) {
				if m := indbnkVPA.FindStringSubmatch(message); m != nil {
					vpa := m[1]
					if i := strings.Index(vpa, "@"); i >= 0 {
						return common.CleanMerchantName(vpa[:i]), true
					}
				}
				return "", false
			},
			func(message string) (string, bool) {
				if m := indbnkATMAt.FindStringSubmatch(message); m != nil {
					location := common.CleanMerchantName(strings.TrimSpace(m[1]))
					if common.IsValidMerchantName(location) {
						return "ATM - " + location, true
					}
				}
				return "", false
			},
		},
		Reference: []parser.StringRule{
			reString(indbnkUPIRef),
			reString(indbnkUPIRefNo),
			reString(indbnkRefNo),
			reString(indbnkTxnID),
		},
		Account: []parser.StringRule{
			reString(indbnkAcctStar),
			reString(indbnkAcctX),
			reString(indbnkAcctEnd),
		},
		Balance: []parser.AmountRule{
			reAmount(indbnkBal),
			reAmount(indbnkBalAvail),
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				switch {
				case strings.Contains(lower, "debited"),
					strings.Contains(lower, "withdrawn"):
					return parser.Expense, true
				case strings.Contains(lower, "upi payment") && !strings.Contains(lower, "received"):
					return parser.Expense, true
				case strings.Contains(lower, "credited"),
					strings.Contains(lower, "deposited"),
					strings.Contains(lower, "received"):
					return parser.Income, true
				}
				return 0, false
			},
		},
	}
}

func indbnkUpcomingMandate(message string) (*parser.MandateInfo, bool) {
	lower := strings.ToLower(message)
	if !strings.Contains(lower, "mandate") {
		return nil, false
	}
	if !strings.Contains(lower, "upcoming") &&
		!strings.Contains(lower, "set for") &&
		!strings.Contains(lower, "will be debited") {
		return nil, false
	}

	m := indbnkMandate.FindStringSubmatch(message)
	if m == nil {
		return nil, false
	}
	amount, ok := common.ParseAmount(m[2])
	if !ok {
		return nil, false
	}
	return &parser.MandateInfo{
		Amount:            amount,
		NextDeductionDate: m[1],
		DateFormat:        "2-Jan-06",
		Merchant:          common.CleanMerchantName(strings.TrimSpace(m[3])),
	}, true
}
