package bank

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
)

// Charles Schwab. Alerts are phrased "A $7.44 debit card transaction was
// debited from account ending 1234"; travel spends swap the dollar sign for a
// foreign symbol or a 3-letter code.
var (
	schwabUSDAmounts = []*regexp.Regexp{
		regexp.MustCompile(`(?i)A\s+\$([0-9,]+(?:\.[0-9]{2})?)\s+debit card transaction`),
		regexp.MustCompile(`(?i)A\s+\$([0-9,]+(?:\.[0-9]{2})?)\s+ATM transaction`),
		regexp.MustCompile(`(?i)A\s+\$([0-9,]+(?:\.[0-9]{2})?)\s+ACH\s+transaction`),
		regexp.MustCompile(`(?i)A\s+\$([0-9,]+(?:\.[0-9]{2})?)\s+ACH\s+was debited`),
	}
	schwabFXAmounts = []*regexp.Regexp{
		regexp.MustCompile(`(?i)A\s+[€£₹¥฿₩]\s*([0-9,]+(?:\.[0-9]{2})?)\s+(?:debit card|ATM)\s+transaction`),
		regexp.MustCompile(`(?i)A\s+[€£₹¥฿₩]\s*([0-9,]+(?:\.[0-9]{2})?)\s+ACH\s+(?:transaction|was debited)`),
		regexp.MustCompile(`(?i)A\s+[A-Z]{3}\s*([0-9,]+(?:\.[0-9]{2})?)\s+(?:debit card|ATM)\s+transaction`),
		regexp.MustCompile(`(?i)A\s+[A-Z]{3}\s*([0-9,]+(?:\.[0-9]{2})?)\s+ACH\s+(?:transaction|was debited)`),
	}
	schwabAcctEnding = regexp.MustCompile(`(?i)account\s+ending\s+(\d{4})`)
)

// NewCharlesSchwab builds the Charles Schwab rule set.
func NewCharlesSchwab() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "Charles Schwab",
		Currency: "USD",
		MatchSender: func(sender string) bool {
			upper := strings.ToUpper(sender)
			return upper == "SCHWAB" ||
				strings.Contains(upper, "CHARLES SCHWAB") ||
				strings.Contains(upper, "SCHWAB BANK") ||
				upper == "24465" ||
				schwabDLT.MatchString(upper)
		},
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if strings.Contains(lower, "reply stop to end") &&
					!strings.Contains(lower, "transaction") &&
					!strings.Contains(lower, "debited") {
					return false, true
				}
				if containsAny(lower,
					"debit card transaction was debited",
					"atm transaction was debited",
					"ach was debited",
					"transaction was debited from account",
				) {
					return true, true
				}
				return false, false
			},
		},
		Amount: []parser.AmountRule{
			schwabAmount,
		},
		Account: []parser.StringRule{
			reString(schwabAcctEnding),
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				if containsAny(lower,
					"debit card transaction",
					"atm transaction",
					"ach transaction",
					"ach was debited",
					"was debited",
				) {
					return parser.Expense, true
				}
				return 0, false
			},
		},
		Card: func(message, lower string) (bool, bool) {
			switch {
			case strings.Contains(lower, "debit card transaction"):
				return true, true
			case strings.Contains(lower, "atm transaction"):
				return true, true
			case strings.Contains(lower, "ach transaction"):
				return false, true
			}
			return false, false
		},
		DetectCurrency: func(message string) (string, bool) {
			return common.DetectCurrency(message)
		},
	}
}

var schwabDLT = regexp.MustCompile(`^[A-Z]{2}-SCHWAB-[A-Z]$`)

func schwabAmount(message string) (decimal.Decimal, bool) {
	for _, re := range schwabUSDAmounts {
		if m := re.FindStringSubmatch(message); m != nil {
			if amt, ok := common.ParseAmount(m[1]); ok {
				return amt, true
			}
		}
	}
	for _, re := range schwabFXAmounts {
		if m := re.FindStringSubmatch(message); m != nil {
			if amt, ok := common.ParseAmount(m[1]); ok {
				return amt, true
			}
		}
	}
	return decimal.Decimal{}, false
}
