package bank

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
)

// Central Bank of India. Balances carry a CR/DR marker: "Total Bal Rs.0000.99
// CR"; a DR balance is recorded as negative.
var (
	cboiAmtBy    = regexp.MustCompile(`(?i)(?:Credited|Debited)\s+by\s+Rs\.?\s*([\d,]+(?:\.\d{2})?)`)
	cboiAmtVerb  = regexp.MustCompile(`(?i)Rs\.?\s*([\d,]+(?:\.\d{2})?)\s+(?:credited|debited)`)
	cboiFrom     = regexp.MustCompile(`(?i)from\s+([A-Z0-9]+|[^\s]+?)(?:\s+via|\s+Ref|\s+\.|$)`)
	cboiTo       = regexp.MustCompile(`(?i)to\s+([^\s]+?)(?:\s+via|\s+Ref|\s+\.|$)`)
	cboiAcct     = regexp.MustCompile(`(?i)account\s+[X*]*(\d{4})`)
	cboiAcctEnd  = regexp.MustCompile(`(?i)A/C\s+ending\s+[X*]*(\d{4})`)
	cboiTotalBal = regexp.MustCompile(`(?i)Total\s+Bal\s+Rs\.?\s*([\d,]+(?:\.\d{2})?)\s+(CR|DR)`)
	cboiClearBal = regexp.MustCompile(`(?i)Clear\s+Bal\s+Rs\.?\s*([\d,]+(?:\.\d{2})?)\s+(CR|DR)`)
	cboiRefNo    = regexp.MustCompile(`(?i)Ref\s+No\.?\s*(\w+)`)
)

// NewCentralBankOfIndia builds the Central Bank of India rule set.
func NewCentralBankOfIndia() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "Central Bank of India",
		Currency: "INR",
		MatchSender: senderMatcher(
			nil,
			[]string{"CENTBK", "CBOI", "CENTRALBANK", "CENTRAL"},
			regexp.MustCompile(`^[A-Z]{2}-CENTBK-[A-Z]$`),
			regexp.MustCompile(`^[A-Z]{2}-CBOI-[A-Z]$`),
		),
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if (strings.Contains(lower, "credited by") || strings.Contains(lower, "debited by")) &&
					strings.Contains(lower, "bal") {
					return true, true
				}
				if strings.Contains(lower, "-cboi") {
					ok := strings.Contains(lower, "credited") || strings.Contains(lower, "debited")
					return ok, true
				}
				return false, false
			},
		},
		Amount: []parser.AmountRule{
			reAmount(cboiAmtBy),
			reAmount(cboiAmtVerb),
		},
		Merchant: []parser.StringRule{
			func(message string) (string, bool) {
				if m := cboiFrom.FindStringSubmatch(message); m != nil {
					merchant := strings.TrimSpace(m[1])
					if strings.Contains(merchant, "X") {
						return "UPI Transfer", true
					}
					return common.CleanMerchantName(merchant), true
				}
				return "", false
			},
			reMerchant(cboiTo),
			func(message string) (string, bool) {
				lower := strings.ToLower(message)
				if !strings.Contains(lower, "via upi") {
					return "", false
				}
				switch {
				case strings.Contains(lower, "credited"):
					return "UPI Credit", true
				case strings.Contains(lower, "debited"):
					return "UPI Payment", true
				}
				return "", false
			},
		},
		Reference: []parser.StringRule{
			reString(cboiRefNo),
		},
		Account: []parser.StringRule{
			reString(cboiAcct),
			reString(cboiAcctEnd),
		},
		Balance: []parser.AmountRule{
			cboiSignedBalance(cboiTotalBal),
			cboiSignedBalance(cboiClearBal),
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				switch {
				case strings.Contains(lower, "credited"),
					strings.Contains(lower, "deposited"),
					strings.Contains(lower, "received"):
					return parser.Income, true
				case strings.Contains(lower, "debited"),
					strings.Contains(lower, "withdrawn"),
					strings.Contains(lower, "paid"):
					return parser.Expense, true
				}
				return 0, false
			},
		},
	}
}

func cboiSignedBalance(re *regexp.Regexp) parser.AmountRule {
	return func(message string) (decimal.Decimal, bool) {
		m := re.FindStringSubmatch(message)
		if m == nil {
			return decimal.Decimal{}, false
		}
		bal, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
		if err != nil {
			return decimal.Decimal{}, false
		}
		if strings.EqualFold(m[2], "DR") {
			bal = bal.Neg()
		}
		return bal, true
	}
}
