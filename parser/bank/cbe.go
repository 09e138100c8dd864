package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
)

// Commercial Bank of Ethiopia. Amounts are in Ethiopian Birr and
// counterparties come partially masked ("from Be***").
var (
	cbeAmountSpace = regexp.MustCompile(`(?i)ETB\s+([0-9,]+(?:\.[0-9]{2})?)\s`)
	cbeAmountTight = regexp.MustCompile(`(?i)ETB\s*([0-9,]+(?:\.[0-9]{2})?)(?:\s|$|\.)`)
	cbeAmountVerb  = regexp.MustCompile(`(?i)(?:Credited|debited|transfered)\s+(?:with\s+)?ETB\s+([0-9,]+(?:\.[0-9]{2})?)`)
	cbeFrom        = regexp.MustCompile(`(?i)from\s+([^,\s]+\*{0,3}[^,\s]*)`)
	cbeTo          = regexp.MustCompile(`(?i)to\s+([^,\s]+\*{0,5}[^,\s]*)`)
	cbeAcct        = regexp.MustCompile(`(?i)Account\s+\d?\*+(\d{4})`)
	cbeYourAcct    = regexp.MustCompile(`(?i)your account\s+\d?\*+(\d{4})`)
	cbeBalance     = regexp.MustCompile(`(?i)Current Balance is ETB\s+([0-9,]+(?:\.[0-9]{2})?)`)
	cbeRefNo       = regexp.MustCompile(`(?i)Ref No\s+(\*{0,9}[A-Z0-9]+)`)
	cbeURLID       = regexp.MustCompile(`(?i)id=([A-Z0-9]+)`)
	cbeDateTime    = regexp.MustCompile(`(?i)on\s+(\d{2}/\d{2}/\d{4}\s+at\s+\d{2}:\d{2}:\d{2})`)
	cbeSenderDLT   = regexp.MustCompile(`^[A-Z]{2}-CBE-[A-Z]$`)
)

// NewCBE builds the Commercial Bank of Ethiopia rule set.
func NewCBE() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "Commercial Bank of Ethiopia",
		Currency: "ETB",
		MatchSender: senderMatcher(
			[]string{"CBE"},
			[]string{"COMMERCIALBANK", "CBEBANK"},
			cbeSenderDLT,
		),
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if containsAny(lower,
					"dear",
					"your account",
					"has been credited",
					"has been debited",
					"you have transfered",
					"current balance",
					"thank you for banking with cbe",
					"etb",
				) {
					return true, true
				}
				return false, false
			},
		},
		Amount: []parser.AmountRule{
			reAmount(cbeAmountSpace),
			reAmount(cbeAmountTight),
			reAmount(cbeAmountVerb),
		},
		Merchant: []parser.StringRule{
			cbeCounterparty(cbeFrom),
			cbeCounterparty(cbeTo),
			func(message string) (string, bool) {
				lower := strings.ToLower(message)
				if strings.Contains(lower, "s.charge") || strings.Contains(lower, "service charge") {
					return "Service Charge", true
				}
				return "", false
			},
		},
		Reference: []parser.StringRule{
			func(message string) (string, bool) {
				if m := cbeRefNo.FindStringSubmatch(message); m != nil {
					if ref := strings.ReplaceAll(m[1], "*", ""); ref != "" {
						return ref, true
					}
				}
				return "", false
			},
			reString(cbeURLID),
			reString(cbeDateTime),
		},
		Account: []parser.StringRule{
			reString(cbeAcct),
			reString(cbeYourAcct),
		},
		Balance: []parser.AmountRule{
			reAmount(cbeBalance),
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				switch {
				case strings.Contains(lower, "has been credited"):
					return parser.Income, true
				case strings.Contains(lower, "credited with"):
					return parser.Income, true
				case strings.Contains(lower, "has been debited"):
					return parser.Expense, true
				case strings.Contains(lower, "debited with"):
					return parser.Expense, true
				case strings.Contains(lower, "you have transfered"):
					return parser.Expense, true
				case strings.Contains(lower, "transferred"):
					return parser.Expense, true
				}
				return 0, false
			},
		},
	}
}

// cbeCounterparty strips the masking asterisks before cleaning the name.
func cbeCounterparty(re *regexp.Regexp) parser.StringRule {
	return func(message string) (string, bool) {
		if m := re.FindStringSubmatch(message); m != nil {
			name := strings.TrimSpace(m[1])
			if name != "" {
				return common.CleanMerchantName(strings.ReplaceAll(name, "*", "")), true
			}
		}
		return "", false
	}
}
