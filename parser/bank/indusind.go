package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
)

// IndusInd Bank. ACH/NACH alerts are account movements even when card words
// appear elsewhere in the message.
var (
	indusVerbAmount = regexp.MustCompile(`(?i)(?:INR|Rs\.?|₹)\s*([0-9,]+(?:\.\d{2})?)\s+(?:debited|credited|spent|withdrawn|paid|purchase)`)
	indusTowards    = regexp.MustCompile(`(?i)towards\s+(\S+)`)
	indusFrom       = regexp.MustCompile(`(?i)from\s+(\S+)`)
	indusAt         = regexp.MustCompile(`(?i)at\s+([^\n]+?)(?:\s+Ref|\s+on|$)`)
	indusBeforeBal  = regexp.MustCompile(`(?i)/([^/.\s]+)\.\s*Bal`)
	indusAcctMasked = regexp.MustCompile(`(?i)A/?C\s+([0-9]{2,})[*xX#]+(\d{4,})`)
	indusAcctStarX  = regexp.MustCompile(`(?i)A/?c\s+\*?X+\s*(\d{4,6})`)
	indusBalOfINR   = regexp.MustCompile(`(?i)Avl\s*BAL\s+of\s+INR\s*([0-9,]+(?:\.\d{2})?)`)
	indusBalINR     = regexp.MustCompile(`(?i)(?:Avl\s*BAL|Available\s+Balance(?:\s+is)?|Bal)[:\s]+INR\s*([0-9,]+(?:\.\d{2})?)`)
	indusRRN        = regexp.MustCompile(`(?i)RRN[:\s]+([0-9]+)`)
)

func indusIsACH(lower string) bool {
	return strings.Contains(lower, "ach db") ||
		strings.Contains(lower, "ach cr") ||
		strings.Contains(lower, "nach")
}

// NewIndusInd builds the IndusInd Bank rule set.
func NewIndusInd() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "IndusInd Bank",
		Currency: "INR",
		MatchSender: senderMatcher(
			[]string{"INDUSB", "INDUSIND"},
			[]string{"INDUSIND BANK"},
			regexp.MustCompile(`^[A-Z]{2}-INDUSB(?:-S)?$`),
			regexp.MustCompile(`^[A-Z]{2}-INDUSIND(?:-S)?$`),
			regexp.MustCompile(`^[A-Z]{2}-INDUS(?:[A-Z]{2,})?-S$`),
		),
		Gate: []parser.GateRule{
			// Interest payout on deposits is not spend or income worth tracking.
			func(message, lower string) (bool, bool) {
				if strings.Contains(lower, "net interest") && strings.Contains(lower, "deposit no") {
					return false, true
				}
				return false, false
			},
		},
		Amount: []parser.AmountRule{
			reAmount(indusVerbAmount),
		},
		Merchant: []parser.StringRule{
			indusTowardsMerchant,
			indusFromVPA,
			func(message string) (string, bool) {
				if m := indusAt.FindStringSubmatch(message); m != nil {
					merchant := strings.TrimSpace(m[1])
					if merchant != "" {
						return common.CleanMerchantName(merchant), true
					}
				}
				return "", false
			},
			func(message string) (string, bool) {
				if m := indusBeforeBal.FindStringSubmatch(message); m != nil {
					merchant := strings.TrimSpace(m[1])
					if merchant != "" {
						return common.CleanMerchantName(merchant), true
					}
				}
				return "", false
			},
		},
		Reference: []parser.StringRule{
			reString(indusRRN),
		},
		Account: []parser.StringRule{
			func(message string) (string, bool) {
				if m := indusAcctMasked.FindStringSubmatch(message); m != nil {
					trailing := m[2]
					if len(trailing) >= 5 {
						return trailing, true
					}
					if len(trailing) >= 4 {
						return trailing[len(trailing)-4:], true
					}
					return trailing, true
				}
				return "", false
			},
			reString(indusAcctStarX),
		},
		Balance: []parser.AmountRule{
			reAmount(indusBalOfINR),
			reAmount(indusBalINR),
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				switch {
				case strings.Contains(lower, "spent"):
					return parser.Expense, true
				case strings.Contains(lower, "debited"):
					return parser.Expense, true
				case strings.Contains(lower, "purchase"):
					return parser.Expense, true
				case strings.Contains(lower, "deposit"):
					return parser.Investment, true
				}
				return 0, false
			},
		},
		Card: func(message, lower string) (bool, bool) {
			if indusIsACH(lower) {
				return false, true
			}
			return false, false
		},
	}
}

// indusTowardsMerchant takes the token after "towards" and trims any VPA
// handle or path suffix.
func indusTowardsMerchant(message string) (string, bool) {
	m := indusTowards.FindStringSubmatch(message)
	if m == nil {
		return "", false
	}
	token := strings.TrimRight(strings.TrimSpace(m[1]), ".,;")
	if i := strings.Index(token, "/"); i >= 0 {
		token = token[:i]
	}
	if i := strings.Index(token, "@"); i >= 0 {
		token = strings.TrimSpace(token[:i])
	}
	if token == "" {
		return "", false
	}
	return common.CleanMerchantName(token), true
}

// indusFromVPA keeps the "from <x>" counterparty only when it is a VPA.
func indusFromVPA(message string) (string, bool) {
	m := indusFrom.FindStringSubmatch(message)
	if m == nil {
		return "", false
	}
	token := strings.TrimRight(strings.TrimSpace(m[1]), ".,;")
	if i := strings.Index(token, "/"); i >= 0 {
		token = token[:i]
	}
	i := strings.Index(token, "@")
	if i < 0 {
		return "", false
	}
	name := strings.TrimSpace(token[:i])
	if name == "" {
		return "", false
	}
	return common.CleanMerchantName(name), true
}
