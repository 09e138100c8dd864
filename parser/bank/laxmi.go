package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
)

// Laxmi Sunrise Bank (Nepal), NPR. The Remarks field carries the merchant
// narration, e.g. "Remarks:ESEWA LOAD/9763698550,127847587".
var (
	laxmiAmountNPR   = regexp.MustCompile(`(?i)NPR\s+([0-9,]+(?:\.[0-9]{2})?)(?:\s|$)`)
	laxmiAmountVerb  = regexp.MustCompile(`(?i)(?:debited|credited)\s+by\s+NPR\s+([0-9,]+(?:\.[0-9]{2})?)`)
	laxmiRemarks     = regexp.MustCompile(`(?i)Remarks:\s*\(?([^)]+)\)?`)
	laxmiAccount     = regexp.MustCompile(`(?i)Your\s+#(\d+)\s+has\s+been`)
	laxmiRefDate     = regexp.MustCompile(`(?i)on\s+(\d{2}/\d{2}/\d{2})`)
	laxmiRemarksRef  = regexp.MustCompile(`(?i)Remarks:.*?([0-9]{6,})`)
)

// NewLaxmi builds the Laxmi Sunrise Bank rule set.
func NewLaxmi() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "Laxmi Sunrise Bank",
		Currency: "NPR",
		MatchSender: senderMatcher(
			[]string{"LAXMI_ALERT"},
			[]string{"LAXMI", "LAXMISUNRISE"},
			regexp.MustCompile(`^[A-Z]{2}-LAXMI-[A-Z]$`),
		),
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if containsAny(lower,
					"dear customer", "has been debited", "has been credited",
					"laxmi sunrise", "remarks:", "npr") {
					return true, true
				}
				return false, false
			},
		},
		Amount: []parser.AmountRule{
			reAmount(laxmiAmountNPR),
			reAmount(laxmiAmountVerb),
		},
		Merchant: []parser.StringRule{
			laxmiRemarksMerchant,
			func(message string) (string, bool) {
				if strings.Contains(strings.ToUpper(message), "ESEWA") {
					return "ESEWA", true
				}
				return "", false
			},
		},
		Reference: []parser.StringRule{
			reString(laxmiRefDate),
			reString(laxmiRemarksRef),
		},
		Account: []parser.StringRule{
			last4Rule(laxmiAccount),
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				switch {
				case containsAny(lower, "has been debited", "debited by"):
					return parser.Expense, true
				case containsAny(lower, "has been credited", "credited by"):
					return parser.Income, true
				}
				return 0, false
			},
		},
	}
}

func laxmiRemarksMerchant(message string) (string, bool) {
	m := laxmiRemarks.FindStringSubmatch(message)
	if m == nil {
		return "", false
	}
	remarks := strings.TrimSpace(m[1])
	if remarks == "" {
		return "", false
	}
	switch {
	case strings.Contains(remarks, "ESEWA LOAD"):
		remarks = "ESEWA"
	case strings.Contains(remarks, "STIPEND PMT"):
		remarks = "Stipend Payment"
	case strings.Contains(remarks, "/"):
		remarks = strings.TrimSpace(strings.SplitN(remarks, "/", 2)[0])
	}
	return common.CleanMerchantName(remarks), true
}
