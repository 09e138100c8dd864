package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
)

// Axis Bank.
var (
	axisINRDebit   = regexp.MustCompile(`(?i)INR\s+([0-9,]+(?:\.\d{2})?)\s+debited`)
	axisINRCredit  = regexp.MustCompile(`(?i)INR\s+([0-9,]+(?:\.\d{2})?)\s+credited`)
	axisPayment    = regexp.MustCompile(`(?i)Payment\s+of\s+INR\s+([0-9,]+(?:\.\d{2})?)`)
	axisUPI        = regexp.MustCompile(`(?i)UPI/[^/]+/[^/]+/([^\n]+?)(?:\s*Not you|\s*$)`)
	axisUPIP2A     = regexp.MustCompile(`(?i)UPI/P2A/[^/]+/([^\n]+?)(?:\s*Not you|\s*$)`)
	axisInfo       = regexp.MustCompile(`(?i)Info\s*[-–]\s*([^.\n]+?)(?:\.\s*Chk|\s*$)`)
	axisAcctNo     = regexp.MustCompile(`(?i)A/c\s+no\.\s+([X*]*\d+)`)
	axisCreditCard = regexp.MustCompile(`(?i)Credit\s+Card\s+([X*]*\d+)`)
	axisUPIRef     = regexp.MustCompile(`(?i)UPI/[^/]+/([0-9]+)`)
)

// NewAxis builds the Axis Bank rule set.
func NewAxis() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "Axis Bank",
		Currency: "INR",
		MatchSender: senderMatcher(
			[]string{"AXISBK", "AXISBANK", "AXIS"},
			[]string{"AXIS BANK", "AXISBANK", "AXISBK", "AXISB"},
			regexp.MustCompile(`^[A-Z]{2}-AXISBK-S$`),
			regexp.MustCompile(`^[A-Z]{2}-AXISBANK-S$`),
			regexp.MustCompile(`^[A-Z]{2}-AXIS-S$`),
			regexp.MustCompile(`^[A-Z]{2}-AXISBK$`),
			regexp.MustCompile(`^[A-Z]{2}-AXIS$`),
		),
		Gate: []parser.GateRule{
			// Payment received towards an Axis card is a confirmation of a
			// payment already recorded on the paying account.
			func(message, lower string) (bool, bool) {
				if strings.Contains(lower, "payment") &&
					strings.Contains(lower, "has been received") &&
					strings.Contains(lower, "towards your axis bank") {
					return false, true
				}
				return false, false
			},
		},
		Amount: []parser.AmountRule{
			reAmount(axisINRDebit),
			reAmount(axisINRCredit),
			reAmount(axisPayment),
		},
		Merchant: []parser.StringRule{
			reMerchant(axisUPI),
			reMerchant(axisUPIP2A),
			func(message string) (string, bool) {
				if m := axisInfo.FindStringSubmatch(message); m != nil {
					info := strings.TrimSpace(m[1])
					if strings.Contains(strings.ToUpper(info), "SALARY") {
						return "Salary", true
					}
					return common.CleanMerchantName(info), true
				}
				return "", false
			},
		},
		Reference: []parser.StringRule{
			reString(axisUPIRef),
		},
		Account: []parser.StringRule{
			last4Rule(axisAcctNo),
			last4Rule(axisCreditCard),
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				if (strings.Contains(lower, "credit card") || strings.Contains(lower, " cc ")) &&
					(strings.Contains(lower, "debited") || strings.Contains(lower, "spent")) {
					return parser.Credit, true
				}
				return 0, false
			},
		},
	}
}
