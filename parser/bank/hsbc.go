package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
)

// HSBC Bank. Debit card spends read "Thank you for using HSBC Debit Card ...
// at IKEA INDIA . for INR 305.00", credit card spends read "used at X for INR".
var (
	hsbcAmtVerb   = regexp.MustCompile(`(?i)INR\s+([\d,]+(?:\.\d{2})?)\s+is\s+(?:paid|credited|debited)`)
	hsbcAmtForOn  = regexp.MustCompile(`(?i)for\s+INR\s+([\d,]+(?:\.\d{2})?)\s+on`)
	hsbcAmtFor    = regexp.MustCompile(`(?i)for\s+INR\s+([\d,]+(?:\.\d{2})?)(?:\s|$|\.)`)
	hsbcAtDot     = regexp.MustCompile(`(?i)at\s+([^.]+?)\s*\.`)
	hsbcUsedAt    = regexp.MustCompile(`(?i)used\s+at\s+([^.]+?)\s+for\s+INR`)
	hsbcToOn      = regexp.MustCompile(`(?i)to\s+([^.]+?)\s+on\s+\d`)
	hsbcFrom      = regexp.MustCompile(`(?i)from\s+([^.]+?)(?:\s+on\s+|\s+with\s+|$)`)
	hsbcDebitCard = regexp.MustCompile(`(?i)Debit\s+Card\s+[X*]+(\d+)[xX*]*`)
	hsbcCredCard  = regexp.MustCompile(`(?i)credit\s*card\s+[xX*]+(\d{4})`)
	hsbcAccount   = regexp.MustCompile(`(?i)account\s+[X*]+(\d{4})`)
	hsbcRef       = regexp.MustCompile(`(?i)with\s+ref\s+(\w+)`)
	hsbcAvailBal  = regexp.MustCompile(`(?i)available\s+bal\s+is\s+INR\s+([\d,]+(?:\.\d{2})?)`)
)

// NewHSBC builds the HSBC Bank rule set.
func NewHSBC() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "HSBC Bank",
		Currency: "INR",
		MatchSender: senderMatcher(
			nil,
			[]string{"HSBC", "HSBCIN"},
			regexp.MustCompile(`^[A-Z]{2}-HSBCIN-[A-Z]$`),
			regexp.MustCompile(`^[A-Z]{2}-HSBC-[A-Z]$`),
		),
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if strings.Contains(lower, "is paid from") ||
					strings.Contains(lower, "is credited to") ||
					strings.Contains(lower, "is debited") ||
					(strings.Contains(lower, "creditcard") && strings.Contains(lower, "used at")) ||
					(strings.Contains(lower, "credit card") && strings.Contains(lower, "used at")) ||
					(strings.Contains(lower, "thank you for using") && strings.Contains(lower, "card")) ||
					(strings.Contains(lower, "debit card") && strings.Contains(lower, "for inr")) ||
					(strings.Contains(lower, "inr") && strings.Contains(lower, "account")) {
					return true, true
				}
				return false, false
			},
		},
		Amount: []parser.AmountRule{
			reAmount(hsbcAmtVerb),
			reAmount(hsbcAmtForOn),
			reAmount(hsbcAmtFor),
		},
		Merchant: []parser.StringRule{
			reMerchant(hsbcAtDot),
			reMerchant(hsbcUsedAt),
			reMerchant(hsbcToOn),
			reMerchant(hsbcFrom),
		},
		Reference: []parser.StringRule{
			reString(hsbcRef),
		},
		Account: []parser.StringRule{
			last4Rule(hsbcDebitCard),
			reString(hsbcCredCard),
			reString(hsbcAccount),
		},
		Balance: []parser.AmountRule{
			reAmount(hsbcAvailBal),
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				switch {
				case strings.Contains(lower, "debit card") && strings.Contains(lower, "thank you for using"):
					return parser.Expense, true
				case strings.Contains(lower, "debit card") && strings.Contains(lower, "for inr"):
					return parser.Expense, true
				case strings.Contains(lower, "creditcard"), strings.Contains(lower, "credit card"):
					return parser.Credit, true
				case strings.Contains(lower, "is paid from"),
					strings.Contains(lower, "is debited"):
					return parser.Expense, true
				case strings.Contains(lower, "is credited to"),
					strings.Contains(lower, "deposited"):
					return parser.Income, true
				}
				return 0, false
			},
		},
	}
}
