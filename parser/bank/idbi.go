package bank

import (
	"regexp"

	"github.com/rudrakos/finsms/parser"
)

// IDBI Bank. Formats: "Your account has been successfully debited with Rs
// 59.00", "IDBI Bank Acct XX1234 debited for Rs 1040.00", AutoPay mandates.
var (
	idbiDebitWith   = regexp.MustCompile(`(?i)debited\s+with\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	idbiDebitFor    = regexp.MustCompile(`(?i)debited\s+for\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	idbiCredit      = regexp.MustCompile(`(?i)credited\s+with\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	idbiTowards     = regexp.MustCompile(`(?i)towards\s+([^.\n]+?)\s+for`)
	idbiCreditedTo  = regexp.MustCompile(`(?i);\s*([^.\n]+?)\s+credited\.`)
	idbiMandateName = regexp.MustCompile(`(?i)towards\s+([^.\n]+?)\s+for\s+\w*MANDATE`)
	idbiAcct        = regexp.MustCompile(`(?i)Acct\s+(?:XX|X\*+)?(\d{3,4})`)
	idbiBankAcct    = regexp.MustCompile(`(?i)IDBI\s+Bank\s+Acct\s+(?:XX|X\*+)?(\d{3,4})`)
	idbiRRN         = regexp.MustCompile(`(?i)RRN\s+([A-Za-z0-9]+)`)
	idbiUPIRef      = regexp.MustCompile(`(?i)UPI:([A-Za-z0-9]+)`)
	idbiBal         = regexp.MustCompile(`(?i)Bal\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
)

// NewIDBI builds the IDBI Bank rule set.
func NewIDBI() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "IDBI Bank",
		Currency: "INR",
		MatchSender: senderMatcher(
			[]string{"IDBIBK", "IDBIBANK"},
			[]string{"IDBIBK", "IDBIBANK", "IDBI"},
			regexp.MustCompile(`^[A-Z]{2}-IDBIBK-S$`),
			regexp.MustCompile(`^[A-Z]{2}-IDBI-S$`),
			regexp.MustCompile(`^[A-Z]{2}-IDBIBK$`),
			regexp.MustCompile(`^[A-Z]{2}-IDBI$`),
		),
		Amount: []parser.AmountRule{
			reAmount(idbiDebitWith),
			reAmount(idbiDebitFor),
			reAmount(idbiCredit),
		},
		Merchant: []parser.StringRule{
			reMerchant(idbiTowards),
			reMerchant(idbiCreditedTo),
			reMerchant(idbiMandateName),
		},
		Reference: []parser.StringRule{
			reString(idbiRRN),
			reString(idbiUPIRef),
		},
		Account: []parser.StringRule{
			reString(idbiAcct),
			reString(idbiBankAcct),
		},
		Balance: []parser.AmountRule{
			reAmount(idbiBal),
		},
	}
}
