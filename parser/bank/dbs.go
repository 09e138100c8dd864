package bank

import (
	"regexp"

	"github.com/rudrakos/finsms/parser"
)

// DBS Bank India.
var (
	dbsAmountWith   = regexp.MustCompile(`(?i)(?:debited|credited)\s+with\s+INR\s*([0-9,]+(?:\.\d{2})?)`)
	dbsAmountVerb   = regexp.MustCompile(`(?i)INR\s*([0-9,]+(?:\.\d{2})?)\s+(?:debited|credited)`)
	dbsAcctNo       = regexp.MustCompile(`(?i)account\s+no\s+\*+(\d{4})`)
	dbsAcctShort    = regexp.MustCompile(`(?i)a/c\s+\*+(\d{4})`)
	dbsAcctPlain    = regexp.MustCompile(`(?i)account\s+\*+(\d{4})`)
	dbsBalCurrent   = regexp.MustCompile(`(?i)Current\s+Balance\s+is\s+INR\s*([0-9,]+(?:\.\d{2})?)`)
	dbsBalPlain     = regexp.MustCompile(`(?i)Balance[:\s]+INR\s*([0-9,]+(?:\.\d{2})?)`)
	dbsBalAvl       = regexp.MustCompile(`(?i)Avl\s+Bal[:\s]+INR\s*([0-9,]+(?:\.\d{2})?)`)
)

// NewDBS builds the DBS Bank rule set.
func NewDBS() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "DBS Bank",
		Currency: "INR",
		MatchSender: senderMatcher(
			[]string{"DBSBANK"},
			[]string{"DBSBNK", "DBS"},
			regexp.MustCompile(`^[A-Z]{2}-DBSBNK-[ST]$`),
			regexp.MustCompile(`^[A-Z]{2}-DBS-[ST]$`),
			regexp.MustCompile(`^[A-Z]{2}-DBSBANK-[ST]$`),
		),
		Amount: []parser.AmountRule{
			reAmount(dbsAmountWith),
			reAmount(dbsAmountVerb),
		},
		Account: []parser.StringRule{
			reString(dbsAcctNo),
			reString(dbsAcctShort),
			reString(dbsAcctPlain),
		},
		Balance: []parser.AmountRule{
			reAmount(dbsBalCurrent),
			reAmount(dbsBalPlain),
			reAmount(dbsBalAvl),
		},
	}
}
