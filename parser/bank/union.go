package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
)

// Union Bank of India. Format: "A/c *1234 Debited for Rs:100.00 on 11-08-2025
// 18:28:02 by Mob Bk ref no 123456789000 Avl Bal Rs:12345.67". Transaction
// alerts carry a "Never Share OTP/PIN/CVV" warning, so the OTP keyword alone
// does not disqualify a message.
var (
	unionAmtRs     = regexp.MustCompile(`(?i)Rs[:.]?\s*([0-9,]+(?:\.\d{2})?)`)
	unionAmtINR    = regexp.MustCompile(`(?i)INR\s+([0-9,]+(?:\.\d{2})?)`)
	unionATMAt     = regexp.MustCompile(`(?i)at\s+([^.\s]+(?:\s+[^.\s]+)*)(?:\s+on|\s+Avl|$)`)
	unionUPI       = regexp.MustCompile(`(?i)UPI[/:]?\s*([^,.\s]+)`)
	unionVPA       = regexp.MustCompile(`(?i)VPA\s+([^@\s]+)`)
	unionTo        = regexp.MustCompile(`(?i)to\s+([^.\n]+?)(?:\s+on|\s+Avl|$)`)
	unionFrom      = regexp.MustCompile(`(?i)from\s+([^.\n]+?)(?:\s+on|\s+Avl|$)`)
	unionRefNo     = regexp.MustCompile(`(?i)ref\s+no\s+([\w]+)`)
	unionRef       = regexp.MustCompile(`(?i)ref[:#]?\s*([\w]+)`)
	unionReference = regexp.MustCompile(`(?i)reference[:#]?\s*([\w]+)`)
	unionTxn       = regexp.MustCompile(`(?i)txn[:#]?\s*([\w]+)`)
	unionAcctMask  = regexp.MustCompile(`(?i)A/[Cc]\s*[*X](\d{4})`)
	unionAcctWord  = regexp.MustCompile(`(?i)Account\s*[*X](\d{4})`)
	unionAcctAcc   = regexp.MustCompile(`(?i)Acc\s*[*X](\d{4})`)
	unionAcctBare  = regexp.MustCompile(`(?i)A/[Cc]\s+(\d{4})`)
	unionBalAvl    = regexp.MustCompile(`(?i)Avl\s+Bal\s+Rs[:.]?\s*([0-9,]+(?:\.\d{2})?)`)
	unionBalAvail  = regexp.MustCompile(`(?i)Available\s+Balance[:.]?\s*Rs[:.]?\s*([0-9,]+(?:\.\d{2})?)`)
	unionBalWord   = regexp.MustCompile(`(?i)Balance[:.]?\s*Rs[:.]?\s*([0-9,]+(?:\.\d{2})?)`)
	unionBalShort  = regexp.MustCompile(`(?i)Bal[:.]?\s*Rs[:.]?\s*([0-9,]+(?:\.\d{2})?)`)
	unionDigits    = regexp.MustCompile(`^\d+$`)
)

// unionVPANames maps well-known VPA fragments to display names.
var unionVPANames = []struct{ fragment, name string }{
	{"paytm", "Paytm"},
	{"phonepe", "PhonePe"},
	{"googlepay", "Google Pay"},
	{"gpay", "Google Pay"},
	{"bharatpe", "BharatPe"},
	{"amazon", "Amazon"},
	{"flipkart", "Flipkart"},
	{"swiggy", "Swiggy"},
	{"zomato", "Zomato"},
	{"uber", "Uber"},
	{"ola", "Ola"},
}

// NewUnion builds the Union Bank of India rule set.
func NewUnion() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "Union Bank of India",
		Currency: "INR",
		MatchSender: senderMatcher(
			nil,
			[]string{"UNIONB", "UNIONBANK", "UBOI"},
			regexp.MustCompile(`^[A-Z]{2}-UNIONB-[STPG]$`),
			regexp.MustCompile(`^[A-Z]{2}-UNIONB$`),
			regexp.MustCompile(`^[A-Z]{2}-UNIONBANK$`),
		),
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if containsAny(lower, "debited", "credited", "withdrawn", "deposited",
					"spent", "received", "transferred", "paid") {
					return true, true
				}
				return false, false
			},
		},
		Amount: []parser.AmountRule{
			reAmount(unionAmtRs),
			reAmount(unionAmtINR),
		},
		Merchant: []parser.StringRule{
			unionMerchant,
		},
		Reference: []parser.StringRule{
			reString(unionRefNo),
			reString(unionRef),
			reString(unionReference),
			reString(unionTxn),
		},
		Account: []parser.StringRule{
			reString(unionAcctMask),
			reString(unionAcctWord),
			reString(unionAcctAcc),
			reString(unionAcctBare),
		},
		Balance: []parser.AmountRule{
			reAmount(unionBalAvl),
			reAmount(unionBalAvail),
			reAmount(unionBalWord),
			reAmount(unionBalShort),
		},
	}
}

func unionMerchant(message string) (string, bool) {
	lower := strings.ToLower(message)

	if strings.Contains(lower, "mob bk") {
		return "Mobile Banking Transfer", true
	}

	if strings.Contains(lower, "atm") {
		if m := unionATMAt.FindStringSubmatch(message); m != nil {
			return common.CleanMerchantName(strings.TrimSpace(m[1])), true
		}
		return "ATM Withdrawal", true
	}

	if strings.Contains(lower, "upi") {
		if m := unionUPI.FindStringSubmatch(message); m != nil {
			return common.CleanMerchantName(strings.TrimSpace(m[1])), true
		}
	}
	if strings.Contains(lower, "vpa") {
		if m := unionVPA.FindStringSubmatch(message); m != nil {
			return unionVPAName(strings.TrimSpace(m[1])), true
		}
	}

	if m := unionTo.FindStringSubmatch(message); m != nil {
		merchant := strings.TrimSpace(m[1])
		if !strings.Contains(strings.ToLower(merchant), "avl") {
			return common.CleanMerchantName(merchant), true
		}
	}
	if m := unionFrom.FindStringSubmatch(message); m != nil {
		merchant := strings.TrimSpace(m[1])
		if !strings.Contains(strings.ToLower(merchant), "avl") {
			return common.CleanMerchantName(merchant), true
		}
	}
	return "", false
}

func unionVPAName(vpa string) string {
	clean := strings.ToLower(vpa)
	for _, known := range unionVPANames {
		if strings.Contains(clean, known.fragment) {
			return known.name
		}
	}
	if unionDigits.MatchString(clean) {
		return "Individual"
	}
	for _, part := range strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '-' || r == '_'
	}) {
		if len(part) > 3 && !unionDigits.MatchString(part) {
			return strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return "Merchant"
}
