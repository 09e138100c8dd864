package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
)

// ICICI Bank. Notable formats: "debited with Rs", "credited:Rs." cash
// deposits, AutoPay subscriptions, and multi-currency card spends such as
// "USD 11.80 spent using ICICI Bank Card".
var (
	iciciAmountFXSpent    = regexp.MustCompile(`(?i)[A-Z]{3}\s+([0-9,]+(?:\.\d{2})?)\s+spent`)
	iciciAmountINRSpent   = regexp.MustCompile(`(?i)(?:Rs\.?|INR)\s+([0-9,]+(?:\.\d{2})?)\s+spent`)
	iciciAmountDebitWith  = regexp.MustCompile(`(?i)debited\s+with\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	iciciAmountDebitFor   = regexp.MustCompile(`(?i)debited\s+for\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	iciciAmountCreditWith = regexp.MustCompile(`(?i)credited\s+with\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	iciciAmountCreditCol  = regexp.MustCompile(`(?i)credited:\s*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)

	iciciCurrencySpent = regexp.MustCompile(`(?i)([A-Z]{3})\s+[0-9,]+(?:\.\d{2})?\s+spent`)

	iciciMerchantCard    = regexp.MustCompile(`(?i)on\s+\d{1,2}-\w{3}-\d{2}\s+(?:at|on)\s+([^.]+?)(?:\.|\s+Avl|$)`)
	iciciMerchantACH     = regexp.MustCompile(`(?i)Info\s+(?:ACH|NACH)\*([^*]+)\*`)
	iciciMerchantTowards = regexp.MustCompile(`(?i)towards\s+([^.\n]+?)\s+for`)
	iciciMerchantFromUPI = regexp.MustCompile(`(?i)from\s+([^.\n]+?)\.\s*UPI`)
	iciciMerchantCredit  = regexp.MustCompile(`(?i);\s*([^.\n]+?)\s+credited\.\s*UPI`)

	iciciAcctCard     = regexp.MustCompile(`(?i)ICICI\s+Bank\s+Card\s+[X*]*(\d+)`)
	iciciAcctShort    = regexp.MustCompile(`(?i)Acct\s+([X*]*\d+)`)
	iciciAcctBank     = regexp.MustCompile(`(?i)ICICI\s+Bank\s+Acct\s+([X*]*\d+)`)
	iciciAcctFull     = regexp.MustCompile(`(?i)ICICI\s+Bank\s+Account\s+\d+X+(\d{4})`)

	iciciRefRRN    = regexp.MustCompile(`(?i)RRN\s+([A-Za-z0-9]+)`)
	iciciRefUPI    = regexp.MustCompile(`(?i)UPI:([A-Za-z0-9]+)`)
	iciciRefTxnRef = regexp.MustCompile(`(?i)transaction\s+reference\s+no\.?([A-Z0-9]+)`)
)

// autoPayServices maps AutoPay phrasing fragments to a display name. Checked
// in order; unknown services fall back to a generic label.
var autoPayServices = []struct {
	fragment string
	name     string
}{
	{"google play", "Google Play Store"},
	{"netflix", "Netflix"},
	{"spotify", "Spotify"},
	{"amazon prime", "Amazon Prime"},
	{"disney", "Disney+ Hotstar"},
	{"hotstar", "Disney+ Hotstar"},
	{"youtube", "YouTube Premium"},
}

// NewICICI builds the ICICI Bank rule set.
func NewICICI() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "ICICI Bank",
		Currency: "INR",
		MatchSender: senderMatcher(
			[]string{"ICICIB", "ICICIBANK"},
			[]string{"ICICI", "ICICIB"},
			regexp.MustCompile(`^[A-Z]{2}-ICICIB-S$`),
			regexp.MustCompile(`^[A-Z]{2}-ICICI-S$`),
			regexp.MustCompile(`^[A-Z]{2}-ICICIB-[TPG]$`),
			regexp.MustCompile(`^[A-Z]{2}-ICICIB$`),
			regexp.MustCompile(`^[A-Z]{2}-ICICI$`),
		),
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				// Cash deposit confirmations duplicate the credit alert.
				if strings.Contains(lower, "cash deposit transaction") &&
					strings.Contains(lower, "has been completed") {
					return false, true
				}
				if strings.Contains(lower, "is due by") {
					return false, true
				}
				if strings.Contains(lower, "will be debited") {
					return false, true
				}
				if containsAny(lower,
					"debited with", "debited for", "credited with", "credited:",
					"autopay", "your account has been", "inr", "spent using") {
					return true, true
				}
				return false, false
			},
		},
		Amount: []parser.AmountRule{
			reAmount(iciciAmountFXSpent),
			reAmount(iciciAmountINRSpent),
			reAmount(iciciAmountDebitWith),
			reAmount(iciciAmountDebitFor),
			reAmount(iciciAmountCreditWith),
			reAmount(iciciAmountCreditCol),
		},
		Merchant: []parser.StringRule{
			reMerchant(iciciMerchantCard),
			func(message string) (string, bool) {
				if m := iciciMerchantACH.FindStringSubmatch(message); m != nil {
					return strings.TrimSpace(m[1]) + " Dividend", true
				}
				return "", false
			},
			reMerchant(iciciMerchantTowards),
			reMerchant(iciciMerchantFromUPI),
			reMerchant(iciciMerchantCredit),
			func(message string) (string, bool) {
				if strings.Contains(strings.ToLower(message), "info by cash") {
					return "Cash Deposit", true
				}
				return "", false
			},
			iciciAutoPayMerchant,
		},
		Reference: []parser.StringRule{
			reString(iciciRefRRN),
			reString(iciciRefUPI),
			reString(iciciRefTxnRef),
		},
		Account: []parser.StringRule{
			last4Rule(iciciAcctCard),
			last4Rule(iciciAcctBank),
			last4Rule(iciciAcctShort),
			reString(iciciAcctFull),
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				cardSpend := strings.Contains(lower, "icici bank credit card") ||
					(strings.Contains(lower, "icici bank card") && strings.Contains(lower, "spent"))
				if cardSpend && (strings.Contains(lower, "spent") || strings.Contains(lower, "debited")) {
					return parser.Credit, true
				}
				if strings.Contains(lower, "info by cash") {
					return parser.Income, true
				}
				return 0, false
			},
		},
		DetectCurrency: func(message string) (string, bool) {
			if m := iciciCurrencySpent.FindStringSubmatch(message); m != nil {
				code := strings.ToUpper(m[1])
				if !common.IsMonthAbbreviation(code) {
					return code, true
				}
			}
			return "", false
		},
	}
}

func iciciAutoPayMerchant(message string) (string, bool) {
	lower := strings.ToLower(message)
	if !strings.Contains(lower, "autopay") {
		return "", false
	}
	for _, svc := range autoPayServices {
		if strings.Contains(lower, svc.fragment) {
			return svc.name, true
		}
	}
	return "AutoPay Subscription", true
}
