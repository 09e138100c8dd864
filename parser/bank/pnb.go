package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

// Punjab National Bank. RCS messages arrive in styled Unicode (mathematical
// bold digits and the like), so the text is NFKD-decomposed and reduced to
// ASCII before extraction.
var (
	pnbAmountDebit  = regexp.MustCompile(`(?i)debited\s+(?:Rs\.?|INR)\s*([0-9,]+(?:\.\d{2})?)`)
	pnbAmountCredit = regexp.MustCompile(`(?i)(?:(?:Rs\.?|INR)\s*([0-9,]+(?:\.\d{2})?)\s+(?:has\s+been\s+)?credited|credited\s+(?:Rs\.?|INR)\s*([0-9,]+(?:\.\d{2})?))`)
	pnbMerchantFrom = regexp.MustCompile(`(?i)From\s+([^/]+)/`)
	pnbAccount      = regexp.MustCompile(`(?i)A/c\s+(?:XX|X\*+)?(\d{4})`)
	pnbNEFTRef      = regexp.MustCompile(`(?i)ref\s+no\.\s+([A-Z0-9]+)`)
	pnbUPIRef       = regexp.MustCompile(`(?i)UPI:\s*([0-9]+)`)
	pnbBalance      = regexp.MustCompile(`(?i)Bal\s+(?:INR\s+|Rs\.?)([0-9,]+(?:\.\d{2})?)`)
)

func pnbNormalize(message string) string {
	decomposed := norm.NFKD.String(message)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NewPNB builds the Punjab National Bank rule set.
func NewPNB() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "Punjab National Bank",
		Currency: "INR",
		MatchSender: senderMatcher(
			[]string{"PNBBNK", "PNB"},
			[]string{"PUNJAB NATIONAL BANK", "PNBBNK", "PUNBN"},
			regexp.MustCompile(`^[A-Z]{2}-PNBBNK-S$`),
			regexp.MustCompile(`^[A-Z]{2}-PNB-S$`),
			regexp.MustCompile(`^[A-Z]{2}-PNBBNK$`),
			regexp.MustCompile(`^[A-Z]{2}-PNB$`),
		),
		Normalize: pnbNormalize,
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if strings.Contains(lower, "register for e-statement") {
					return true, true
				}
				return false, false
			},
		},
		Amount: []parser.AmountRule{
			reAmount(pnbAmountDebit),
			func(message string) (decimal.Decimal, bool) {
				m := pnbAmountCredit.FindStringSubmatch(message)
				if m == nil {
					return decimal.Zero, false
				}
				captured := m[1]
				if captured == "" {
					captured = m[2]
				}
				amount, err := decimal.NewFromString(strings.ReplaceAll(captured, ",", ""))
				if err != nil {
					return decimal.Zero, false
				}
				return amount, true
			},
		},
		Merchant: []parser.StringRule{
			reMerchant(pnbMerchantFrom),
			func(message string) (string, bool) {
				upper := strings.ToUpper(message)
				switch {
				case strings.Contains(upper, "NEFT"):
					return "NEFT Transfer", true
				case strings.Contains(upper, "UPI"):
					return "UPI Transaction", true
				}
				return "", false
			},
		},
		Reference: []parser.StringRule{
			reString(pnbNEFTRef),
			reString(pnbUPIRef),
		},
		Account: []parser.StringRule{
			reString(pnbAccount),
		},
		Balance: []parser.AmountRule{
			reAmount(pnbBalance),
		},
	}
}
