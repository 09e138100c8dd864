package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
)

// Bandhan Bank. Narration comes in "towards UPI/CR/<ref>/<name>/u" form, so
// the merchant is the last letter-bearing slash segment.
var (
	bandhanTowards  = regexp.MustCompile(`(?i)towards\s+([^.\n]+?)(?:\s+on|\s+dt|\s+at|\.|$)`)
	bandhanUPIRef   = regexp.MustCompile(`(?i)UPI/[A-Z]{2}/([A-Z0-9]+)`)
	bandhanClearBal = regexp.MustCompile(`(?i)Clear\s+Bal\s+(?:is\s+)?(?:INR\s*)?([0-9,]+(?:\.\d{2})?)`)
	bandhanBareU    = regexp.MustCompile(`(?i)\bu\b`)
)

// NewBandhan builds the Bandhan Bank rule set.
func NewBandhan() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "Bandhan Bank",
		Currency: "INR",
		MatchSender: senderMatcher(
			nil,
			[]string{"BANDHAN"},
			regexp.MustCompile(`^[A-Z]{2}-BDNSMS(?:-S)?$`),
			regexp.MustCompile(`^[A-Z]{2}-BANDHN(?:-S)?$`),
		),
		Merchant: []parser.StringRule{bandhanMerchantRule},
		Reference: []parser.StringRule{
			reString(bandhanUPIRef),
		},
		Balance: []parser.AmountRule{
			reAmount(bandhanClearBal),
		},
	}
}

func bandhanMerchantRule(message string) (string, bool) {
	m := bandhanTowards.FindStringSubmatch(message)
	if m == nil {
		return "", false
	}
	raw := strings.TrimSpace(m[1])

	if strings.Contains(raw, "/") {
		var lastSeg, lastNamed string
		for _, seg := range strings.Split(raw, "/") {
			seg = strings.TrimSpace(seg)
			if seg == "" {
				continue
			}
			lastSeg = seg
			if len(seg) >= 2 && strings.ContainsFunc(seg, func(r rune) bool {
				return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
			}) && !strings.EqualFold(seg, "UPI") {
				lastNamed = seg
			}
		}
		switch {
		case lastNamed != "":
			raw = lastNamed
		case lastSeg != "":
			raw = lastSeg
		}
	}

	merchant := common.CleanMerchantName(strings.TrimSpace(bandhanBareU.ReplaceAllString(raw, "")))
	if strings.EqualFold(merchant, "interest") {
		merchant = "Interest"
	}
	if common.IsValidMerchantName(merchant) {
		return merchant, true
	}
	return "", false
}
