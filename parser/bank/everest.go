package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
)

// Everest Bank (Nepal). Amounts are in Nepalese Rupees and the counterparty
// rides in a "For:" segment, e.g. "For: 9843368/Fonepay,RAMESH" or
// "For: CWDR/521708008016/202508050854" for ATM withdrawals.
var (
	everestAmtSpace = regexp.MustCompile(`(?i)NPR\s+([0-9,]+(?:\.[0-9]{2})?)\s`)
	everestAmtEnd   = regexp.MustCompile(`(?i)NPR\s+([0-9,]+(?:\.[0-9]{2})?)(?:\s|$)`)
	everestAmtVerb  = regexp.MustCompile(`(?i)(?:debited|credited)\s+by\s+NPR\s+([0-9,]+(?:\.[0-9]{2})?)`)
	everestFor      = regexp.MustCompile(`(?i)For:\s*([^.]+?)(?:\.\s|$)`)
	everestAcct     = regexp.MustCompile(`(?i)A/c\s+([^\s]+)`)
	everestNumeric  = regexp.MustCompile(`^\d+$`)
	everestRefNum   = regexp.MustCompile(`(\d{6,})`)
	everestSenderID = regexp.MustCompile(`^\d{7,10}$`)
	everestDLT      = regexp.MustCompile(`^[A-Z]{2}-EVEREST-[A-Z]$`)
)

// NewEverest builds the Everest Bank rule set.
func NewEverest() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "Everest Bank",
		Currency: "NPR",
		MatchSender: func(sender string) bool {
			if everestSenderID.MatchString(sender) {
				return true
			}
			upper := strings.ToUpper(sender)
			return upper == "EVEREST" ||
				strings.Contains(upper, "EVERESTBANK") ||
				upper == "UJJ SH" ||
				upper == "CWRD" ||
				everestDLT.MatchString(upper)
		},
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if containsAny(lower,
					"dear customer",
					"your a/c",
					"is debited",
					"is credited",
					"debited by",
					"credited by",
					"for:",
					"never share password",
					"npr",
				) {
					return true, true
				}
				return false, false
			},
		},
		Amount: []parser.AmountRule{
			reAmount(everestAmtSpace),
			reAmount(everestAmtEnd),
			reAmount(everestAmtVerb),
		},
		Merchant: []parser.StringRule{
			everestForMerchant,
		},
		Reference: []parser.StringRule{
			everestForReference,
		},
		Account: []parser.StringRule{
			func(message string) (string, bool) {
				if m := everestAcct.FindStringSubmatch(message); m != nil {
					acct := strings.TrimSpace(m[1])
					if acct != "{Account}" && len(acct) >= 4 {
						return acct[len(acct)-4:], true
					}
				}
				return "", false
			},
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				switch {
				case strings.Contains(lower, "is debited"),
					strings.Contains(lower, "debited by"):
					return parser.Expense, true
				case strings.Contains(lower, "is credited"),
					strings.Contains(lower, "credited by"):
					return parser.Income, true
				}
				return 0, false
			},
		},
	}
}

func everestForMerchant(message string) (string, bool) {
	m := everestFor.FindStringSubmatch(message)
	if m == nil {
		return "", false
	}
	content := strings.TrimSpace(m[1])

	if len(content) >= 5 && strings.EqualFold(content[:5], "CWDR/") {
		return "ATM Withdrawal", true
	}

	if strings.Contains(content, "/") && strings.Contains(content, ",") {
		parts := strings.SplitN(content, ",", 2)
		beforeComma := strings.TrimSpace(parts[0])
		afterComma := strings.TrimSpace(parts[1])

		if i := strings.Index(beforeComma, "/"); i >= 0 {
			paymentType := strings.TrimSpace(beforeComma[i+1:])
			if j := strings.Index(paymentType, "/"); j >= 0 {
				paymentType = strings.TrimSpace(paymentType[:j])
			}
			if paymentType != "" && !everestNumeric.MatchString(paymentType) {
				return common.CleanMerchantName(paymentType), true
			}
		}
		if afterComma != "" && afterComma != "UJJ SH" {
			return common.CleanMerchantName(afterComma), true
		}

		for _, part := range strings.Split(strings.ReplaceAll(content, ",", "/"), "/") {
			part = strings.TrimSpace(part)
			if part != "" && !everestNumeric.MatchString(part) && part != "UJJ SH" {
				return common.CleanMerchantName(part), true
			}
		}
		return "", false
	}

	if content != "" {
		return common.CleanMerchantName(content), true
	}
	return "", false
}

func everestForReference(message string) (string, bool) {
	m := everestFor.FindStringSubmatch(message)
	if m == nil {
		return "", false
	}
	content := strings.TrimSpace(m[1])

	// ATM withdrawals carry a transaction reference and a timestamp.
	if strings.Contains(content, "CWDR/") {
		parts := strings.Split(content, "/")
		if len(parts) >= 3 {
			return parts[1] + "/" + parts[2], true
		}
	}
	if r := everestRefNum.FindStringSubmatch(content); r != nil {
		return r[1], true
	}
	return "", false
}
