package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
	"github.com/shopspring/decimal"
)

// Mashreq Bank (UAE). NEO card spends carry an explicit currency code, so
// the amount and currency rules share the same "for/of CCY N" patterns.
var mashreqAmountRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)for\s+([A-Z]{3})\s+([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)of\s+([A-Z]{3})\s+([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)\b([A-Z]{3})\s+([0-9,]+(?:\.\d{2})?)`),
}

var mashreqForAmount = regexp.MustCompile(`(?i)for\s+[A-Z]{3}\s+[0-9,]+`)

func mashreqAmount(message string) (decimal.Decimal, bool) {
	for _, re := range mashreqAmountRes {
		m := re.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		code := strings.ToUpper(m[1])
		if common.IsMonthAbbreviation(code) {
			continue
		}
		if amt, ok := common.ParseAmount(m[2]); ok {
			return amt, true
		}
	}
	return decimal.Zero, false
}

// mashreqMaskedBalance handles "Available Balance is AED X,480.15": the bank
// masks leading thousands with X, which reads as 0 for parsing.
func mashreqMaskedBalance(re *regexp.Regexp) parser.AmountRule {
	return func(message string) (decimal.Decimal, bool) {
		m := re.FindStringSubmatch(message)
		if m == nil {
			return decimal.Zero, false
		}
		masked := strings.NewReplacer("X", "0", "x", "0").Replace(m[1])
		return common.ParseAmount(masked)
	}
}

func mashreqAccount(re *regexp.Regexp) parser.StringRule {
	return func(message string) (string, bool) {
		m := re.FindStringSubmatch(message)
		if m == nil {
			return "", false
		}
		digits := strings.ReplaceAll(strings.ToUpper(m[1]), "X", "")
		if digits == "" {
			return "", false
		}
		return digits, true
	}
}

func NewMashreq() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "Mashreq Bank",
		Currency: "AED",

		MatchSender: senderMatcher(
			[]string{"MASHREQ", "MSHREQ"},
			[]string{"MASHREQ"},
			regexp.MustCompile(`^[A-Z]{2}-MASHREQ-[A-Z]$`),
			regexp.MustCompile(`^[A-Z]{2}-MSHREQ-[A-Z]$`),
		),

		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if containsAny(lower,
					"otp", "one time password", "verification code",
					"do not share", "activation", "has been blocked",
					"has been activated", "card request", "card application",
					"limit change", "pin change", "failed transaction",
					"transaction declined", "insufficient balance",
				) {
					return false, true
				}
				if containsAny(lower,
					"thank you for using", "neo visa debit card",
					"neo debit card", "debit card card ending",
					"credit card card ending", "available balance is",
				) {
					return true, true
				}
				return false, false
			},
		},

		Amount: []parser.AmountRule{mashreqAmount},

		Merchant: []parser.StringRule{
			func(message string) (string, bool) {
				lower := strings.ToLower(message)
				if strings.Contains(lower, "debit card") || strings.Contains(lower, "credit card") {
					re := regexp.MustCompile(`(?i)at\s+([^,\n]+?)\s+on\s+\d{1,2}-[A-Z]{3}-\d{4}`)
					if m := re.FindStringSubmatch(message); m != nil {
						return common.CleanMerchantName(strings.TrimSpace(m[1])), true
					}
				}
				if strings.Contains(lower, "atm") && strings.Contains(lower, "withdrawn") {
					return "ATM Withdrawal", true
				}
				if strings.Contains(lower, "transfer") {
					return "Transfer", true
				}
				return "", false
			},
		},

		Reference: []parser.StringRule{
			reString(regexp.MustCompile(`(?i)on\s+(\d{1,2}-[A-Z]{3}-\d{4}\s+\d{1,2}:\d{2}\s+[AP]M)`)),
			reString(regexp.MustCompile(`(?i)(\d{1,2}-[A-Z]{3}-\d{4}\s+\d{1,2}:\d{2}\s+[AP]M)`)),
		},

		Account: []parser.StringRule{
			mashreqAccount(regexp.MustCompile(`(?i)Card ending\s+([X\d]{4})`)),
			mashreqAccount(regexp.MustCompile(`(?i)card\s+(?:no\.|number)\s+([X\d]{4})`)),
			mashreqAccount(regexp.MustCompile(`(?i)account\s+(?:no\.|number)?\s*([X\d]{4})`)),
		},

		Balance: []parser.AmountRule{
			mashreqMaskedBalance(regexp.MustCompile(`(?i)Available Balance is\s+[A-Z]{3}\s+([X0-9,]+(?:\.\d{2})?)`)),
			mashreqMaskedBalance(regexp.MustCompile(`(?i)Avl\.?\s*Bal\.?\s+[A-Z]{3}\s+([X0-9,]+(?:\.\d{2})?)`)),
			mashreqMaskedBalance(regexp.MustCompile(`(?i)Balance:?\s+[A-Z]{3}\s+([X0-9,]+(?:\.\d{2})?)`)),
		},

		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				switch {
				case strings.Contains(lower, "debit card") && mashreqForAmount.MatchString(lower):
					return parser.Expense, true
				case strings.Contains(lower, "credit card") && mashreqForAmount.MatchString(lower):
					return parser.Credit, true
				case strings.Contains(lower, "atm") && strings.Contains(lower, "withdrawn"):
					return parser.Expense, true
				case strings.Contains(lower, "atm") && strings.Contains(lower, "deposited"):
					return parser.Income, true
				case strings.Contains(lower, "transfer"):
					return parser.Transfer, true
				case strings.Contains(lower, "credited"):
					return parser.Income, true
				case strings.Contains(lower, "debited"):
					return parser.Expense, true
				}
				return 0, false
			},
		},

		Card: func(message, lower string) (bool, bool) {
			if containsAny(lower,
				"neo visa debit card", "neo debit card",
				"debit card card ending", "credit card card ending",
				"card ending", "mashreq card",
			) {
				return true, true
			}
			return false, false
		},

		DetectCurrency: func(message string) (string, bool) {
			for _, re := range mashreqAmountRes {
				m := re.FindStringSubmatch(message)
				if m == nil {
					continue
				}
				code := strings.ToUpper(m[1])
				if !common.IsMonthAbbreviation(code) {
					return code, true
				}
			}
			return "", false
		},
	}
}
