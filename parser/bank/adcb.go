package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
	"github.com/shopspring/decimal"
)

// Abu Dhabi Commercial Bank. Shares the FAB phrasing family, so every slice
// here ends in the corresponding FAB rule.

// ADCB reads "was used for AED93.48" as a card spend.
func adcbIsCardUsage(lower string) bool {
	return strings.Contains(lower, "was used for") || strings.Contains(lower, "used for")
}

// Pattern order is most transaction-specific first; each carries the
// currency code in group 1 and the figure in group 2.
var adcbAmountRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)was used for\s+([A-Z]{3})\s*([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)used for\s+([A-Z]{3})\s*([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)\b([A-Z]{3})\s*([0-9,]+(?:\.\d{2})?)\s+withdrawn from`),
	regexp.MustCompile(`(?i)\b([A-Z]{3})\s*([0-9,]+(?:\.\d{2})?)\s+has been deposited via ATM`),
	regexp.MustCompile(`(?i)\b([A-Z]{3})\s*([0-9,]+(?:\.\d{2})?)\s+transferred via`),
	regexp.MustCompile(`(?i)Cr\. transaction of\s+([A-Z]{3})\s*([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)Dr\.?\s*transaction of\s+([A-Z]{3})\s*([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)Transaction of\s+([A-Z]{3})\s*([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)Amount Paid:\s*([A-Z]{3})\s*([0-9,]+(?:\.\d{2})?)`),
}

var adcbCcyAmount = regexp.MustCompile(`([A-Z]{3})\s*([0-9,]+(?:\.\d{2})?)`)

func adcbValidAmount(code, figure string) (decimal.Decimal, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 || common.IsMonthAbbreviation(code) {
		return decimal.Zero, false
	}
	amt, ok := common.ParseAmount(figure)
	if !ok || amt.LessThanOrEqual(decimal.NewFromFloat(0.01)) {
		return decimal.Zero, false
	}
	return amt, true
}

func adcbAmount(message string) (decimal.Decimal, bool) {
	for _, re := range adcbAmountRes {
		if m := re.FindStringSubmatch(message); m != nil {
			if amt, ok := adcbValidAmount(m[1], m[2]); ok {
				return amt, true
			}
		}
	}
	if adcbIsCardUsage(strings.ToLower(message)) {
		_, after, _ := strings.Cut(message, "was used for")
		if m := adcbCcyAmount.FindStringSubmatch(after); m != nil {
			return adcbValidAmount(m[1], m[2])
		}
	}
	return decimal.Zero, false
}

var (
	adcbAtMerchant = regexp.MustCompile(`(?i)at\s+([^,\n]+),\s*[A-Z]{2}`)
	adcbAtmLeadNum = regexp.MustCompile(`^\d+`)
	adcbWhitespace = regexp.MustCompile(`\s+`)
	adcbDepositAt  = regexp.MustCompile(`(?i)at\s+([^.\n]+)`)
)

func adcbMerchant(message string) (string, bool) {
	lower := strings.ToLower(message)

	if adcbIsCardUsage(lower) {
		if m := adcbAtMerchant.FindStringSubmatch(message); m != nil {
			return common.CleanMerchantName(strings.TrimSpace(m[1])), true
		}
	}

	if strings.Contains(lower, "touchpoints redemption") {
		return "TouchPoints Redemption", true
	}

	if strings.Contains(lower, "withdrawn from") {
		_, afterAt, _ := strings.Cut(message, "at ")
		beforeBal, _, _ := strings.Cut(afterAt, " Avl.Bal")
		beforeBal, _, _ = strings.Cut(beforeBal, "Available balance")
		atmInfo := adcbWhitespace.ReplaceAllString(strings.TrimSpace(beforeBal), " ")
		if strings.HasPrefix(atmInfo, "ATM-") || strings.HasPrefix(atmInfo, "ATM ") {
			name := strings.TrimSpace(atmInfo[4:])
			name = strings.TrimSpace(strings.ReplaceAll(adcbAtmLeadNum.ReplaceAllString(name, ""), ".", ""))
			if name != "" {
				return "ATM Withdrawal: " + name, true
			}
		}
	}

	if strings.Contains(lower, "deposited via atm") {
		_, after, _ := strings.Cut(message, "deposited via ATM")
		if m := adcbDepositAt.FindStringSubmatch(after); m != nil {
			return "ATM Deposit: " + strings.TrimSpace(m[1]), true
		}
	}

	if strings.Contains(lower, "transferred via") {
		return "Transfer via ADCB Banking", true
	}
	if strings.Contains(lower, "cr. transaction") {
		return "Account Credit", true
	}
	if strings.Contains(lower, "dr. transaction") {
		return "Account Debit", true
	}
	return "", false
}

// Six-digit linked-account captures outrank the four-digit card suffix so a
// card and its account dedupe to the same bucket.
var adcbAccountRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)debit card\s+[X*]+\d{4}\s+linked to acc\.?\s*[X*]+(\d{6})`),
	regexp.MustCompile(`(?i)linked to acc\.?\s*[X*]+(\d{6})`),
	regexp.MustCompile(`(?i)withdrawn from acc\.?\s*[X*]+(\d{6})`),
	regexp.MustCompile(`(?i)in your account\s+[X*]+(\d{6})`),
	regexp.MustCompile(`(?i)from acc\.?\s*no\.?\s*[X*]+(\d{6})`),
	regexp.MustCompile(`(?i)account (?:number\s*)?[X*]+(\d{6})`),
	regexp.MustCompile(`(?i)on your account number\s+[X*]+(\d{6})`),
	regexp.MustCompile(`(?i)debit card\s+[X*]+\d{4}\s+linked to acc\.?\s*[X*]+(\d{4})`),
	regexp.MustCompile(`(?i)withdrawn from acc\.?\s*[X*]+(\d{4})`),
	regexp.MustCompile(`(?i)in your account\s+[X*]+(\d{4})`),
	regexp.MustCompile(`(?i)from acc\.?\s*no\.?\s*[X*]+(\d{4})`),
	regexp.MustCompile(`(?i)account (?:number\s*)?[X*]+(\d{4})`),
	regexp.MustCompile(`(?i)Card\s+[X*]+(\d{4})`),
}

func adcbAccount(message string) (string, bool) {
	for _, re := range adcbAccountRes {
		if m := re.FindStringSubmatch(message); m != nil && m[1] != "" {
			return m[1], true
		}
	}
	return "", false
}

var adcbBalanceRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Avl\.Bal\s+[A-Z]{3}\s+([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)Available balance is\s+(?:[A-Z]{3})?\s*([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)Avl\.?\s*bal\.?\s+[A-Z]{3}\s+([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)Avl\.Bal\.?[A-Z]{3}([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)Available Balance is\s+[A-Z]{3}([0-9,]+(?:\.\d{2})?)`),
}

func adcbType(lower string) (parser.TransactionType, bool) {
	switch {
	case adcbIsCardUsage(lower):
		return parser.Expense, true
	case strings.Contains(lower, "withdrawn from") && strings.Contains(lower, "atm"):
		return parser.Expense, true
	case strings.Contains(lower, "deposited via atm"):
		return parser.Income, true
	case strings.Contains(lower, "transferred via"):
		return parser.Transfer, true
	case strings.Contains(lower, "cr. transaction"):
		return parser.Income, true
	case strings.Contains(lower, "dr. transaction"):
		return parser.Expense, true
	case strings.Contains(lower, "touchpoints redemption"):
		return parser.Expense, true
	}
	return 0, false
}

func adcbGate(message, lower string) (bool, bool) {
	if containsAny(lower,
		"could not be completed", "insufficient funds",
		"do not share your otp", "otp for transaction", "activation key",
		"do not share with anyone",
		"has been de-activated", "has been activated",
		"congratulations on the first usage", "digital card assigned to",
		"pin change/setup was successful", "request for pin change/setup",
		"we have updated your emirates id", "confirmation recd. from",
		"sr no.", "for clarifications please call", "for assistance please call",
	) {
		return false, true
	}
	if containsAny(lower,
		"your debit card", "your credit card",
		"was used for", "used for",
		"withdrawn from", "deposited via atm", "transferred via",
		"cr. transaction", "dr. transaction",
		"cr.transaction", "dr.transaction",
		"touchpoints redemption",
	) {
		return true, true
	}
	return false, false
}

var adcbCurrencyRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)was used for\s+([A-Z]{3})\s+[0-9,]+(?:\.\d{2})?`),
	regexp.MustCompile(`(?i)used for\s+([A-Z]{3})\s+[0-9,]+(?:\.\d{2})?`),
	regexp.MustCompile(`(?i)\b([A-Z]{3})\s*[0-9,]+(?:\.\d{2})?\s+withdrawn from`),
	regexp.MustCompile(`(?i)\b([A-Z]{3})\s+[0-9,]+(?:\.\d{2})?\s+has been deposited via ATM`),
	regexp.MustCompile(`(?i)\b([A-Z]{3})\s+[0-9,]+(?:\.\d{2})?\s+transferred via`),
	regexp.MustCompile(`(?i)Cr\.?\s*transaction of\s+([A-Z]{3})\s+[0-9,]+(?:\.\d{2})?`),
	regexp.MustCompile(`(?i)Dr\.?\s*transaction of\s+([A-Z]{3})\s+[0-9,]+(?:\.\d{2})?`),
	regexp.MustCompile(`(?i)Transaction of\s+([A-Z]{3})\s+[0-9,]+(?:\.\d{2})?`),
	regexp.MustCompile(`(?i)Amount Paid:\s*([A-Z]{3})\s+[0-9,]+(?:\.\d{2})?`),
}

func adcbCurrency(message string) (string, bool) {
	for _, re := range adcbCurrencyRes {
		if m := re.FindStringSubmatch(message); m != nil {
			code := strings.ToUpper(m[1])
			if !common.IsMonthAbbreviation(code) {
				return code, true
			}
		}
	}
	lower := strings.ToLower(message)
	if adcbIsCardUsage(lower) {
		after := message
		if _, a, found := strings.Cut(message, "was used for"); found {
			after = a
		} else if _, a, found := strings.Cut(message, "used for"); found {
			after = a
		}
		before, _, _ := strings.Cut(after, " Avl.Bal")
		before, _, _ = strings.Cut(before, " Available balance")
		if m := adcbCcyAmount.FindStringSubmatch(before); m != nil {
			code := strings.ToUpper(m[1])
			if !common.IsMonthAbbreviation(code) {
				return code, true
			}
		}
	}
	return "", false
}

func NewADCB() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "Abu Dhabi Commercial Bank",
		Currency: "AED",

		MatchSender: senderMatcher(
			[]string{"ADCBALERT"},
			[]string{"ADCB", "ADCBANK"},
			regexp.MustCompile(`^[A-Z]{2}-ADCB-[A-Z]$`),
		),

		Gate:   []parser.GateRule{adcbGate, fabGate},
		Amount: []parser.AmountRule{adcbAmount},

		Merchant: []parser.StringRule{adcbMerchant, fabMerchant},

		Reference: []parser.StringRule{
			reString(regexp.MustCompile(`on\s+(\w{3}\s+\d{1,2}\s+\d{4}\s+\d{1,2}:\d{2}[AP]M)`)),
			reString(fabDateTimeRef),
			reString(fabValueDateRef),
		},

		Account: []parser.StringRule{adcbAccount, fabAccountLast4},

		Balance: []parser.AmountRule{
			reAmount(adcbBalanceRes[0]),
			reAmount(adcbBalanceRes[1]),
			reAmount(adcbBalanceRes[2]),
			reAmount(adcbBalanceRes[3]),
			reAmount(adcbBalanceRes[4]),
			fabBalance,
		},

		Type: []parser.TypeRule{adcbType, fabType},

		Card: func(message, lower string) (bool, bool) {
			if adcbIsCardUsage(lower) {
				return true, true
			}
			return false, false
		},

		DetectCurrency: adcbCurrency,
	}
}
