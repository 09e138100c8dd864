package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
	"github.com/shopspring/decimal"
)

// First Abu Dhabi Bank (UAE). Multi-currency card spends, masked amounts
// ("AED *50.00") and multi-line card purchase notifications. ADCB composes
// these rules as its fallbacks, so the extractors live in named functions.

var fabCardPurchase = regexp.MustCompile(`(?i)(Credit|Debit) Card Purchase`)

var fabAmountRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)funds transfer request of\s+[A-Z]{3}\s+([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)for\s+[A-Z]{3}\s+([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)[A-Z]{3}\s+\*([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)[A-Z]{3}\s+([0-9*,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)Amount\s*[A-Z]{3}\s+\*([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)Amount\s*[A-Z]{3}\s+([0-9*,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)payment.*?[A-Z]{3}\s+\*([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)payment.*?[A-Z]{3}\s+([0-9*,]+(?:\.\d{2})?)`),
}

var (
	fabMaskedLeading = regexp.MustCompile(`^\*\d+(?:\.\d{2})?$`)
	fabMaskedAll     = regexp.MustCompile(`^\*+\.\d{2}$`)
	fabAnyNumber     = regexp.MustCompile(`\d+(?:\.\d{2})?`)
)

// fabUnmask resolves partially-masked figures: "*50.00" keeps the digits,
// "***.00" reads as zero, anything else surrenders whatever digits remain.
func fabUnmask(s string) (string, bool) {
	if !strings.Contains(s, "*") {
		return s, true
	}
	switch {
	case fabMaskedLeading.MatchString(s):
		return s[1:], true
	case fabMaskedAll.MatchString(s):
		return "0" + s[strings.Index(s, "."):], true
	default:
		if num := fabAnyNumber.FindString(s); num != "" {
			return num, true
		}
		return "", false
	}
}

func fabAmount(message string) (decimal.Decimal, bool) {
	for _, re := range fabAmountRes {
		m := re.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		raw := strings.ReplaceAll(m[1], ",", "")
		if num, ok := fabUnmask(raw); ok {
			return common.ParseAmount(num)
		}
		return decimal.Zero, false
	}
	return decimal.Zero, false
}

var (
	fabTransferFromRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)from\s+account\s+([X\d]{4,})`),
		regexp.MustCompile(`(?i)from\s+account/card\s+([X\d]{4,})`),
		regexp.MustCompile(`(?i)from your account/card\s+([X\d]{4,})`),
		regexp.MustCompile(`(?i)from\s+([X\d]{4,})\s+to\s+account`),
	}
	fabTransferToRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)to\s+account\s+([X\d]{4,})`),
		regexp.MustCompile(`(?i)to\s+IBAN/Account/Card\s+([X\d]{4,})`),
		regexp.MustCompile(`(?i)to\s+([X\d]{4,})\s+from\s+account`),
	}
)

func fabTransferAccounts(message string) (from, to string) {
	pick := func(res []*regexp.Regexp) string {
		for _, re := range res {
			if m := re.FindStringSubmatch(message); m != nil {
				acct := strings.ReplaceAll(strings.ToUpper(m[1]), "X", "")
				if len(acct) > 4 {
					acct = acct[len(acct)-4:]
				}
				return acct
			}
		}
		return ""
	}
	return pick(fabTransferFromRes), pick(fabTransferToRes)
}

func fabTransferLabel(from, to string) string {
	lastThree := func(s string) string {
		if len(s) > 3 {
			return s[len(s)-3:]
		}
		return s
	}
	switch {
	case from != "" && to != "":
		return "Transfer: " + lastThree(from) + " to " + lastThree(to)
	case from != "":
		return "Transfer from " + lastThree(from)
	case to != "":
		return "Transfer to " + lastThree(to)
	}
	return "Transfer"
}

var (
	fabCardSingleLine = regexp.MustCompile(`(?i)(?:Credit|Debit)\s+Card\s+Purchase\s+Card\s+No\s+[X\d]+\s+[A-Z]{3}\s+[\d,.]+\s+([^0-9]+?)\s+\d{2}/\d{2}/\d{2}`)
	fabCurrencyLine   = regexp.MustCompile(`(?i)[A-Z]{3}\s+[0-9,]+(?:\.\d{2})?`)
	fabCardLine       = regexp.MustCompile(`(?i)Card\s+[X*]+\d{4}`)
	fabDateTimeLine   = regexp.MustCompile(`^\d{2}/\d{2}/\d{2}\s+\d{2}:\d{2}$`)
	fabWebsite        = regexp.MustCompile(`(?i)([A-Z]+\.(?:COM|NET|ORG|IN)[^\n]*)`)
	fabPaymentTo      = regexp.MustCompile(`(?i)to\s+(\S+)`)
)

func fabCardMerchant(message string) (string, bool) {
	if m := fabCardSingleLine.FindStringSubmatch(message); m != nil {
		name := strings.TrimSpace(strings.ReplaceAll(m[1], "*", ""))
		if name != "" {
			return common.CleanMerchantName(name), true
		}
	}

	lines := strings.Split(message, "\n")
	for i, line := range lines {
		if fabCurrencyLine.MatchString(line) && i+1 < len(lines) {
			name := strings.TrimSpace(strings.ReplaceAll(lines[i+1], "*", ""))
			if name != "" && !strings.Contains(name, "/") {
				return common.CleanMerchantName(name), true
			}
			break
		}
	}

	// Card line, then amount line, then merchant line.
	if loc := fabCardLine.FindString(message); loc != "" {
		for i, line := range lines {
			if strings.Contains(line, loc) && i+2 < len(lines) {
				name := strings.TrimSpace(lines[i+2])
				if name != "" && !strings.Contains(name, "Available Balance") &&
					!fabDateTimeLine.MatchString(name) {
					name = strings.TrimSpace(strings.ReplaceAll(name, "*", ""))
					return common.CleanMerchantName(name), true
				}
				break
			}
		}
	}

	if m := fabWebsite.FindStringSubmatch(message); m != nil {
		name := strings.TrimSpace(strings.ReplaceAll(m[1], "*", ""))
		if name != "" {
			return common.CleanMerchantName(name), true
		}
	}
	return "", false
}

// Ordered: "Cash withdrawal" must come after "ATM Cash withdrawal".
var fabTypeMerchants = []struct{ keyword, name string }{
	{"atm cash withdrawal", "ATM Withdrawal"},
	{"inward remittance", "Inward Remittance"},
	{"outward remittance", "Outward Remittance"},
	{"cash deposit", "Cash Deposit"},
	{"cheque credited", "Cheque Credited"},
	{"cheque returned", "Cheque Returned"},
	{"cash withdrawal", "Cash Withdrawal"},
	{"unsuccessful transaction", "Refund"},
}

func fabMerchant(message string) (string, bool) {
	lower := strings.ToLower(message)

	if fabCardPurchase.MatchString(message) {
		if name, ok := fabCardMerchant(message); ok {
			return name, true
		}
	}

	if strings.Contains(lower, "funds transfer request") {
		return fabTransferLabel(fabTransferAccounts(message)), true
	}
	if strings.Contains(lower, "payment instructions") {
		if m := fabPaymentTo.FindStringSubmatch(message); m != nil {
			if digits := last4(m[1]); digits != "" {
				return "Transfer to " + digits, true
			}
		}
	}

	if strings.Contains(lower, "has been credited to your fab account") &&
		!strings.Contains(lower, "unsuccessful transaction") {
		return "Account Credited", true
	}

	for _, tm := range fabTypeMerchants {
		if strings.Contains(lower, tm.keyword) {
			return tm.name, true
		}
	}
	return "", false
}

func fabAccountLast4(message string) (string, bool) {
	if strings.Contains(strings.ToLower(message), "funds transfer request") {
		if from, _ := fabTransferAccounts(message); from != "" {
			return from, true
		}
	}
	for _, re := range []*regexp.Regexp{
		regexp.MustCompile(`(?i)Card\s+No\s+([X\d]{4,})`),
		regexp.MustCompile(`(?i)Account\s+([X\d]{4,})\*{0,2}`),
		regexp.MustCompile(`(?i)Account\s+[X*]+(\d{4})`),
	} {
		if m := re.FindStringSubmatch(message); m != nil {
			if digits := last4(m[1]); digits != "" {
				return digits, true
			}
		}
	}
	return "", false
}

var fabBalanceRe = regexp.MustCompile(`(?i)Available\s+Balance\s+(?:is\s+)?[A-Z]{3}\s*\*{0,}([0-9*,]+(?:\.\d{2})?)`)

func fabBalance(message string) (decimal.Decimal, bool) {
	m := fabBalanceRe.FindStringSubmatch(message)
	if m == nil {
		return decimal.Zero, false
	}
	raw := strings.ReplaceAll(m[1], ",", "")
	if strings.Contains(raw, "*") {
		switch {
		case regexp.MustCompile(`^\*+\d+(?:\.\d{2})?$`).MatchString(raw):
			raw = strings.ReplaceAll(raw, "*", "")
		case fabMaskedAll.MatchString(raw):
			raw = "0" + raw[strings.Index(raw, "."):]
		default:
			return decimal.Zero, false
		}
	}
	return common.ParseAmount(raw)
}

var (
	fabDateTimeRef  = regexp.MustCompile(`(\d{2}/\d{2}/\d{2}\s+\d{2}:\d{2})`)
	fabValueDateRef = regexp.MustCompile(`(?i)Value\s+Date\s+(\d{2}/\d{2}/\d{4})`)
)

func fabType(lower string) (parser.TransactionType, bool) {
	switch {
	case strings.Contains(lower, "credit card purchase"):
		return parser.Credit, true
	case fabCardPurchase.MatchString(lower):
		return parser.Expense, true
	case strings.Contains(lower, "cheque credited"):
		return parser.Income, true
	case strings.Contains(lower, "cheque returned"):
		return parser.Expense, true
	case strings.Contains(lower, "atm cash withdrawal"):
		return parser.Expense, true
	case strings.Contains(lower, "inward remittance"),
		strings.Contains(lower, "cash deposit"),
		strings.Contains(lower, "has been credited to your fab account"):
		return parser.Income, true
	case strings.Contains(lower, "outward remittance"),
		strings.Contains(lower, "payment instructions"):
		return parser.Expense, true
	case strings.Contains(lower, "funds transfer request"):
		return parser.Transfer, true
	case strings.Contains(lower, "has been processed"):
		return parser.Expense, true
	case strings.Contains(lower, "credit") && !strings.Contains(lower, "credit card") &&
		!strings.Contains(lower, "debit") && !strings.Contains(lower, "purchase") &&
		!strings.Contains(lower, "payment"):
		return parser.Income, true
	case strings.Contains(lower, "debit") && !strings.Contains(lower, "credit"):
		return parser.Expense, true
	case strings.Contains(lower, "purchase"), strings.Contains(lower, "payment"):
		return parser.Expense, true
	}
	return 0, false
}

var fabRejectRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)declined due to insufficient balance`),
	regexp.MustCompile(`(?i)transaction has been declined`),
	regexp.MustCompile(`(?i)address update request`),
	regexp.MustCompile(`(?i)statement request`),
	regexp.MustCompile(`(?i)stamped statement`),
	regexp.MustCompile(`(?i)cannot process your`),
	regexp.MustCompile(`(?i)amazing rate`),
	regexp.MustCompile(`(?i)request has been logged`),
	regexp.MustCompile(`(?i)reference number`),
	regexp.MustCompile(`(?i)beneficiary creation/modification request`),
	regexp.MustCompile(`(?i)funds transfer request is under process`),
	regexp.MustCompile(`(?i)has been resolved`),
	regexp.MustCompile(`(?i)funds transfer request has failed`),
	regexp.MustCompile(`(?i)card has been successfully activated`),
	regexp.MustCompile(`(?i)temporarily blocked`),
	regexp.MustCompile(`(?i)never share credit/debit card`),
	regexp.MustCompile(`(?i)debit card.*replacement request`),
	regexp.MustCompile(`(?i)card will be ready for dispatch`),
	regexp.MustCompile(`(?i)replacement request has been registered`),
	regexp.MustCompile(`(?i)otp`),
	regexp.MustCompile(`(?i)activation`),
	regexp.MustCompile(`(?i)thank you for activating`),
	regexp.MustCompile(`(?i)do not disclose your otp`),
	regexp.MustCompile(`(?i)atyourservice@bankfab\.com`),
	regexp.MustCompile(`(?i)has been blocked on`),
}

func fabGate(message, lower string) (bool, bool) {
	for _, re := range fabRejectRes {
		if re.MatchString(lower) {
			return false, true
		}
	}

	if containsAny(lower, "bit.ly", "conditions apply", "instalments at 0% interest") {
		if !containsAny(lower, "purchase", "payment instructions", "remittance") {
			return false, true
		}
	}

	// Pending transfers are announced again once processed.
	if strings.Contains(lower, "funds transfer request of") &&
		strings.Contains(lower, "has been processed") {
		return true, true
	}

	if containsAny(lower,
		"credit card purchase", "debit card purchase",
		"inward remittance", "outward remittance",
		"atm cash withdrawal", "payment instructions",
		"has been processed", "has been credited to your fab account",
		"cash deposit", "cheque credited", "cheque returned",
	) {
		return true, true
	}

	if (strings.Contains(lower, "credit") && !strings.Contains(lower, "credit card")) ||
		strings.Contains(lower, "debit") ||
		strings.Contains(lower, "remittance") ||
		strings.Contains(lower, "available balance") {
		return fabCurrencyLine.MatchString(message), true
	}
	return false, false
}

var fabCurrencyRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Amount\s+([A-Z]{3})`),
	regexp.MustCompile(`(?i)([A-Z]{3})\s+[0-9,]+(?:\.\d{2})?`),
}

func fabCurrency(message string) (string, bool) {
	for _, re := range fabCurrencyRes {
		if m := re.FindStringSubmatch(message); m != nil {
			return strings.ToUpper(m[1]), true
		}
	}
	return "", false
}

func NewFAB() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "First Abu Dhabi Bank",
		Currency: "AED",

		MatchSender: senderMatcher(
			[]string{"FAB"},
			[]string{"FABBANK", "ADFAB"},
			regexp.MustCompile(`^[A-Z]{2}-FAB-[A-Z]$`),
		),

		Gate:   []parser.GateRule{fabGate},
		Amount: []parser.AmountRule{fabAmount},

		Merchant: []parser.StringRule{fabMerchant},

		Reference: []parser.StringRule{
			reString(fabDateTimeRef),
			reString(fabValueDateRef),
		},

		Account: []parser.StringRule{fabAccountLast4},
		Balance: []parser.AmountRule{fabBalance},
		Type:    []parser.TypeRule{fabType},

		Card: func(message, lower string) (bool, bool) {
			if fabCardPurchase.MatchString(message) {
				return true, true
			}
			return false, false
		},

		DetectCurrency: fabCurrency,
	}
}
