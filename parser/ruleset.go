package parser

import (
	"strings"

	"github.com/rudrakos/finsms/parser/common"
	"github.com/shopspring/decimal"
)

// Every field extractor is an ordered list of rules: first match wins. An
// institution's rules run ahead of the shared generic rules, which replaces
// the original override-and-chain design with plain slice concatenation.
type (
	// AmountRule extracts a monetary value from the raw message.
	AmountRule func(message string) (decimal.Decimal, bool)
	// StringRule extracts a text field (merchant, reference, account suffix).
	StringRule func(message string) (string, bool)
	// TypeRule classifies the message; it receives the lowercased text.
	TypeRule func(lower string) (TransactionType, bool)
	// GateRule lets an institution accept or reject a message before the base
	// gate runs. decided=false defers to the next rule and finally to the
	// base gate.
	GateRule func(message, lower string) (ok, decided bool)
	// CardRule overrides card-instrument detection. decided=false falls back
	// to the shared detector.
	CardRule func(message, lower string) (isCard, decided bool)
	// MandateRule recognizes mandate-created or future-debit messages.
	MandateRule func(message string) (*MandateInfo, bool)
	// CurrencyRule resolves a per-message currency for multi-currency
	// institutions.
	CurrencyRule func(message string) (string, bool)
)

// RuleSet bundles one institution's sender predicate with its extraction
// overrides. Zero-valued fields simply fall through to the generic rules, so
// a minimal institution is just a name, a currency and a sender match.
type RuleSet struct {
	Bank     string
	Currency string

	// MatchSender decides whether this rule set handles a sender id.
	MatchSender func(sender string) bool

	Gate      []GateRule
	Amount    []AmountRule
	Merchant  []StringRule
	Reference []StringRule
	Account   []StringRule
	Balance   []AmountRule
	Limit     []AmountRule
	Type      []TypeRule
	Card      CardRule
	Mandates  []MandateRule
	// DetectCurrency overrides the shared symbol/code scan.
	DetectCurrency CurrencyRule

	// Normalize rewrites the raw message before any rule sees it. Used by
	// institutions whose RCS traffic arrives in styled Unicode.
	Normalize func(message string) string

	// PostProcess runs over the assembled transaction before its identity
	// key is computed. Used by institutions whose sender id changes the
	// reading of the fields (e.g. a dedicated credit-card sender).
	PostProcess func(tx *Transaction)
}

// CanHandle reports whether this rule set claims the sender.
func (rs *RuleSet) CanHandle(sender string) bool {
	return rs.MatchSender != nil && rs.MatchSender(sender)
}

// Base transaction gate. Rejects OTP/verification, promotional, payment
// request and due-reminder language, then requires a positive transaction
// verb.
func baseGate(lower string) bool {
	otp := []string{"otp", "one time password", "verification code"}
	for _, kw := range otp {
		if strings.Contains(lower, kw) {
			return false
		}
	}

	promo := []string{"offer", "discount", "cashback offer", "win "}
	for _, kw := range promo {
		if strings.Contains(lower, kw) {
			return false
		}
	}

	// Someone asking to be paid is not money moving.
	requests := []string{
		"has requested", "payment request", "collect request",
		"requesting payment", "requests rs", "ignore if already paid",
	}
	for _, kw := range requests {
		if strings.Contains(lower, kw) {
			return false
		}
	}

	if strings.Contains(lower, "have received payment") {
		return false
	}

	reminders := []string{
		"is due", "min amount due", "minimum amount due",
		"in arrears", "is overdue", "ignore if paid",
	}
	for _, kw := range reminders {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	if strings.Contains(lower, "pls pay") && strings.Contains(lower, "min of") {
		return false
	}

	verbs := []string{
		"debited", "credited", "withdrawn", "deposited",
		"spent", "received", "transferred", "paid",
	}
	for _, kw := range verbs {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Shared card-instrument detector. Account-number evidence wins over card
// evidence; the two signals are mutually exclusive and checked in that order.
func baseDetectCard(message, lower string) bool {
	accountMarkers := []string{
		"a/c", "account", "ac ", "acc ",
		"saving account", "current account", "savings a/c", "current a/c",
	}
	for _, marker := range accountMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}

	cardMarkers := []string{
		"card ending", "card xx", "debit card", "credit card",
		"card no.", "card number", "card *", "card x",
	}
	for _, marker := range cardMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	if strings.Contains(lower, "ending") && maskedDigitsRegex.MatchString(message) {
		return true
	}
	return false
}

// Generic fallback rules, appended after every institution's own lists.

func genericAmount(message string) (decimal.Decimal, bool) {
	if captured := common.FindAmount(common.AmountGroups, message); captured != "" {
		return common.ParseAmount(captured)
	}
	return decimal.Zero, false
}

func genericMerchant(message string) (string, bool) {
	for _, p := range common.MerchantGroups {
		m := p.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		merchant := common.CleanMerchantName(strings.TrimSpace(m[1]))
		if common.IsValidMerchantName(merchant) {
			return merchant, true
		}
	}
	return "", false
}

func genericReference(message string) (string, bool) {
	for _, p := range common.RefGroups {
		if m := p.FindStringSubmatch(message); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}

func genericAccount(message string) (string, bool) {
	for _, p := range common.AccountGroups {
		if m := p.FindStringSubmatch(message); m != nil {
			return m[1], true
		}
	}
	return "", false
}

func genericBalance(message string) (decimal.Decimal, bool) {
	if captured := common.FindAmount(common.BalanceGroups, message); captured != "" {
		return common.ParseAmount(captured)
	}
	return decimal.Zero, false
}

func genericLimit(message string) (decimal.Decimal, bool) {
	if captured := common.FindAmount(common.LimitGroups, message); captured != "" {
		return common.ParseAmount(captured)
	}
	return decimal.Zero, false
}
