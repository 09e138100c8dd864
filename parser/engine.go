package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var maskedDigitsRegex = regexp.MustCompile(`(?:xx|XX|\*{2,})?\d{4}`)

// Parse runs the full extraction pipeline for one message. It returns false
// for every expected "not parseable" outcome: mandate messages, gate
// rejections, missing amount, unresolved type. Absence of a result is the
// contract — there is no error channel.
func (rs *RuleSet) Parse(text, sender string, timestamp int64) (*Transaction, bool) {
	if rs.Normalize != nil {
		text = rs.Normalize(text)
	}

	// Mandate and future-debit messages announce money that has not moved
	// yet. They short-circuit before the gate so no input can ever produce
	// both a MandateInfo and a Transaction.
	if _, ok := rs.TryParseMandate(text); ok {
		return nil, false
	}

	lower := strings.ToLower(text)

	if !rs.passGate(text, lower) {
		return nil, false
	}

	amount, ok := firstAmount(rs.Amount, genericAmount, text)
	if !ok {
		return nil, false
	}

	txType, ok := rs.classify(lower)
	if !ok {
		return nil, false
	}

	tx := &Transaction{
		Amount:    amount,
		Type:      txType,
		TypeName:  txType.String(),
		Message:   text,
		Sender:    sender,
		Timestamp: timestamp,
		Bank:      rs.Bank,
		Currency:  rs.currency(text),
	}

	if merchant, ok := firstString(rs.Merchant, genericMerchant, text); ok {
		tx.Merchant = merchant
	}
	if ref, ok := firstString(rs.Reference, genericReference, text); ok {
		tx.Reference = ref
	}
	if last4, ok := firstString(rs.Account, genericAccount, text); ok {
		tx.AccountLast4 = last4
	}
	if balance, ok := firstAmount(rs.Balance, genericBalance, text); ok {
		tx.Balance = &balance
	}
	if txType == Credit {
		if limit, ok := firstAmount(rs.Limit, genericLimit, text); ok {
			tx.AvailableLimit = &limit
		}
	}

	if rs.Card != nil {
		if isCard, decided := rs.Card(text, lower); decided {
			tx.IsFromCard = isCard
		} else {
			tx.IsFromCard = baseDetectCard(text, lower)
		}
	} else {
		tx.IsFromCard = baseDetectCard(text, lower)
	}

	if rs.PostProcess != nil {
		rs.PostProcess(tx)
	}

	tx.IdentityKey = buildIdentityKey(tx)
	return tx, true
}

// TryParseMandate runs the institution's mandate rules, if any. Institutions
// without mandate support return false unconditionally; their future-debit
// phrasing is rejected by the gate instead.
func (rs *RuleSet) TryParseMandate(text string) (*MandateInfo, bool) {
	for _, rule := range rs.Mandates {
		if info, ok := rule(text); ok {
			return info, true
		}
	}
	return nil, false
}

// passGate chains institution gate rules ahead of the base gate. The base
// gate always remains the final arbiter for undecided messages.
func (rs *RuleSet) passGate(text, lower string) bool {
	for _, rule := range rs.Gate {
		if ok, decided := rule(text, lower); decided {
			return ok
		}
	}
	return baseGate(lower)
}

// classify resolves the transaction type: investment evidence first,
// institution rules second, the generic verb table last.
func (rs *RuleSet) classify(lower string) (TransactionType, bool) {
	if IsInvestmentMessage(lower) {
		return Investment, true
	}
	for _, rule := range rs.Type {
		if t, ok := rule(lower); ok {
			return t, true
		}
	}
	return ClassifyType(lower)
}

// currency resolves the per-message currency for multi-currency institutions
// and falls back to the institution default.
func (rs *RuleSet) currency(text string) string {
	if rs.DetectCurrency != nil {
		if code, ok := rs.DetectCurrency(text); ok {
			return code
		}
	}
	return rs.Currency
}

// firstAmount evaluates the institution's ordered rules, then the generic
// fallback. The first rule that matches wins.
func firstAmount(rules []AmountRule, fallback AmountRule, text string) (decimal.Decimal, bool) {
	for _, rule := range rules {
		if v, ok := rule(text); ok {
			return v, true
		}
	}
	return fallback(text)
}

func firstString(rules []StringRule, fallback StringRule, text string) (string, bool) {
	for _, rule := range rules {
		if v, ok := rule(text); ok {
			return v, true
		}
	}
	return fallback(text)
}
