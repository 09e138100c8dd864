// Package parser turns bank and wallet notification text into structured
// transaction records. The pipeline is a pure function of its inputs: a
// sender identifier selects an institution rule set, the rule set's gate and
// ordered field extractors run, and the result is either a fully populated
// Transaction or nothing at all.
package parser

import "github.com/shopspring/decimal"

// TransactionType classifies where the money went.
type TransactionType int

const (
	// Expense is a debit against an account balance.
	Expense TransactionType = iota
	// Income is a credit into an account.
	Income
	// Credit is a credit-card spend: it draws against a credit limit, not a
	// balance, and is kept distinct from Expense for that reason.
	Credit
	// Transfer moves money between own accounts.
	Transfer
	// Investment covers capital-market flows (brokers, clearing corporations,
	// mutual funds) regardless of the debit/credit verb used.
	Investment
)

func (t TransactionType) String() string {
	switch t {
	case Expense:
		return "EXPENSE"
	case Income:
		return "INCOME"
	case Credit:
		return "CREDIT"
	case Transfer:
		return "TRANSFER"
	case Investment:
		return "INVESTMENT"
	}
	return "UNKNOWN"
}

// Transaction is the parsed record for a completed money movement. It is
// assembled inside Parse; ownership passes to the caller.
type Transaction struct {
	Amount         decimal.Decimal  `json:"amount"`
	Type           TransactionType  `json:"-"`
	TypeName       string           `json:"type"`
	Merchant       string           `json:"merchant,omitempty"`
	Reference      string           `json:"reference,omitempty"`
	AccountLast4   string           `json:"account_last4,omitempty"`
	Balance        *decimal.Decimal `json:"balance,omitempty"`
	AvailableLimit *decimal.Decimal `json:"available_limit,omitempty"`
	IsFromCard     bool             `json:"is_from_card"`
	Currency       string           `json:"currency"`
	Bank           string           `json:"bank"`
	Message        string           `json:"message"`
	Sender         string           `json:"sender"`
	Timestamp      int64            `json:"timestamp"`
	IdentityKey    string           `json:"identity_key"`
}

// SetType updates the classification and keeps the serialized name in step.
func (t *Transaction) SetType(tt TransactionType) {
	t.Type = tt
	t.TypeName = tt.String()
}

// MandateInfo describes a recurring-payment agreement or an announced future
// debit. No money has moved yet: an input that yields a MandateInfo never
// yields a Transaction.
type MandateInfo struct {
	Amount decimal.Decimal `json:"amount"`
	// NextDeductionDate is kept in the institution's own notation;
	// DateFormat records how to read it.
	NextDeductionDate string `json:"next_deduction_date,omitempty"`
	DateFormat        string `json:"date_format"`
	Merchant          string `json:"merchant"`
	// Reference is the unique mandate number when the institution issues one.
	Reference string `json:"reference,omitempty"`
}
