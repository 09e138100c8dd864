package bank

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rudrakos/finsms/parser"
)

func TestHDFC_MatchSender(t *testing.T) {
	rs := NewHDFCBank()

	tests := []struct {
		sender   string
		expected bool
	}{
		{"HDFCBK", true},
		{"VM-HDFCBK-S", true},
		{"AD-HDFC-B", true},
		{"HDFC-OTP", true},
		{"JX-SBIINB-S", false},
		{"ICICIB", false},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, rs.CanHandle(test.sender), "sender %s", test.sender)
	}
}

func TestHDFC_UPISent(t *testing.T) {
	rs := NewHDFCBank()

	tx, ok := rs.Parse("Sent Rs.250.00 From HDFC Bank A/C x1234 To Swiggy On 15/03/25 Ref 544123456789", "VM-HDFCBK-S", 1700000000000)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if !tx.Amount.Equal(decimal.NewFromFloat(250.00)) {
		t.Errorf("Expected amount 250.00, got %s", tx.Amount.String())
	}
	if tx.Type != parser.Expense {
		t.Errorf("Expected Expense, got %s", tx.TypeName)
	}
	if tx.Merchant != "Swiggy" {
		t.Errorf("Expected merchant 'Swiggy', got '%s'", tx.Merchant)
	}
	if tx.Reference != "544123456789" {
		t.Errorf("Expected reference '544123456789', got '%s'", tx.Reference)
	}
	if tx.Currency != "INR" {
		t.Errorf("Expected currency 'INR', got '%s'", tx.Currency)
	}
	if tx.IsFromCard {
		t.Error("Expected account debit, not card")
	}
}

func TestHDFC_SalaryCredit(t *testing.T) {
	rs := NewHDFCBank()

	tx, ok := rs.Parse("Rs.50,000.00 deposited in HDFC Bank A/c XX9876 for EMP-ID-9921 MAR SALARY-ACME CORP. Avl bal: INR 75,000.00", "VM-HDFCBK-S", 0)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if tx.Type != parser.Income {
		t.Errorf("Expected Income, got %s", tx.TypeName)
	}
	if tx.Merchant != "ACME CORP" {
		t.Errorf("Expected merchant 'ACME CORP', got '%s'", tx.Merchant)
	}
	if tx.AccountLast4 != "9876" {
		t.Errorf("Expected account '9876', got '%s'", tx.AccountLast4)
	}
	if tx.Balance == nil {
		t.Fatal("Expected balance to be extracted")
	}
	if !tx.Balance.Equal(decimal.NewFromFloat(75000.00)) {
		t.Errorf("Expected balance 75000.00, got %s", tx.Balance.String())
	}
}

func TestHDFC_DebitCardSpend(t *testing.T) {
	rs := NewHDFCBank()

	tx, ok := rs.Parse("Spent Rs.1,200.00 From HDFC Bank Card x4412 At DECATHLON On 15-03-25", "VM-HDFCBK-S", 0)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if tx.Type != parser.Expense {
		t.Errorf("Expected Expense, got %s", tx.TypeName)
	}
	if tx.Merchant != "DECATHLON" {
		t.Errorf("Expected merchant 'DECATHLON', got '%s'", tx.Merchant)
	}
	if tx.AccountLast4 != "4412" {
		t.Errorf("Expected card '4412', got '%s'", tx.AccountLast4)
	}
	if !tx.IsFromCard {
		t.Error("Expected card spend to be flagged")
	}
}

func TestHDFC_EMandate(t *testing.T) {
	rs := NewHDFCBank()
	msg := "HDFC Bank E-Mandate! Rs.649.00 will be deducted on 05/04/25, 10:30:45 For Netflix Subscription mandate UMN abc123@hdfc"

	// Mandate notices never produce transactions.
	if _, ok := rs.Parse(msg, "VM-HDFCBK-S", 0); ok {
		t.Error("Expected mandate notice not to parse as a transaction")
	}

	info, ok := rs.TryParseMandate(msg)
	if !ok {
		t.Fatal("Expected mandate detection to succeed")
	}
	if !info.Amount.Equal(decimal.NewFromFloat(649.00)) {
		t.Errorf("Expected amount 649.00, got %s", info.Amount.String())
	}
	if info.Merchant != "Netflix Subscription" {
		t.Errorf("Expected merchant 'Netflix Subscription', got '%s'", info.Merchant)
	}
	if info.NextDeductionDate != "05/04/25" {
		t.Errorf("Expected next deduction '05/04/25', got '%s'", info.NextDeductionDate)
	}
	if info.Reference != "abc123@hdfc" {
		t.Errorf("Expected reference 'abc123@hdfc', got '%s'", info.Reference)
	}
}

func TestHDFC_RejectsOTP(t *testing.T) {
	rs := NewHDFCBank()

	if _, ok := rs.Parse("OTP is 482913 for txn of Rs.5,000.00 at Amazon. Do not share.", "VM-HDFCBK-S", 0); ok {
		t.Error("Expected OTP message to be rejected")
	}
}

func TestHDFC_RejectsPaymentRequest(t *testing.T) {
	rs := NewHDFCBank()

	if _, ok := rs.Parse("JOHN DOE has requested Rs.500.00 from you. To pay, download the app.", "VM-HDFCBK-S", 0); ok {
		t.Error("Expected payment request to be rejected")
	}
}

func TestHDFC_RejectsBalanceUpdate(t *testing.T) {
	rs := NewHDFCBank()

	if _, ok := rs.Parse("Avl bal in HDFC Bank A/c XX9876 as on 15-03-25 is INR 75,000.00", "VM-HDFCBK-S", 0); ok {
		t.Error("Expected periodic balance update to be rejected")
	}
}
