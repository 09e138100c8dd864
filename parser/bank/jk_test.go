package bank

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rudrakos/finsms/parser"
)

func TestJK_MatchSender(t *testing.T) {
	rs := NewJK()

	tests := []struct {
		sender   string
		expected bool
	}{
		{"JKBANK", true},
		{"JKB", true},
		{"VM-JKBANK-S", true},
		{"JKBANK-A", true},
		{"HDFCBK", false},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, rs.CanHandle(test.sender), "sender %s", test.sender)
	}
}

func TestJK_NEFTDebit(t *testing.T) {
	rs := NewJK()
	msg := "Your A/c XXXXX1234 has been Debited by INR 5,000.00 at 14:23:45 by NEFT/JOHN DOE. Available Bal is INR 45,000.00 Cr."

	tx, ok := rs.Parse(msg, "JKBANK", 0)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if !tx.Amount.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("Expected amount 5000.00, got %s", tx.Amount.String())
	}
	if tx.Type != parser.Expense {
		t.Errorf("Expected Expense, got %s", tx.TypeName)
	}
	if tx.Merchant != "NEFT Transfer" {
		t.Errorf("Expected merchant 'NEFT Transfer', got '%s'", tx.Merchant)
	}
	if tx.AccountLast4 != "1234" {
		t.Errorf("Expected account '1234', got '%s'", tx.AccountLast4)
	}
	if tx.Balance == nil {
		t.Fatal("Expected balance to be extracted")
	}
	if !tx.Balance.Equal(decimal.NewFromInt(45000)) {
		t.Errorf("Expected balance 45000.00, got %s", tx.Balance.String())
	}
}

func TestJK_ClearingCorporationIsInvestment(t *testing.T) {
	rs := NewJK()
	msg := "Your A/c XXXXX1234 has been Debited by INR 10,000.00 at 09:15:00 by INDIAN CLEARING CORPORATION LTD/SETTLEMENT. Available Bal is INR 35,000.00 Cr."

	tx, ok := rs.Parse(msg, "JKBANK", 0)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if tx.Type != parser.Investment {
		t.Errorf("Expected Investment, got %s", tx.TypeName)
	}
	if tx.Merchant != "Indian Clearing Corporation" {
		t.Errorf("Expected merchant 'Indian Clearing Corporation', got '%s'", tx.Merchant)
	}
}

func TestJK_IMPSReceived(t *testing.T) {
	rs := NewJK()
	msg := "IMPS Fund Transfer: Amt received from JOHN DOE having A/C no XXXXX5678. INR 3,000.00 credited to Your A/c XXXXX1234. RRN No. 509912345678"

	tx, ok := rs.Parse(msg, "JKBANK", 0)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if tx.Type != parser.Income {
		t.Errorf("Expected Income, got %s", tx.TypeName)
	}
	if tx.Merchant != "JOHN DOE" {
		t.Errorf("Expected merchant 'JOHN DOE', got '%s'", tx.Merchant)
	}
	if tx.Reference != "509912345678" {
		t.Errorf("Expected RRN reference, got '%s'", tx.Reference)
	}
	if tx.AccountLast4 != "1234" {
		t.Errorf("Expected account '1234', got '%s'", tx.AccountLast4)
	}
}

func TestJK_UPIPayment(t *testing.T) {
	rs := NewJK()
	msg := "INR 250.00 paid to merchant99@ybl via UPI from your A/c XXXXX1234. UPI Ref: 544123456789"

	tx, ok := rs.Parse(msg, "JKBANK", 0)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if tx.Type != parser.Expense {
		t.Errorf("Expected Expense, got %s", tx.TypeName)
	}
	if tx.Merchant != "merchant99" {
		t.Errorf("Expected VPA handle merchant, got '%s'", tx.Merchant)
	}
	if tx.Reference != "544123456789" {
		t.Errorf("Expected UPI reference, got '%s'", tx.Reference)
	}
}

func TestJK_RejectsSettlementConfirmation(t *testing.T) {
	rs := NewJK()

	if _, ok := rs.Parse("Your RTGS txn with UTR ABCD123456 has been credited to the beneficiary account", "JKBANK", 0); ok {
		t.Error("Expected settlement confirmation to be rejected")
	}
}

func TestJK_RejectsOTP(t *testing.T) {
	rs := NewJK()

	if _, ok := rs.Parse("OTP for your JK Bank transaction is 123456. Do not share it.", "JKBANK", 0); ok {
		t.Error("Expected OTP message to be rejected")
	}
}
