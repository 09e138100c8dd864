package bank

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rudrakos/finsms/parser"
)

func TestADCB_MatchSender(t *testing.T) {
	rs := NewADCB()

	tests := []struct {
		sender   string
		expected bool
	}{
		{"ADCBALERT", true},
		{"ADCB", true},
		{"AD-ADCB-A", true},
		{"FAB", false},
		{"MASHREQ", false},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, rs.CanHandle(test.sender), "sender %s", test.sender)
	}
}

func TestADCB_CardUsage(t *testing.T) {
	rs := NewADCB()
	msg := "Your Debit Card XXX1234 linked to Acc. XXX567890 was used for AED93.48 at CARREFOUR,AE on Mar 15 2025 6:30PM. Avl.Bal AED 1,506.52"

	tx, ok := rs.Parse(msg, "ADCBALERT", 0)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if !tx.Amount.Equal(decimal.NewFromFloat(93.48)) {
		t.Errorf("Expected amount 93.48, got %s", tx.Amount.String())
	}
	if tx.Type != parser.Expense {
		t.Errorf("Expected Expense, got %s", tx.TypeName)
	}
	if tx.Merchant != "CARREFOUR" {
		t.Errorf("Expected merchant 'CARREFOUR', got '%s'", tx.Merchant)
	}
	if tx.AccountLast4 != "567890" {
		t.Errorf("Expected linked account '567890', got '%s'", tx.AccountLast4)
	}
	if tx.Reference != "Mar 15 2025 6:30PM" {
		t.Errorf("Expected datetime reference, got '%s'", tx.Reference)
	}
	if tx.Balance == nil {
		t.Fatal("Expected balance to be extracted")
	}
	if !tx.Balance.Equal(decimal.NewFromFloat(1506.52)) {
		t.Errorf("Expected balance 1506.52, got %s", tx.Balance.String())
	}
	if !tx.IsFromCard {
		t.Error("Expected card usage to be flagged")
	}
	if tx.Currency != "AED" {
		t.Errorf("Expected currency 'AED', got '%s'", tx.Currency)
	}
}

func TestADCB_ATMWithdrawal(t *testing.T) {
	rs := NewADCB()
	msg := "AED 500.00 withdrawn from Acc. XXX567890 at ATM-MALL OF THE EMIRATES 123. Avl.Bal AED 1,000.00"

	tx, ok := rs.Parse(msg, "ADCBALERT", 0)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if !tx.Amount.Equal(decimal.NewFromInt(500)) {
		t.Errorf("Expected amount 500.00, got %s", tx.Amount.String())
	}
	if tx.Type != parser.Expense {
		t.Errorf("Expected Expense, got %s", tx.TypeName)
	}
	if tx.Merchant != "ATM Withdrawal: MALL OF THE EMIRATES 123" {
		t.Errorf("Expected ATM location merchant, got '%s'", tx.Merchant)
	}
	if tx.AccountLast4 != "567890" {
		t.Errorf("Expected account '567890', got '%s'", tx.AccountLast4)
	}
}

func TestADCB_InternetBankingTransfer(t *testing.T) {
	rs := NewADCB()
	msg := "AED 1,200.00 transferred via ADCB Personal Internet Banking. Available balance is AED 3,400.00"

	tx, ok := rs.Parse(msg, "ADCBALERT", 0)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if tx.Type != parser.Transfer {
		t.Errorf("Expected Transfer, got %s", tx.TypeName)
	}
	if tx.Merchant != "Transfer via ADCB Banking" {
		t.Errorf("Expected transfer merchant, got '%s'", tx.Merchant)
	}
	if tx.Balance == nil {
		t.Fatal("Expected balance to be extracted")
	}
	if !tx.Balance.Equal(decimal.NewFromInt(3400)) {
		t.Errorf("Expected balance 3400.00, got %s", tx.Balance.String())
	}
}

func TestADCB_RejectsOTP(t *testing.T) {
	rs := NewADCB()

	if _, ok := rs.Parse("ADCB: OTP for transaction is 123456. Do not share your OTP with anyone.", "ADCBALERT", 0); ok {
		t.Error("Expected OTP message to be rejected")
	}
}

func TestADCB_RejectsPINChange(t *testing.T) {
	rs := NewADCB()

	if _, ok := rs.Parse("Your request for PIN change/setup was successful for card XXX1234.", "ADCBALERT", 0); ok {
		t.Error("Expected PIN change confirmation to be rejected")
	}
}
