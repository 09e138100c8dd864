package bank

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rudrakos/finsms/parser"
)

func TestMashreq_MatchSender(t *testing.T) {
	rs := NewMashreq()

	tests := []struct {
		sender   string
		expected bool
	}{
		{"MASHREQ", true},
		{"MSHREQ", true},
		{"AD-MASHREQ-P", true},
		{"AD-MSHREQ-P", true},
		{"FAB", false},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, rs.CanHandle(test.sender), "sender %s", test.sender)
	}
}

func TestMashreq_NEOCardSpend(t *testing.T) {
	rs := NewMashreq()
	msg := "Thank you for using your NEO Visa Debit Card card ending 1234 for AED 150.00 at CARREFOUR on 26-AUG-2025 10:25 PM. Available Balance is AED X,480.15"

	tx, ok := rs.Parse(msg, "MASHREQ", 0)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if !tx.Amount.Equal(decimal.NewFromInt(150)) {
		t.Errorf("Expected amount 150.00, got %s", tx.Amount.String())
	}
	if tx.Type != parser.Expense {
		t.Errorf("Expected Expense, got %s", tx.TypeName)
	}
	if tx.Merchant != "CARREFOUR" {
		t.Errorf("Expected merchant 'CARREFOUR', got '%s'", tx.Merchant)
	}
	if tx.AccountLast4 != "1234" {
		t.Errorf("Expected card '1234', got '%s'", tx.AccountLast4)
	}
	if tx.Reference != "26-AUG-2025 10:25 PM" {
		t.Errorf("Expected datetime reference, got '%s'", tx.Reference)
	}
	if tx.Balance == nil {
		t.Fatal("Expected masked balance to be extracted")
	}
	if !tx.Balance.Equal(decimal.NewFromFloat(480.15)) {
		t.Errorf("Expected masked balance 480.15, got %s", tx.Balance.String())
	}
	if !tx.IsFromCard {
		t.Error("Expected NEO card spend to be flagged")
	}
	if tx.Currency != "AED" {
		t.Errorf("Expected currency 'AED', got '%s'", tx.Currency)
	}
}

func TestMashreq_ForeignCurrencySpend(t *testing.T) {
	rs := NewMashreq()
	msg := "Thank you for using your NEO Visa Debit Card card ending 1234 for USD 29.99 at NETFLIX.COM on 01-SEP-2025 08:00 AM"

	tx, ok := rs.Parse(msg, "MASHREQ", 0)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if tx.Currency != "USD" {
		t.Errorf("Expected per-message currency 'USD', got '%s'", tx.Currency)
	}
	if !tx.Amount.Equal(decimal.NewFromFloat(29.99)) {
		t.Errorf("Expected amount 29.99, got %s", tx.Amount.String())
	}
}

func TestMashreq_ATMWithdrawal(t *testing.T) {
	rs := NewMashreq()
	msg := "You have withdrawn AED 500.00 from ATM using your Mashreq card. Avl Bal AED 1,200.50"

	tx, ok := rs.Parse(msg, "MASHREQ", 0)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if tx.Type != parser.Expense {
		t.Errorf("Expected Expense, got %s", tx.TypeName)
	}
	if tx.Merchant != "ATM Withdrawal" {
		t.Errorf("Expected merchant 'ATM Withdrawal', got '%s'", tx.Merchant)
	}
	if tx.Balance == nil {
		t.Fatal("Expected balance to be extracted")
	}
	if !tx.Balance.Equal(decimal.NewFromFloat(1200.50)) {
		t.Errorf("Expected balance 1200.50, got %s", tx.Balance.String())
	}
}

func TestMashreq_RejectsOTP(t *testing.T) {
	rs := NewMashreq()

	if _, ok := rs.Parse("Your OTP for Mashreq transaction is 123456. Do not share.", "MASHREQ", 0); ok {
		t.Error("Expected OTP message to be rejected")
	}
}

func TestMashreq_RejectsBlockedCard(t *testing.T) {
	rs := NewMashreq()

	if _, ok := rs.Parse("Your Mashreq card ending 1234 has been blocked as requested.", "MASHREQ", 0); ok {
		t.Error("Expected card block notice to be rejected")
	}
}
