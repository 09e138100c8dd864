package bank

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rudrakos/finsms/parser"
)

func TestFAB_MatchSender(t *testing.T) {
	rs := NewFAB()

	tests := []struct {
		sender   string
		expected bool
	}{
		{"FAB", true},
		{"fab", true},
		{"ADFAB", true},
		{"AD-FAB-A", true},
		{"FABBANK", true},
		{"ADCBALERT", false},
		{"MASHREQ", false},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, rs.CanHandle(test.sender), "sender %s", test.sender)
	}
}

func TestFAB_DebitCardPurchase(t *testing.T) {
	rs := NewFAB()
	msg := "Debit Card Purchase\nCard No XXXX1234\nAED 50.00\nCARREFOUR\n15/03/25 18:30\nAvailable Balance AED 3,450.75"

	tx, ok := rs.Parse(msg, "FAB", 0)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if !tx.Amount.Equal(decimal.NewFromFloat(50.00)) {
		t.Errorf("Expected amount 50.00, got %s", tx.Amount.String())
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
	if tx.Reference != "15/03/25 18:30" {
		t.Errorf("Expected datetime reference, got '%s'", tx.Reference)
	}
	if tx.Balance == nil {
		t.Fatal("Expected balance to be extracted")
	}
	if !tx.Balance.Equal(decimal.NewFromFloat(3450.75)) {
		t.Errorf("Expected balance 3450.75, got %s", tx.Balance.String())
	}
	if !tx.IsFromCard {
		t.Error("Expected card purchase to be flagged")
	}
	if tx.Currency != "AED" {
		t.Errorf("Expected currency 'AED', got '%s'", tx.Currency)
	}
}

func TestFAB_MaskedAmount(t *testing.T) {
	rs := NewFAB()
	msg := "Credit Card Purchase\nCard No XXXX9921\nAED *150.00\nAMZN MKTPLACE\n20/03/25 11:00"

	tx, ok := rs.Parse(msg, "FAB", 0)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if !tx.Amount.Equal(decimal.NewFromFloat(150.00)) {
		t.Errorf("Expected masked amount 150.00, got %s", tx.Amount.String())
	}
	if tx.Type != parser.Credit {
		t.Errorf("Expected Credit, got %s", tx.TypeName)
	}
}

func TestFAB_FundsTransfer(t *testing.T) {
	rs := NewFAB()
	msg := "Your funds transfer request of AED 2,000.00 from account XX123456 to account XX987654 has been processed."

	tx, ok := rs.Parse(msg, "FAB", 0)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if !tx.Amount.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("Expected amount 2000.00, got %s", tx.Amount.String())
	}
	if tx.Type != parser.Transfer {
		t.Errorf("Expected Transfer, got %s", tx.TypeName)
	}
	if tx.Merchant != "Transfer: 456 to 654" {
		t.Errorf("Expected transfer label, got '%s'", tx.Merchant)
	}
	if tx.AccountLast4 != "3456" {
		t.Errorf("Expected source account '3456', got '%s'", tx.AccountLast4)
	}
}

func TestFAB_RejectsPendingTransfer(t *testing.T) {
	rs := NewFAB()

	if _, ok := rs.Parse("Your funds transfer request is under process. Reference number 884512.", "FAB", 0); ok {
		t.Error("Expected pending transfer to be rejected")
	}
}

func TestFAB_RejectsOTP(t *testing.T) {
	rs := NewFAB()

	if _, ok := rs.Parse("Your OTP for FAB online banking is 123456. Do not disclose your OTP to anyone.", "FAB", 0); ok {
		t.Error("Expected OTP message to be rejected")
	}
}

func TestFAB_RejectsCardActivation(t *testing.T) {
	rs := NewFAB()

	if _, ok := rs.Parse("Your FAB debit card has been successfully activated. AED 0.00 charged.", "FAB", 0); ok {
		t.Error("Expected card activation notice to be rejected")
	}
}

func TestFABUnmask(t *testing.T) {
	tests := []struct {
		in       string
		expected string
		ok       bool
	}{
		{"50.00", "50.00", true},
		{"*50.00", "50.00", true},
		{"***.00", "0.00", true},
		{"*1,234", "1", true}, // commas are stripped before unmasking in practice
	}

	for _, test := range tests {
		out, ok := fabUnmask(test.in)
		assert.Equal(t, test.ok, ok, "input %s", test.in)
		if ok {
			assert.Equal(t, test.expected, out, "input %s", test.in)
		}
	}
}
