package bank

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rudrakos/finsms/parser"
)

func TestFederal_UPIDebit(t *testing.T) {
	rs := NewFederalBank()

	tx, ok := rs.Parse("Rs 34.51 debited via UPI on 08-05-2025 13:48:03 to VPA merchant@bank", "XX-FEDBNK-S", 0)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if !tx.Amount.Equal(decimal.NewFromFloat(34.51)) {
		t.Errorf("Expected amount 34.51, got %s", tx.Amount.String())
	}
	if tx.Type != parser.Expense {
		t.Errorf("Expected Expense, got %s", tx.TypeName)
	}
	if tx.Currency != "INR" {
		t.Errorf("Expected currency 'INR', got '%s'", tx.Currency)
	}
	if tx.Merchant != "merchant@bank" {
		t.Errorf("Expected VPA merchant, got '%s'", tx.Merchant)
	}
	if tx.AccountLast4 != "" {
		t.Errorf("Expected no account suffix, got '%s'", tx.AccountLast4)
	}
	if tx.IsFromCard {
		t.Error("Expected UPI debit not to be flagged as card")
	}
}

func TestFederal_KnownVPABrand(t *testing.T) {
	rs := NewFederalBank()

	tx, ok := rs.Parse("Rs 250.00 debited via UPI on 15-03-2025 12:00:00 to VPA swiggy.stores@axisbank", "XX-FEDBNK-S", 0)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if tx.Merchant != "Swiggy" {
		t.Errorf("Expected brand merchant 'Swiggy', got '%s'", tx.Merchant)
	}
}

func TestFederal_CreditCardSpend(t *testing.T) {
	rs := NewFederalBank()

	tx, ok := rs.Parse("INR 506.52 spent on your Credit Card ending with 9922 at AMAZON PAY INDIA LIMITED on 15-03-2025", "XX-FEDBNK-S", 0)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if !tx.Amount.Equal(decimal.NewFromFloat(506.52)) {
		t.Errorf("Expected amount 506.52, got %s", tx.Amount.String())
	}
	if tx.Type != parser.Credit {
		t.Errorf("Expected Credit, got %s", tx.TypeName)
	}
	if tx.Merchant != "AMAZON PAY INDIA" {
		t.Errorf("Expected corporate suffix stripped, got '%s'", tx.Merchant)
	}
	if tx.AccountLast4 != "9922" {
		t.Errorf("Expected card '9922', got '%s'", tx.AccountLast4)
	}
	if !tx.IsFromCard {
		t.Error("Expected card spend to be flagged")
	}
}

func TestFederal_ReceivedTransfer(t *testing.T) {
	rs := NewFederalBank()

	tx, ok := rs.Parse("You've received INR 3,000.00 in your A/c. It was sent by JOHN DOE on 15-03-2025", "XX-FEDBNK-S", 0)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if tx.Type != parser.Income {
		t.Errorf("Expected Income, got %s", tx.TypeName)
	}
	if tx.Merchant != "JOHN DOE" {
		t.Errorf("Expected sender merchant, got '%s'", tx.Merchant)
	}
}

func TestFederal_MandateCreated(t *testing.T) {
	rs := NewFederalBank()
	msg := "You have successfully created a mandate on NETFLIX for a maximum amount of Rs. 649.00 starting from 01-04-2025. Mandate Ref No- ABC123XYZ"

	if _, ok := rs.Parse(msg, "XX-FEDBNK-S", 0); ok {
		t.Error("Expected mandate creation not to parse as a transaction")
	}

	info, ok := rs.TryParseMandate(msg)
	if !ok {
		t.Fatal("Expected mandate detection to succeed")
	}
	if !info.Amount.Equal(decimal.NewFromFloat(649.00)) {
		t.Errorf("Expected amount 649.00, got %s", info.Amount.String())
	}
	if info.Merchant != "NETFLIX" {
		t.Errorf("Expected merchant 'NETFLIX', got '%s'", info.Merchant)
	}
	if info.NextDeductionDate != "01-04-2025" {
		t.Errorf("Expected start date '01-04-2025', got '%s'", info.NextDeductionDate)
	}
	if info.Reference != "ABC123XYZ" {
		t.Errorf("Expected mandate reference, got '%s'", info.Reference)
	}
}

func TestFederal_FutureDebit(t *testing.T) {
	rs := NewFederalBank()
	msg := "Payment due for Spotify, INR 119.00 will be processed on 05/04/2025 via e-mandate"

	if _, ok := rs.Parse(msg, "XX-FEDBNK-S", 0); ok {
		t.Error("Expected future debit notice not to parse as a transaction")
	}

	info, ok := rs.TryParseMandate(msg)
	if !ok {
		t.Fatal("Expected future debit detection to succeed")
	}
	if !info.Amount.Equal(decimal.NewFromFloat(119.00)) {
		t.Errorf("Expected amount 119.00, got %s", info.Amount.String())
	}
	if info.Merchant != "Spotify" {
		t.Errorf("Expected merchant 'Spotify', got '%s'", info.Merchant)
	}
	if info.NextDeductionDate != "05/04/2025" {
		t.Errorf("Expected processing date '05/04/2025', got '%s'", info.NextDeductionDate)
	}
}

func TestFederal_RejectsOTP(t *testing.T) {
	rs := NewFederalBank()

	if _, ok := rs.Parse("OTP for your Federal Bank transaction is 123456", "XX-FEDBNK-S", 0); ok {
		t.Error("Expected OTP message to be rejected")
	}
}
