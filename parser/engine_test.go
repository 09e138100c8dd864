package parser

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

// A minimal rule set that leans entirely on the generic fallbacks.
func genericRuleSet() *RuleSet {
	return &RuleSet{
		Bank:        "Test Bank",
		Currency:    "INR",
		MatchSender: func(sender string) bool { return sender == "TESTBK" },
	}
}

func TestParse_GenericDebit(t *testing.T) {
	rs := genericRuleSet()

	tx, ok := rs.Parse("Rs.250.00 debited from A/c XX1234 to Swiggy on 15/03/25 Ref 544123456789", "TESTBK", 1700000000000)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if !tx.Amount.Equal(decimal.NewFromFloat(250.00)) {
		t.Errorf("Expected amount 250.00, got %s", tx.Amount.String())
	}
	if tx.Type != Expense {
		t.Errorf("Expected Expense, got %s", tx.TypeName)
	}
	if tx.Merchant != "Swiggy" {
		t.Errorf("Expected merchant 'Swiggy', got '%s'", tx.Merchant)
	}
	if tx.Reference != "544123456789" {
		t.Errorf("Expected reference '544123456789', got '%s'", tx.Reference)
	}
	if tx.AccountLast4 != "1234" {
		t.Errorf("Expected account '1234', got '%s'", tx.AccountLast4)
	}
	if tx.Bank != "Test Bank" {
		t.Errorf("Expected bank 'Test Bank', got '%s'", tx.Bank)
	}
	if tx.Currency != "INR" {
		t.Errorf("Expected currency 'INR', got '%s'", tx.Currency)
	}
	if tx.IsFromCard {
		t.Error("Expected account debit, not card")
	}
	if tx.IdentityKey == "" {
		t.Error("Expected identity key to be set")
	}
}

func TestParse_GenericCredit(t *testing.T) {
	rs := genericRuleSet()

	tx, ok := rs.Parse("Rs.5,000.00 credited to A/c XX9876 from JOHN DOE on 15-03-2025 10:30:00", "TESTBK", 1700000000000)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if tx.Type != Income {
		t.Errorf("Expected Income, got %s", tx.TypeName)
	}
	if !tx.Amount.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("Expected amount 5000, got %s", tx.Amount.String())
	}
}

func TestParse_RejectsOTP(t *testing.T) {
	rs := genericRuleSet()

	if _, ok := rs.Parse("Your OTP for transaction of Rs.500 is 123456. Do not share.", "TESTBK", 0); ok {
		t.Error("Expected OTP message to be rejected")
	}
}

func TestParse_RejectsPaymentRequest(t *testing.T) {
	rs := genericRuleSet()

	if _, ok := rs.Parse("JOHN DOE has requested Rs.500.00 from you. Approve in app.", "TESTBK", 0); ok {
		t.Error("Expected payment request to be rejected")
	}
}

func TestParse_RejectsPromo(t *testing.T) {
	rs := genericRuleSet()

	if _, ok := rs.Parse("Special offer! Get Rs.100 cashback offer on your next recharge. Amount will be credited.", "TESTBK", 0); ok {
		t.Error("Expected promotional message to be rejected")
	}
}

func TestParse_RejectsDueReminder(t *testing.T) {
	rs := genericRuleSet()

	if _, ok := rs.Parse("Rs.4,500.00 min amount due on your card. Pls pay to avoid charges. Amount paid already? Ignore.", "TESTBK", 0); ok {
		t.Error("Expected due reminder to be rejected")
	}
}

func TestParse_NoAmountFails(t *testing.T) {
	rs := genericRuleSet()

	if _, ok := rs.Parse("Your account has been credited. Thank you for banking with us.", "TESTBK", 0); ok {
		t.Error("Expected parse to fail without an amount")
	}
}

func TestParse_InstitutionGateWinsOverBase(t *testing.T) {
	rs := genericRuleSet()
	rs.Gate = []GateRule{
		func(message, lower string) (bool, bool) {
			if strings.Contains(lower, "settlement advice") {
				return false, true
			}
			return false, false
		},
	}

	// Contains "credited" so the base gate would accept; institution rejects.
	if _, ok := rs.Parse("Settlement advice: Rs.900.00 credited to pool account", "TESTBK", 0); ok {
		t.Error("Expected institution gate rejection to win")
	}

	// Undecided messages still fall through to the base gate.
	if _, ok := rs.Parse("Rs.900.00 credited to A/c XX4221", "TESTBK", 0); !ok {
		t.Error("Expected undecided message to pass the base gate")
	}
}

func TestParse_InstitutionAmountRunsFirst(t *testing.T) {
	rs := genericRuleSet()
	rs.Amount = []AmountRule{
		func(message string) (decimal.Decimal, bool) {
			return decimal.NewFromInt(42), true
		},
	}

	tx, ok := rs.Parse("Rs.250.00 debited from A/c XX1234", "TESTBK", 0)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if !tx.Amount.Equal(decimal.NewFromInt(42)) {
		t.Errorf("Expected institution rule to win, got %s", tx.Amount.String())
	}
}

func TestParse_MandateShortCircuits(t *testing.T) {
	rs := genericRuleSet()
	rs.Mandates = []MandateRule{
		func(message string) (*MandateInfo, bool) {
			if strings.Contains(message, "mandate") {
				return &MandateInfo{Merchant: "NETFLIX", DateFormat: "dd/MM/yy"}, true
			}
			return nil, false
		},
	}

	msg := "Rs.649.00 mandate set, will be debited on 01/04/25 for NETFLIX"
	if _, ok := rs.Parse(msg, "TESTBK", 0); ok {
		t.Error("Expected mandate message not to produce a transaction")
	}

	info, ok := rs.TryParseMandate(msg)
	if !ok {
		t.Fatal("Expected mandate detection to succeed")
	}
	if info.Merchant != "NETFLIX" {
		t.Errorf("Expected merchant 'NETFLIX', got '%s'", info.Merchant)
	}
}

func TestParse_CardDetection(t *testing.T) {
	rs := genericRuleSet()

	tx, ok := rs.Parse("Rs.1,200.00 spent on Credit Card XX4412 at DECATHLON on 15/03/25", "TESTBK", 0)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if !tx.IsFromCard {
		t.Error("Expected card spend to be flagged")
	}
	if tx.Type != Expense {
		t.Errorf("Expected Expense, got %s", tx.TypeName)
	}
}

func TestParse_CardHookOverridesDetector(t *testing.T) {
	rs := genericRuleSet()
	rs.Card = func(message, lower string) (bool, bool) {
		return true, true
	}

	tx, ok := rs.Parse("Rs.300.00 debited from A/c XX1234", "TESTBK", 0)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if !tx.IsFromCard {
		t.Error("Expected card hook to override the shared detector")
	}
}

func TestParse_InvestmentOutranksVerb(t *testing.T) {
	rs := genericRuleSet()

	tx, ok := rs.Parse("Rs.10,000.00 debited from A/c XX1234 towards Indian Clearing Corporation", "TESTBK", 0)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if tx.Type != Investment {
		t.Errorf("Expected Investment, got %s", tx.TypeName)
	}
}

func TestParse_CreditTypeGetsLimit(t *testing.T) {
	rs := genericRuleSet()
	rs.Type = []TypeRule{
		func(lower string) (TransactionType, bool) {
			if strings.Contains(lower, "credit card") {
				return Credit, true
			}
			return 0, false
		},
	}

	tx, ok := rs.Parse("Rs.1,500.00 spent on Credit Card XX8821. Available limit Rs.48,500.00", "TESTBK", 0)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if tx.Type != Credit {
		t.Errorf("Expected Credit, got %s", tx.TypeName)
	}
	if tx.AvailableLimit == nil {
		t.Fatal("Expected available limit to be extracted")
	}
	if !tx.AvailableLimit.Equal(decimal.NewFromFloat(48500.00)) {
		t.Errorf("Expected limit 48500.00, got %s", tx.AvailableLimit.String())
	}
}

func TestParse_NormalizeRunsFirst(t *testing.T) {
	rs := genericRuleSet()
	rs.Normalize = func(message string) string {
		return strings.ReplaceAll(message, "INR.", "Rs.")
	}

	tx, ok := rs.Parse("INR.850.00 debited from A/c XX3344", "TESTBK", 0)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if !tx.Amount.Equal(decimal.NewFromFloat(850.00)) {
		t.Errorf("Expected amount 850.00, got %s", tx.Amount.String())
	}
}

func TestParse_PostProcessRunsBeforeIdentity(t *testing.T) {
	rs := genericRuleSet()
	rs.PostProcess = func(tx *Transaction) {
		tx.Merchant = "OVERRIDDEN"
	}

	tx, ok := rs.Parse("Rs.100.00 debited from A/c XX1234 to Swiggy on 15/03/25", "TESTBK", 0)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if tx.Merchant != "OVERRIDDEN" {
		t.Errorf("Expected post-process override, got '%s'", tx.Merchant)
	}
}

func TestRegistry_Resolve(t *testing.T) {
	first := genericRuleSet()
	second := &RuleSet{
		Bank:        "Other Bank",
		Currency:    "USD",
		MatchSender: func(sender string) bool { return strings.Contains(sender, "TEST") },
	}
	reg := NewRegistry(first, second)

	rs, ok := reg.Resolve("TESTBK")
	if !ok {
		t.Fatal("Expected resolution to succeed")
	}
	if rs.Bank != "Test Bank" {
		t.Errorf("Expected first registered rule set to win, got '%s'", rs.Bank)
	}

	if _, ok := reg.Resolve("UNKNOWN"); ok {
		t.Error("Expected unknown sender to resolve to nothing")
	}
}

func TestRegistry_ParseUnknownSender(t *testing.T) {
	reg := NewRegistry(genericRuleSet())

	if _, ok := reg.Parse("Rs.100.00 debited", "NOBODY", 0); ok {
		t.Error("Expected unknown sender to yield nothing")
	}
}
