package parser

import "testing"

func TestClassifyType_ExpenseVerbs(t *testing.T) {
	for _, msg := range []string{
		"rs.500 debited from your account",
		"rs.200 withdrawn at atm",
		"you spent rs.150 at store",
		"rs.99 deducted for subscription",
	} {
		tt, ok := ClassifyType(msg)
		if !ok {
			t.Errorf("Expected classification for '%s'", msg)
			continue
		}
		if tt != Expense {
			t.Errorf("Expected Expense for '%s', got %s", msg, tt)
		}
	}
}

func TestClassifyType_IncomeVerbs(t *testing.T) {
	for _, msg := range []string{
		"rs.5000 credited to your account",
		"rs.1000 deposited in your account",
		"refund of rs.250 processed",
	} {
		tt, ok := ClassifyType(msg)
		if !ok {
			t.Errorf("Expected classification for '%s'", msg)
			continue
		}
		if tt != Income {
			t.Errorf("Expected Income for '%s', got %s", msg, tt)
		}
	}
}

func TestClassifyType_CashbackEarnedIsIncome(t *testing.T) {
	tt, ok := ClassifyType("cashback of rs.50 added to your wallet")
	if !ok {
		t.Fatal("Expected classification")
	}
	if tt != Income {
		t.Errorf("Expected Income, got %s", tt)
	}
}

func TestClassifyType_NoVerbFails(t *testing.T) {
	if _, ok := ClassifyType("your statement is ready for download"); ok {
		t.Error("Expected classification to fail without a verb")
	}
}

func TestIsInvestmentMessage(t *testing.T) {
	positives := []string{
		"rs.10000 debited towards indian clearing corporation",
		"your sip of rs.5000 processed via groww",
		"amount debited for nse settlement",
	}
	for _, msg := range positives {
		if !IsInvestmentMessage(msg) {
			t.Errorf("Expected investment evidence in '%s'", msg)
		}
	}

	if IsInvestmentMessage("rs.500 debited for groceries at dmart") {
		t.Error("Expected no investment evidence in a grocery spend")
	}
}
