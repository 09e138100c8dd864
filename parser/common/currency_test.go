package common

import "testing"

func TestDetectCurrency_RupeeSymbol(t *testing.T) {
	code, ok := DetectCurrency("₹500 debited from your account")
	if !ok {
		t.Fatal("Expected detection to succeed")
	}
	if code != "INR" {
		t.Errorf("Expected 'INR', got '%s'", code)
	}
}

func TestDetectCurrency_DollarSymbol(t *testing.T) {
	code, ok := DetectCurrency("You spent $42.50 at STORE")
	if !ok {
		t.Fatal("Expected detection to succeed")
	}
	if code != "USD" {
		t.Errorf("Expected 'USD', got '%s'", code)
	}
}

func TestDetectCurrency_CodeBeforeAmount(t *testing.T) {
	code, ok := DetectCurrency("AED 150.00 was debited from your account")
	if !ok {
		t.Fatal("Expected detection to succeed")
	}
	if code != "AED" {
		t.Errorf("Expected 'AED', got '%s'", code)
	}
}

func TestDetectCurrency_CodeAfterAmount(t *testing.T) {
	code, ok := DetectCurrency("Transfer of 2,500.00 NPR completed")
	if !ok {
		t.Fatal("Expected detection to succeed")
	}
	if code != "NPR" {
		t.Errorf("Expected 'NPR', got '%s'", code)
	}
}

func TestDetectCurrency_MonthIsNotCurrency(t *testing.T) {
	if code, ok := DetectCurrency("Due by AUG 15"); ok {
		t.Errorf("Expected no detection, got '%s'", code)
	}
}

func TestDetectCurrency_NoSignal(t *testing.T) {
	if _, ok := DetectCurrency("Your balance update is available"); ok {
		t.Error("Expected no detection for message without currency evidence")
	}
}

func TestIsMonthAbbreviation(t *testing.T) {
	if !IsMonthAbbreviation("AUG") {
		t.Error("Expected 'AUG' to be a month")
	}
	if !IsMonthAbbreviation("sep") {
		t.Error("Expected 'sep' to be a month")
	}
	if IsMonthAbbreviation("AED") {
		t.Error("Expected 'AED' not to be a month")
	}
}
