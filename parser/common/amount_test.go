package common

import "testing"

func TestCleanDecimal_SimpleNumber(t *testing.T) {
	result, err := CleanDecimal("123.45")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.String() != "123.45" {
		t.Errorf("Expected '123.45', got '%s'", result.String())
	}
}

func TestCleanDecimal_WithCurrencyPrefix(t *testing.T) {
	result, err := CleanDecimal("Rs. 1234.56")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.String() != "1234.56" {
		t.Errorf("Expected '1234.56', got '%s'", result.String())
	}
}

func TestCleanDecimal_EmptyString(t *testing.T) {
	result, err := CleanDecimal("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.IsZero() {
		t.Errorf("Expected zero, got '%s'", result.String())
	}
}

func TestParseAmount_WithCommas(t *testing.T) {
	result, ok := ParseAmount("1,23,456.78")
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if result.String() != "123456.78" {
		t.Errorf("Expected '123456.78', got '%s'", result.String())
	}
}

func TestParseAmount_Whitespace(t *testing.T) {
	result, ok := ParseAmount("  250.00 ")
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	if result.String() != "250" {
		t.Errorf("Expected '250', got '%s'", result.String())
	}
}

func TestParseAmount_Empty(t *testing.T) {
	if _, ok := ParseAmount(""); ok {
		t.Error("Expected parse to fail for empty string")
	}
}

func TestParseAmount_Garbage(t *testing.T) {
	if _, ok := ParseAmount("X,480.15"); ok {
		t.Error("Expected parse to fail for masked amount")
	}
}
