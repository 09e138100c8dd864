package common

import (
	"testing"
	"time"
)

func TestParseMessageTime_FullDateTime(t *testing.T) {
	result, ok := ParseMessageTime("credited on 15-03-2025 14:30:25 to your account")
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	expected := time.Date(2025, 3, 15, 14, 30, 25, 0, time.UTC)
	if !result.Equal(expected) {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestParseMessageTime_ShortDateWithClock(t *testing.T) {
	result, ok := ParseMessageTime("debited on 15-03-25, 09:12:44")
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	expected := time.Date(2025, 3, 15, 9, 12, 44, 0, time.UTC)
	if !result.Equal(expected) {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestParseMessageTime_SlashDate(t *testing.T) {
	result, ok := ParseMessageTime("On 15/03/25 your account was debited")
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	expected := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	if !result.Equal(expected) {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestParseMessageTime_MonthAbbrevDate(t *testing.T) {
	result, ok := ParseMessageTime("transaction on 5-Aug-25 at your branch")
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	expected := time.Date(2025, 8, 5, 0, 0, 0, 0, time.UTC)
	if !result.Equal(expected) {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestParseMessageTime_NoDate(t *testing.T) {
	if _, ok := ParseMessageTime("Your account was debited for groceries"); ok {
		t.Error("Expected parse to fail when no date is present")
	}
}
