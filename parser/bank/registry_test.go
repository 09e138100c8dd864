package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRegistry_Complete(t *testing.T) {
	reg := NewRegistry()
	ruleSets := reg.RuleSets()

	assert.Len(t, ruleSets, 49)

	for _, rs := range ruleSets {
		assert.NotEmpty(t, rs.Bank, "every rule set needs a bank name")
		assert.NotEmpty(t, rs.Currency, "rule set %s needs a default currency", rs.Bank)
		assert.NotNil(t, rs.MatchSender, "rule set %s needs a sender predicate", rs.Bank)
	}

	seen := make(map[string]bool)
	for _, rs := range ruleSets {
		assert.False(t, seen[rs.Bank], "duplicate bank name %s", rs.Bank)
		seen[rs.Bank] = true
	}
}

func TestNewRegistry_DispatchOrder(t *testing.T) {
	reg := NewRegistry()

	// HDFC registers first; its broad sender patterns must not be shadowed.
	assert.Equal(t, "HDFC Bank", reg.RuleSets()[0].Bank)
}

func TestNewRegistry_Resolution(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		sender string
		bank   string
	}{
		{"VM-HDFCBK-S", "HDFC Bank"},
		{"JKBANK", "JK Bank"},
		{"MASHREQ", "Mashreq Bank"},
		{"ADCBALERT", "Abu Dhabi Commercial Bank"},
		{"ADFAB", "First Abu Dhabi Bank"},
	}

	for _, test := range tests {
		rs, ok := reg.Resolve(test.sender)
		if assert.True(t, ok, "sender %s should resolve", test.sender) {
			assert.Equal(t, test.bank, rs.Bank, "sender %s", test.sender)
		}
	}

	_, ok := reg.Resolve("RANDOM-SENDER")
	assert.False(t, ok, "unknown sender should not resolve")
}
