package parser

import "testing"

func TestIdentityKey_StableAcrossRedelivery(t *testing.T) {
	rs := genericRuleSet()
	msg := "Rs.250.00 debited from A/c XX1234 to Swiggy on 15/03/25 Ref 544123456789"

	first, ok := rs.Parse(msg, "TESTBK", 1700000000000)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	second, ok := rs.Parse(msg, "TESTBK", 1700000099000)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}

	if first.IdentityKey != second.IdentityKey {
		t.Errorf("Expected identical keys across redelivery, got '%s' and '%s'", first.IdentityKey, second.IdentityKey)
	}
}

func TestIdentityKey_DifferentReferences(t *testing.T) {
	rs := genericRuleSet()

	first, ok := rs.Parse("Rs.250.00 debited from A/c XX1234 to Swiggy on 15/03/25 Ref 544123456789", "TESTBK", 0)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	second, ok := rs.Parse("Rs.250.00 debited from A/c XX1234 to Swiggy on 15/03/25 Ref 544123456790", "TESTBK", 0)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}

	if first.IdentityKey == second.IdentityKey {
		t.Error("Expected distinct references to produce distinct keys")
	}
}

func TestIdentityKey_TimestampDistinguishesWithoutReference(t *testing.T) {
	rs := genericRuleSet()
	// No reference, no in-message date, no balance: delivery timestamp is the
	// only distinguishing signal left.
	msg := "Rs.99.00 debited from A/c XX1234 for recharge"

	first, ok := rs.Parse(msg, "TESTBK", 1700000000000)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	second, ok := rs.Parse(msg, "TESTBK", 1700086400000)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}

	if first.IdentityKey == second.IdentityKey {
		t.Error("Expected different delivery timestamps to produce distinct keys")
	}
}

func TestIdentityKey_MessageTimePreferredOverDelivery(t *testing.T) {
	rs := genericRuleSet()
	// In-message date but no reference: redelivery at a later timestamp must
	// still collapse to the same key.
	msg := "Rs.480.00 debited from A/c XX5678 for fuel on 15-03-2025 18:45:10"

	first, ok := rs.Parse(msg, "TESTBK", 1700000000000)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}
	second, ok := rs.Parse(msg, "TESTBK", 1800000000000)
	if !ok {
		t.Fatal("Expected parse to succeed")
	}

	if first.IdentityKey != second.IdentityKey {
		t.Error("Expected in-message time to anchor the key across redeliveries")
	}
}
