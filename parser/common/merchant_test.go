package common

import "testing"

func TestCleanMerchantName_TrailingParens(t *testing.T) {
	result := CleanMerchantName("AMAZON PAY (Order 4432)")
	if result != "AMAZON PAY" {
		t.Errorf("Expected 'AMAZON PAY', got '%s'", result)
	}
}

func TestCleanMerchantName_RefSuffix(t *testing.T) {
	result := CleanMerchantName("Swiggy Ref No 544123456789")
	if result != "Swiggy" {
		t.Errorf("Expected 'Swiggy', got '%s'", result)
	}
}

func TestCleanMerchantName_DateSuffix(t *testing.T) {
	result := CleanMerchantName("BigBasket on 15-03-25")
	if result != "BigBasket" {
		t.Errorf("Expected 'BigBasket', got '%s'", result)
	}
}

func TestCleanMerchantName_CorporateSuffix(t *testing.T) {
	result := CleanMerchantName("RELIANCE RETAIL PVT LTD")
	if result != "RELIANCE RETAIL" {
		t.Errorf("Expected 'RELIANCE RETAIL', got '%s'", result)
	}
}

func TestCleanMerchantName_TrailingDash(t *testing.T) {
	result := CleanMerchantName("DMart -")
	if result != "DMart" {
		t.Errorf("Expected 'DMart', got '%s'", result)
	}
}

func TestIsValidMerchantName_Valid(t *testing.T) {
	if !IsValidMerchantName("Swiggy") {
		t.Error("Expected 'Swiggy' to be valid")
	}
}

func TestIsValidMerchantName_TooShort(t *testing.T) {
	if IsValidMerchantName("A") {
		t.Error("Expected single letter to be invalid")
	}
}

func TestIsValidMerchantName_AllDigits(t *testing.T) {
	if IsValidMerchantName("123456") {
		t.Error("Expected digits-only name to be invalid")
	}
}

func TestIsValidMerchantName_Stopword(t *testing.T) {
	if IsValidMerchantName("VIA") {
		t.Error("Expected connector word to be invalid")
	}
}

func TestIsValidMerchantName_VPA(t *testing.T) {
	if IsValidMerchantName("merchant@okaxis") {
		t.Error("Expected raw VPA to be invalid")
	}
}

func TestUPIMerchant_KnownBrand(t *testing.T) {
	result := UPIMerchant("swiggy.payments@icici")
	if result != "Swiggy" {
		t.Errorf("Expected 'Swiggy', got '%s'", result)
	}
}

func TestUPIMerchant_PaymentGateway(t *testing.T) {
	result := UPIMerchant("shop.rzp@hdfcbank")
	if result != "Online Payment" {
		t.Errorf("Expected 'Online Payment', got '%s'", result)
	}
}

func TestUPIMerchant_GatewayWithEmbeddedMerchant(t *testing.T) {
	result := UPIMerchant("zomato.razorpay@axisbank")
	if result != "Zomato" {
		t.Errorf("Expected 'Zomato', got '%s'", result)
	}
}

func TestUPIMerchant_NumericHandle(t *testing.T) {
	result := UPIMerchant("9876543210@ybl")
	if result != "Individual" {
		t.Errorf("Expected 'Individual', got '%s'", result)
	}
}

func TestUPIMerchant_Passthrough(t *testing.T) {
	result := UPIMerchant("localcafe@oksbi")
	if result != "localcafe@oksbi" {
		t.Errorf("Expected passthrough, got '%s'", result)
	}
}
