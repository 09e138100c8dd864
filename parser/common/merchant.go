package common

import (
	"regexp"
	"strings"
	"unicode"
)

const minMerchantNameLength = 2

// Connector words that the merchant patterns sometimes capture on their own.
var merchantStopwords = map[string]struct{}{
	"USING": {}, "VIA": {}, "THROUGH": {}, "BY": {}, "WITH": {},
	"FOR": {}, "TO": {}, "FROM": {}, "AT": {}, "THE": {},
}

// CleanMerchantName strips the noise suffixes that ride along with captured
// merchant text: parenthetical annotations, reference numbers, date and time
// tails, UPI identifiers, dangling dashes and corporate suffixes.
func CleanMerchantName(merchant string) string {
	m := merchant
	m = CleanTrailingParens.ReplaceAllString(m, "")
	m = CleanRefSuffix.ReplaceAllString(m, "")
	m = CleanDateSuffix.ReplaceAllString(m, "")
	m = CleanUPISuffix.ReplaceAllString(m, "")
	m = CleanTimeSuffix.ReplaceAllString(m, "")
	m = CleanTrailingDash.ReplaceAllString(m, "")
	m = CleanPvtLtd.ReplaceAllString(m, "")
	m = CleanLtd.ReplaceAllString(m, "")
	return strings.TrimSpace(m)
}

// IsValidMerchantName reports whether a cleaned capture is worth keeping.
// Rejects captures that are too short, letterless, stopwords, purely numeric,
// or UPI-style identifiers.
func IsValidMerchantName(name string) bool {
	if len(name) < minMerchantNameLength {
		return false
	}
	hasLetter := false
	allDigits := true
	for _, r := range name {
		if unicode.IsLetter(r) {
			hasLetter = true
		}
		if !unicode.IsDigit(r) {
			allDigits = false
		}
	}
	if !hasLetter || allDigits {
		return false
	}
	if _, stop := merchantStopwords[strings.ToUpper(name)]; stop {
		return false
	}
	return !strings.Contains(name, "@")
}

var digitsOnlyRegex = regexp.MustCompile(`^\d+$`)

// UPIMerchant maps a VPA handle to a display name. Well-known handles resolve
// to their brand; numeric handles are person-to-person transfers; anything
// else passes through untouched.
func UPIMerchant(vpa string) string {
	handle := strings.ToLower(strings.SplitN(vpa, "@", 2)[0])

	type brand struct {
		substr string
		name   string
	}
	brands := []brand{
		// Airlines
		{"indigo", "Indigo"}, {"spicejet", "SpiceJet"}, {"airasia", "AirAsia"},
		{"vistara", "Vistara"}, {"airindia", "Air India"},
		// Ride-hailing
		{"uber", "Uber"}, {"rapido", "Rapido"},
		// E-commerce
		{"amazon", "Amazon"}, {"flipkart", "Flipkart"}, {"myntra", "Myntra"},
		{"meesho", "Meesho"},
		// Payment apps
		{"paytm", "Paytm"}, {"bharatpe", "BharatPe"}, {"phonepe", "PhonePe"},
		{"googlepay", "Google Pay"}, {"gpay", "Google Pay"},
		// Food delivery
		{"swiggy", "Swiggy"}, {"zomato", "Zomato"},
		// Entertainment
		{"netflix", "Netflix"}, {"spotify", "Spotify"}, {"hotstar", "Disney+ Hotstar"},
		{"disney", "Disney+ Hotstar"}, {"prime", "Amazon Prime"},
		{"pvr", "PVR Inox"}, {"inox", "PVR Inox"}, {"bookmyshow", "BookMyShow"},
		// Telecom
		{"jio", "Jio"}, {"airtel", "Airtel"}, {"vodafone", "Vi"}, {"bsnl", "BSNL"},
		// Travel
		{"irctc", "IRCTC"}, {"redbus", "RedBus"}, {"makemytrip", "MakeMyTrip"},
		{"goibibo", "Goibibo"}, {"oyo", "OYO"}, {"airbnb", "Airbnb"},
		// Ola after the longer matches so "rapido"/"bancolombia" style overlaps win first
		{"ola", "Ola"},
	}

	// Payment gateway handles obscure the real merchant; surface the merchant
	// when the handle embeds it, otherwise fall back to a generic label.
	if strings.Contains(handle, "razorpay") || strings.Contains(handle, "razorp") || strings.Contains(handle, "rzp") {
		switch {
		case strings.Contains(handle, "swiggy"):
			return "Swiggy"
		case strings.Contains(handle, "zomato"):
			return "Zomato"
		case strings.Contains(handle, "pvr"), strings.Contains(handle, "inox"):
			return "PVR Inox"
		default:
			return "Online Payment"
		}
	}
	if strings.Contains(handle, "payu") || strings.Contains(handle, "billdesk") || strings.Contains(handle, "ccavenue") {
		return "Online Payment"
	}

	for _, b := range brands {
		if strings.Contains(handle, b.substr) {
			return b.name
		}
	}

	if digitsOnlyRegex.MatchString(handle) {
		return "Individual"
	}
	return strings.TrimSpace(vpa)
}
