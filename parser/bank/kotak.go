package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
)

// Kotak Bank. UPI alerts name the counterparty by VPA: "Sent Rs.X from Kotak
// Bank AC XXXX to merchant@bank on ...".
var (
	kotakToVPA   = regexp.MustCompile(`(?i)to\s+([^\s]+@[^\s]+)\s+on`)
	kotakFromVPA = regexp.MustCompile(`(?i)from\s+([^\s]+@[^\s]+)\s+on`)
	kotakUPIRef  = regexp.MustCompile(`(?i)UPI\s+Ref\s+([0-9]+)`)
	kotakAcct    = regexp.MustCompile(`(?i)AC\s+[X*]*([0-9]{4})(?:\s|,|\.)`)
)

// kotakHandleNames maps UPI handles to the app or bank behind them, used when
// the VPA local part is just a number with separators.
var kotakHandleNames = map[string]string{
	"okaxis":      "Axis Bank",
	"okbizaxis":   "Axis Bank Business",
	"okhdfcbank":  "HDFC Bank",
	"okicici":     "ICICI Bank",
	"oksbi":       "State Bank of India",
	"paytm":       "Paytm",
	"ybl":         "PhonePe",
	"amazonpay":   "Amazon Pay",
	"googlepay":   "Google Pay",
	"airtel":      "Airtel Money",
	"freecharge":  "Freecharge",
	"mobikwik":    "MobiKwik",
	"jupiteraxis": "Jupiter",
	"razorpay":    "Razorpay",
	"bharatpe":    "BharatPe",
}

// NewKotak builds the Kotak Bank rule set.
func NewKotak() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "Kotak Bank",
		Currency: "INR",
		MatchSender: senderMatcher(
			nil,
			nil,
			regexp.MustCompile(`^[A-Z]{2}-KOTAKB-[ST]$`),
		),
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if containsAny(lower, "otp", "one time password", "verification code",
					"offer", "discount", "cashback offer", "win ") {
					return false, true
				}
				if containsAny(lower, "has requested", "payment request", "collect request",
					"requesting payment", "requests rs", "ignore if already paid") {
					return false, true
				}
				if containsAny(lower, "sent", "debited", "credited", "withdrawn",
					"deposited", "spent", "received", "transferred", "paid") {
					return true, true
				}
				return false, true
			},
		},
		Merchant: []parser.StringRule{
			kotakVPAMerchant,
		},
		Reference: []parser.StringRule{
			reString(kotakUPIRef),
		},
		Account: []parser.StringRule{
			reString(kotakAcct),
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				switch {
				case strings.Contains(lower, "sent") && strings.Contains(lower, "from kotak"):
					return parser.Expense, true
				case strings.Contains(lower, "debited"),
					strings.Contains(lower, "withdrawn"),
					strings.Contains(lower, "spent"),
					strings.Contains(lower, "charged"),
					strings.Contains(lower, "paid"),
					strings.Contains(lower, "purchase"):
					return parser.Expense, true
				case strings.Contains(lower, "credited"),
					strings.Contains(lower, "deposited"),
					strings.Contains(lower, "received"),
					strings.Contains(lower, "refund"):
					return parser.Income, true
				case strings.Contains(lower, "cashback") && !strings.Contains(lower, "earn cashback"):
					return parser.Income, true
				}
				return 0, false
			},
		},
	}
}

func kotakVPAMerchant(message string) (string, bool) {
	m := kotakToVPA.FindStringSubmatch(message)
	if m == nil {
		m = kotakFromVPA.FindStringSubmatch(message)
	}
	if m == nil {
		return "", false
	}
	upiID := strings.TrimSpace(m[1])

	if len(upiID) > 3 && strings.EqualFold(upiID[:3], "upi") {
		name := upiID[3:]
		if i := strings.Index(name, "@"); i >= 0 {
			name = name[:i]
		}
		if name != "" {
			return common.CleanMerchantName(name), true
		}
		return "", false
	}

	name := upiID
	bankCode := ""
	if i := strings.Index(upiID, "@"); i >= 0 {
		name = upiID[:i]
		bankCode = upiID[i+1:]
	}
	if name == "" {
		return "", false
	}

	allDigits := true
	digitsAndSeps := true
	for _, r := range name {
		if r < '0' || r > '9' {
			allDigits = false
			if r != '-' && r != '_' {
				digitsAndSeps = false
			}
		}
	}
	switch {
	case !allDigits && !digitsAndSeps:
		return common.CleanMerchantName(name), true
	case !allDigits && digitsAndSeps:
		// Numeric handle with separators: name the app behind the VPA.
		if app, ok := kotakHandleNames[strings.ToLower(bankCode)]; ok {
			return app, true
		}
		return name, true
	default:
		// Person-to-person transfer keyed by phone number: keep the number so
		// the record says who was paid, not which app carried it.
		return name, true
	}
}
