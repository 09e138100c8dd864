package parser

import "strings"

// Investment evidence outranks the debit/credit verb: a debit to a clearing
// corporation is capital moving into the market, not spend.
var investmentKeywords = []string{
	// Clearing corporations
	"iccl",
	"indian clearing corporation",
	"nsccl",
	"nse clearing",
	"clearing corporation",

	// Auto-pay rails (mandate/UMRN wording is excluded so subscriptions
	// don't trip this)
	"nach",
	"ach",
	"ecs",

	// Broker platforms
	"groww",
	"zerodha",
	"upstox",
	"kite",
	"kuvera",
	"paytm money",
	"etmoney",
	"coin by zerodha",
	"smallcase",
	"angel one",
	"angel broking",
	"5paisa",
	"icici securities",
	"icici direct",
	"hdfc securities",
	"kotak securities",
	"motilal oswal",
	"sharekhan",
	"edelweiss",
	"axis direct",
	"sbi securities",

	// Instrument types
	"mutual fund",
	"sip",
	"elss",
	"ipo",
	"folio",
	"demat",
	"stockbroker",

	// Exchanges and depositories
	"nse",
	"bse",
	"cdsl",
	"nsdl",
}

// IsInvestmentMessage reports whether the lowercased message carries
// capital-market evidence.
func IsInvestmentMessage(lower string) bool {
	for _, kw := range investmentKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ClassifyType applies the generic verb table. Institution rules have already
// had their chance; investment detection has already run. First match wins,
// no match fails the parse.
func ClassifyType(lower string) (TransactionType, bool) {
	switch {
	case strings.Contains(lower, "debited"),
		strings.Contains(lower, "withdrawn"),
		strings.Contains(lower, "spent"),
		strings.Contains(lower, "charged"),
		strings.Contains(lower, "paid"),
		strings.Contains(lower, "purchase"),
		strings.Contains(lower, "deducted"):
		return Expense, true
	case strings.Contains(lower, "credited"),
		strings.Contains(lower, "deposited"),
		strings.Contains(lower, "received"),
		strings.Contains(lower, "refund"):
		return Income, true
	case strings.Contains(lower, "cashback") && !strings.Contains(lower, "earn cashback"):
		return Income, true
	}
	return 0, false
}
