package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
)

// Jammu & Kashmir Bank. RTGS/NEFT settlement traffic to clearing
// corporations is common here, so those counterparties classify as
// investments rather than plain transfers.

var (
	jkIMPSFrom    = regexp.MustCompile(`(?i)Amt\s+received\s+from\s+([^h]+?)(?:\s+having\s+A/C|$)`)
	jkFromHaving  = regexp.MustCompile(`(?i)received\s+from\s+([^.\n]+?)(?:\s+having|\s+with|$)`)
	jkTowards     = regexp.MustCompile(`(?i)towards\s+([^.\n]+?)(?:\.\s*Avl|\.\s*Available|\.\s*To\s+dispute|$)`)
	jkTxnBy       = regexp.MustCompile(`(?i)(?:Debited|Credited)\s+by\s+INR\s+[\d,]+(?:\.\d{2})?\s+at\s+[\d:]+\s+by\s+([^.\n]+?)(?:\.|Available|$)`)
	jkSimpleBy    = regexp.MustCompile(`(?i)by\s+([^.\n]+?)(?:\.|Available|$)`)
	jkUPIFrom     = regexp.MustCompile(`(?i)via\s+UPI\s+from\s+([^.\n]+?)\s+on`)
	jkMTFR        = regexp.MustCompile(`(?i)mTFR/\d+/([^.\n]+?)(?:\.|A/C|$)`)
	jkVPA         = regexp.MustCompile(`(?i)to\s+([^@\s]+@[^\s]+)`)
	jkToViaUPI    = regexp.MustCompile(`(?i)to\s+([^.\n]+?)\s+via\s+UPI`)
	jkMTFRmerchnt = regexp.MustCompile(`(?i)mTFR/\d+/(.+)`)
)

func jkTransactionBy(message string) (string, bool) {
	m := jkTxnBy.FindStringSubmatch(message)
	if m == nil {
		return "", false
	}
	merchant := strings.TrimSpace(m[1])
	upper := strings.ToUpper(merchant)
	switch {
	case strings.Contains(upper, "CHRGS") || strings.Contains(upper, "CHARGES"):
		// Internal bank charges carry no counterparty.
		return "", true
	case strings.Contains(upper, "INDIAN CLEARING CORPO"):
		return "Indian Clearing Corporation", true
	case strings.Contains(upper, "CLEARING CORPO"):
		return "Clearing Corporation", true
	case strings.Contains(upper, "NSE CLEARING"):
		return "NSE Clearing", true
	case strings.Contains(upper, "BSE CLEARING"):
		return "BSE Clearing", true
	case strings.Contains(upper, "RTGS") && !strings.Contains(upper, "CLEARING"):
		return "RTGS Transfer", true
	case strings.Contains(upper, "NEFT"):
		return "NEFT Transfer", true
	case strings.Contains(upper, "IMPS"):
		return "IMPS Transfer", true
	case strings.Contains(upper, "MTFR"):
		if mm := jkMTFRmerchnt.FindStringSubmatch(merchant); mm != nil {
			return common.CleanMerchantName(strings.TrimSpace(mm[1])), true
		}
		return "Mobile Transfer", true
	case strings.Contains(upper, "ETFR"):
		return "Transfer", true
	case strings.Contains(upper, "TIN"):
		return "Tax Information Network", true
	}
	before, _, _ := strings.Cut(merchant, "/")
	return common.CleanMerchantName(before), true
}

func jkMerchant(message string) (string, bool) {
	lower := strings.ToLower(message)

	if strings.Contains(lower, "imps fund transfer") {
		for _, re := range []*regexp.Regexp{jkIMPSFrom, jkFromHaving} {
			if m := re.FindStringSubmatch(message); m != nil {
				if name := strings.TrimSpace(m[1]); name != "" {
					return common.CleanMerchantName(name), true
				}
			}
		}
		return "IMPS Transfer", true
	}

	// Truncated messages cut "Information Network" short.
	if strings.Contains(lower, "tin/tax informat") {
		return "Tax Information Network", true
	}
	if strings.Contains(lower, "atm recovery") {
		return "ATM Recovery Charge", true
	}

	if m := jkTowards.FindStringSubmatch(message); m != nil {
		merchant := strings.TrimSpace(m[1])
		if strings.Contains(strings.ToLower(merchant), "tin/tax informat") {
			return "Tax Information Network", true
		}
		return common.CleanMerchantName(merchant), true
	}

	if name, ok := jkTransactionBy(message); ok {
		return name, ok
	}

	if m := jkSimpleBy.FindStringSubmatch(message); m != nil {
		merchant := strings.TrimSpace(m[1])
		if !strings.HasPrefix(strings.ToUpper(merchant), "INR") {
			return common.CleanMerchantName(merchant), true
		}
	}

	if strings.Contains(lower, "via upi from") {
		if m := jkUPIFrom.FindStringSubmatch(message); m != nil {
			if name := strings.TrimSpace(m[1]); common.IsValidMerchantName(name) {
				return common.CleanMerchantName(name), true
			}
		}
	}

	if m := jkMTFR.FindStringSubmatch(message); m != nil {
		if name := strings.TrimSpace(m[1]); common.IsValidMerchantName(name) {
			return common.CleanMerchantName(name), true
		}
	}

	if strings.Contains(lower, "via upi") {
		if m := jkVPA.FindStringSubmatch(message); m != nil {
			handle, _, _ := strings.Cut(strings.TrimSpace(m[1]), "@")
			if handle != "" && handle != "upi" {
				return common.CleanMerchantName(handle), true
			}
		}
		if m := jkToViaUPI.FindStringSubmatch(message); m != nil {
			if name := strings.TrimSpace(m[1]); common.IsValidMerchantName(name) {
				return common.CleanMerchantName(name), true
			}
		}
		return "UPI", true
	}

	if strings.Contains(lower, "atm") || strings.Contains(lower, "withdrawn") {
		return "ATM", true
	}

	return "", false
}

func NewJK() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "JK Bank",
		Currency: "INR",

		MatchSender: senderMatcher(
			[]string{"JKBANK", "JKB", "JKBANKL", "JKBNK"},
			nil,
			regexp.MustCompile(`^[A-Z]{2}-JKBANK.*$`),
			regexp.MustCompile(`^[A-Z]{2}-JKB.*$`),
			regexp.MustCompile(`^[A-Z]{2}-JKBNK.*$`),
			regexp.MustCompile(`^JKBANK-[A-Z]+$`),
			regexp.MustCompile(`^JKB-[A-Z]+$`),
		),

		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if containsAny(lower, "otp", "one time password", "verification code") {
					return false, true
				}
				if containsAny(lower, "offer", "discount", "cashback offer", "win ") {
					return false, true
				}
				if containsAny(lower, "has requested", "payment request", "collect request", "requesting payment") {
					return false, true
				}
				// Settlement confirmations duplicate the original debit alert.
				for _, txn := range []string{"your rtgs txn", "your neft txn", "your imps txn"} {
					if strings.Contains(lower, txn) && strings.Contains(lower, "has been credited") {
						return false, true
					}
				}
				ok := containsAny(lower,
					"has been debited", "has been credited",
					"debited", "credited", "withdrawn", "deposited",
					"spent", "received", "transferred", "paid",
				)
				return ok, true
			},
		},

		Merchant: []parser.StringRule{jkMerchant},

		Reference: []parser.StringRule{
			reString(regexp.MustCompile(`(?i)RRN\s+No\.?\s*(\d+)`)),
			reString(regexp.MustCompile(`(?i)UPI\s+Ref[:\s]+(\d+)`)),
			reString(regexp.MustCompile(`(?i)txn\s+Ref[:\s]+([A-Z0-9]+)`)),
			reString(regexp.MustCompile(`(?i)Reference[:\s]+([A-Z0-9]+)`)),
			reString(regexp.MustCompile(`(?i)Ref\s+No[:\s]+([A-Z0-9]+)`)),
			reString(regexp.MustCompile(`RTGS-([A-Z0-9]+)`)),
			reString(regexp.MustCompile(`NEFT-([A-Z0-9]+)`)),
			reString(regexp.MustCompile(`IMPS-([A-Z0-9]+)`)),
			reString(regexp.MustCompile(`UTR\s+([A-Z0-9]+)`)),
			reString(regexp.MustCompile(`TRN\s+([A-Z0-9]+)`)),
			reString(regexp.MustCompile(`by\s+(CHRGS/[^.]+)`)),
			reString(regexp.MustCompile(`by\s+(eTFR/[^.]+)`)),
			reString(regexp.MustCompile(`by\s+(mTFR/\d+/[^.]+)`)),
		},

		Account: []parser.StringRule{
			reString(regexp.MustCompile(`(?i)Your\s+A/c\s+X+(\d{4})`)),
			reString(regexp.MustCompile(`(?i)JK\s+Bank\s+A/c\s+no\.\s+X+(\d{4})`)),
			reString(regexp.MustCompile(`(?i)A/c\s+X*(\d{4})`)),
			reString(regexp.MustCompile(`(?i)Account\s+X+(\d{4})`)),
			reString(regexp.MustCompile(`(?i)A/c\s+ending\s+(\d{4})`)),
		},

		Balance: []parser.AmountRule{
			reAmount(regexp.MustCompile(`(?i)Available\s+Bal\s+is\s+INR\s*([0-9,]+(?:\.\d{2})?)\s*(?:Cr|Dr)?`)),
			reAmount(regexp.MustCompile(`(?i)A/C\s+Bal\s+is\s+INR\s*([0-9,]+(?:\.\d{2})?)\s*(?:Cr|Dr)?`)),
			reAmount(regexp.MustCompile(`(?i)Avl\s+Bal[:\s]+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)),
			reAmount(regexp.MustCompile(`(?i)Balance[:\s]+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)),
			reAmount(regexp.MustCompile(`(?i)Bal\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)),
		},

		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				// Clearing corporation settlements move money in and out of
				// demat positions.
				if containsAny(lower,
					"clearing corpo", "indian clearing", "nse clearing",
					"bse clearing", "iccl", "nsccl",
				) {
					if strings.Contains(lower, "credited") || strings.Contains(lower, "debited") {
						return parser.Investment, true
					}
				}
				switch {
				case strings.Contains(lower, "has been debited"):
					return parser.Expense, true
				case strings.Contains(lower, "has been credited"):
					return parser.Income, true
				case strings.Contains(lower, "debited"),
					strings.Contains(lower, "withdrawn"),
					strings.Contains(lower, "spent"),
					strings.Contains(lower, "charged"),
					strings.Contains(lower, "paid"),
					strings.Contains(lower, "purchase"),
					strings.Contains(lower, "transferred"):
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
