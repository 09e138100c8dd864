package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
)

// LazyPay is a buy-now-pay-later wallet: every transaction draws on the
// credit line.
var (
	lazypayOnMerchant  = regexp.MustCompile(`(?i)on\s+([^.]+?)\s+was\s+successful`)
	lazypayAmount      = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	lazypayTxn         = regexp.MustCompile(`(?i)txn\s+([A-Z0-9]+)`)
	lazypayCorpSuffix  = regexp.MustCompile(`(?i)\s*(Private|Pvt\.?|Ltd\.?|Limited|Inc\.?|LLC|LLP).*$`)
	lazypayTrailingNum = regexp.MustCompile(`\s*\d+$`)
)

// lazypayBrands normalizes long legal names to the brand people know.
var lazypayBrands = []struct {
	fragment string
	name     string
}{
	{"zepto marketplace", "Zepto"},
	{"innovative retail concepts", "BigBasket"},
	{"swiggy", "Swiggy"},
	{"zomato", "Zomato"},
}

// NewLazyPay builds the LazyPay rule set.
func NewLazyPay() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "LazyPay",
		Currency: "INR",
		MatchSender: senderMatcher(
			nil,
			[]string{"LZYPAY", "LAZYPAY"},
		),
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if containsAny(lower,
					"could not be processed", "due to a failure", "payment failed",
					"transaction failed", "unsuccessful") {
					return false, true
				}
				if containsAny(lower, "offer", "get cashback", "explore more") &&
					!strings.Contains(lower, "payment of") && !strings.Contains(lower, "was successful") {
					return false, true
				}
				return containsAny(lower,
					"payment of", "was successful",
					"against your lazypay statement", "thanks for your payment"), true
			},
		},
		Amount: []parser.AmountRule{
			reAmount(lazypayAmount),
		},
		Merchant: []parser.StringRule{
			lazypayMerchantRule,
			func(message string) (string, bool) {
				if strings.Contains(strings.ToLower(message), "against your lazypay statement") {
					return "LazyPay Repayment", true
				}
				return "", false
			},
		},
		Reference: []parser.StringRule{
			reString(lazypayTxn),
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				return parser.Credit, true
			},
		},
		PostProcess: func(tx *parser.Transaction) {
			if tx.Merchant == "" {
				tx.Merchant = "LazyPay"
			}
		},
	}
}

func lazypayMerchantRule(message string) (string, bool) {
	m := lazypayOnMerchant.FindStringSubmatch(message)
	if m == nil {
		return "", false
	}
	raw := strings.TrimSpace(m[1])
	lower := strings.ToLower(raw)
	for _, b := range lazypayBrands {
		if strings.Contains(lower, b.fragment) {
			return b.name, true
		}
	}
	merchant := strings.TrimSpace(lazypayTrailingNum.ReplaceAllString(
		lazypayCorpSuffix.ReplaceAllString(raw, ""), ""))
	if merchant == "" {
		return "", false
	}
	return merchant, true
}
