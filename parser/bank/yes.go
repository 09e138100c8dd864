package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
)

// Yes Bank. Card UPI spends look like "INR 249.00 spent on YES BANK Card
// X1234 @UPI_MERCHANT NAME 12-08-2025 ... Avl Lmt INR 1,00,000.00".
var (
	yesSpent       = regexp.MustCompile(`(?i)INR\s+([0-9,]+(?:\.\d{2})?)\s+spent`)
	yesUPIMerchant = regexp.MustCompile(`(?i)@UPI_([^0-9]+?)(?:\s+\d{2}-\d{2}-\d{4})`)
	yesUPIAlt      = regexp.MustCompile(`(?i)@UPI_([A-Z\s]+)`)
	yesCard        = regexp.MustCompile(`(?i)YES\s+BANK\s+Card\s+[X]*(\d+)`)
	yesBLKCC       = regexp.MustCompile(`(?i)SMS\s+BLKCC\s+(\d{4})`)
	yesAvlLmt      = regexp.MustCompile(`(?i)Avl\s+Lmt\s+INR\s+([0-9,]+(?:\.\d{2})?)`)
	yesSpaces      = regexp.MustCompile(`\s+`)
)

// NewYes builds the Yes Bank rule set.
func NewYes() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "Yes Bank",
		Currency: "INR",
		MatchSender: senderMatcher(
			[]string{"YESBNK", "YESBANK"},
			nil,
			regexp.MustCompile(`^[A-Z]{2}-YESBNK-S$`),
			regexp.MustCompile(`^[A-Z]{2}-YESBNK$`),
		),
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if containsAny(lower, "otp", "verification", "one time password") {
					return false, true
				}
				if containsAny(lower, "offer", "cashback offer", "discount") {
					return false, true
				}
				if containsAny(lower, "spent on yes bank card", "debited", "credited",
					"withdrawn", "deposited", "avl lmt") {
					return true, true
				}
				return false, false
			},
		},
		Amount: []parser.AmountRule{
			reAmount(yesSpent),
		},
		Merchant: []parser.StringRule{
			yesMerchant(yesUPIMerchant, false),
			yesMerchant(yesUPIAlt, true),
		},
		Account: []parser.StringRule{
			last4Rule(yesCard),
			reString(yesBLKCC),
		},
		Limit: []parser.AmountRule{
			reAmount(yesAvlLmt),
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				if strings.Contains(lower, "spent") &&
					strings.Contains(lower, "yes bank card") &&
					strings.Contains(lower, "avl lmt") {
					return parser.Credit, true
				}
				switch {
				case strings.Contains(lower, "debited"),
					strings.Contains(lower, "withdrawn"),
					strings.Contains(lower, "spent"),
					strings.Contains(lower, "charged"),
					strings.Contains(lower, "paid"):
					return parser.Expense, true
				case strings.Contains(lower, "credited"),
					strings.Contains(lower, "deposited"),
					strings.Contains(lower, "received"),
					strings.Contains(lower, "refund"):
					return parser.Income, true
				}
				return 0, false
			},
		},
		Card: func(message, lower string) (bool, bool) {
			if strings.Contains(lower, "yes bank card") || strings.Contains(lower, "sms blkcc") {
				return true, true
			}
			return false, false
		},
	}
}

func yesMerchant(re *regexp.Regexp, validate bool) parser.StringRule {
	return func(message string) (string, bool) {
		m := re.FindStringSubmatch(message)
		if m == nil {
			return "", false
		}
		merchant := strings.TrimSpace(yesSpaces.ReplaceAllString(m[1], " "))
		if merchant == "" {
			return "", false
		}
		if validate && !common.IsValidMerchantName(merchant) {
			return "", false
		}
		return merchant, true
	}
}
