package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
)

// Utkarsh Small Finance Bank SuperCard. A credit card product, so every
// transaction rides the credit line.
var (
	utkarshUPIMerchant = regexp.MustCompile(`(?i)for\s+UPI\s*[-–]\s*([^\s.]+)`)
	utkarshForMerchant = regexp.MustCompile(`(?i)for\s+([^0-9][^\s]+?)(?:\s+on\s+|\s+at\s+|$)`)
	utkarshRefDigits   = regexp.MustCompile(`^[x0-9]+$`)
	utkarshCard        = regexp.MustCompile(`(?i)SuperCard\s+[xX*]*(\d{4})`)
	utkarshAccount     = regexp.MustCompile(`(?i)(?:account|a/c)\s+[xX*]*(\d{4})`)
)

// NewUtkarsh builds the Utkarsh Bank rule set.
func NewUtkarsh() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "Utkarsh Bank",
		Currency: "INR",
		MatchSender: senderMatcher(
			nil,
			[]string{"UTKSPR", "UTKARSH", "UTKSFB"},
		),
		Merchant: []parser.StringRule{
			func(message string) (string, bool) {
				if m := utkarshUPIMerchant.FindStringSubmatch(message); m != nil {
					merchant := strings.TrimSpace(m[1])
					// A bare reference number is not a merchant.
					if !utkarshRefDigits.MatchString(merchant) {
						return common.CleanMerchantName(merchant), true
					}
				}
				return "", false
			},
			func(message string) (string, bool) {
				if m := utkarshForMerchant.FindStringSubmatch(message); m != nil {
					merchant := strings.TrimSpace(m[1])
					if !strings.EqualFold(merchant, "UPI") && !strings.EqualFold(merchant, "INR") {
						return common.CleanMerchantName(merchant), true
					}
				}
				return "", false
			},
			func(message string) (string, bool) {
				lower := strings.ToLower(message)
				if strings.Contains(lower, "supercard") && strings.Contains(lower, "upi") {
					return "UPI Payment", true
				}
				return "", false
			},
		},
		Account: []parser.StringRule{
			reString(utkarshCard),
			reString(utkarshAccount),
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				return parser.Credit, true
			},
		},
		PostProcess: func(tx *parser.Transaction) {
			if tx.Merchant == "" {
				tx.Merchant = "Utkarsh SuperCard"
			}
		},
	}
}
