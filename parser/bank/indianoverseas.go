package bank

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
)

// Indian Overseas Bank. Typical format: "Your a/c no. XXXXX92 is credited by
// Rs.906.00 on 2025-08-28 17, from SIDDHANT SIN-7737219900@su(UPI Ref no
// 560699645381).Payer Remark - Paid via Supe -IOB"
var (
	iobCreditedBy   = regexp.MustCompile(`(?i)credited\s+by\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	iobDebitedBy    = regexp.MustCompile(`(?i)debited\s+by\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	iobCreditedWith = regexp.MustCompile(`(?i)credited\s+with\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	iobDebitedFor   = regexp.MustCompile(`(?i)debited\s+for\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	iobUPIPayer     = regexp.MustCompile(`(?i)from\s+([^(]+?)(?:\(UPI|$)`)
	iobPayerRemark  = regexp.MustCompile(`(?i)Payer\s+Remark\s*-\s*([^-]+)`)
	iobToFor        = regexp.MustCompile(`(?i)(?:to|for)\s+([^,.-]+)`)
	iobAcct         = regexp.MustCompile(`(?i)a/c\s+no\.\s+[X]*(\d{2,4})`)
	iobUPIRefParen  = regexp.MustCompile(`(?i)\(UPI\s+Ref\s+no\s+(\d+)\)`)
	iobUPIRef       = regexp.MustCompile(`(?i)UPI\s+Ref\s+no\s+(\d+)`)
)

// NewIndianOverseas builds the Indian Overseas Bank rule set.
func NewIndianOverseas() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "Indian Overseas Bank",
		Currency: "INR",
		MatchSender: senderMatcher(
			nil,
			[]string{"IOB", "IOBCHN"},
		),
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if containsAny(lower, "otp", "verification", "request", "failed") {
					return false, true
				}
				if containsAny(lower, "is credited by", "is debited by", "credited with", "debited for") {
					return true, true
				}
				return false, false
			},
		},
		Amount: []parser.AmountRule{
			reAmount(iobCreditedBy),
			reAmount(iobDebitedBy),
			reAmount(iobCreditedWith),
			reAmount(iobDebitedFor),
		},
		Merchant: []parser.StringRule{
			iobPayer,
			func(message string) (string, bool) {
				if m := iobPayerRemark.FindStringSubmatch(message); m != nil {
					remark := common.CleanMerchantName(strings.TrimSpace(m[1]))
					if common.IsValidMerchantName(remark) && !strings.EqualFold(remark, "Paid via Supe") {
						return remark, true
					}
				}
				return "", false
			},
			func(message string) (string, bool) {
				if !strings.Contains(strings.ToLower(message), "debited") {
					return "", false
				}
				if m := iobToFor.FindStringSubmatch(message); m != nil {
					merchant := common.CleanMerchantName(strings.TrimSpace(m[1]))
					if common.IsValidMerchantName(merchant) {
						return merchant, true
					}
				}
				return "", false
			},
		},
		Reference: []parser.StringRule{
			reString(iobUPIRefParen),
			reString(iobUPIRef),
		},
		Account: []parser.StringRule{
			func(message string) (string, bool) {
				if m := iobAcct.FindStringSubmatch(message); m != nil {
					digits := m[1]
					if len(digits) >= 4 {
						return digits[len(digits)-4:], true
					}
					return digits, true
				}
				return "", false
			},
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				switch {
				case strings.Contains(lower, "credited by"),
					strings.Contains(lower, "credited with"),
					strings.Contains(lower, "is credited"):
					return parser.Income, true
				case strings.Contains(lower, "debited by"),
					strings.Contains(lower, "debited for"),
					strings.Contains(lower, "is debited"):
					return parser.Expense, true
				}
				return 0, false
			},
		},
	}
}

// iobPayer handles the "from NAME-vpa@bank(UPI Ref" shape: when a VPA is
// present the merchant keeps both the name and the handle.
func iobPayer(message string) (string, bool) {
	m := iobUPIPayer.FindStringSubmatch(message)
	if m == nil {
		return "", false
	}
	payer := strings.TrimSpace(m[1])
	if strings.Contains(payer, "@") {
		parts := strings.SplitN(payer, "-", 2)
		if len(parts) == 2 {
			name := common.CleanMerchantName(strings.TrimSpace(parts[0]))
			upiID := strings.TrimSpace(parts[1])
			return fmt.Sprintf("UPI - %s (%s)", name, upiID), true
		}
		return "UPI - " + common.CleanMerchantName(payer), true
	}
	cleaned := common.CleanMerchantName(payer)
	if common.IsValidMerchantName(cleaned) {
		return cleaned, true
	}
	return "", false
}
