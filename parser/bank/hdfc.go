package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
)

// HDFC Bank sends a wide spread of formats: standard debit/credit alerts,
// UPI with VPA details, salary credits, card spends with BLOCK CC/DC
// instructions, E-Mandate notices, and plain balance updates.
var (
	hdfcSalary       = regexp.MustCompile(`(?i)for\s+[^-]+-[^-]+-[^-]+\s+[A-Z]+\s+SALARY-([^.\n]+)`)
	hdfcSimpleSalary = regexp.MustCompile(`(?i)SALARY[- ]([^.\n]+?)(?:\s+Info|$)`)
	hdfcInfo         = regexp.MustCompile(`(?i)Info:\s*(?:UPI/)?([^/.\n]+?)(?:/|$)`)
	hdfcVPAWithName  = regexp.MustCompile(`(?i)VPA\s+[^@\s]+@[^\s]+\s*\(([^)]+)\)`)
	hdfcVPA          = regexp.MustCompile(`(?i)VPA\s+([^@\s]+)@`)
	hdfcFromVPA      = regexp.MustCompile(`(?i)from\s+VPA\s*([^@\s]+)@[^\s]+\s*\(UPI\s+\d+\)`)
	hdfcSpentAt      = regexp.MustCompile(`(?i)at\s+([^.\n]+?)\s+on\s+\d{2}`)
	hdfcDebitFor     = regexp.MustCompile(`(?i)debited\s+for\s+([^.\n]+?)\s+on\s+\d{2}`)
	hdfcMandateTo    = regexp.MustCompile(`(?i)To\s+([^\n]+?)\s*(?:\n|\d{2}/\d{2})`)
	hdfcATMLocation  = regexp.MustCompile(`(?i)At\s+\+?([^O]+?)\s+On`)
	hdfcCardAt       = regexp.MustCompile(`(?i)at\s+([^@\s]+(?:@[^\s]+)?(?:\s+[^\s]+)?)(?:\s+by\s+|\s+on\s+|$)`)
	hdfcTowards      = regexp.MustCompile(`(?i)towards\s+([^\n]+?)(?:\s+UMRN|\s+ID:|\s+Alert:|$)`)
	hdfcForColon     = regexp.MustCompile(`(?i)For:\s+([^\n]+?)(?:\s+From|\s+Via|$)`)
	hdfcForDebit     = regexp.MustCompile(`(?i)for\s+([^\n]+?)(?:\s+ID:|\s+Act:|$)`)

	hdfcRefSimple = regexp.MustCompile(`(?i)Ref\s+(\d{9,12})`)
	hdfcUPIRefNo  = regexp.MustCompile(`(?i)UPI\s+Ref\s+No\s+(\d{12})`)
	hdfcRefNo     = regexp.MustCompile(`(?i)Ref\s+No\.?\s+([A-Z0-9]+)`)
	hdfcRefEnd    = regexp.MustCompile(`(?i)(?:Ref|Reference)[:.\s]+([A-Z0-9]{6,})(?:\s*$|\s*Not\s+You)`)

	hdfcCardX          = regexp.MustCompile(`(?i)Card\s+x(\d{4})`)
	hdfcBlockDC        = regexp.MustCompile(`(?i)BLOCK\s+DC\s+(\d{4})`)
	hdfcBankAccount    = regexp.MustCompile(`(?i)HDFC\s+Bank\s+([X*]*\d+)`)
	hdfcAcctDeposited  = regexp.MustCompile(`(?i)deposited\s+in\s+(?:HDFC\s+Bank\s+)?A/c\s+(?:XX+)?(\d+)`)
	hdfcAcctFrom       = regexp.MustCompile(`(?i)from\s+(?:HDFC\s+Bank\s+)?A/c\s+(?:XX+)?(\d+)`)
	hdfcAcctSimple     = regexp.MustCompile(`(?i)HDFC\s+Bank\s+A/c\s+(\d+)`)
	hdfcAcctGeneric    = regexp.MustCompile(`(?i)A/c\s+(?:XX+)?(\d+)`)
	hdfcNonDigit       = regexp.MustCompile(`\D`)

	hdfcAvlBalINR  = regexp.MustCompile(`(?i)Avl\s+bal:?\s*INR\s*([0-9,]+(?:\.\d{2})?)`)
	hdfcAvailBal   = regexp.MustCompile(`(?i)Available\s+Balance:?\s*INR\s*([0-9,]+(?:\.\d{2})?)`)
	hdfcBalRs      = regexp.MustCompile(`(?i)Bal\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)

	hdfcWillDeduct  = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+will\s+be\s+deducted`)
	hdfcDeductDate  = regexp.MustCompile(`(?i)deducted\s+on\s+(\d{2}/\d{2}/\d{2}),?\s*\d{2}:\d{2}:\d{2}`)
	hdfcMandateFor  = regexp.MustCompile(`(?i)For\s+([^\n]+?)\s+mandate`)
	hdfcUMN         = regexp.MustCompile(`(?i)UMN\s+([a-zA-Z0-9@]+)`)
	hdfcFutureINR   = regexp.MustCompile(`(?i)INR\.?\s*([0-9,]+(?:\.\d{2})?)`)
	hdfcFutureDate  = regexp.MustCompile(`(?i)will\s+be\s+debited\s+on\s+(\d{2}/\d{2}/\d{4})`)
)

// NewHDFCBank builds the HDFC Bank rule set.
func NewHDFCBank() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "HDFC Bank",
		Currency: "INR",
		MatchSender: senderMatcher(
			[]string{"HDFCBK", "HDFCBANK", "HDFC", "HDFCB"},
			nil,
			regexp.MustCompile(`^[A-Z]{2}-HDFCBK.*$`),
			regexp.MustCompile(`^[A-Z]{2}-HDFC.*$`),
			regexp.MustCompile(`^HDFC-[A-Z]+$`),
			regexp.MustCompile(`^[A-Z]{2}-HDFCB.*$`),
		),
		Gate: []parser.GateRule{hdfcGate},
		Merchant: []parser.StringRule{
			hdfcMerchantRule,
		},
		Reference: []parser.StringRule{
			reString(hdfcRefSimple),
			reString(hdfcUPIRefNo),
			reString(hdfcRefNo),
			reString(hdfcRefEnd),
		},
		Account: []parser.StringRule{
			reString(hdfcCardX),
			reString(hdfcBlockDC),
			hdfcBankAccountRule,
			last4Rule(hdfcAcctDeposited),
			last4Rule(hdfcAcctFrom),
			last4Rule(hdfcAcctSimple),
			last4Rule(hdfcAcctGeneric),
		},
		Balance: []parser.AmountRule{
			reAmount(hdfcAvlBalINR),
			reAmount(hdfcAvailBal),
			reAmount(hdfcBalRs),
		},
		Type: []parser.TypeRule{hdfcTypeRule},
		Mandates: []parser.MandateRule{
			hdfcEMandate,
			hdfcFutureDebit,
		},
	}
}

func hdfcGate(message, lower string) (bool, bool) {
	// E-Mandate notices and "will be" alerts describe future money, not a
	// completed transaction.
	if strings.Contains(message, "E-Mandate!") || strings.Contains(lower, "will be") {
		return false, true
	}

	if strings.Contains(lower, "payment alert") {
		return true, true
	}

	if containsAny(lower,
		"has requested", "payment request", "to pay, download",
		"collect request", "ignore if already paid") {
		return false, true
	}
	if strings.Contains(lower, "received towards your credit card") {
		return false, true
	}
	if strings.Contains(lower, "payment") && strings.Contains(lower, "credited to your card") {
		return false, true
	}
	if containsAny(lower,
		"otp", "one time password", "verification code",
		"offer", "discount", "cashback offer", "win ") {
		return false, true
	}
	if hdfcIsBalanceUpdate(lower) {
		return false, true
	}

	if containsAny(lower,
		"debited", "credited", "withdrawn", "deposited",
		"spent", "received", "transferred", "paid",
		"sent", "deducted", "txn") {
		return true, true
	}
	return false, true
}

// hdfcIsBalanceUpdate flags periodic balance notifications, which quote an
// available balance "as on" some date without any movement verb.
func hdfcIsBalanceUpdate(lower string) bool {
	if !containsAny(lower, "available bal", "avl bal", "account balance", "a/c balance") {
		return false
	}
	if !strings.Contains(lower, "as on") {
		return false
	}
	return !containsAny(lower, "debited", "credited", "withdrawn", "spent", "transferred")
}

func hdfcTypeRule(lower string) (parser.TransactionType, bool) {
	switch {
	case strings.Contains(lower, "block cc"), strings.Contains(lower, "block pcc"):
		return parser.Credit, true
	case strings.Contains(lower, "spent on card") && !strings.Contains(lower, "block dc"):
		return parser.Credit, true
	case strings.Contains(lower, "payment") && strings.Contains(lower, "credit card"):
		return parser.Expense, true
	case strings.Contains(lower, "towards") && strings.Contains(lower, "credit card"):
		return parser.Expense, true
	case strings.Contains(lower, "sent") && strings.Contains(lower, "from hdfc"):
		return parser.Expense, true
	case strings.Contains(lower, "spent") && strings.Contains(lower, "from hdfc bank card"):
		return parser.Expense, true
	case strings.Contains(lower, "debited"):
		return parser.Expense, true
	case strings.Contains(lower, "withdrawn") && !strings.Contains(lower, "block cc"):
		return parser.Expense, true
	case strings.Contains(lower, "spent") && !strings.Contains(lower, "card"):
		return parser.Expense, true
	case strings.Contains(lower, "charged"),
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
}

func hdfcMerchantRule(message string) (string, bool) {
	lower := strings.ToLower(message)

	// "Spent Rs.x From HDFC Bank Card xxxx At MERCHANT On date": the merchant
	// sits between At and On. Index math is more reliable here than a regex
	// because the merchant itself may contain "on".
	if strings.Contains(lower, "from hdfc bank card") {
		atIdx := strings.Index(lower, " at ")
		onIdx := strings.Index(lower, " on ")
		if atIdx != -1 && onIdx > atIdx {
			if merchant := strings.TrimSpace(message[atIdx+4 : onIdx]); merchant != "" {
				return common.CleanMerchantName(merchant), true
			}
		}
	}

	if strings.Contains(lower, "withdrawn") {
		if m := hdfcATMLocation.FindStringSubmatch(message); m != nil {
			if location := strings.TrimSpace(m[1]); location != "" {
				return "ATM at " + common.CleanMerchantName(location), true
			}
		}
		return "ATM", true
	}
	if strings.Contains(lower, "atm") {
		return "ATM", true
	}

	if strings.Contains(lower, "card") && strings.Contains(lower, " at ") &&
		(strings.Contains(lower, "block cc") || strings.Contains(lower, "block pcc")) {
		if m := hdfcCardAt.FindStringSubmatch(message); m != nil {
			merchant := strings.TrimSpace(m[1])
			if at := strings.Index(merchant, "@"); at != -1 {
				merchant = strings.TrimSpace(merchant[:at])
				merchant = strings.TrimSuffix(strings.TrimSuffix(merchant, "qr"), "QR")
			}
			if merchant != "" {
				return common.CleanMerchantName(merchant), true
			}
		}
	}

	if strings.Contains(lower, "salary") && strings.Contains(lower, "deposited") {
		if m := hdfcSalary.FindStringSubmatch(message); m != nil {
			return common.CleanMerchantName(strings.TrimSpace(m[1])), true
		}
		if m := hdfcSimpleSalary.FindStringSubmatch(message); m != nil {
			merchant := strings.TrimSpace(m[1])
			if merchant != "" && hdfcNonDigit.MatchString(merchant) {
				return common.CleanMerchantName(merchant), true
			}
		}
	}

	if strings.Contains(lower, "info:") {
		if m := hdfcInfo.FindStringSubmatch(message); m != nil {
			merchant := strings.TrimSpace(m[1])
			if merchant != "" && !strings.EqualFold(merchant, "UPI") {
				return common.CleanMerchantName(merchant), true
			}
		}
	}

	if strings.Contains(lower, "vpa") {
		if strings.Contains(lower, "from vpa") && strings.Contains(lower, "credited") {
			if m := hdfcFromVPA.FindStringSubmatch(message); m != nil {
				if name := strings.TrimSpace(m[1]); name != "" {
					return common.CleanMerchantName(name), true
				}
			}
		}
		if m := hdfcVPAWithName.FindStringSubmatch(message); m != nil {
			return common.CleanMerchantName(strings.TrimSpace(m[1])), true
		}
		if m := hdfcVPA.FindStringSubmatch(message); m != nil {
			name := strings.TrimSpace(m[1])
			if len(name) > 3 && hdfcNonDigit.MatchString(name) {
				return common.CleanMerchantName(name), true
			}
		}
	}

	if strings.Contains(lower, "spent on card") {
		if m := hdfcSpentAt.FindStringSubmatch(message); m != nil {
			return common.CleanMerchantName(strings.TrimSpace(m[1])), true
		}
	}
	if strings.Contains(lower, "debited for") {
		if m := hdfcDebitFor.FindStringSubmatch(message); m != nil {
			return common.CleanMerchantName(strings.TrimSpace(m[1])), true
		}
	}
	if strings.Contains(lower, "upi mandate") {
		if m := hdfcMandateTo.FindStringSubmatch(message); m != nil {
			return common.CleanMerchantName(strings.TrimSpace(m[1])), true
		}
	}
	if strings.Contains(lower, "towards") {
		if m := hdfcTowards.FindStringSubmatch(message); m != nil {
			if merchant := strings.TrimSpace(m[1]); merchant != "" {
				return common.CleanMerchantName(merchant), true
			}
		}
	}
	if strings.Contains(lower, "for:") {
		if m := hdfcForColon.FindStringSubmatch(message); m != nil {
			if merchant := strings.TrimSpace(m[1]); merchant != "" {
				return common.CleanMerchantName(merchant), true
			}
		}
	}
	if strings.Contains(lower, "for ") && strings.Contains(lower, "will be debited") {
		if m := hdfcForDebit.FindStringSubmatch(message); m != nil {
			if merchant := strings.TrimSpace(m[1]); merchant != "" {
				return common.CleanMerchantName(merchant), true
			}
		}
	}

	return "", false
}

func hdfcBankAccountRule(message string) (string, bool) {
	m := hdfcBankAccount.FindStringSubmatch(message)
	if m == nil {
		return "", false
	}
	digits := hdfcNonDigit.ReplaceAllString(m[1], "")
	if digits == "" {
		return "", false
	}
	return last4(digits), true
}

// hdfcEMandate parses "E-Mandate!" subscription notices.
func hdfcEMandate(message string) (*parser.MandateInfo, bool) {
	if !strings.Contains(message, "E-Mandate!") {
		return nil, false
	}

	m := hdfcWillDeduct.FindStringSubmatch(message)
	if m == nil {
		return nil, false
	}
	amount, ok := common.ParseAmount(m[1])
	if !ok {
		return nil, false
	}

	info := &parser.MandateInfo{
		Amount:     amount,
		DateFormat: "02/01/06",
		Merchant:   "Unknown Subscription",
	}
	if d := hdfcDeductDate.FindStringSubmatch(message); d != nil {
		info.NextDeductionDate = d[1]
	}
	if mm := hdfcMandateFor.FindStringSubmatch(message); mm != nil {
		if merchant := common.CleanMerchantName(strings.TrimSpace(mm[1])); merchant != "" {
			info.Merchant = merchant
		}
	}
	if u := hdfcUMN.FindStringSubmatch(message); u != nil {
		info.Reference = u[1]
	}
	return info, true
}

// hdfcFutureDebit parses "will be debited" subscription alerts. The date is
// normalized to dd/mm/yy so both mandate flavors share one format.
func hdfcFutureDebit(message string) (*parser.MandateInfo, bool) {
	lower := strings.ToLower(message)
	if !strings.Contains(lower, "will be") {
		return nil, false
	}

	m := hdfcFutureINR.FindStringSubmatch(message)
	if m == nil {
		return nil, false
	}
	amount, ok := common.ParseAmount(m[1])
	if !ok {
		return nil, false
	}

	info := &parser.MandateInfo{
		Amount:     amount,
		DateFormat: "02/01/06",
		Merchant:   "Unknown Subscription",
	}
	if d := hdfcFutureDate.FindStringSubmatch(message); d != nil {
		parts := strings.Split(d[1], "/")
		if len(parts) == 3 && len(parts[2]) == 4 {
			info.NextDeductionDate = parts[0] + "/" + parts[1] + "/" + parts[2][2:]
		} else {
			info.NextDeductionDate = d[1]
		}
	}
	if merchant, ok := hdfcMerchantRule(message); ok && merchant != "" {
		info.Merchant = merchant
	}
	return info, true
}
