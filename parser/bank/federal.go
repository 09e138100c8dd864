package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
)

// Federal Bank message shapes:
//   - UPI debits:   "Rs 34.51 debited via UPI on 08-05-2025 13:48:03 to VPA ..."
//   - Card spends:  "INR 506.52 spent on your credit card at ..."
//   - IMPS credits, ATM withdrawals, e-mandate payments.
var (
	fedAmountINRSpent  = regexp.MustCompile(`(?i)INR\s+([0-9,]+(?:\.\d{2})?)\s+spent`)
	fedAmountReceived  = regexp.MustCompile(`(?i)you've received INR\s+([0-9,]+(?:\.\d{2})?)`)
	fedAmountDebited   = regexp.MustCompile(`(?i)Rs\s+([0-9,]+(?:\.\d{2})?)\s+debited`)
	fedAmountSent      = regexp.MustCompile(`(?i)Rs\s+([0-9,]+(?:\.\d{2})?)\s+sent`)
	fedAmountCredited  = regexp.MustCompile(`(?i)Rs\s+([0-9,]+(?:\.\d{2})?)\s+credited`)
	fedAmountWithdrawn = regexp.MustCompile(`(?i)withdrawn\s+Rs\s+([0-9,]+(?:\.\d{2})?)`)

	fedCardMerchant   = regexp.MustCompile(`(?i)at\s+([^.\n]+?)\s+on\s+\d`)
	fedMandateMercant = regexp.MustCompile(`(?i)payment of\s+[^.]+?\s+for\s+([^.\n]+?)\s+via\s+e-mandate`)
	fedVPA            = regexp.MustCompile(`(?i)to\s+VPA\s+([^\s]+?)(?:\.\s*Ref\s+No|\s*Ref\s+No|$)`)
	fedTo             = regexp.MustCompile(`(?i)to\s+([^.\n]+?)(?:\.\s*Ref|Ref\s+No|$)`)
	fedSentBy         = regexp.MustCompile(`(?i)It was sent by\s+([^.\n]+?)(?:\s+on|$)`)
	fedFrom           = regexp.MustCompile(`(?i)from\s+([^.\n]+?)(?:\.\s*|$)`)
	fedCorpSuffix     = regexp.MustCompile(`(?i)\s+(limited|ltd|pvt\s+ltd|private\s+limited)$`)

	fedCardEnding = regexp.MustCompile(`(?i)(?:credit|debit)\s+card\s+ending\s+with\s+(\d{4})`)
	fedCardMasked = regexp.MustCompile(`(?i)card\s+XX\*\*?(\d{4})`)
	fedINRSpent   = regexp.MustCompile(`(?i).*inr\s+[\d,]+(?:\.\d{2})?\s+spent.*`)
	fedZeros      = regexp.MustCompile(`^0+$`)

	fedMandateAmount   = regexp.MustCompile(`(?i)(?:for\s+a\s+)?maximum\s+amount\s+of\s+Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	fedMandateStart    = regexp.MustCompile(`(?i)starting\s+from\s+(\d{2}-\d{2}-\d{4})`)
	fedMandateMerchant = regexp.MustCompile(`(?i)(?:created\s+a\s+mandate\s+on|mandate\s+on)\s+([^.\n]+?)(?:\s+for|\s*$)`)
	fedMandateRef      = regexp.MustCompile(`(?i)Mandate\s+Ref\s+No-?\s*([^.\s]+)`)

	fedFutureAmount   = regexp.MustCompile(`(?i)INR\s+(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	fedFutureDate     = regexp.MustCompile(`(?i)on\s+(\d{2}/\d{2}/\d{4})`)
	fedFutureMerchant = regexp.MustCompile(`(?i)for\s+([^.\n]+?)\s*,\s*INR`)
)

func fedIsCreditCard(lower string) bool {
	return strings.Contains(lower, "credit card")
}

func fedIsCard(lower string) (bool, bool) {
	switch {
	case fedIsCreditCard(lower),
		strings.Contains(lower, "debit card"),
		strings.Contains(lower, "card xx**"),
		strings.Contains(lower, "card ending with"),
		fedINRSpent.MatchString(lower):
		return true, true
	case strings.Contains(lower, " spent ") && strings.Contains(lower, " at ") && strings.Contains(lower, " on "):
		return true, true
	case (strings.Contains(lower, "e-mandate") || strings.Contains(lower, "payment of")) &&
		(strings.Contains(lower, "federal bank debit card") || strings.Contains(lower, "federal bank credit card")):
		return true, true
	case strings.Contains(lower, "via upi"), strings.Contains(lower, "to vpa"),
		strings.Contains(lower, "atm"),
		strings.Contains(lower, "withdrawn") && !strings.Contains(lower, "card"),
		strings.Contains(lower, "via imps"), strings.Contains(lower, "via neft"), strings.Contains(lower, "via rtgs"):
		return false, true
	}
	return false, true
}

func fedIsMandateCreation(lower string) bool {
	if !strings.Contains(lower, "mandate") {
		return false
	}
	return containsAny(lower,
		"successfully created a mandate",
		"you have successfully created",
		"successfully created",
		"has been initiated",
		"registration has been initiated",
	)
}

func fedIsDeclinedMandate(lower string) bool {
	return (strings.Contains(lower, "e-mandate") || strings.Contains(lower, "payment of")) &&
		strings.Contains(lower, "declined")
}

// NewFederalBank builds the Federal Bank rule set.
func NewFederalBank() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "Federal Bank",
		Currency: "INR",
		MatchSender: senderMatcher(
			nil,
			[]string{"FEDBNK", "FEDERAL", "FEDFIB"},
			regexp.MustCompile(`^[A-Z]{2}-FEDBNK-S$`),
			regexp.MustCompile(`^[A-Z]{2}-FEDFIB-[A-Z]$`),
			regexp.MustCompile(`^[A-Z]{2}-FEDBNK-[TPG]$`),
			regexp.MustCompile(`^[A-Z]{2}-FEDBNK$`),
		),
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if containsAny(lower, "otp", "one time password", "verification code") {
					return false, true
				}
				if fedIsMandateCreation(lower) || fedIsDeclinedMandate(lower) {
					return false, true
				}
				if containsAny(lower,
					"sent via upi", "debited via upi", "credited", "withdrawn",
					"received", "transferred", "spent on your credit card",
					"payment of", "payment via e-mandate") {
					return true, true
				}
				return false, false
			},
		},
		Amount: []parser.AmountRule{
			reAmount(fedAmountINRSpent),
			reAmount(fedAmountReceived),
			reAmount(fedAmountDebited),
			reAmount(fedAmountSent),
			reAmount(fedAmountCredited),
			reAmount(fedAmountWithdrawn),
		},
		Merchant: []parser.StringRule{
			fedMerchantRule,
		},
		Account: []parser.StringRule{
			func(message string) (string, bool) {
				lower := strings.ToLower(message)
				if isCard, _ := fedIsCard(lower); isCard {
					if m := fedCardEnding.FindStringSubmatch(message); m != nil {
						return m[1], true
					}
					if m := fedCardMasked.FindStringSubmatch(message); m != nil {
						return m[1], true
					}
				}
				return "", false
			},
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				switch {
				case fedIsCreditCard(lower) && strings.Contains(lower, "spent"):
					return parser.Credit, true
				case (strings.Contains(lower, "e-mandate") || strings.Contains(lower, "payment of")) &&
					strings.Contains(lower, "processed successfully"):
					return parser.Expense, true
				case strings.Contains(lower, "sent via upi"),
					strings.Contains(lower, "debited"),
					strings.Contains(lower, "withdrawn"),
					strings.Contains(lower, "spent") && !fedIsCreditCard(lower),
					strings.Contains(lower, "paid"):
					return parser.Expense, true
				case strings.Contains(lower, "credited"),
					strings.Contains(lower, "received"),
					strings.Contains(lower, "deposited"),
					strings.Contains(lower, "refund"):
					return parser.Income, true
				}
				return 0, false
			},
		},
		Card: func(message, lower string) (bool, bool) {
			return fedIsCard(lower)
		},
		Mandates: []parser.MandateRule{
			fedMandateCreated,
			fedFutureDebit,
		},
	}
}

// fedMerchantRule walks Federal Bank's merchant evidence in priority order:
// IMPS credits, card spends, e-mandates, VPAs, named counterparties, ATM.
func fedMerchantRule(message string) (string, bool) {
	lower := strings.ToLower(message)

	if strings.Contains(lower, "credited to your a/c") && strings.Contains(lower, "via imps") {
		return "IMPS Credit", true
	}

	if isCard, _ := fedIsCard(lower); isCard && strings.Contains(lower, " at ") {
		if m := fedCardMerchant.FindStringSubmatch(message); m != nil {
			merchant := common.CleanMerchantName(strings.TrimSpace(m[1]))
			if common.IsValidMerchantName(merchant) {
				if cleaned := strings.TrimSpace(fedCorpSuffix.ReplaceAllString(merchant, "")); cleaned != "" {
					return cleaned, true
				}
				return merchant, true
			}
		}
	}

	if strings.Contains(lower, "e-mandate") || strings.Contains(lower, "payment of") {
		if m := fedMandateMercant.FindStringSubmatch(message); m != nil {
			merchant := common.CleanMerchantName(strings.TrimSpace(m[1]))
			if common.IsValidMerchantName(merchant) {
				return merchant, true
			}
		}
		if strings.Contains(lower, "payment via e-mandate") && strings.Contains(lower, "declined") {
			return "E-Mandate Declined", true
		}
	}

	if strings.Contains(lower, "vpa") {
		if m := fedVPA.FindStringSubmatch(message); m != nil {
			return common.UPIMerchant(strings.TrimSpace(m[1])), true
		}
	}

	if m := fedTo.FindStringSubmatch(message); m != nil {
		merchant := strings.TrimSpace(m[1])
		if !strings.Contains(strings.ToLower(merchant), "vpa") {
			cleaned := common.CleanMerchantName(merchant)
			if common.IsValidMerchantName(cleaned) {
				return cleaned, true
			}
		}
	}

	if strings.Contains(lower, "you've received") {
		if m := fedSentBy.FindStringSubmatch(message); m != nil {
			from := strings.TrimSpace(m[1])
			if fedZeros.MatchString(from) || len(from) <= 4 {
				return "Bank Transfer", true
			}
			merchant := common.CleanMerchantName(from)
			if common.IsValidMerchantName(merchant) {
				return merchant, true
			}
		}
	}

	if m := fedFrom.FindStringSubmatch(message); m != nil {
		merchant := common.CleanMerchantName(strings.TrimSpace(m[1]))
		if common.IsValidMerchantName(merchant) {
			return merchant, true
		}
	}

	if strings.Contains(lower, "atm") || strings.Contains(lower, "withdrawn") {
		return "ATM Withdrawal", true
	}

	return "", false
}

// fedMandateCreated recognizes "you have successfully created a mandate"
// notifications. No money has moved.
func fedMandateCreated(message string) (*parser.MandateInfo, bool) {
	lower := strings.ToLower(message)
	if !fedIsMandateCreation(lower) {
		return nil, false
	}

	m := fedMandateAmount.FindStringSubmatch(message)
	if m == nil {
		return nil, false
	}
	amount, ok := common.ParseAmount(m[1])
	if !ok {
		return nil, false
	}

	info := &parser.MandateInfo{
		Amount:     amount,
		DateFormat: "02-01-2006",
		Merchant:   "Unknown Subscription",
	}
	if d := fedMandateStart.FindStringSubmatch(message); d != nil {
		info.NextDeductionDate = d[1]
	}
	if mm := fedMandateMerchant.FindStringSubmatch(message); mm != nil {
		if merchant := common.CleanMerchantName(strings.TrimSpace(mm[1])); merchant != "" {
			info.Merchant = merchant
		}
	}
	if r := fedMandateRef.FindStringSubmatch(message); r != nil {
		info.Reference = r[1]
	}
	return info, true
}

// fedFutureDebit recognizes "payment due ... will be processed" alerts for an
// upcoming deduction.
func fedFutureDebit(message string) (*parser.MandateInfo, bool) {
	lower := strings.ToLower(message)
	if !strings.Contains(lower, "payment due") || !strings.Contains(lower, "will be processed") {
		return nil, false
	}

	m := fedFutureAmount.FindStringSubmatch(message)
	if m == nil {
		return nil, false
	}
	amount, ok := common.ParseAmount(m[1])
	if !ok {
		return nil, false
	}

	info := &parser.MandateInfo{
		Amount:     amount,
		DateFormat: "02/01/2006",
		Merchant:   "Unknown Subscription",
	}
	if d := fedFutureDate.FindStringSubmatch(message); d != nil {
		info.NextDeductionDate = d[1]
	}
	if mm := fedFutureMerchant.FindStringSubmatch(message); mm != nil {
		if merchant := common.CleanMerchantName(strings.TrimSpace(mm[1])); merchant != "" {
			info.Merchant = merchant
		}
	}
	return info, true
}
