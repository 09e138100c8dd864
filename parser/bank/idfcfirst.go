package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
)

// IDFC First Bank. Format: "Your A/C XXXXXXXXXXX is debited by INR 68.00 on
// 06/08/25 17:36. New Bal :INR XXXXX.00".
var (
	idfcDebitRs     = regexp.MustCompile(`(?i)Debit\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	idfcDebitedRs   = regexp.MustCompile(`(?i)debited\s+by\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	idfcDebitedINR  = regexp.MustCompile(`(?i)debited\s+by\s+INR\s*([0-9,]+(?:\.\d{2})?)`)
	idfcCreditedRs  = regexp.MustCompile(`(?i)credited\s+by\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	idfcCreditedW   = regexp.MustCompile(`(?i)credited\s+with\s+INR\s*([0-9,]+(?:\.\d{2})?)`)
	idfcCreditedINR = regexp.MustCompile(`(?i)credited\s+by\s+INR\s*([0-9,]+(?:\.\d{2})?)`)
	idfcInterest    = regexp.MustCompile(`(?i)interest\s+of\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	idfcATMDeposit  = regexp.MustCompile(`(?i)ATM\s+(?:ID\s+)?([A-Z0-9]+)`)
	idfcUPIVPA      = regexp.MustCompile(`(?i)(?:to|from|at)\s+([a-zA-Z0-9._-]+@[a-zA-Z0-9]+)`)
	idfcIMPSMobile  = regexp.MustCompile(`(?i)mobile\s+[X]*(\d{3,4})`)
	idfcATMID       = regexp.MustCompile(`(?i)ATM\s+([A-Z]{2}\d+)`)
	idfcCardTo      = regexp.MustCompile(`(?i)(?:to|at|for)\s+([A-Z][A-Z0-9\s&.-]+?)(?:\s+on|\s+New|\.|,|$)`)
	idfcAcct        = regexp.MustCompile(`(?i)A/C\s+[X]*(\d{3,4})`)
	idfcNewBal      = regexp.MustCompile(`(?i)New\s+Bal\s*:\s*(?:INR|Rs\.?)\s*([0-9,]+(?:\.\d{2})?)`)
	idfcNewBalIs    = regexp.MustCompile(`(?i)New\s+balance\s+is\s+INR\s*([0-9,]+(?:\.\d{2})?)`)
	idfcUpdatedBal  = regexp.MustCompile(`(?i)Updated\s+balance\s+is\s+INR\s*([0-9,]+(?:\.\d{2})?)`)
	idfcIMPSRef     = regexp.MustCompile(`(?i)IMPS\s+Ref\s+no\s+(\d+)`)
	idfcUPIRef      = regexp.MustCompile(`(?i)UPI[:/]\s*([0-9]+)`)
	idfcTxnID       = regexp.MustCompile(`(?i)(?:txn|transaction)\s*(?:id|ref|no)[:\s]*([A-Z0-9]+)`)
)

// NewIDFCFirst builds the IDFC First Bank rule set.
func NewIDFCFirst() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "IDFC First Bank",
		Currency: "INR",
		MatchSender: senderMatcher(
			nil,
			[]string{"IDFCBK", "IDFCFB", "IDFC"},
		),
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if containsAny(lower, "otp", "one time password", "verification code") {
					return false, true
				}
				if containsAny(lower, "offer", "discount", "cashback offer", "win ") {
					return false, true
				}
				if containsAny(lower, "has requested", "payment request", "collect request",
					"requesting payment", "requests rs", "ignore if already paid") {
					return false, true
				}
				if containsAny(lower, "debit", "debited", "credited", "withdrawn",
					"deposited", "spent", "received", "transferred", "paid", "interest") {
					return true, true
				}
				return false, true
			},
		},
		Amount: []parser.AmountRule{
			reAmount(idfcDebitRs),
			reAmount(idfcDebitedRs),
			reAmount(idfcDebitedINR),
			reAmount(idfcCreditedRs),
			reAmount(idfcCreditedW),
			reAmount(idfcCreditedINR),
			reAmount(idfcInterest),
		},
		Merchant: []parser.StringRule{
			idfcMerchant,
		},
		Reference: []parser.StringRule{
			reString(idfcIMPSRef),
			reString(idfcUPIRef),
			reString(idfcTxnID),
		},
		Account: []parser.StringRule{
			last4Rule(idfcAcct),
		},
		Balance: []parser.AmountRule{
			reAmount(idfcNewBal),
			reAmount(idfcNewBalIs),
			reAmount(idfcUpdatedBal),
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				switch {
				case strings.Contains(lower, "debit"):
					return parser.Expense, true
				case strings.Contains(lower, "credited"):
					return parser.Income, true
				case strings.Contains(lower, "withdrawn"), strings.Contains(lower, "withdrawal"):
					return parser.Expense, true
				case strings.Contains(lower, "deposit"):
					return parser.Income, true
				case strings.Contains(lower, "interest") && strings.Contains(lower, "earned"):
					return parser.Income, true
				case strings.Contains(lower, "monthly interest"):
					return parser.Income, true
				}
				return 0, false
			},
		},
	}
}

func idfcMerchant(message string) (string, bool) {
	lower := strings.ToLower(message)

	if strings.Contains(lower, "monthly interest") {
		return "Interest Credit", true
	}

	if strings.Contains(lower, "cash deposit") {
		if m := idfcATMDeposit.FindStringSubmatch(message); m != nil {
			return "Cash Deposit - ATM " + m[1], true
		}
		return "Cash Deposit", true
	}

	if strings.Contains(lower, "upi") {
		if m := idfcUPIVPA.FindStringSubmatch(message); m != nil {
			return "UPI - " + m[1], true
		}
		return "UPI Transaction", true
	}

	if strings.Contains(lower, "imps") {
		if m := idfcIMPSMobile.FindStringSubmatch(message); m != nil {
			return "IMPS Transfer - Mobile XXX" + m[1], true
		}
		return "IMPS Transfer", true
	}

	if strings.Contains(lower, "neft") {
		return "NEFT Transfer", true
	}
	if strings.Contains(lower, "rtgs") {
		return "RTGS Transfer", true
	}

	if strings.Contains(lower, "atm") {
		if m := idfcATMID.FindStringSubmatch(message); m != nil {
			return "ATM - " + m[1], true
		}
		return "ATM Transaction", true
	}

	if m := idfcCardTo.FindStringSubmatch(message); m != nil {
		merchant := common.CleanMerchantName(m[1])
		if common.IsValidMerchantName(merchant) {
			return merchant, true
		}
	}
	return "", false
}
