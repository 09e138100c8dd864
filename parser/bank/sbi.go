package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
)

// State Bank of India. SBICRD senders carry credit card traffic with its own
// typing; the rest is accounts, UPI, ATM and YONO Cash.
var (
	sbiAmountTxnNumber = regexp.MustCompile(`(?i)transaction\s+number\s+\d+\s+for\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	sbiAmountPayment   = regexp.MustCompile(`(?i)payment\s+of\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	sbiAmountSpent     = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+spent`)
	sbiAmountDebitBy   = regexp.MustCompile(`(?i)debited\s+by\s+(\d+(?:,\d{3})*(?:\.\d{1,2})?)`)
	sbiAmountCreditBy  = regexp.MustCompile(`(?i)credited\s+by\s+Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{1,2})?)`)
	sbiAmountRsDebit   = regexp.MustCompile(`(?i)Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)\s+(?:has\s+been\s+)?debited`)
	sbiAmountINRDebit  = regexp.MustCompile(`(?i)INR\s*(\d+(?:,\d{3})*(?:\.\d{2})?)\s+(?:has\s+been\s+)?debited`)
	sbiAmountRsCredit  = regexp.MustCompile(`(?i)Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)\s+(?:has\s+been\s+)?credited`)
	sbiAmountINRCredit = regexp.MustCompile(`(?i)INR\s*(\d+(?:,\d{3})*(?:\.\d{2})?)\s+(?:has\s+been\s+)?credited`)
	sbiAmountWithdrawn = regexp.MustCompile(`(?i)withdrawn\s+Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	sbiAmountTransfer  = regexp.MustCompile(`(?i)transferred\s+Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	sbiAmountUPIPaid   = regexp.MustCompile(`(?i)paid\s+to\s+[\w.-]+@[\w]+\s+Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	sbiAmountATM       = regexp.MustCompile(`(?i)ATM\s+withdrawal\s+of\s+Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	sbiAmountYono      = regexp.MustCompile(`(?i)Yono\s+Cash\s+Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)

	sbiMerchantDoneAt   = regexp.MustCompile(`(?i)done\s+at\s+([^.\n]+?)(?:\s+on\s+|$)`)
	sbiMerchantTrf      = regexp.MustCompile(`(?i)trf\s+to\s+([^.\n]+?)(?:\s+Ref|\s+ref|$)`)
	sbiMerchantTransfer = regexp.MustCompile(`(?i)transfer\s+from\s+([^.\n]+?)(?:\s+Ref|\s+ref|$)`)
	sbiMerchantUPI      = regexp.MustCompile(`(?i)paid\s+to\s+([\w.-]+)@[\w]+`)
	sbiMerchantYonoATM  = regexp.MustCompile(`(?i)w/d@SBI\s+ATM\s+([A-Z0-9]+)`)
	sbiMerchantATM      = regexp.MustCompile(`(?i)ATM\s+(?:withdrawal\s+)?(?:at\s+)?([^.\n]+?)(?:\s+on|\s+Avl)`)
	sbiMerchantNEFT     = regexp.MustCompile(`(?i)(?:NEFT|IMPS|RTGS)[^:]*:\s*([^.\n]+?)(?:\s+Ref|\s+on|$)`)

	sbiAcctDebitCard = regexp.MustCompile(`(?i)by\s+SBI\s+Debit\s+Card\s+([\w-]+)`)
	sbiAcctMasked    = regexp.MustCompile(`(?i)A/c\s+([X*]*\d+)`)
	sbiAcctEnding    = regexp.MustCompile(`(?i)A/c\s+ending\s+(\d{4})`)
	sbiAcctNo        = regexp.MustCompile(`(?i)a/c\s+no\.?\s+(?:XX|X\*+)?(\d{4})`)
	sbiCardEnding    = regexp.MustCompile(`(?i)ending\s+with\s+(\d{4})`)

	sbiBalUpdated   = regexp.MustCompile(`(?i)Your\s+updated\s+available\s+balance\s+is\s+Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	sbiBalAvl       = regexp.MustCompile(`(?i)Avl\s+Bal\s+Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	sbiBalAvailable = regexp.MustCompile(`(?i)Available\s+Balance:?\s+Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	sbiBalShort     = regexp.MustCompile(`(?i)Bal:?\s+Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)

	sbiLimit = regexp.MustCompile(`(?i)available\s+limit\s+is\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)

	sbiRefTxnNumber = regexp.MustCompile(`(?i)transaction\s+number\s+([\w-]+)`)
	sbiRefNo        = regexp.MustCompile(`(?i)Ref\s+No\.?\s*(\w+)`)
	sbiRefTxnHash   = regexp.MustCompile(`(?i)Txn#\s*(\w+)`)
	sbiRefTxnID     = regexp.MustCompile(`(?i)transaction\s+ID:?\s*(\w+)`)

	sbiMandateAmount   = regexp.MustCompile(`(?i)Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	sbiMandateMerchant = regexp.MustCompile(`(?i)towards\s+([^.\n]+?)(?:\s+from|\s+A/c|$)`)
	sbiMandateUMN      = regexp.MustCompile(`(?i)UMN:([^.\s]+)`)

	sbiFourDigits = regexp.MustCompile(`^\d{4}$`)
)

func sbiIsCreditCardSender(sender string) bool {
	return strings.Contains(strings.ToUpper(sender), "SBICRD")
}

// NewSBI builds the State Bank of India rule set.
func NewSBI() *parser.RuleSet {
	rs := &parser.RuleSet{
		Bank:     "State Bank of India",
		Currency: "INR",
		MatchSender: senderMatcher(
			[]string{"SBIBK", "SBIBNK"},
			[]string{"SBI", "SBIINB", "SBIUPI", "SBICRD", "ATMSBI"},
			regexp.MustCompile(`^[A-Z]{2}-SBIBK-S$`),
			regexp.MustCompile(`^[A-Z]{2}-SBIBK-[TPG]$`),
			regexp.MustCompile(`^[A-Z]{2}-SBIBK$`),
			regexp.MustCompile(`^[A-Z]{2}-SBI$`),
		),
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				if strings.Contains(lower, "e-statement of sbi credit card") {
					return false, true
				}
				if strings.Contains(lower, "is due for") {
					return false, true
				}
				if containsAny(lower, "sbi card application", "process your app.no", "track your application status") {
					return false, true
				}
				if strings.Contains(lower, "upi-mandate") && strings.Contains(lower, "successfully created") {
					return false, true
				}
				if strings.Contains(lower, "by sbi debit card") {
					return true, true
				}
				return false, false
			},
		},
		Amount: []parser.AmountRule{
			reAmount(sbiAmountTxnNumber),
			reAmount(sbiAmountPayment),
			reAmount(sbiAmountSpent),
			reAmount(sbiAmountDebitBy),
			reAmount(sbiAmountCreditBy),
			reAmount(sbiAmountRsDebit),
			reAmount(sbiAmountINRDebit),
			reAmount(sbiAmountRsCredit),
			reAmount(sbiAmountINRCredit),
			reAmount(sbiAmountWithdrawn),
			reAmount(sbiAmountTransfer),
			reAmount(sbiAmountUPIPaid),
			reAmount(sbiAmountATM),
			reAmount(sbiAmountYono),
		},
		Merchant: []parser.StringRule{
			reMerchant(sbiMerchantDoneAt),
			reMerchant(sbiMerchantTrf),
			reMerchant(sbiMerchantTransfer),
			reMerchant(sbiMerchantUPI),
			func(message string) (string, bool) {
				if m := sbiMerchantYonoATM.FindStringSubmatch(message); m != nil {
					return "YONO Cash ATM - " + m[1], true
				}
				return "", false
			},
			func(message string) (string, bool) {
				if m := sbiMerchantATM.FindStringSubmatch(message); m != nil {
					location := common.CleanMerchantName(strings.TrimSpace(m[1]))
					if common.IsValidMerchantName(location) {
						return "ATM - " + location, true
					}
				}
				return "", false
			},
			reMerchant(sbiMerchantNEFT),
		},
		Reference: []parser.StringRule{
			reString(sbiRefTxnNumber),
			reString(sbiRefNo),
			reString(sbiRefTxnHash),
			reString(sbiRefTxnID),
		},
		Account: []parser.StringRule{
			sbiDebitCardAccount,
			last4Rule(sbiAcctMasked),
			reString(sbiAcctEnding),
			reString(sbiAcctNo),
		},
		Balance: []parser.AmountRule{
			reAmount(sbiBalUpdated),
			reAmount(sbiBalAvl),
			reAmount(sbiBalAvailable),
			reAmount(sbiBalShort),
		},
		Limit: []parser.AmountRule{
			reAmount(sbiLimit),
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				switch {
				case strings.Contains(lower, "withdrawn"),
					strings.Contains(lower, "transferred"),
					strings.Contains(lower, "paid to"),
					strings.Contains(lower, "atm withdrawal"),
					strings.Contains(lower, "by sbi debit card"):
					return parser.Expense, true
				}
				return 0, false
			},
		},
		Mandates: []parser.MandateRule{sbiUPIMandate},
	}
	rs.PostProcess = sbiCreditCardPost
	return rs
}

// sbiCreditCardPost retypes transactions from the SBICRD sender: payments to
// the card are income, everything else rides the credit line.
func sbiCreditCardPost(tx *parser.Transaction) {
	if !sbiIsCreditCardSender(tx.Sender) {
		return
	}
	lower := strings.ToLower(tx.Message)

	if m := sbiCardEnding.FindStringSubmatch(tx.Message); m != nil {
		tx.AccountLast4 = m[1]
	}
	switch {
	case strings.Contains(lower, "payment of") && strings.Contains(lower, "credited to your sbi credit card"):
		tx.SetType(parser.Income)
	default:
		tx.SetType(parser.Credit)
	}
	if strings.Contains(lower, "via bbps") {
		tx.Merchant = "BBPS Payment"
	}
	if m := sbiLimit.FindStringSubmatch(tx.Message); m != nil {
		if limit, ok := common.ParseAmount(m[1]); ok {
			tx.AvailableLimit = &limit
		}
	}
}

func sbiDebitCardAccount(message string) (string, bool) {
	m := sbiAcctDebitCard.FindStringSubmatch(message)
	if m == nil {
		return "", false
	}
	cardInfo := m[1]
	if sbiFourDigits.MatchString(cardInfo) {
		return cardInfo, true
	}
	if d := last4(cardInfo); len(d) == 4 {
		return d, true
	}
	return cardInfo, true
}

// sbiUPIMandate parses UPI-Mandate creation notices. SBI omits the next
// deduction date from the creation message.
func sbiUPIMandate(message string) (*parser.MandateInfo, bool) {
	if !strings.Contains(message, "UPI-Mandate") ||
		!strings.Contains(strings.ToLower(message), "successfully created") {
		return nil, false
	}

	m := sbiMandateAmount.FindStringSubmatch(message)
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
	if mm := sbiMandateMerchant.FindStringSubmatch(message); mm != nil {
		if merchant := common.CleanMerchantName(strings.TrimSpace(mm[1])); merchant != "" {
			info.Merchant = merchant
		}
	}
	if u := sbiMandateUMN.FindStringSubmatch(message); u != nil {
		info.Reference = u[1]
	}
	return info, true
}
