package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/common"
)

// Bank of India. UPI debits read "Rs.200.00 debited A/cXX5468 and credited
// to SAI MISAL via UPI Ref No 315439383341 on 23Aug25".
var (
	boiRsVerb     = regexp.MustCompile(`(?i)Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)\s+(?:debited|credited)`)
	boiINRVerb    = regexp.MustCompile(`(?i)INR\s*(\d+(?:,\d{3})*(?:\.\d{2})?)\s+(?:debited|credited)`)
	boiWithdrawn  = regexp.MustCompile(`(?i)withdrawn\s+Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	boiVia        = regexp.MustCompile(`(?i)via\s+([A-Za-z0-9]+)`)
	boiTowardsFor = regexp.MustCompile(`(?i)towards\s+([^,\n]+?)(?:\s+for|\s*,|$)`)
	boiAutopa     = regexp.MustCompile(`(?i)\s*-\s*Autopa.*$`)
	boiCreditedTo = regexp.MustCompile(`(?i)credited\s+to\s+([^.\n]+?)(?:\s+via|\s+Ref|\s+on|$)`)
	boiDebitedFr  = regexp.MustCompile(`(?i)debited\s+from\s+([^.\n]+?)(?:\s+via|\s+Ref|\s+on|$)`)
	boiATMAt      = regexp.MustCompile(`(?i)(?:ATM|withdrawn)\s+(?:at\s+)?([^.\n]+?)(?:\s+on|\s+Ref|$)`)
	boiTowards    = regexp.MustCompile(`(?i)towards\s+([^.\n]+?)(?:\s+via|\s+Ref|\s+on|$)`)
	boiTo         = regexp.MustCompile(`(?i)to\s+([^.\n]+?)(?:\s+via|\s+Ref|\s+on|$)`)
	boiFrom       = regexp.MustCompile(`(?i)from\s+([^.\n]+?)(?:\s+via|\s+Ref|\s+on|$)`)
	boiAcct       = regexp.MustCompile(`(?i)A/c\s*(?:XX|X\*+)?(\d{4})`)
	boiAcctEnd    = regexp.MustCompile(`(?i)(?:Account|A/c)\s+ending\s+(\d{4})`)
	boiAcctNo     = regexp.MustCompile(`(?i)A/c\s+No\.?\s*(?:XX|X\*+)?(\d{4})`)
	boiRefNo      = regexp.MustCompile(`(?i)Ref\s+No\.?\s*(\d+)`)
	boiReference  = regexp.MustCompile(`(?i)Reference[:\s]+(\w+)`)
	boiTxn        = regexp.MustCompile(`(?i)Txn\s*(?:ID|#)[:\s]*(\w+)`)
	boiUPIRef     = regexp.MustCompile(`(?i)UPI[:\s]+(\d+)`)
	boiBal        = regexp.MustCompile(`(?i)Bal[:\s]+Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	boiBalAvail   = regexp.MustCompile(`(?i)Available\s+Balance[:\s]+Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	boiBalAvl     = regexp.MustCompile(`(?i)Avl\s+Bal[:\s]+Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
)

// NewBankOfIndia builds the Bank of India rule set.
func NewBankOfIndia() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "Bank of India",
		Currency: "INR",
		MatchSender: senderMatcher(
			[]string{"BOIIND", "BOIBNK"},
			nil,
			regexp.MustCompile(`^[A-Z]{2}-BOIIND-[ST]$`),
			regexp.MustCompile(`^[A-Z]{2}-BOIBNK-[ST]$`),
			regexp.MustCompile(`^[A-Z]{2}-BOI-[ST]$`),
			regexp.MustCompile(`^[A-Z]{2}-BOIIND$`),
			regexp.MustCompile(`^[A-Z]{2}-BOIBNK$`),
			regexp.MustCompile(`^[A-Z]{2}-BOI$`),
			regexp.MustCompile(`^BK-BOIIND.*$`),
			regexp.MustCompile(`^JD-BOIIND.*$`),
		),
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				// Future debit notices are mandate territory, not spend.
				if strings.Contains(lower, "will be") {
					return false, true
				}
				if strings.Contains(lower, "call") && strings.Contains(lower, "if not done by you") {
					if containsAny(lower, "debited", "credited", "withdrawn", "transferred") {
						return true, true
					}
				}
				if containsAny(lower, "otp", "one time password", "verification code") {
					return false, true
				}
				if containsAny(lower, "offer", "discount", "cashback offer", "win ") {
					return false, true
				}
				return false, false
			},
		},
		Amount: []parser.AmountRule{
			reAmount(boiRsVerb),
			reAmount(boiINRVerb),
			reAmount(boiWithdrawn),
		},
		Merchant: []parser.StringRule{
			boiMerchant,
		},
		Reference: []parser.StringRule{
			reString(boiRefNo),
			reString(boiReference),
			reString(boiTxn),
			reString(boiUPIRef),
		},
		Account: []parser.StringRule{
			reString(boiAcct),
			reString(boiAcctEnd),
			reString(boiAcctNo),
		},
		Balance: []parser.AmountRule{
			reAmount(boiBal),
			reAmount(boiBalAvail),
			reAmount(boiBalAvl),
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				if strings.Contains(lower, "mandate") &&
					containsAny(lower, "mutual fund", "iccl", "groww", "zerodha", "kuvera", "paytm money") {
					return parser.Investment, true
				}
				if strings.Contains(lower, "debited") && strings.Contains(lower, "and credited to") {
					return parser.Expense, true
				}
				if strings.Contains(lower, "credited") && strings.Contains(lower, "and debited from") {
					return parser.Income, true
				}
				return 0, false
			},
		},
	}
}

func boiMerchant(message string) (string, bool) {
	lower := strings.ToLower(message)

	// Mandate executions name the platform ("via GROWW") or the scheme
	// ("towards ICCL - Mutual Funds - Autopa...").
	if strings.Contains(lower, "mandate") && strings.Contains(lower, "towards") {
		if m := boiVia.FindStringSubmatch(message); m != nil {
			platform := common.CleanMerchantName(strings.TrimSpace(m[1]))
			if common.IsValidMerchantName(platform) {
				return platform, true
			}
		}
		if m := boiTowardsFor.FindStringSubmatch(message); m != nil {
			merchant := boiAutopa.ReplaceAllString(strings.TrimSpace(m[1]), "")
			merchant = strings.TrimSpace(merchant)
			if common.IsValidMerchantName(merchant) {
				return common.CleanMerchantName(merchant), true
			}
		}
	}

	for _, re := range []*regexp.Regexp{boiCreditedTo, boiDebitedFr} {
		if m := re.FindStringSubmatch(message); m != nil {
			merchant := common.CleanMerchantName(strings.TrimSpace(m[1]))
			if common.IsValidMerchantName(merchant) {
				return merchant, true
			}
		}
	}

	if strings.Contains(lower, "atm") || strings.Contains(lower, "withdrawn") {
		if m := boiATMAt.FindStringSubmatch(message); m != nil {
			location := common.CleanMerchantName(strings.TrimSpace(m[1]))
			if common.IsValidMerchantName(location) {
				return "ATM - " + location, true
			}
		}
		return "ATM", true
	}

	if !strings.Contains(lower, "mandate") {
		if m := boiTowards.FindStringSubmatch(message); m != nil {
			merchant := common.CleanMerchantName(strings.TrimSpace(m[1]))
			if common.IsValidMerchantName(merchant) {
				return merchant, true
			}
		}
	}

	for _, re := range []*regexp.Regexp{boiTo, boiFrom} {
		if m := re.FindStringSubmatch(message); m != nil {
			merchant := common.CleanMerchantName(strings.TrimSpace(m[1]))
			if common.IsValidMerchantName(merchant) {
				return merchant, true
			}
		}
	}
	return "", false
}
