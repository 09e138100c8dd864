// Package common holds the pattern library and text helpers shared by every
// institution rule set. Regex compilation is expensive, so everything here is
// compiled once at init and reused.
package common

import "regexp"

// Amount patterns, tried in order. The first capture group is the numeric text.
var (
	AmountRs     = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	AmountINR    = regexp.MustCompile(`(?i)INR\s*([0-9,]+(?:\.\d{2})?)`)
	AmountRupee  = regexp.MustCompile(`₹\s*([0-9,]+(?:\.\d{2})?)`)
	AmountGroups = []*regexp.Regexp{AmountRs, AmountINR, AmountRupee}
)

// Reference number patterns.
var (
	RefGeneric = regexp.MustCompile(`(?i)(?:Ref|Reference|Txn|Transaction)(?:\s+No)?[:\s]+([A-Z0-9]+)`)
	RefUPI     = regexp.MustCompile(`(?i)UPI[:\s]+([0-9]+)`)
	RefNumber  = regexp.MustCompile(`(?i)Reference\s+Number[:\s]+([A-Z0-9]+)`)
	RefGroups  = []*regexp.Regexp{RefGeneric, RefUPI, RefNumber}
)

// Account suffix patterns (last 4 digits of the affected account or card).
var (
	AccountMasked  = regexp.MustCompile(`(?i)(?:A/c|Account|Acct)(?:\s+No)?\.?\s+(?:XX+)?(\d{4})`)
	CardMasked     = regexp.MustCompile(`(?i)Card\s+(?:XX+)?(\d{4})`)
	AccountGeneric = regexp.MustCompile(`(?i)(?:A/c|Account).*?(\d{4})(?:\s|$)`)
	AccountGroups  = []*regexp.Regexp{AccountMasked, CardMasked, AccountGeneric}
)

// Post-transaction balance patterns.
var (
	BalanceAvl     = regexp.MustCompile(`(?i)(?:Bal|Balance|Avl Bal|Available Balance)[:\s]+(?:Rs\.?\s*)?([0-9,]+(?:\.\d{2})?)`)
	BalanceUpdated = regexp.MustCompile(`(?i)(?:Updated Balance|Remaining Balance)[:\s]+(?:Rs\.?\s*)?([0-9,]+(?:\.\d{2})?)`)
	BalanceGroups  = []*regexp.Regexp{BalanceAvl, BalanceUpdated}
)

// Merchant phrase patterns. Capture stops before the usual trailing noise
// ("on", "at", "Ref", "UPI") which the normalizer would otherwise have to strip.
var (
	MerchantTo     = regexp.MustCompile(`(?i)to\s+([^.\n]+?)(?:\s+on|\s+at|\s+Ref|\s+UPI)`)
	MerchantFrom   = regexp.MustCompile(`(?i)from\s+([^.\n]+?)(?:\s+on|\s+at|\s+Ref|\s+UPI)`)
	MerchantAt     = regexp.MustCompile(`(?i)at\s+([^.\n]+?)(?:\s+on|\s+Ref)`)
	MerchantFor    = regexp.MustCompile(`(?i)for\s+([^.\n]+?)(?:\s+on|\s+at|\s+Ref)`)
	MerchantGroups = []*regexp.Regexp{MerchantTo, MerchantFrom, MerchantAt, MerchantFor}
)

// Available credit limit patterns, only consulted for credit card messages.
var LimitGroups = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Available\s+limit\s+Rs\.([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)Available\s+limit:?\s*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)Avl\s+Lmt:?\s*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)Avail\s+Limit:?\s*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)Available\s+Credit\s+Limit:?\s*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)(?:^|\s)Limit:?\s*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`),
}

// Merchant cleaning patterns. Stripping order matters: date suffixes can carry
// dashes, so the trailing-dash strip runs after the date/time strips.
var (
	CleanTrailingParens = regexp.MustCompile(`\s*\(.*?\)\s*$`)
	CleanRefSuffix      = regexp.MustCompile(`(?i)\s+Ref\s+No.*`)
	CleanDateSuffix     = regexp.MustCompile(`\s+on\s+\d{2}.*`)
	CleanUPISuffix      = regexp.MustCompile(`(?i)\s+UPI.*`)
	CleanTimeSuffix     = regexp.MustCompile(`\s+at\s+\d{2}:\d{2}.*`)
	CleanTrailingDash   = regexp.MustCompile(`\s*-\s*$`)
	CleanPvtLtd         = regexp.MustCompile(`(?i)(\s+PVT\.?\s*LTD\.?|\s+PRIVATE\s+LIMITED)$`)
	CleanLtd            = regexp.MustCompile(`(?i)(\s+LTD\.?|\s+LIMITED)$`)
)

// FindAmount runs the candidate patterns in order and returns the first
// numeric capture, or "" when nothing matches.
func FindAmount(patterns []*regexp.Regexp, message string) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(message); m != nil {
			return m[1]
		}
	}
	return ""
}
