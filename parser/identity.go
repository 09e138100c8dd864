package parser

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/rudrakos/finsms/parser/common"
)

// buildIdentityKey derives the deduplication key from the most specific
// attributes available. Notification-based ingestion redelivers events, so
// the delivery timestamp participates only as a last resort; the time written
// inside the message is stable across redeliveries and is preferred.
//
// Preference order, most to least specific:
//
//	reference + message time
//	reference
//	message time + balance
//	message time
//	sender + balance
//	sender + amount + delivery timestamp
func buildIdentityKey(tx *Transaction) string {
	msgTime, hasTime := common.ParseMessageTime(tx.Message)

	var parts []string
	switch {
	case tx.Reference != "" && hasTime:
		parts = []string{tx.Reference, msgTime.UTC().Format("2006-01-02T15:04:05")}
	case tx.Reference != "":
		parts = []string{tx.Reference}
	case hasTime && tx.Balance != nil:
		parts = []string{msgTime.UTC().Format("2006-01-02T15:04:05"), tx.Balance.StringFixed(2)}
	case hasTime:
		parts = []string{msgTime.UTC().Format("2006-01-02T15:04:05")}
	case tx.Balance != nil:
		parts = []string{tx.Sender, tx.Balance.StringFixed(2)}
	default:
		parts = []string{tx.Sender, tx.Amount.StringFixed(2), strconv.FormatInt(tx.Timestamp, 10)}
	}

	sum := md5.Sum([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}
