package bank

import (
	"regexp"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/shopspring/decimal"
)

// Bancolombia notifies in Spanish from numeric senders. Amounts use the
// Colombian convention: dots for thousands, comma for decimals
// ($1.000.000,50 is one million pesos and fifty centavos).
var bancolombiaAmount = regexp.MustCompile(`(?i)(Transferiste|Compraste|Pagaste|Recibiste)\s+\$?([0-9.,]+)`)

// NewBancolombia builds the Bancolombia rule set.
func NewBancolombia() *parser.RuleSet {
	return &parser.RuleSet{
		Bank:     "Bancolombia",
		Currency: "COP",
		MatchSender: func(sender string) bool {
			return sender == "87400" || sender == "85540"
		},
		Gate: []parser.GateRule{
			func(message, lower string) (bool, bool) {
				return containsAny(lower, "transferiste", "compraste", "pagaste", "recibiste"), true
			},
		},
		Amount: []parser.AmountRule{
			func(message string) (decimal.Decimal, bool) {
				m := bancolombiaAmount.FindStringSubmatch(message)
				if m == nil {
					return decimal.Zero, false
				}
				raw := strings.NewReplacer(".", "", ",", ".", "$", "").Replace(m[2])
				amount, err := decimal.NewFromString(strings.TrimSpace(raw))
				if err != nil {
					return decimal.Zero, false
				}
				return amount, true
			},
		},
		Merchant: []parser.StringRule{
			func(message string) (string, bool) {
				lower := strings.ToLower(message)
				switch {
				case strings.Contains(lower, "transferiste"):
					return "Transferencia", true
				case strings.Contains(lower, "compraste"):
					return "Compra", true
				case strings.Contains(lower, "pagaste"):
					return "Pago", true
				case strings.Contains(lower, "recibiste"):
					return "Dinero recibido", true
				}
				return "Bancolombia", true
			},
		},
		Type: []parser.TypeRule{
			func(lower string) (parser.TransactionType, bool) {
				switch {
				case containsAny(lower, "transferiste", "compraste", "pagaste"):
					return parser.Expense, true
				case strings.Contains(lower, "recibiste"):
					return parser.Income, true
				}
				return 0, false
			},
		},
	}
}
