package parser

// Registry holds the ordered collection of institution rule sets. Order is a
// first-class invariant: several sender predicates are broad substring
// matches, and an overlap resolves to whichever rule set registered first.
// The registry is built once at startup and read-only afterwards, so lookups
// are safe from any goroutine.
type Registry struct {
	ruleSets []*RuleSet
}

// NewRegistry builds a registry from rule sets in dispatch order.
func NewRegistry(ruleSets ...*RuleSet) *Registry {
	return &Registry{ruleSets: ruleSets}
}

// Resolve returns the first rule set whose sender predicate matches.
// Resolution is a linear scan; at ~50 rule sets that is cheaper than
// anything fancier.
func (r *Registry) Resolve(sender string) (*RuleSet, bool) {
	for _, rs := range r.ruleSets {
		if rs.CanHandle(sender) {
			return rs, true
		}
	}
	return nil, false
}

// Parse resolves the sender and runs the matched rule set's pipeline.
// Unknown senders yield nothing: no rule set means no best-effort guess.
func (r *Registry) Parse(text, sender string, timestamp int64) (*Transaction, bool) {
	rs, ok := r.Resolve(sender)
	if !ok {
		return nil, false
	}
	return rs.Parse(text, sender, timestamp)
}

// TryParseMandate resolves the sender and runs the matched rule set's mandate
// rules. Institutions without mandate support return false unconditionally.
func (r *Registry) TryParseMandate(text, sender string) (*MandateInfo, bool) {
	rs, ok := r.Resolve(sender)
	if !ok {
		return nil, false
	}
	return rs.TryParseMandate(text)
}

// RuleSets returns the rule sets in dispatch order.
func (r *Registry) RuleSets() []*RuleSet {
	return r.ruleSets
}
