package lokal

import "fmt"

// Grammar is an immutable description of a set of rules, indexed by their
// left-hand side for fast Predict/Complete lookups (§4.1).
type Grammar struct {
	Rules   []*Rule
	bySymbol map[Symbol][]int
}

// NewGrammar validates rules and builds a Grammar. It returns an error if
// any rule's Index does not match its position in the slice — a
// structural precondition violation, caught here rather than at parse
// time (§7).
func NewGrammar(rules ...*Rule) (*Grammar, error) {
	g := &Grammar{
		Rules:    rules,
		bySymbol: make(map[Symbol][]int, len(rules)),
	}
	for i, r := range rules {
		if r.Index != i {
			return nil, fmt.Errorf("lokal: rule at position %d carries index %d", i, r.Index)
		}
		g.bySymbol[r.LHS] = append(g.bySymbol[r.LHS], r.Index)
	}
	return g, nil
}

// RulesOf returns the indices of every rule whose LHS is sym, in the order
// they were added to the grammar.
func (g *Grammar) RulesOf(sym Symbol) []int {
	return g.bySymbol[sym]
}

// Rule returns the rule at index i. Callers are expected to only pass
// indices obtained from RulesOf or from an Item.RuleIndex of an item that
// originated from this grammar.
func (g *Grammar) Rule(i int) *Rule {
	return g.Rules[i]
}
