package lokal

import "fmt"

// Param is a user-chosen value threaded through rule evaluation as the
// input and output parameter of a grammar symbol. Concrete values must be
// comparable: they are used as map keys throughout (Tokens, ItemKey, result
// maps), exactly as Go's own map-key rule demands.
type Param = any

// Result is a user-constructed value produced by the ConstructResult
// callbacks (eval_rule, terminal, merge) during result construction.
type Result = any

// Symbol is a grammar symbol: either a terminal or a nonterminal. The two
// index spaces are disjoint by tag, not by shared numbering — a Terminal{0}
// and a Nonterminal{0} are different symbols.
type Symbol struct {
	Terminal bool
	Index    int
}

// T is a convenience constructor for a terminal symbol.
func T(index int) Symbol { return Symbol{Terminal: true, Index: index} }

// N is a convenience constructor for a nonterminal symbol.
func N(index int) Symbol { return Symbol{Terminal: false, Index: index} }

func (s Symbol) String() string {
	if s.Terminal {
		return fmt.Sprintf("T%d", s.Index)
	}
	return fmt.Sprintf("N%d", s.Index)
}

// TreatedAsNonterminal reports whether s should be handled by Predict and
// Complete rather than Scan for one particular (sub-)parser instance: true
// for every nonterminal, and for terminals whose index has been added to
// the instance's treatAsNonterminal set (see §4.5 — scannerless terminals).
func (s Symbol) TreatedAsNonterminal(treatAsNonterminal map[int]bool) bool {
	if !s.Terminal {
		return true
	}
	return treatAsNonterminal[s.Index]
}
