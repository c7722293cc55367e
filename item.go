package lokal

import (
	"fmt"

	"github.com/cnf/structhash"
)

// Item is an Earley item: a partially (or fully) recognised rule
// instantiation anchored to an origin position, carried forward through the
// chart. See design §3.
//
// Values has length 2+2·Dot(): [in(L), in(R1), out(R1), in(R2), out(R2),
// …, in(R_dot), out(R_dot)] followed by one last entry that is the input
// parameter of R_dot+1 or, once Dot() reaches len(rule.RHS), out(L),
// giving length 2n+2 for a completed item.
// Results has length Dot() (terminal/scanned results only — nonterminal
// results are never stored here, they are recomputed during result
// construction). Indices has length Dot()+1, Indices[0] being the item's
// origin and Indices[i] the chart position reached after consuming Ri.
type Item struct {
	RuleIndex int
	Env       EvalEnv  // private per-item clone; excluded from identity
	Values    []Param  // length 2+2·dot, i.e. 2n+2 once completed
	Results   []Result // length dot; excluded from identity
	Indices   []int    // length dot+1
}

// Dot is the number of right-hand-side symbols this item has consumed.
func (it *Item) Dot() int { return len(it.Indices) - 1 }

// Origin is the chart position this item's rule instantiation started at.
func (it *Item) Origin() int { return it.Indices[0] }

// To is the chart position this item currently sits in (Indices[Dot()]).
func (it *Item) To() int { return it.Indices[it.Dot()] }

// In is the input parameter of the rule's LHS.
func (it *Item) In() Param { return it.Values[0] }

// NextParam is the parameter a not-yet-completed item's next symbol is
// expecting as input, or — once completed — the rule's output parameter.
// Both are the same field: the last entry of Values.
func (it *Item) NextParam() Param { return it.Values[len(it.Values)-1] }

// Out is the output parameter of a completed item's LHS. Defined only once
// Completed(rule) holds; it is, by construction, the same value as
// NextParam().
func (it *Item) Out() Param { return it.Values[len(it.Values)-1] }

// Completed reports whether the dot has reached the end of rule's RHS.
func (it *Item) Completed(rule *Rule) bool { return rule.completed(it) }

// NextSymbol returns the right-hand-side symbol the item is waiting to
// consume, and false if the item is already completed.
func (it *Item) NextSymbol(rule *Rule) (Symbol, bool) {
	dot := it.Dot()
	if dot >= len(rule.RHS) {
		return Symbol{}, false
	}
	return rule.RHS[dot], true
}

// Child is the view of the i-th (0-based) right-hand-side symbol this item
// has consumed: its input/output parameters, its scanned result (nil for
// nonterminals), and the chart span it covers.
type Child struct {
	In, Out Param
	Result  Result
	Span    Span
}

// ChildAt returns the view of the i-th right-hand-side symbol consumed by
// it, 0 <= i < it.Dot().
func (it *Item) ChildAt(i int) Child {
	return Child{
		In:     it.Values[2*i+1],
		Out:    it.Values[2*i+2],
		Result: it.Results[i],
		Span:   Span{it.Indices[i], it.Indices[i+1]},
	}
}

func (it *Item) String() string {
	return fmt.Sprintf("item[rule=%d dot=%d values=%v indices=%v]", it.RuleIndex, it.Dot(), it.Values, it.Indices)
}

// identity is the (RuleIndex, Values, Indices) triple the design mandates
// as an Earley item's equality and hash (§3). Env and Results are
// deliberately excluded: two items differing only in environment state or
// stored terminal-results collapse to one chart entry.
type identity struct {
	RuleIndex int
	Values    []Param
	Indices   []int
}

// Key computes a stable hash of it's identity, used to deduplicate items
// within a bin. Grounded on the teacher's use of structhash for Earley
// backlink keys (lr/earley/earley.go, function hash).
func (it *Item) Key() string {
	h, err := structhash.Hash(identity{it.RuleIndex, it.Values, it.Indices}, 1)
	if err != nil {
		// structhash only fails on unhashable/unexported-field inputs; Param
		// values that cannot be hashed this way are a programmer error in
		// the grammar, not a runtime condition to recover from.
		panic(fmt.Sprintf("lokal: item is not hashable: %v", err))
	}
	return h
}
