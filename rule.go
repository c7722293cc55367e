package lokal

import (
	"fmt"
	"strings"
)

// Rule is an immutable grammar production L ⇒ R1…Rn. LHS may itself be a
// terminal: a rule with a terminal LHS is how a "scannerless" terminal's own
// language is defined in terms of other rules in the same grammar (§4.5).
//
// A Rule's Index is its position in the owning Grammar's Rules slice; that
// position is its identity and is validated at grammar construction time.
type Rule struct {
	Index      int
	LHS        Symbol
	RHS        []Symbol
	InitialEnv EvalEnv
	Eval       EvalFunc
}

func (r *Rule) String() string {
	rhs := make([]string, len(r.RHS))
	for i, s := range r.RHS {
		rhs[i] = s.String()
	}
	return fmt.Sprintf("[%d] %v -> %v", r.Index, r.LHS, strings.Join(rhs, " "))
}

// InitialItem builds the initial item for this rule at chart position k,
// given the input parameter p for the rule's LHS. It returns false if the
// rule's evaluation function rejects p at step 0.
func (r *Rule) InitialItem(k int, p Param) (*Item, bool) {
	env := r.InitialEnv.Clone()
	v0, ok := r.Eval(env, 0, []Param{p})
	if !ok {
		return nil, false
	}
	return &Item{
		RuleIndex: r.Index,
		Env:       env,
		Values:    []Param{p, v0},
		Indices:   []int{k},
	}, true
}

// NextItem advances it past its next right-hand-side symbol, having
// consumed it with output parameter v and (for terminals only) scanned
// result res, reaching chart position kPrime. It returns false if the
// rule's evaluation function rejects the new values at this dot position.
func (r *Rule) NextItem(it *Item, v Param, res Result, kPrime int) (*Item, bool) {
	env := it.Env.Clone()

	values := make([]Param, len(it.Values), len(it.Values)+2)
	copy(values, it.Values)
	values = append(values, v)

	results := make([]Result, len(it.Results), len(it.Results)+1)
	copy(results, it.Results)
	results = append(results, res)

	next, ok := r.Eval(env, it.Dot()+1, values)
	if !ok {
		return nil, false
	}
	values = append(values, next)

	indices := make([]int, len(it.Indices), len(it.Indices)+1)
	copy(indices, it.Indices)
	indices = append(indices, kPrime)

	return &Item{
		RuleIndex: r.Index,
		Env:       env,
		Values:    values,
		Results:   results,
		Indices:   indices,
	}, true
}

// TrialNextItem reports whether NextItem would succeed for output
// parameter v, without committing an item or mutating it.Env. It is used
// by the "modified" local-lexing semantics to filter candidate tokens down
// to those some waiting item can actually consume (§4.3).
func (r *Rule) TrialNextItem(it *Item, v Param) bool {
	env := it.Env.Clone()
	values := append(append([]Param{}, it.Values...), v)
	_, ok := r.Eval(env, it.Dot()+1, values)
	return ok
}

// completed reports whether the dot has reached the end of r's RHS.
func (r *Rule) completed(it *Item) bool {
	return it.Dot() == len(r.RHS)
}
