package earley

import (
	"github.com/npillmayer/lokal"
	"github.com/npillmayer/lokal/iteratable"
)

// bin is the set of Earley items whose dot currently sits at one chart
// position, deduplicated by item identity (§3).
type bin struct {
	*iteratable.Set
}

func newBin(position int) *bin {
	return &bin{iteratable.NewSet(position)}
}

// add inserts it, returning true if it was not already present.
func (b *bin) add(it *lokal.Item) bool {
	return b.Add(it.Key(), it)
}

// items returns a snapshot of the bin's current items.
func (b *bin) items() []*lokal.Item {
	raw := b.Items()
	out := make([]*lokal.Item, len(raw))
	for i, r := range raw {
		out[i] = r.(*lokal.Item)
	}
	return out
}

// chart is the ordered sequence of bins for one (sub-)parse, indexed by
// chart position minus the parse's start offset. It grows on demand as
// Scan discovers tokens longer than one position (§3).
type chart struct {
	start int
	bins  []*bin
}

func newChart(start int) *chart {
	return &chart{start: start, bins: []*bin{newBin(start)}}
}

// numBins returns how many bins currently exist.
func (c *chart) numBins() int { return len(c.bins) }

// at returns the bin for absolute chart position k, growing the chart with
// fresh empty bins if necessary. Predict and Complete never need this
// (they only ever touch an existing bin); Scan does, when it discovers a
// token that reaches beyond the current chart length.
func (c *chart) at(k int) *bin {
	idx := k - c.start
	for idx >= len(c.bins) {
		c.bins = append(c.bins, newBin(c.start+len(c.bins)))
	}
	return c.bins[idx]
}

// topNonEmpty returns the largest absolute position with a non-empty bin,
// or c.start if every bin is empty (used for the best-effort error locus
// on parse failure, §4.4/§7).
func (c *chart) topNonEmpty() int {
	top := c.start
	for i, b := range c.bins {
		if b.Size() > 0 {
			top = c.start + i
		}
	}
	return top
}

// predict implements §4.2 Predict over bin k: for each item waiting on a
// symbol treated as nonterminal, seed an initial item for every rule with
// that symbol as LHS. Returns whether any item was added.
func predict(g *lokal.Grammar, c *chart, k int, treatAsNonterminal map[int]bool) bool {
	b := c.at(k)
	changed := false
	for _, it := range b.items() {
		rule := g.Rule(it.RuleIndex)
		sym, ok := it.NextSymbol(rule)
		if !ok || !sym.TreatedAsNonterminal(treatAsNonterminal) {
			continue
		}
		for _, ruleIdx := range g.RulesOf(sym) {
			r := g.Rule(ruleIdx)
			newItem, ok := r.InitialItem(k, it.NextParam())
			if ok && b.add(newItem) {
				changed = true
			}
		}
	}
	return changed
}

// complete implements §4.2 Complete over bin k: for each completed item,
// advance every item in its origin bin that was waiting on its LHS symbol
// with a matching input parameter. Returns whether any item was added.
func complete(g *lokal.Grammar, c *chart, k int, treatAsNonterminal map[int]bool) bool {
	b := c.at(k)
	changed := false
	for _, it := range b.items() {
		rule := g.Rule(it.RuleIndex)
		if !it.Completed(rule) {
			continue
		}
		origin := c.at(it.Origin())
		for _, j := range origin.items() {
			jrule := g.Rule(j.RuleIndex)
			jsym, ok := j.NextSymbol(jrule)
			if !ok || jsym != rule.LHS || j.NextParam() != it.In() {
				continue
			}
			nextItem, ok := jrule.NextItem(j, it.Out(), nil, k)
			if ok && b.add(nextItem) {
				changed = true
			}
		}
	}
	return changed
}

// scan implements §4.2 Scan over bin k: for each item waiting on a
// terminal not treated as nonterminal, consult tokens for a match and, for
// every admitted token, advance the item into the bin the token's length
// reaches. May grow the chart. Returns whether any item was added.
func scan(g *lokal.Grammar, c *chart, tokens lokal.Tokens, k int, treatAsNonterminal map[int]bool) bool {
	b := c.at(k)
	changed := false
	for _, it := range b.items() {
		rule := g.Rule(it.RuleIndex)
		sym, ok := it.NextSymbol(rule)
		if !ok || sym.TreatedAsNonterminal(treatAsNonterminal) {
			continue
		}
		key := lokal.TerminalKey{TerminalIndex: sym.Index, InputParam: it.NextParam()}
		set, ok := tokens[key]
		if !ok {
			continue
		}
		set.Each(func(t lokal.Token) {
			to := k + t.Length
			target := c.at(to)
			nextItem, ok := rule.NextItem(it, t.OutputParam, t.Result, to)
			if ok && target.add(nextItem) {
				changed = true
			}
		})
	}
	return changed
}

// pi repeats predict, complete and scan over bin k until a full pass adds
// no item anywhere (including into later bins via scan), per §4.2. It
// returns whether any item was added across the whole call.
func pi(g *lokal.Grammar, c *chart, tokens lokal.Tokens, k int, treatAsNonterminal map[int]bool) bool {
	any := false
	for {
		changed := predict(g, c, k, treatAsNonterminal)
		changed = complete(g, c, k, treatAsNonterminal) || changed
		changed = scan(g, c, tokens, k, treatAsNonterminal) || changed
		if !changed {
			return any
		}
		any = true
	}
}
