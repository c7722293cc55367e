package earley

import "github.com/npillmayer/lokal"

// chartQuery adapts a chart to the read-only lokal.ChartQuery interface
// result construction needs, without exposing the chart's internal bin/set
// representation outside this package.
type chartQuery struct {
	c *chart
	g *lokal.Grammar
}

// FindCompleted implements lokal.ChartQuery: completed items in the bin at
// end, originating at start, whose rule's LHS is symbol, whose input
// parameter is in, and — if out is non-nil — whose output parameter is
// *out (§4.6 findItems).
func (q *chartQuery) FindCompleted(symbol lokal.Symbol, in lokal.Param, out *lokal.Param, start, end int) []*lokal.Item {
	b := q.c.at(end)
	var found []*lokal.Item
	for _, it := range b.items() {
		rule := q.g.Rule(it.RuleIndex)
		if !it.Completed(rule) {
			continue
		}
		if rule.LHS != symbol || it.Origin() != start || it.In() != in {
			continue
		}
		if out != nil && it.Out() != *out {
			continue
		}
		found = append(found, it)
	}
	return found
}

// findRecognition reports whether bin end holds a completed item
// recognising symbol with input parameter param, originating at start —
// §4.4 step 4.
func findRecognition(g *lokal.Grammar, c *chart, symbol lokal.Symbol, param lokal.Param, start, end int) bool {
	b := c.at(end)
	for _, it := range b.items() {
		rule := g.Rule(it.RuleIndex)
		if !it.Completed(rule) {
			continue
		}
		if rule.LHS == symbol && it.Origin() == start && it.In() == param {
			return true
		}
	}
	return false
}
