package result

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/lokal"
)

// Construct computes, for every output parameter some completed item
// recognising symbol/in over [start, end) carries, the application-level
// result cr produces for it, and returns the per-output mapping handed back
// as lokal.SuccessResult.Results (§4.6, top-level construct(symbol, param)).
func Construct(input lokal.Input, g *lokal.Grammar, chart lokal.ChartQuery, cr lokal.ConstructResult, treatAsNonterminal map[int]bool, symbol lokal.Symbol, in lokal.Param, start, end int) map[lokal.Param]lokal.Result {
	cache := map[lokal.ItemKey]*cacheEntry{}

	byOut := map[lokal.Param][]lokal.Result{}
	seen := map[lokal.Param]bool{}
	for _, it := range chart.FindCompleted(symbol, in, nil, start, end) {
		out := it.Out()
		if seen[out] {
			continue
		}
		seen[out] = true
		key := lokal.ItemKey{Symbol: symbol, InputParam: in, OutputParam: out, Span: lokal.Span{start, end}}
		r := startKey(input, g, chart, cr, treatAsNonterminal, cache, key)
		if r.has {
			byOut[out] = append(byOut[out], r.val)
		}
	}

	final := make(map[lokal.Param]lokal.Result, len(seen))
	for out := range seen {
		key := lokal.ItemKey{Symbol: symbol, InputParam: in, OutputParam: out, Span: lokal.Span{start, end}}
		merged, ok := cr.Merge(key, byOut[out])
		if ok {
			final[out] = merged
		} else {
			final[out] = nil
		}
	}
	return final
}

// optResult is a Result that may be absent (a null contribution per §4.6 —
// an EvalRule/Terminal/Merge call returning ok == false, or a cycle
// sentinel).
type optResult struct {
	has bool
	val lokal.Result
}

type status int

const (
	statusComputing status = iota
	statusDone
)

// cacheEntry memoizes one ItemKey's already-computed (or in-progress)
// result. An entry found Computing marks a cycle: the cyclic reference
// contributes null rather than recursing forever (§4.6).
type cacheEntry struct {
	status status
	result optResult
}

// frameKind distinguishes the five task shapes of §4.6's work stack.
type frameKind int

const (
	taskStartKey frameKind = iota
	taskStartKeyItem
	taskCompleteKeyItem
	taskCompleteKey
	taskPush
)

type frame struct {
	kind frameKind
	key  lokal.ItemKey
	item *lokal.Item
	n    int
	val  optResult
}

// startKey computes (or returns the cached / cycle-degraded) result for
// root, driving the explicit work stack described in §4.6: StartKey finds
// every completed item for a key and fans out to StartKeyItem per item;
// StartKeyItem fans out to each child (recursing via StartKey for
// nonterminal children, calling Terminal directly for scanned ones) then
// folds them via CompleteKeyItem/EvalRule; CompleteKey merges every item's
// contribution for the key and commits it to the cache.
func startKey(input lokal.Input, g *lokal.Grammar, chart lokal.ChartQuery, cr lokal.ConstructResult, treatAsNonterminal map[int]bool, cache map[lokal.ItemKey]*cacheEntry, root lokal.ItemKey) optResult {
	work := arraystack.New()
	results := arraystack.New()
	work.Push(frame{kind: taskStartKey, key: root})

	for !work.Empty() {
		v, _ := work.Pop()
		fr := v.(frame)

		switch fr.kind {
		case taskStartKey:
			if entry, ok := cache[fr.key]; ok {
				if entry.status == statusDone {
					results.Push(entry.result)
				} else {
					results.Push(optResult{}) // cycle: degrade to null
				}
				continue
			}
			cache[fr.key] = &cacheEntry{status: statusComputing}
			out := fr.key.OutputParam
			items := chart.FindCompleted(fr.key.Symbol, fr.key.InputParam, &out, fr.key.Span.From(), fr.key.Span.To())
			work.Push(frame{kind: taskCompleteKey, key: fr.key, n: len(items)})
			for i := len(items) - 1; i >= 0; i-- {
				work.Push(frame{kind: taskStartKeyItem, key: fr.key, item: items[i]})
			}

		case taskStartKeyItem:
			rule := g.Rule(fr.item.RuleIndex)
			n := len(rule.RHS)
			work.Push(frame{kind: taskCompleteKeyItem, key: fr.key, item: fr.item, n: n})
			for i := n - 1; i >= 0; i-- {
				child := fr.item.ChildAt(i)
				sym := rule.RHS[i]
				childKey := lokal.ItemKey{Symbol: sym, InputParam: child.In, OutputParam: child.Out, Span: child.Span}
				if sym.TreatedAsNonterminal(treatAsNonterminal) {
					work.Push(frame{kind: taskStartKey, key: childKey})
				} else {
					res, ok := cr.Terminal(childKey, child.Result)
					work.Push(frame{kind: taskPush, val: optResult{has: ok, val: res}})
				}
			}

		case taskPush:
			results.Push(fr.val)

		case taskCompleteKeyItem:
			n := fr.n
			vals := make([]optResult, n)
			for i := n - 1; i >= 0; i-- {
				v, _ := results.Pop()
				vals[i] = v.(optResult)
			}
			rule := g.Rule(fr.item.RuleIndex)
			children := make([]lokal.Child, n)
			childResults := make([]lokal.Result, n)
			for i := 0; i < n; i++ {
				children[i] = fr.item.ChildAt(i)
				if vals[i].has {
					childResults[i] = vals[i].val
				}
			}
			completed := lokal.CompletedRHS{Key: fr.key, Rule: rule, Children: children, Results: childResults}
			res, ok := cr.EvalRule(input, fr.key, completed)
			results.Push(optResult{has: ok, val: res})

		case taskCompleteKey:
			n := fr.n
			var alts []lokal.Result
			for i := 0; i < n; i++ {
				v, _ := results.Pop()
				if o := v.(optResult); o.has {
					alts = append(alts, o.val)
				}
			}
			merged, ok := cr.Merge(fr.key, alts)
			r := optResult{has: ok, val: merged}
			cache[fr.key] = &cacheEntry{status: statusDone, result: r}
			results.Push(r)
		}
	}

	v, _ := results.Pop()
	return v.(optResult)
}
