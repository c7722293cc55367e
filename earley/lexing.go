package earley

import (
	"github.com/npillmayer/lokal"
)

// computeBin implements the local lexing loop of §4.3 for chart position k:
// it interleaves Pi with CollectNewTokens until neither produces change,
// re-selecting from the full accumulated candidate pool each phase, and
// finishes with one final Scan using whatever the selector admitted last.
//
// Per the Open Question of §9, this implementation skips the first Pi call
// before the initial token collection at a position (see DESIGN.md); the
// skipped call counts as productive, so Pi always runs at least once.
func (e *Engine) computeBin(input lokal.Input, c *chart, k int, treatAsNonterminal map[int]bool) {
	tokens := lokal.Tokens{}
	alreadySelected := lokal.Tokens{}
	first := true
	for {
		piChanged := first
		if !first {
			piChanged = pi(e.Grammar, c, alreadySelected, k, treatAsNonterminal)
		}
		first = false

		newTokens := e.collectNewTokens(input, c, tokens, k, treatAsNonterminal)
		tokensChanged := lokal.Merge(tokens, newTokens)
		alreadySelected = e.Selector.Select(tokens, alreadySelected)

		if !piChanged && !tokensChanged {
			break
		}
	}
	scan(e.Grammar, c, alreadySelected, k, treatAsNonterminal)
}

// collectNewTokens implements §4.3 CollectNewTokens: for every terminal an
// item in bin k is waiting on, not yet present in tokens, discover new
// candidates by recursively parsing it (scannerless terminals) and by
// asking the configured Lexer, then (for "modified" semantics) filters
// them down to tokens some waiting item could actually consume.
func (e *Engine) collectNewTokens(input lokal.Input, c *chart, tokens lokal.Tokens, k int, treatAsNonterminal map[int]bool) lokal.Tokens {
	b := c.at(k)
	candidates := map[lokal.TerminalKey]lokal.Symbol{}
	for _, it := range b.items() {
		rule := e.Grammar.Rule(it.RuleIndex)
		sym, ok := it.NextSymbol(rule)
		if !ok || sym.TreatedAsNonterminal(treatAsNonterminal) {
			continue
		}
		key := lokal.TerminalKey{TerminalIndex: sym.Index, InputParam: it.NextParam()}
		if _, known := tokens[key]; known {
			continue
		}
		candidates[key] = sym
	}

	newTokens := lokal.Tokens{}
	for key, sym := range candidates {
		set := lokal.NewTokenSet()
		for _, t := range e.subParseTokens(input, sym, key, k, treatAsNonterminal) {
			set.Add(t)
		}
		for _, t := range e.Lexer.Parse(input, k, key) {
			set.Add(t)
		}
		if set.Len() > 0 {
			newTokens[key] = set
		}
	}

	if e.Semantics == lokal.Modified {
		newTokens = e.filterTokens(b, newTokens)
	}
	return newTokens
}

// subParseTokens recursively parses terminal sym "scannerlessly" (its own
// rules define its language) and translates the outcome into tokens per
// the terminal's configured TerminalParseMode (§6).
func (e *Engine) subParseTokens(input lokal.Input, sym lokal.Symbol, key lokal.TerminalKey, k int, treatAsNonterminal map[int]bool) []lokal.Token {
	mode := e.modeFor(sym.Index)
	result := e.parse(input, k, sym, key.InputParam, treatAsNonterminal)

	var toks []lokal.Token
	switch mode.Mode {
	case lokal.LongestMatch:
		if result.Success != nil {
			for out, res := range result.Success.Results {
				toks = append(toks, lokal.Token{Length: result.Success.Length, OutputParam: out, Result: res})
			}
		}
	case lokal.AndNext:
		if result.Success != nil {
			for out, res := range result.Success.Results {
				toks = append(toks, lokal.Token{Length: 0, OutputParam: out, Result: res})
			}
		}
	case lokal.NotNext:
		if result.Success == nil {
			toks = append(toks, lokal.Token{Length: 0, OutputParam: mode.NotNextParam})
		}
	}
	return toks
}

// filterTokens implements the "modified" semantics of §4.3: a new token is
// kept only if some item in b actually waiting on its TerminalKey would
// accept its OutputParam (checked via a trial evaluation that does not
// commit an item).
func (e *Engine) filterTokens(b *bin, newTokens lokal.Tokens) lokal.Tokens {
	if len(newTokens) == 0 {
		return newTokens
	}
	waiting := map[lokal.TerminalKey][]*lokal.Item{}
	for _, it := range b.items() {
		rule := e.Grammar.Rule(it.RuleIndex)
		sym, ok := it.NextSymbol(rule)
		if !ok {
			continue
		}
		key := lokal.TerminalKey{TerminalIndex: sym.Index, InputParam: it.NextParam()}
		waiting[key] = append(waiting[key], it)
	}

	filtered := lokal.Tokens{}
	for key, set := range newTokens {
		items := waiting[key]
		kept := lokal.NewTokenSet()
		set.Each(func(t lokal.Token) {
			for _, it := range items {
				rule := e.Grammar.Rule(it.RuleIndex)
				if rule.TrialNextItem(it, t.OutputParam) {
					kept.Add(t)
					return
				}
			}
		})
		if kept.Len() > 0 {
			filtered[key] = kept
		}
	}
	return filtered
}
