// Copyright © 2017-2022 Norbert Pillmayer <norbert@pillmayer.com>
//
// BSD-style license. See LICENSE file.

// Package earley implements the parameterized, locally-lexing Earley chart
// parser: Predict/Complete/Scan over a growing chart of bins (chart.go),
// interleaved with on-demand token discovery (lexing.go), topped by the
// Engine driver in this file and by bottom-up result construction in the
// sibling result package.
package earley

import (
	"github.com/npillmayer/lokal"
	"github.com/npillmayer/lokal/result"
)

// Engine holds everything one parameterized grammar needs to run parses:
// the grammar itself and its three pluggable collaborators (§4, §6).
type Engine struct {
	Grammar            *lokal.Grammar
	Lexer              lokal.Lexer
	Selector           lokal.Selector
	ConstructResult    lokal.ConstructResult
	TerminalParseModes map[int]lokal.TerminalParseModeSpec
	Semantics          lokal.Semantics
}

// NewEngine builds an Engine from its collaborators. modes may be nil; any
// terminal absent from it defaults to LongestMatch.
func NewEngine(g *lokal.Grammar, lexer lokal.Lexer, selector lokal.Selector, cr lokal.ConstructResult, modes map[int]lokal.TerminalParseModeSpec, semantics lokal.Semantics) *Engine {
	return &Engine{
		Grammar:            g,
		Lexer:              lexer,
		Selector:           selector,
		ConstructResult:    cr,
		TerminalParseModes: modes,
		Semantics:          semantics,
	}
}

func (e *Engine) modeFor(terminalIndex int) lokal.TerminalParseModeSpec {
	if e.TerminalParseModes != nil {
		if m, ok := e.TerminalParseModes[terminalIndex]; ok {
			return m
		}
	}
	return lokal.TerminalParseModeSpec{Mode: lokal.LongestMatch}
}

// Parse is the public entry point (§4.4): parse symbol, with input
// parameter param, starting at position in input.
func (e *Engine) Parse(input lokal.Input, position int, symbol lokal.Symbol, param lokal.Param) lokal.ParseResult {
	return e.parse(input, position, symbol, param, nil)
}

// parse is the recursive driver shared by Parse and by scannerless
// terminals' own sub-parses (§4.4, §4.5): seed bin 0 with symbol's rules,
// run computeBin over every chart position in turn (each call may grow the
// chart), then search bins from the highest position down to startPosition
// for a recognition and, on the first one found, construct its results.
func (e *Engine) parse(input lokal.Input, startPosition int, symbol lokal.Symbol, param lokal.Param, inherited map[int]bool) lokal.ParseResult {
	treatAsNonterminal := make(map[int]bool, len(inherited)+1)
	for k, v := range inherited {
		treatAsNonterminal[k] = v
	}
	if symbol.Terminal {
		// A scannerless terminal being sub-parsed is, for the duration of
		// that sub-parse, treated as its own nonterminal (§4.5) — this is
		// the only way the set ever grows, and only downward in recursion.
		treatAsNonterminal[symbol.Index] = true
	}

	c := newChart(startPosition)
	for _, idx := range e.Grammar.RulesOf(symbol) {
		r := e.Grammar.Rule(idx)
		if item, ok := r.InitialItem(startPosition, param); ok {
			c.at(startPosition).add(item)
		}
	}

	tracer().Debugf("parse %v @%d: seeded %d rule(s)", symbol, startPosition, len(e.Grammar.RulesOf(symbol)))

	for i := 0; i < c.numBins(); i++ {
		e.computeBin(input, c, c.start+i, treatAsNonterminal)
	}

	for i := c.numBins() - 1; i >= 0; i-- {
		end := c.start + i
		if !findRecognition(e.Grammar, c, symbol, param, startPosition, end) {
			continue
		}
		query := &chartQuery{c: c, g: e.Grammar}
		results := result.Construct(input, e.Grammar, query, e.ConstructResult, treatAsNonterminal, symbol, param, startPosition, end)
		return lokal.ParseResult{Success: &lokal.SuccessResult{Length: end - startPosition, Results: results}}
	}

	return lokal.ParseResult{Failed: &lokal.FailedResult{Position: c.topNonEmpty()}}
}
