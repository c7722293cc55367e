// Copyright © 2017-2022 Norbert Pillmayer <norbert@pillmayer.com>
//
// BSD-style license. See LICENSE file.

// Package lexmach adapts github.com/timtadh/lexmachine to lokal.Lexer,
// grounded on the teacher's lr/scanner/lexmach adapter — but one DFA per
// terminal rather than one DFA for a whole token stream, since local
// lexing asks "does terminal T match here" rather than "what's the next
// token" (§4.3, §6).
package lexmach

import (
	"unicode/utf8"

	"github.com/npillmayer/lokal"
	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'lokal.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("lokal.lexer")
}

// Pattern associates one grammar terminal with the regular expression
// lexmachine should recognise it by.
type Pattern struct {
	TerminalIndex int
	Regexp        string
}

const defaultMaxLookahead = 4096

// Adapter is a lokal.Lexer backed by one compiled lexmachine DFA per
// terminal.
type Adapter struct {
	lexers       map[int]*lexmachine.Lexer
	maxLookahead int
}

// NewAdapter compiles one DFA per pattern, returning an error from the
// first pattern that fails to compile.
func NewAdapter(patterns []Pattern) (*Adapter, error) {
	a := &Adapter{
		lexers:       make(map[int]*lexmachine.Lexer, len(patterns)),
		maxLookahead: defaultMaxLookahead,
	}
	for _, p := range patterns {
		lx := lexmachine.NewLexer()
		lx.Add([]byte(p.Regexp), makeToken(p.TerminalIndex))
		if err := lx.Compile(); err != nil {
			tracer().Errorf("compiling DFA for terminal %d: %v", p.TerminalIndex, err)
			return nil, err
		}
		a.lexers[p.TerminalIndex] = lx
	}
	return a, nil
}

func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

var _ lokal.Lexer = (*Adapter)(nil)

// Parse implements lokal.Lexer: it materializes up to maxLookahead runes
// of input starting at position and asks key's terminal DFA for one match
// anchored there. A scanner error (including an unconsumed-input skip,
// which would mean the only match lies further ahead, not at position
// itself) is treated as "no match" rather than retried — local lexing
// only ever wants a match that starts exactly where it asked.
func (a *Adapter) Parse(input lokal.Input, position int, key lokal.TerminalKey) []lokal.Token {
	lx, ok := a.lexers[key.TerminalIndex]
	if !ok {
		return nil
	}
	buf := readAhead(input, position, a.maxLookahead)
	if len(buf) == 0 {
		return nil
	}
	scan, err := lx.Scanner(buf)
	if err != nil {
		tracer().Errorf("building scanner for terminal %d: %v", key.TerminalIndex, err)
		return nil
	}
	tok, err, eof := scan.Next()
	if err != nil || eof || tok == nil {
		return nil
	}
	t := tok.(*lexmachine.Token)
	lexeme := string(t.Lexeme)
	// the chart is rune-indexed (lokal.Input.At yields one rune per
	// position), but m.Bytes/t.Lexeme are raw UTF-8 bytes, so a multibyte
	// lexeme's Length must be its rune count, not its byte count.
	return []lokal.Token{{Length: utf8.RuneCountInString(lexeme), OutputParam: lexeme, Result: lexeme}}
}

// readAhead materializes up to max runes of input as UTF-8 bytes, starting
// at position, so a DFA scan never needs the whole input up front.
func readAhead(input lokal.Input, position, max int) []byte {
	var buf []byte
	for i := 0; i < max; i++ {
		r, ok := input.At(position + i)
		if !ok {
			break
		}
		buf = append(buf, []byte(string(r))...)
	}
	return buf
}
