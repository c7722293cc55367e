package lexer

import "github.com/npillmayer/lokal"

// Literal is a lokal.Lexer matching one fixed rune sequence per terminal
// index — the local-lexing equivalent of the teacher's single-character
// "literals" (terex/terexlang/scan.go), useful for punctuation/keyword
// terminals and for tests that do not need a full DFA.
type Literal struct {
	text map[int]string
}

// NewLiteral builds a Literal lexer from a terminal-index-to-exact-text
// table.
func NewLiteral(text map[int]string) *Literal {
	return &Literal{text: text}
}

var _ lokal.Lexer = (*Literal)(nil)

// Parse implements lokal.Lexer: it succeeds iff key's terminal has a
// configured literal and input matches it rune-for-rune starting at
// position. OutputParam and Result are both the matched text.
func (l *Literal) Parse(input lokal.Input, position int, key lokal.TerminalKey) []lokal.Token {
	text, ok := l.text[key.TerminalIndex]
	if !ok {
		return nil
	}
	runes := []rune(text)
	for i, want := range runes {
		got, ok := input.At(position + i)
		if !ok || got != want {
			return nil
		}
	}
	return []lokal.Token{{Length: len(runes), OutputParam: text, Result: text}}
}
