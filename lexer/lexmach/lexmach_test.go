package lexmach

import (
	"testing"

	"github.com/npillmayer/lokal"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type runeInput []rune

func (in runeInput) At(position int) (rune, bool) {
	if position < 0 || position >= len(in) {
		return 0, false
	}
	return in[position], true
}

func TestAdapterAnchoredMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lokal.lexer")
	defer teardown()

	a, err := NewAdapter([]Pattern{{TerminalIndex: 0, Regexp: `[0-9]+`}})
	if err != nil {
		t.Fatalf("unexpected error compiling adapter: %v", err)
	}
	toks := a.Parse(runeInput("123abc"), 0, lokal.TerminalKey{TerminalIndex: 0})
	if len(toks) != 1 {
		t.Fatalf("expected 1 token, got %d", len(toks))
	}
	if toks[0].Length != 3 || toks[0].OutputParam != "123" {
		t.Fatalf("unexpected token: %+v", toks[0])
	}
}

func TestAdapterNoMatchAtPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lokal.lexer")
	defer teardown()

	a, err := NewAdapter([]Pattern{{TerminalIndex: 0, Regexp: `[0-9]+`}})
	if err != nil {
		t.Fatalf("unexpected error compiling adapter: %v", err)
	}
	// the only match in "ab123" starts at position 2, not position 0 —
	// local lexing only ever wants a match anchored exactly where it asked.
	toks := a.Parse(runeInput("ab123"), 0, lokal.TerminalKey{TerminalIndex: 0})
	if toks != nil {
		t.Fatalf("expected no match at position 0, got %v", toks)
	}
}

func TestAdapterUnknownTerminal(t *testing.T) {
	a, err := NewAdapter(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	toks := a.Parse(runeInput("123"), 0, lokal.TerminalKey{TerminalIndex: 7})
	if toks != nil {
		t.Fatalf("expected nil for an unconfigured terminal, got %v", toks)
	}
}

func TestAdapterMultibyteLengthIsRuneCount(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lokal.lexer")
	defer teardown()

	a, err := NewAdapter([]Pattern{{TerminalIndex: 0, Regexp: "éx"}})
	if err != nil {
		t.Fatalf("unexpected error compiling adapter: %v", err)
	}
	toks := a.Parse(runeInput("éxyz"), 0, lokal.TerminalKey{TerminalIndex: 0})
	if len(toks) != 1 {
		t.Fatalf("expected 1 token, got %d", len(toks))
	}
	// "éx" is 2 runes but 3 bytes (é is 2 bytes in UTF-8); Length must be
	// the rune count so chart positions (one rune each) line up.
	if toks[0].Length != 2 {
		t.Fatalf("expected rune-counted length 2, got %d (byte length would be %d)", toks[0].Length, len([]byte("éx")))
	}
}
