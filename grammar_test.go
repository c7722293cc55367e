package lokal

import "testing"

func TestNewGrammarRejectsMisindexedRules(t *testing.T) {
	bad := &Rule{Index: 1, LHS: N(0)}
	if _, err := NewGrammar(bad); err == nil {
		t.Fatalf("expected an error for a rule whose Index does not match its position")
	}
}

func TestRulesOfGroupsBySymbol(t *testing.T) {
	r0 := &Rule{Index: 0, LHS: N(0)}
	r1 := &Rule{Index: 1, LHS: N(0)}
	r2 := &Rule{Index: 2, LHS: N(1)}
	g, err := NewGrammar(r0, r1, r2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := g.RulesOf(N(0))
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Fatalf("expected [0 1] for N(0), got %v", got)
	}
	if len(g.RulesOf(N(2))) != 0 {
		t.Fatalf("expected no rules for an unused symbol")
	}
}

func TestSymbolTreatedAsNonterminal(t *testing.T) {
	if !N(0).TreatedAsNonterminal(nil) {
		t.Fatalf("a nonterminal is always treated as one")
	}
	if T(0).TreatedAsNonterminal(nil) {
		t.Fatalf("a plain terminal is not treated as a nonterminal by default")
	}
	if !T(0).TreatedAsNonterminal(map[int]bool{0: true}) {
		t.Fatalf("a terminal in the set must be treated as a nonterminal")
	}
}
