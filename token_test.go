package lokal

import "testing"

func TestTokenSetDedupsByLengthAndOutput(t *testing.T) {
	set := NewTokenSet()
	if !set.Add(Token{Length: 1, OutputParam: "a", Result: "first"}) {
		t.Fatalf("expected first add to succeed")
	}
	if set.Add(Token{Length: 1, OutputParam: "a", Result: "second"}) {
		t.Fatalf("expected identity-duplicate (Result differs) to be rejected")
	}
	if set.Len() != 1 {
		t.Fatalf("expected 1 distinct token, got %d", set.Len())
	}
}

func TestMergeReportsGrowth(t *testing.T) {
	key := TerminalKey{TerminalIndex: 0}
	dst := Tokens{}
	src := Tokens{key: NewTokenSet()}
	src[key].Add(Token{Length: 1, OutputParam: "a"})

	if !Merge(dst, src) {
		t.Fatalf("expected Merge into an empty destination to report growth")
	}
	if Merge(dst, src) {
		t.Fatalf("expected re-merging the same source to report no growth")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	key := TerminalKey{TerminalIndex: 0}
	orig := Tokens{key: NewTokenSet()}
	orig[key].Add(Token{Length: 1, OutputParam: "a"})

	clone := orig.Clone()
	clone[key].Add(Token{Length: 2, OutputParam: "b"})

	if orig[key].Len() != 1 {
		t.Fatalf("mutating a clone must not affect the original, got len %d", orig[key].Len())
	}
}
