package lokal

import "testing"

type nopEnv struct{}

func (nopEnv) Clone() EvalEnv { return nopEnv{} }

func TestInitialItemRejection(t *testing.T) {
	r := &Rule{
		Index:      0,
		LHS:        N(0),
		RHS:        []Symbol{T(0)},
		InitialEnv: nopEnv{},
		Eval: func(env EvalEnv, k int, params []Param) (Param, bool) {
			return nil, false // always reject
		},
	}
	if _, ok := r.InitialItem(0, nil); ok {
		t.Fatalf("expected a rejecting Eval to prevent the initial item")
	}
}

func TestNextItemAdvancesDotAndValues(t *testing.T) {
	r := &Rule{
		Index:      0,
		LHS:        N(0),
		RHS:        []Symbol{T(0)},
		InitialEnv: nopEnv{},
		Eval: func(env EvalEnv, k int, params []Param) (Param, bool) {
			return params[len(params)-1], true
		},
	}
	it, ok := r.InitialItem(3, "in")
	if !ok {
		t.Fatalf("expected initial item to be accepted")
	}
	if it.Dot() != 0 || it.Origin() != 3 {
		t.Fatalf("unexpected initial item: %v", it)
	}

	next, ok := r.NextItem(it, "scanned", "scanned-result", 4)
	if !ok {
		t.Fatalf("expected NextItem to be accepted")
	}
	if !next.Completed(r) {
		t.Fatalf("expected a 1-symbol rule to complete after one NextItem")
	}
	if next.Out() != "scanned" {
		t.Fatalf("expected Out() == %q, got %v", "scanned", next.Out())
	}
	if next.To() != 4 {
		t.Fatalf("expected To() == 4, got %d", next.To())
	}
}

func TestTrialNextItemDoesNotMutate(t *testing.T) {
	calls := 0
	r := &Rule{
		Index:      0,
		LHS:        N(0),
		RHS:        []Symbol{T(0)},
		InitialEnv: nopEnv{},
		Eval: func(env EvalEnv, k int, params []Param) (Param, bool) {
			calls++
			return params[len(params)-1], true
		},
	}
	it, _ := r.InitialItem(0, nil)
	before := it.Dot()
	if !r.TrialNextItem(it, "x") {
		t.Fatalf("expected trial to succeed")
	}
	if it.Dot() != before {
		t.Fatalf("TrialNextItem must not mutate the item it was tried against")
	}
}
