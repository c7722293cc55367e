package lokal

// EvalEnv is a user value threaded through one rule instantiation's
// evaluation calls. It is cloned on every Earley-item transition (initial
// item, and every subsequent dot-advance), so that two items sharing a
// RuleIndex never see each other's mutations — see §4.1/§5 of the design:
// per-item environment cloning replaces shared-mutable state with owned
// copies.
type EvalEnv interface {
	Clone() EvalEnv
}

// EvalFunc computes the parameter produced by consuming the k-th symbol of
// a rule's right-hand side (k==0 is the rule's own initial evaluation,
// producing the input parameter of R1; k==len(rhs), the call made on
// consuming the last symbol, produces the output parameter of the rule's
// LHS).
// params is laid out [in(L), in(R1), out(R1), in(R2), out(R2), …] as
// assembled so far. A false second return rejects this derivation: the
// Earley item under construction is silently dropped, not an error.
type EvalFunc func(env EvalEnv, k int, params []Param) (Param, bool)
