package selector

import "github.com/npillmayer/lokal"

// Longest is a maximal-munch selection policy: for each TerminalKey it
// admits only the candidate token(s) of greatest Length, discarding
// shorter alternatives. Grounded on the disambiguation idiom the teacher's
// SPPF forest pruner applies to ambiguous derivations (lr/sppf), adapted
// here to per-terminal token length instead of forest node span.
type Longest struct{}

var _ lokal.Selector = Longest{}

// Select implements lokal.Selector: per key, the longest token(s) in from,
// unioned with whatever was already selected (a correct Selector never
// un-selects, §4.3).
func (Longest) Select(from, alreadySelected lokal.Tokens) lokal.Tokens {
	out := alreadySelected.Clone()
	for key, set := range from {
		best := -1
		set.Each(func(t lokal.Token) {
			if t.Length > best {
				best = t.Length
			}
		})
		if best < 0 {
			continue
		}
		kept := lokal.NewTokenSet()
		if existing, ok := out[key]; ok {
			existing.Each(func(t lokal.Token) { kept.Add(t) })
		}
		set.Each(func(t lokal.Token) {
			if t.Length == best {
				kept.Add(t)
			}
		})
		out[key] = kept
	}
	return out
}
