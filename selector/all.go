package selector

import "github.com/npillmayer/lokal"

// All is the "paper" selection policy (§4.3, §9): it admits every
// candidate token unconditionally, exactly as Scott & Johnstone's original
// local lexing algorithm assumes no disambiguation at all happens before
// Scan.
type All struct{}

var _ lokal.Selector = All{}

// Select returns from unchanged: every candidate is already admitted.
func (All) Select(from, alreadySelected lokal.Tokens) lokal.Tokens {
	return from
}
