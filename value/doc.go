// Copyright © 2017-2022 Norbert Pillmayer <norbert@pillmayer.com>
//
// BSD-style license. See LICENSE file.

// Package value provides Atom, a small tagged-union value trimmed from the
// teacher's terex.Atom (terex/terex.go) down to the comparable primitive
// kinds (§3 requires every Param/Result to be usable as a Go map key,
// which rules out terex's Cons/Operator/Environment cases). It exists as a
// convenient, ready-made Param/Result for example grammars and tests
// rather than as a requirement of the engine itself, which only ever sees
// Param and Result as lokal.Param = any.
package value
