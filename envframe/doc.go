// Copyright © 2017-2022 Norbert Pillmayer <norbert@pillmayer.com>
//
// BSD-style license. See LICENSE file.

// Package envframe provides a concrete, cloneable lokal.EvalEnv: a chain
// of scoped binding frames adapted from the teacher's runtime package
// (runtime/memframe.go, runtime/symtable.go), reworked from a
// push/pop call stack of frames into a tree of immutable-until-cloned
// frames — one clone per Earley item, per §3's environment-cloning
// requirement, with copy-on-write bindings so Clone stays O(1) until a
// rule's Eval actually writes a new binding.
package envframe
