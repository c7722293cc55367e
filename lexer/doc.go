// Copyright © 2017-2022 Norbert Pillmayer <norbert@pillmayer.com>
//
// BSD-style license. See LICENSE file.

// Package lexer collects lokal.Lexer implementations. Unlike the teacher's
// scanner package, these are not streaming tokenizers: local lexing calls a
// Lexer once per (terminal, chart position) it is actually waiting on
// (§4.3, §6), so every implementation here answers "does this terminal
// match starting right here, and how long" rather than producing a token
// stream up front.
//
// The lexmach subpackage adapts github.com/timtadh/lexmachine, the
// teacher's own DFA-based scanner library, to that pull model.
package lexer
