// Copyright © 2017-2022 Norbert Pillmayer <norbert@pillmayer.com>
//
// BSD-style license. See LICENSE file.

// Package result builds application-level values from a recognised parse,
// bottom-up over the finished chart.
//
// Construction is memoized by ItemKey and driven by an explicit work stack
// (github.com/emirpasic/gods/stacks/arraystack) rather than host-language
// recursion, so that a cyclic grammar — one where constructing a result for
// some symbol/span transitively depends on itself — degrades that cycle's
// contribution to "no result" instead of overflowing the call stack (§4.6).
// This is adapted from the explicit-work-stack SPPF traversal the teacher
// uses for its own ambiguous-parse forest (lr/sppf), rebuilt here around
// ItemKey memoization in place of a persistent shared forest object.
package result
