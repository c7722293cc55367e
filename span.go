package lokal

import "fmt"

// Span is a small type for capturing a run of input positions. For every
// terminal and non-terminal, the chart tracks which input positions a
// symbol's recognition covers. A span denotes a start position and the
// position just behind the end.
type Span [2]int // (x…y)

// From returns the start value of a span.
func (s Span) From() int { return s[0] }

// To returns the end value of a span.
func (s Span) To() int { return s[1] }

// Len returns the length of (x…y).
func (s Span) Len() int { return s[1] - s[0] }

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
