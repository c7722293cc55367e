package lokal

// Input is a random-access, read-only source of characters. Out-of-range
// positions return (0, false) (§5, §6).
type Input interface {
	At(position int) (rune, bool)
}

// Lexer is the external collaborator asked for terminal matches at a given
// position. It is queried only for terminals some chart item is actually
// waiting on at that position — "local" lexing (§4.3, §6).
type Lexer interface {
	Parse(input Input, position int, key TerminalKey) []Token
}

// Selector arbitrates which of the candidate tokens discovered so far at a
// position are admitted into the chart. It is called in phases as the
// chart reveals new candidates; From is the full accumulated candidate
// pool this phase, AlreadySelected is what prior phases at this position
// have already admitted. A correct Selector returns a superset of
// AlreadySelected — tokens, once selected, cannot be un-selected — and
// never invents a token absent from From (§4.3, §6).
type Selector interface {
	Select(from, alreadySelected Tokens) Tokens
}

// ItemKey identifies a successful parse instance for memoization during
// result construction (§4.6).
type ItemKey struct {
	Symbol                  Symbol
	InputParam, OutputParam Param
	Span                    Span
}

// ChartQuery is the minimal read-only view of a finished chart that result
// construction needs: completed items recognising symbol with input
// parameter in over [start, end), optionally narrowed to one output
// parameter (out == nil means "any"). Implemented by the parsing engine's
// own chart type, kept unexported there (§4.6 findItems).
type ChartQuery interface {
	FindCompleted(symbol Symbol, in Param, out *Param, start, end int) []*Item
}

// CompletedRHS is the view of a fully-recognised rule instantiation handed
// to ConstructResult.EvalRule: one child view, and its already-computed
// result, per right-hand-side symbol.
type CompletedRHS struct {
	Key      ItemKey
	Rule     *Rule
	Children []Child
	Results  []Result // nil entries mark a child whose computation was null
}

// ConstructResult is the external collaborator that turns a recognised
// chart into application-level results. It is called bottom-up as result
// construction unwinds its explicit work stack (§4.6):
//
//   - Terminal lifts a scanned terminal's stored Result into the result
//     domain.
//   - EvalRule folds one completed rule instantiation's children into a
//     single result.
//   - Merge combines every alternative EvalRule result sharing one ItemKey
//     (ambiguity) — and also folds the per-output-param alternatives found
//     at the top level of a parse.
//
// All three may return (nil, false) to signal "no result for this
// alternative"; this is not an error, it simply removes that alternative
// from what its parent Merge sees.
type ConstructResult interface {
	EvalRule(input Input, key ItemKey, completed CompletedRHS) (Result, bool)
	Terminal(key ItemKey, result Result) (Result, bool)
	Merge(key ItemKey, results []Result) (Result, bool)
}

// TerminalParseMode governs how a scannerless terminal's own-grammar
// sub-parse is translated into tokens for the parent parse (§6).
type TerminalParseMode int

const (
	// LongestMatch emits one token per successful sub-parse output
	// parameter, each with the sub-parse's full consumed length. This is
	// the default mode.
	LongestMatch TerminalParseMode = iota
	// AndNext emits, on sub-parse success, zero-length tokens: a
	// lookahead-style assertion that does not itself consume input.
	AndNext
	// NotNext emits a single zero-length token carrying NotNextParam when
	// the sub-parse fails, and nothing when it succeeds: negative
	// lookahead.
	NotNext
)

// TerminalParseModeSpec configures one terminal's parse mode; NotNextParam
// is only consulted when Mode == NotNext.
type TerminalParseModeSpec struct {
	Mode         TerminalParseMode
	NotNextParam Param
}

// Semantics selects between the two documented local-lexing token-filtering
// behaviours (§4.3, §9).
type Semantics int

const (
	// Paper performs no filtering: the selector sees every newly
	// discovered token.
	Paper Semantics = iota
	// Modified restricts newly discovered tokens, before they reach the
	// selector, to those some waiting item could actually consume.
	Modified
)

// ParseResult is the outcome of one parse: exactly one of Failed or
// Success is non-nil.
type ParseResult struct {
	Failed  *FailedResult
	Success *SuccessResult
}

// FailedResult reports the furthest chart position reached.
type FailedResult struct {
	Position int
}

// SuccessResult reports the consumed length and, per possible output
// parameter, the (optional) constructed result.
type SuccessResult struct {
	Length  int
	Results map[Param]Result
}
