/*
Package lokal implements a parameterized, locally-lexed Earley parser.

Earley's algorithm for parsing ambiguous grammars has been known since 1968.
This package extends it in two ways that practical, hand-edited little
languages tend to need and that a textbook recogniser does not give you:

Every grammar symbol carries an input parameter and, once recognised, an
output parameter. Both are computed by user-supplied evaluation functions as
the chart fills in, so a rule can reject a derivation (by returning no
parameter) or thread semantic information (operator precedence, indentation
level, a symbol table scope, …) through the parse without a separate
attribute-grammar pass.

Lexing is local instead of global: there is no separate tokenizer run ahead
of the parser. At each input position the chart determines which terminals
are even being waited on, and only those are asked for. A terminal may be
satisfied by a conventional `Lexer`, or — since terminals may appear on the
left-hand side of rules too — by recursively running this very parser over
the same grammar ("scannerless" terminals). When more than one token
overlaps at a position, a pluggable `Selector` arbitrates which are admitted,
phase by phase, as the chart reveals more candidates.

Package layout

  - This package (`lokal`) holds the shared vocabulary: symbols, rules,
    grammars, items, tokens and the external contracts (`Lexer`, `Selector`,
    `ConstructResult`, `Input`). Subpackages depend on it, not the reverse.
  - `earley` is the chart-filling fixpoint and the local lexing loop: the
    actual parser.
  - `result` assembles parse results from the final chart via a memoized,
    explicit-stack traversal.
  - `iteratable` is a small destructive set container used for chart bins.
  - `lexer` and `lexer/lexmach` provide the `Lexer` side of a parse;
    `selector` provides ready-made `Selector` policies.
  - `envframe` provides a ready-made, cloneable `EvalEnv`.
  - `value` provides a small comparable value type usable as `Param`/`Result`.

This is a library: there is no CLI, no file I/O, and no incremental
re-parsing — a parse always starts from a clean chart.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lokal
