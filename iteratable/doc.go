/*
Package iteratable implements iteratable container data structures.

Set is a special-purpose set type, suitable mainly for implementing
algorithms around chart-based parsers. These kinds of algorithms are often
more straightforward to describe as set constructions and operations than as
slice bookkeeping.

Unlike the upstream package this one is adapted from, callers supply their
own dedup key alongside each item (Earley-item identity here is a structural
hash over a few of an item's fields, not the item's pointer, so the set
cannot compute a key on the caller's behalf). All mutating operations are
destructive.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package iteratable
