package earley

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lokal.earley'.
func tracer() tracing.Trace {
	return tracing.Select("lokal.earley")
}

// dumpChart renders every non-empty bin's items, for debugging a stuck or
// unexpectedly failing grammar. Not called by production code paths.
func dumpChart(c *chart) string {
	var b strings.Builder
	for i, bin := range c.bins {
		items := bin.items()
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(&b, "bin[%d]:\n", c.start+i)
		for _, it := range items {
			fmt.Fprintf(&b, "  %s\n", it)
		}
	}
	return b.String()
}
