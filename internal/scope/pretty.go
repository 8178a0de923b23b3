package scope

import (
	"fmt"
	"strings"

	"github.com/funvibe/specblock/internal/hostast"
)

// Print renders ctx as an indented, outermost-first listing, the debugging
// aid SPEC_FULL.md §4.G adds for diagnosing resolution failures ("which
// scope did the checker actually search, and in what order") — the
// question a bare UnknownId diagnostic can't answer by itself.
func Print(ctx Context) string {
	var b strings.Builder
	for depth, e := range ctx.entries {
		indent := strings.Repeat("  ", depth)
		switch e := e.(type) {
		case *unitsEntry:
			fmt.Fprintf(&b, "%sglobal (%d source unit(s))\n", indent, len(e.Units))
		case *contractEntry:
			fmt.Fprintf(&b, "%scontract %s (bases: %s)\n", indent, e.Contract.Name, linearizationNames(e.Contract))
		case *functionEntry:
			fmt.Fprintf(&b, "%sfunction %s(%s)\n", indent, e.Function.Name, paramNames(e.Function))
		case *letEntry:
			fmt.Fprintf(&b, "%slet %s\n", indent, strings.Join(e.Scope.Names, ", "))
		}
	}
	return b.String()
}

func linearizationNames(c *hostast.ContractDecl) string {
	names := make([]string, len(c.Linearization))
	for i, base := range c.Linearization {
		names[i] = base.Name
	}
	return strings.Join(names, " -> ")
}

func paramNames(f *hostast.FunctionDecl) string {
	names := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}
