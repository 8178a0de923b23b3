// Package assert guards the checker's "should be unreachable" internal
// invariants (spec.md §7: "Internal invariants that should be unreachable
// are fatal assertions distinct from user diagnostics"). Grounded on the
// contract.Assertf pattern used throughout the pulumi legacy binder.
package assert

import "fmt"

// Truef panics with a formatted message if cond is false. It is reserved for
// conditions the checking algorithm itself guarantees can't occur — e.g. an
// overload set narrowing to more than one survivor — never for user-facing
// type errors, which are reported as diagnostics instead.
func Truef(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("internal invariant violated: "+format, args...))
	}
}
