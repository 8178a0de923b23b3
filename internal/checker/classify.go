// Package checker implements component D: the expression type checker,
// the single largest piece of the design (spec.md §2: "50%"). Check is the
// entry point every other node-kind function in this package ultimately
// serves; see checker.go.
package checker

import (
	"strings"

	"github.com/funvibe/specblock/internal/annast"
	"github.com/funvibe/specblock/internal/diagnostics"
	"github.com/funvibe/specblock/internal/types"
)

// isIntly reports whether t is Int or IntLiteral ("IntLike" in spec.md's
// operator table).
func isIntly(t types.Type) bool {
	switch t.(type) {
	case types.Int, types.IntLiteral:
		return true
	}
	return false
}

// isIntlyOrFixedBytes additionally admits FixedBytes, the wider operand set
// spec.md's shift and relational operator rows accept.
func isIntlyOrFixedBytes(t types.Type) bool {
	if isIntly(t) {
		return true
	}
	_, ok := t.(types.FixedBytes)
	return ok
}

func isBool(t types.Type) bool {
	_, ok := t.(types.Bool)
	return ok
}

// isValidExponent implements the `**` row's extra constraint on its right
// operand: "unsigned and non-negative literal if literal". A literal's sign
// is read off its raw lexical text since IntLiteral itself carries no
// value.
func isValidExponent(expr annast.Expression, t types.Type) bool {
	switch tt := t.(type) {
	case types.Int:
		return !tt.Signed
	case types.IntLiteral:
		lit, ok := expr.(*annast.IntLiteralExpr)
		if !ok {
			return true
		}
		return !strings.HasPrefix(strings.TrimSpace(lit.Value), "-")
	default:
		return false
	}
}

// ImplicitlyCastable is the exposed operation of the same name (spec.md
// §6): T is implicitly castable to U. fromExpr is part of the exposed
// signature but is not consulted: an IntLiteral casts to every Int width
// regardless of the literal's value. Pass nil when no source expression is
// available (internal unify() calls always do).
func ImplicitlyCastable(fromExpr annast.Expression, from, to types.Type) bool {
	if types.Equal(from, to) {
		return true
	}
	switch f := from.(type) {
	case types.IntLiteral:
		_, ok := to.(types.Int)
		return ok
	case types.StringLiteral:
		p, ok := to.(types.Pointer)
		if !ok {
			return false
		}
		switch p.To.(type) {
		case types.Bytes, types.String:
			return true
		default:
			return false
		}
	case types.Int:
		t, ok := to.(types.Int)
		return ok && f.Signed == t.Signed && f.Bits <= t.Bits
	case types.Address:
		t, ok := to.(types.Address)
		return ok && !t.Payable
	case types.Pointer:
		t, ok := to.(types.Pointer)
		return ok && types.Equal(f.To, t.To)
	default:
		return false
	}
}

// unify finds the common type of a and b such that one implicitly casts to
// the other (spec.md §4.D binary-operator table), or reports
// IncompatibleTypes at rng.
func unify(rng diagnostics.Range, a, b types.Type) (types.Type, error) {
	if ImplicitlyCastable(nil, a, b) {
		return b, nil
	}
	if ImplicitlyCastable(nil, b, a) {
		return a, nil
	}
	return nil, diagnostics.IncompatibleTypes(rng, a, b)
}
