package checker

import (
	"github.com/funvibe/specblock/internal/annast"
	"github.com/funvibe/specblock/internal/assert"
	"github.com/funvibe/specblock/internal/diagnostics"
	"github.com/funvibe/specblock/internal/scope"
	"github.com/funvibe/specblock/internal/types"
)

// checkBinary implements spec.md §4.D's binary-operator table. L/R naming
// matches the table; the ternary "IntLiteral? R : L" results for `**`,
// `<<`, and `>>` mean: if the left operand is an untyped literal, the
// result takes the right operand's type, otherwise it takes the left
// operand's (a typed base/shiftee governs the result; an untyped one defers
// to its partner).
func (ck *Checker) checkBinary(e *annast.BinaryExpr, ctx scope.Context) (types.Type, error) {
	L, err := ck.Check(e.Left, ctx)
	if err != nil {
		return nil, err
	}
	R, err := ck.Check(e.Right, ctx)
	if err != nil {
		return nil, err
	}
	rng := e.ExprRange()

	switch e.Op {
	case annast.BinPow:
		if !isIntly(L) {
			return nil, diagnostics.WrongType(e.Left, L)
		}
		if !isIntly(R) || !isValidExponent(e.Right, R) {
			return nil, diagnostics.WrongType(e.Right, R)
		}
		return leftOrRightOnLiteral(L, R), nil

	case annast.BinMul, annast.BinDiv, annast.BinMod, annast.BinAdd, annast.BinSub:
		if !isIntly(L) {
			return nil, diagnostics.WrongType(e.Left, L)
		}
		if !isIntly(R) {
			return nil, diagnostics.WrongType(e.Right, R)
		}
		return unify(rng, L, R)

	case annast.BinShl, annast.BinShr:
		if !isIntlyOrFixedBytes(L) {
			return nil, diagnostics.WrongType(e.Left, L)
		}
		if !isIntly(R) {
			return nil, diagnostics.WrongType(e.Right, R)
		}
		return leftOrRightOnLiteral(L, R), nil

	case annast.BinLt, annast.BinGt, annast.BinLe, annast.BinGe:
		if !isIntlyOrFixedBytes(L) {
			return nil, diagnostics.WrongType(e.Left, L)
		}
		if !isIntlyOrFixedBytes(R) {
			return nil, diagnostics.WrongType(e.Right, R)
		}
		if _, err := unify(rng, L, R); err != nil {
			return nil, err
		}
		return types.Bool{}, nil

	case annast.BinEq, annast.BinNe:
		if _, err := unify(rng, L, R); err != nil {
			return nil, err
		}
		return types.Bool{}, nil

	case annast.BinBitAnd, annast.BinBitOr, annast.BinBitXor:
		if !isIntlyOrFixedBytes(L) {
			return nil, diagnostics.WrongType(e.Left, L)
		}
		if !isIntlyOrFixedBytes(R) {
			return nil, diagnostics.WrongType(e.Right, R)
		}
		return unify(rng, L, R)

	case annast.BinLogicalAnd, annast.BinLogicalOr, annast.BinImplies:
		if !isBool(L) {
			return nil, diagnostics.WrongType(e.Left, L)
		}
		if !isBool(R) {
			return nil, diagnostics.WrongType(e.Right, R)
		}
		return types.Bool{}, nil

	default:
		assert.Truef(false, "checker: unhandled binary operator %v", e.Op)
		return nil, nil
	}
}

func leftOrRightOnLiteral(l, r types.Type) types.Type {
	if _, ok := l.(types.IntLiteral); ok {
		return r
	}
	return l
}
