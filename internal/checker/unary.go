package checker

import (
	"github.com/funvibe/specblock/internal/annast"
	"github.com/funvibe/specblock/internal/assert"
	"github.com/funvibe/specblock/internal/diagnostics"
	"github.com/funvibe/specblock/internal/scope"
	"github.com/funvibe/specblock/internal/types"
)

// checkUnary implements `!e` and `-e` (spec.md §4.D). `old(e)` is a
// distinct node kind (OldExpr), dispatched directly in checker.go since its
// type is exactly its operand's — no constraint to enforce here.
func (ck *Checker) checkUnary(e *annast.UnaryExpr, ctx scope.Context) (types.Type, error) {
	operandT, err := ck.Check(e.Operand, ctx)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case annast.UnaryNot:
		if !isBool(operandT) {
			return nil, diagnostics.WrongType(e.Operand, operandT)
		}
		return types.Bool{}, nil
	case annast.UnaryNeg:
		if !isIntly(operandT) {
			return nil, diagnostics.WrongType(e.Operand, operandT)
		}
		return operandT, nil
	default:
		assert.Truef(false, "checker: unhandled unary operator %v", e.Op)
		return nil, nil
	}
}
