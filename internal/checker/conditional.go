package checker

import (
	"github.com/funvibe/specblock/internal/annast"
	"github.com/funvibe/specblock/internal/diagnostics"
	"github.com/funvibe/specblock/internal/scope"
	"github.com/funvibe/specblock/internal/types"
)

// checkConditional implements `c ? a : b` (spec.md §4.D).
func (ck *Checker) checkConditional(e *annast.ConditionalExpr, ctx scope.Context) (types.Type, error) {
	condT, err := ck.Check(e.Cond, ctx)
	if err != nil {
		return nil, err
	}
	if !isBool(condT) {
		return nil, diagnostics.WrongType(e.Cond, condT)
	}
	thenT, err := ck.Check(e.Then, ctx)
	if err != nil {
		return nil, err
	}
	elseT, err := ck.Check(e.Otherwise, ctx)
	if err != nil {
		return nil, err
	}
	return unify(e.ExprRange(), thenT, elseT)
}
