package checker

import (
	"github.com/funvibe/specblock/internal/annast"
	"github.com/funvibe/specblock/internal/diagnostics"
	"github.com/funvibe/specblock/internal/scope"
	"github.com/funvibe/specblock/internal/types"
)

// checkLet implements `let x1, ..., xn = rhs in body` (spec.md §4.D). The
// let scope's RHSType is filled in before it is pushed, so identifiers in
// body that resolve to one of the bound names never re-check rhs
// themselves (see scope.LetScope).
func (ck *Checker) checkLet(e *annast.LetExpr, ctx scope.Context) (types.Type, error) {
	rhsT, err := ck.Check(e.RHS, ctx)
	if err != nil {
		return nil, err
	}
	n := len(e.Names)
	if tup, ok := rhsT.(types.Tuple); ok {
		if len(tup.Elements) != n {
			return nil, diagnostics.ExprCountMismatch(e)
		}
	} else if n != 1 {
		return nil, diagnostics.ExprCountMismatch(e)
	}

	letScope := &scope.LetScope{Names: e.Names, RHSType: rhsT}
	return ck.Check(e.Body, ctx.WithLet(letScope))
}
