package checker

import (
	"github.com/funvibe/specblock/internal/annast"
	"github.com/funvibe/specblock/internal/assert"
	"github.com/funvibe/specblock/internal/cache"
	"github.com/funvibe/specblock/internal/scope"
	"github.com/funvibe/specblock/internal/types"
)

// Checker holds the type cache a checking run writes into. A nil Cache is
// valid (caching is then simply skipped) — useful for one-off checks in
// tests that want to assert on a fresh run every time.
type Checker struct {
	Cache *cache.Memory
}

// New returns a Checker backed by a fresh cache.
func New() *Checker {
	return &Checker{Cache: cache.New()}
}

// Check is the single entry point of component D (spec.md §4.D): "before
// dispatch, if the cache holds a type for this node, return it; after
// dispatch, store the result in the cache." A non-nil error is always
// either a *diagnostics.Diagnostic (a user-facing error) or a fatal
// ingestion error (*ingest.UnknownElementaryError) — never both, and never
// recovered from; callers that need to tell them apart use errors.As.
func (ck *Checker) Check(expr annast.Expression, ctx scope.Context) (types.Type, error) {
	if ck.Cache != nil {
		if t, ok := ck.Cache.Get(expr); ok {
			return t, nil
		}
	}
	t, err := ck.dispatch(expr, ctx)
	if err != nil {
		return nil, err
	}
	assert.Truef(t != nil, "checker: dispatch returned a nil type with no error for %T", expr)
	if ck.Cache != nil {
		ck.Cache.Put(expr, t)
	}
	return t, nil
}

func (ck *Checker) dispatch(expr annast.Expression, ctx scope.Context) (types.Type, error) {
	switch e := expr.(type) {
	case *annast.IntLiteralExpr:
		return types.IntLiteral{}, nil
	case *annast.BoolLiteralExpr:
		return types.Bool{}, nil
	case *annast.StringLiteralExpr:
		return types.StringLiteral{}, nil
	case *annast.AddressLiteralExpr:
		return types.Address{Payable: true}, nil
	case *annast.IdentifierExpr:
		return ck.checkIdentifier(e, ctx)
	case *annast.ResultExpr:
		return ck.checkResult(e, ctx)
	case *annast.UnaryExpr:
		return ck.checkUnary(e, ctx)
	case *annast.OldExpr:
		return ck.Check(e.Operand, ctx)
	case *annast.BinaryExpr:
		return ck.checkBinary(e, ctx)
	case *annast.ConditionalExpr:
		return ck.checkConditional(e, ctx)
	case *annast.IndexExpr:
		return ck.checkIndex(e, ctx)
	case *annast.MemberExpr:
		return ck.checkMember(e, ctx)
	case *annast.LetExpr:
		return ck.checkLet(e, ctx)
	case *annast.CallExpr:
		return ck.checkCall(e, ctx)
	default:
		assert.Truef(false, "checker: unhandled expression node %T", expr)
		return nil, nil
	}
}
