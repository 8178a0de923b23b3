package checker

import (
	"github.com/funvibe/specblock/internal/annast"
	"github.com/funvibe/specblock/internal/diagnostics"
	"github.com/funvibe/specblock/internal/scope"
	"github.com/funvibe/specblock/internal/types"
)

// checkIndex implements `base[idx]` (spec.md §4.D's index-access table).
func (ck *Checker) checkIndex(e *annast.IndexExpr, ctx scope.Context) (types.Type, error) {
	baseT, err := ck.Check(e.Base, ctx)
	if err != nil {
		return nil, err
	}
	idxT, err := ck.Check(e.Index, ctx)
	if err != nil {
		return nil, err
	}

	switch bt := baseT.(type) {
	case types.FixedBytes:
		if !isIntly(idxT) {
			return nil, diagnostics.WrongType(e.Index, idxT)
		}
		return types.Int{Bits: 8, Signed: false}, nil

	case types.Pointer:
		switch inner := bt.To.(type) {
		case types.Bytes:
			if !isIntly(idxT) {
				return nil, diagnostics.WrongType(e.Index, idxT)
			}
			return types.Int{Bits: 8, Signed: false}, nil
		case types.Array:
			if !isIntly(idxT) {
				return nil, diagnostics.WrongType(e.Index, idxT)
			}
			return inner.Element, nil
		case types.Mapping:
			if !ImplicitlyCastable(e.Index, idxT, inner.Key) {
				return nil, diagnostics.WrongType(e.Index, idxT)
			}
			return inner.Value, nil
		}
	}
	return nil, diagnostics.WrongType(e.Base, baseT)
}
