package checker

import (
	"github.com/funvibe/specblock/internal/annast"
	"github.com/funvibe/specblock/internal/assert"
	"github.com/funvibe/specblock/internal/diagnostics"
	"github.com/funvibe/specblock/internal/hostast"
	"github.com/funvibe/specblock/internal/ingest"
	"github.com/funvibe/specblock/internal/scope"
	"github.com/funvibe/specblock/internal/types"
)

// checkIdentifier implements spec.md §4.D's seven-step resolution order,
// first hit wins, stamping id.DefSite as it goes.
func (ck *Checker) checkIdentifier(id *annast.IdentifierExpr, ctx scope.Context) (types.Type, error) {
	name := id.Name

	// 1. this
	if name == "this" {
		contract, ok := ctx.CurrentContract()
		assert.Truef(ok, "checker: identifier \"this\" resolved with no contract scope on the context")
		id.DefSite = annast.DefSite{Kind: annast.DefSiteThis}
		return types.Pointer{
			To:       types.UserDefined{QualifiedName: contract.Name, Def: contract, Kind: types.DefContract},
			Location: types.Storage,
		}, nil
	}

	// 2. builtin type name
	if bt, ok := scope.DetectBuiltinType(name); ok {
		return bt, nil
	}

	// 3. variable
	if ref, ok := scope.LookupVar(ctx, name); ok {
		switch ref.Kind {
		case scope.VarHost:
			t, err := ingest.Variable(ref.HostVar, nil)
			if err != nil {
				return nil, diagnostics.MissingSolidityType(id)
			}
			id.DefSite = annast.DefSite{Kind: annast.DefSiteHostVariable, HostVariable: ref.HostVar}
			return t, nil
		case scope.VarLet:
			id.DefSite = annast.DefSite{Kind: annast.DefSiteLetBinding, LetScope: ref.LetScope, LetIndex: ref.LetIndex}
			if tup, ok := ref.LetScope.RHSType.(types.Tuple); ok {
				assert.Truef(ref.LetIndex < len(tup.Elements), "checker: let-binding index out of range")
				return tup.Elements[ref.LetIndex], nil
			}
			return ref.LetScope.RHSType, nil
		default:
			assert.Truef(false, "checker: unhandled scope.VarKind %v", ref.Kind)
		}
	}

	// 4. function by name in the current contract (all bases)
	if contract, ok := ctx.CurrentContract(); ok {
		if fs, ok := lookupFunctionsByName(contract, name); ok {
			id.DefSite = annast.DefSite{Kind: annast.DefSiteFunctionName, Candidates: fs}
			return fs, nil
		}
	}

	// 5. type name
	if decl, ok := scope.ResolveTypeName(ctx, name); ok {
		kind := declKind(decl)
		id.DefSite = annast.DefSite{Kind: annast.DefSiteTypeName, TypeDecl: decl}
		return types.UserDefinedTypeName{Def: decl, Kind: kind}, nil
	}

	// 6. builtin symbol
	if t, ok := scope.LookupBuiltinSymbol(name); ok {
		return t, nil
	}

	// 7. unknown
	return nil, diagnostics.UnknownId(id, name)
}

// lookupFunctionsByName scans every base in contract's linearization (most-
// derived first) for functions named name, the resolution step §4.D calls
// "all matching functions, including bases".
func lookupFunctionsByName(contract *hostast.ContractDecl, name string) (types.FunctionSet, bool) {
	var defs []types.Candidate
	for _, base := range contract.Linearization {
		for _, f := range base.Functions {
			if f.Name == name {
				defs = append(defs, f)
			}
		}
	}
	if len(defs) == 0 {
		return types.FunctionSet{}, false
	}
	return types.FunctionSet{Defs: defs}, true
}

func declKind(decl hostast.Declaration) types.DefKind {
	switch decl.(type) {
	case *hostast.StructDecl:
		return types.DefStruct
	case *hostast.EnumDecl:
		return types.DefEnum
	case *hostast.ContractDecl:
		return types.DefContract
	default:
		assert.Truef(false, "checker: unhandled hostast.Declaration %T", decl)
		return 0
	}
}

// checkResult implements `$result` (spec.md §4.D): valid only inside a
// function scope, typed from that function's return parameters.
func (ck *Checker) checkResult(e *annast.ResultExpr, ctx scope.Context) (types.Type, error) {
	fn, ok := ctx.CurrentFunction()
	if !ok {
		return nil, diagnostics.InvalidKeyword(e, "$result is only valid inside a function scope")
	}
	switch len(fn.Returns) {
	case 0:
		return nil, diagnostics.FunNoReturn(e)
	case 1:
		return ingest.Variable(fn.Returns[0], nil)
	default:
		elems := make([]types.Type, len(fn.Returns))
		for i, r := range fn.Returns {
			t, err := ingest.Variable(r, nil)
			if err != nil {
				return nil, err
			}
			elems[i] = t
		}
		return types.Tuple{Elements: elems}, nil
	}
}
