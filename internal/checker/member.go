package checker

import (
	"github.com/funvibe/specblock/internal/annast"
	"github.com/funvibe/specblock/internal/assert"
	"github.com/funvibe/specblock/internal/builtins"
	"github.com/funvibe/specblock/internal/diagnostics"
	"github.com/funvibe/specblock/internal/hostast"
	"github.com/funvibe/specblock/internal/ingest"
	"github.com/funvibe/specblock/internal/scope"
	"github.com/funvibe/specblock/internal/types"
)

// checkMember implements `base.m` (spec.md §4.D): dispatch by base type,
// falling back to the `using for` search (spec.md §4.D, "using for
// fallback") whenever the primary dispatch finds nothing, whatever the
// reason.
func (ck *Checker) checkMember(e *annast.MemberExpr, ctx scope.Context) (types.Type, error) {
	baseT, err := ck.Check(e.Base, ctx)
	if err != nil {
		return nil, err
	}

	t, ok, err := ck.dispatchMember(e, baseT)
	if err != nil {
		return nil, err
	}
	if ok {
		return t, nil
	}

	general := ingest.Despecialize(baseT)
	if fs, ok := ck.usingForFallback(ctx, e.Base, e.Name, general); ok {
		return fs, nil
	}
	return nil, diagnostics.NoField(e, e.Name)
}

// dispatchMember runs the base-type-specific lookup rules. found == false
// means "this base type's own rules found nothing named e.Name"; the
// caller then tries the using-for fallback before giving up.
func (ck *Checker) dispatchMember(e *annast.MemberExpr, baseT types.Type) (t types.Type, found bool, err error) {
	switch bt := baseT.(type) {
	case types.BuiltinStruct:
		if m, ok := bt.Members[e.Name]; ok {
			return m, true, nil
		}
		return nil, false, nil

	case types.Pointer:
		return dispatchPointerMember(e, bt)

	case types.Address:
		if m, ok := builtins.AddressMembers[e.Name]; ok {
			return m, true, nil
		}
		return nil, false, nil

	case types.UserDefinedTypeName:
		return dispatchTypeNameMember(e, bt)

	case types.FunctionSet:
		if e.Name == "selector" && len(bt.Defs) == 1 {
			return types.FixedBytes{Width: 4}, true, nil
		}
		return nil, false, nil

	default:
		return nil, false, nil
	}
}

func dispatchPointerMember(e *annast.MemberExpr, p types.Pointer) (types.Type, bool, error) {
	switch inner := p.To.(type) {
	case types.Array:
		if e.Name == "length" {
			return types.Int{Bits: 256, Signed: false}, true, nil
		}
		return nil, false, nil

	case types.UserDefined:
		switch inner.Kind {
		case types.DefStruct:
			sd, ok := inner.Def.(*hostast.StructDecl)
			assert.Truef(ok, "checker: UserDefined(struct) backed by %T", inner.Def)
			field := sd.FieldByName(e.Name)
			if field == nil {
				return nil, false, nil
			}
			ft, err := ingest.Variable(field, &p.Location)
			if err != nil {
				return nil, false, err
			}
			return ft, true, nil

		case types.DefContract:
			cd, ok := inner.Def.(*hostast.ContractDecl)
			assert.Truef(ok, "checker: UserDefined(contract) backed by %T", inner.Def)
			return dispatchContractMember(e, cd)

		default:
			return nil, false, nil
		}

	default:
		return nil, false, nil
	}
}

// dispatchContractMember implements spec.md §4.D's three-step chain for
// Pointer(UserDefined(contract)): (a) functions by name, (b) else a public
// state variable's synthetic getter, (c) else the address-member table.
func dispatchContractMember(e *annast.MemberExpr, cd *hostast.ContractDecl) (types.Type, bool, error) {
	if fs, ok := lookupFunctionsByName(cd, e.Name); ok {
		return fs, true, nil
	}
	if sv, ok := lookupPublicStateVar(cd, e.Name); ok {
		t, err := ingest.Variable(sv, nil)
		if err != nil {
			return nil, false, err
		}
		if _, isUD := ingest.Despecialize(t).(types.UserDefined); isUD {
			return nil, false, diagnostics.UnsupportedGetter(e, t)
		}
		return types.FunctionSet{Defs: []types.Candidate{&hostast.GetterCandidate{StateVariable: sv}}}, true, nil
	}
	if m, ok := builtins.AddressMembers[e.Name]; ok {
		return m, true, nil
	}
	return nil, false, nil
}

func lookupPublicStateVar(cd *hostast.ContractDecl, name string) (*hostast.VariableDecl, bool) {
	for _, base := range cd.Linearization {
		for _, sv := range base.StateVariables {
			if sv.Name == name && sv.Visibility == types.VisPublic {
				return sv, true
			}
		}
	}
	return nil, false
}

func dispatchTypeNameMember(e *annast.MemberExpr, tn types.UserDefinedTypeName) (types.Type, bool, error) {
	switch decl := tn.Def.(type) {
	case *hostast.ContractDecl:
		// Nested type names first (Lib.T), then library functions (Lib.fn).
		for _, s := range decl.Structs {
			if s.Name == e.Name {
				return types.UserDefinedTypeName{Def: s, Kind: types.DefStruct}, true, nil
			}
		}
		for _, en := range decl.Enums {
			if en.Name == e.Name {
				return types.UserDefinedTypeName{Def: en, Kind: types.DefEnum}, true, nil
			}
		}
		if fs, ok := lookupFunctionsByName(decl, e.Name); ok {
			return fs, true, nil
		}
		return nil, false, nil

	case *hostast.EnumDecl:
		if !decl.HasMember(e.Name) {
			return nil, false, nil
		}
		return types.UserDefined{QualifiedName: qualifiedName(decl), Def: decl, Kind: types.DefEnum}, true, nil

	default:
		return nil, false, nil
	}
}

func qualifiedName(decl *hostast.EnumDecl) string {
	if decl.ContainingContract == nil {
		return decl.Name
	}
	return decl.ContainingContract.Name + "." + decl.Name
}

// usingForFallback implements spec.md §4.D's "using for fallback": for
// every `using for` directive on every base of the current contract, if the
// directive is unrestricted or targets general, collect every function in
// the directive's library named m. A non-empty collection becomes a
// FunctionSet with base recorded as DefaultArg.
func (ck *Checker) usingForFallback(ctx scope.Context, base annast.Expression, name string, general types.Type) (types.FunctionSet, bool) {
	contract, ok := ctx.CurrentContract()
	if !ok {
		return types.FunctionSet{}, false
	}
	var defs []types.Candidate
	for _, c := range contract.Linearization {
		for _, uf := range c.UsingFor {
			if !usingForApplies(uf, general) {
				continue
			}
			for _, f := range uf.Library.Functions {
				if f.Name == name {
					defs = append(defs, f)
				}
			}
		}
	}
	if len(defs) == 0 {
		return types.FunctionSet{}, false
	}
	return types.FunctionSet{Defs: defs, DefaultArg: base}, true
}

func usingForApplies(uf *hostast.UsingForDirective, general types.Type) bool {
	if uf.Target == nil {
		return true
	}
	targetT, err := ingest.TypeName(uf.Target)
	if err != nil {
		return false
	}
	return types.Equal(targetT, general)
}
