// Package ingest converts host-language type expressions and variable
// declarations into the semantic type algebra (component B of the design):
// ingestTypeName, ingestVariable, specialize, and despecialize. See
// SPEC_FULL.md §1 [MODULE B] and spec.md §4.B.
package ingest

import (
	"fmt"

	"github.com/funvibe/specblock/internal/assert"
	"github.com/funvibe/specblock/internal/hostast"
	"github.com/funvibe/specblock/internal/types"
)

// UnknownElementaryError is raised when a host type name doesn't match any
// recognized elementary token. Per spec.md §4.B this is a fatal internal
// error (the host AST is assumed resolved; an unrecognized elementary name
// means ingestion was handed something it should never see), not a user
// diagnostic.
type UnknownElementaryError struct {
	Name string
}

func (e *UnknownElementaryError) Error() string {
	return fmt.Sprintf("ingest: unknown elementary type name %q", e.Name)
}

// TypeName converts a host AST type expression into the algebra, without
// location wrapping. An array's size is carried over as is: ArrayTypeName
// can only hold a literal size (or none), so a non-literal size never
// reaches this function and there is no error path for one.
func TypeName(tn hostast.TypeName) (types.Type, error) {
	switch t := tn.(type) {
	case hostast.ElementaryTypeName:
		ty, ok := MatchElementary(t.Name)
		if !ok {
			return nil, &UnknownElementaryError{Name: t.Name}
		}
		return ty, nil

	case hostast.ArrayTypeName:
		elem, err := TypeName(t.Element)
		if err != nil {
			return nil, err
		}
		return types.Array{Element: elem, Size: t.Size}, nil

	case hostast.MappingTypeName:
		key, err := TypeName(t.Key)
		if err != nil {
			return nil, err
		}
		val, err := TypeName(t.Value)
		if err != nil {
			return nil, err
		}
		return types.Mapping{Key: key, Value: val}, nil

	case hostast.UserDefinedTypeNameRef:
		return userDefinedOf(t.Decl), nil

	case hostast.FunctionTypeName:
		params := make([]types.Type, len(t.Params))
		for i, p := range t.Params {
			pt, err := Variable(p, nil)
			if err != nil {
				return nil, err
			}
			params[i] = pt
		}
		rets := make([]types.Type, len(t.Returns))
		for i, r := range t.Returns {
			rt, err := Variable(r, nil)
			if err != nil {
				return nil, err
			}
			rets[i] = rt
		}
		return types.Function{
			Params:     params,
			Returns:    rets,
			Visibility: t.Visibility,
			Mutability: t.Mutability,
		}, nil

	default:
		assert.Truef(false, "ingest.TypeName: unhandled host type name %T", tn)
		return nil, nil
	}
}

// userDefinedOf builds a types.UserDefined from a resolved host declaration,
// qualifying the name with its containing contract when nested (spec.md
// §4.B: "wrap the referenced declaration in UserDefined with qualified name
// ContractName.Name if nested in a contract, else bare Name").
func userDefinedOf(decl hostast.Declaration) types.UserDefined {
	switch d := decl.(type) {
	case *hostast.StructDecl:
		return types.UserDefined{QualifiedName: qualify(d.ContainingContract, d.Name), Def: d, Kind: types.DefStruct}
	case *hostast.EnumDecl:
		return types.UserDefined{QualifiedName: qualify(d.ContainingContract, d.Name), Def: d, Kind: types.DefEnum}
	case *hostast.ContractDecl:
		return types.UserDefined{QualifiedName: d.Name, Def: d, Kind: types.DefContract}
	default:
		assert.Truef(false, "ingest.userDefinedOf: unhandled declaration %T", decl)
		return types.UserDefined{}
	}
}

func qualify(contract *hostast.ContractDecl, name string) string {
	if contract == nil {
		return name
	}
	return contract.Name + "." + name
}

// Variable ingests V's declared type and specializes it to V's effective
// data location (spec.md §4.B):
//
//   - If V declares a location, use it.
//   - Else if V is a contract state variable, use Storage.
//   - Else if V is a function parameter/return, use CallData iff the
//     function is external, else Memory.
//   - Else if baseLoc is supplied (a struct field inherits its container's
//     location), use it.
func Variable(v *hostast.VariableDecl, baseLoc *types.Location) (types.Type, error) {
	base, err := TypeName(v.TypeName)
	if err != nil {
		return nil, err
	}
	return Specialize(base, effectiveLocation(v, baseLoc)), nil
}

// effectiveLocation resolves V's data location per the rules above. Its
// result is only meaningful when base is a reference type; Specialize
// ignores the location entirely for value types and enums.
func effectiveLocation(v *hostast.VariableDecl, baseLoc *types.Location) types.Location {
	if v.DeclaredLocation != nil {
		return *v.DeclaredLocation
	}
	switch v.Scope {
	case hostast.ScopeStateVariable:
		return types.Storage
	case hostast.ScopeParameter, hostast.ScopeReturnParameter:
		if v.ContainingFunction != nil && v.ContainingFunction.IsExternal() {
			return types.CallData
		}
		return types.Memory
	default:
		if baseLoc != nil {
			return *baseLoc
		}
		return types.Storage
	}
}

// Specialize converts a location-less type template into a location-
// qualified concrete type (spec.md §4.B). T must contain no Pointer.
func Specialize(t types.Type, loc types.Location) types.Type {
	switch tt := t.(type) {
	case types.Bytes, types.String:
		return types.Pointer{To: tt, Location: loc}
	case types.Array:
		return types.Pointer{
			To:       types.Array{Element: Specialize(tt.Element, loc), Size: tt.Size},
			Location: loc,
		}
	case types.UserDefined:
		switch tt.Kind {
		case types.DefContract:
			// Contracts always live in storage.
			return types.Pointer{To: tt, Location: types.Storage}
		case types.DefStruct:
			return types.Pointer{To: tt, Location: loc}
		case types.DefEnum:
			return tt // enums are value types
		default:
			assert.Truef(false, "ingest.Specialize: unhandled UserDefined kind %v", tt.Kind)
			return tt
		}
	case types.Mapping:
		// Keys are always memory copies; values live in storage.
		return types.Pointer{
			To: types.Mapping{
				Key:   Specialize(tt.Key, types.Memory),
				Value: Specialize(tt.Value, types.Storage),
			},
			Location: types.Storage,
		}
	default:
		return t
	}
}

// Despecialize strips Pointer and recursively despecializes Array elements
// and Mapping key/value. It is the left inverse of Specialize: for every T
// produced by TypeName and every location L,
// Despecialize(Specialize(T, L)) == T (spec.md §8 property 2).
func Despecialize(t types.Type) types.Type {
	switch tt := t.(type) {
	case types.Pointer:
		return Despecialize(tt.To)
	case types.Array:
		return types.Array{Element: Despecialize(tt.Element), Size: tt.Size}
	case types.Mapping:
		return types.Mapping{Key: Despecialize(tt.Key), Value: Despecialize(tt.Value)}
	default:
		return t
	}
}
