package scope

import (
	"github.com/funvibe/specblock/internal/builtins"
	"github.com/funvibe/specblock/internal/hostast"
	"github.com/funvibe/specblock/internal/ingest"
	"github.com/funvibe/specblock/internal/types"
)

// VarKind distinguishes what a resolved variable reference points at.
type VarKind int

const (
	VarHost VarKind = iota
	VarLet
)

// VarRef is what LookupVar returns: either a host-language variable
// declaration, or a (scope, index) pair into a let scope's bound names.
// annast's DefSite is built directly from one of these.
type VarRef struct {
	Kind     VarKind
	HostVar  *hostast.VariableDecl
	LetScope *LetScope
	LetIndex int
}

// LookupVar walks ctx innermost-first (spec.md §4.C):
//
//   - In a let scope, scan the bound names left to right.
//   - In a function scope, scan parameters then named returns.
//   - In a contract scope, scan state variables of every base in C3
//     linearization order (most-derived first).
//   - The global scope never holds variables; lookup fails there.
func LookupVar(ctx Context, name string) (VarRef, bool) {
	for i := len(ctx.entries) - 1; i >= 0; i-- {
		switch e := ctx.entries[i].(type) {
		case *letEntry:
			if idx := e.Scope.IndexOf(name); idx >= 0 {
				return VarRef{Kind: VarLet, LetScope: e.Scope, LetIndex: idx}, true
			}
		case *functionEntry:
			for _, p := range e.Function.Parameters {
				if p.Name == name {
					return VarRef{Kind: VarHost, HostVar: p}, true
				}
			}
			for _, r := range e.Function.Returns {
				if r.Name == name {
					return VarRef{Kind: VarHost, HostVar: r}, true
				}
			}
		case *contractEntry:
			for _, base := range e.Contract.Linearization {
				for _, sv := range base.StateVariables {
					if sv.Name == name {
						return VarRef{Kind: VarHost, HostVar: sv}, true
					}
				}
			}
		case *unitsEntry:
			// Global scope holds no variables.
		}
	}
	return VarRef{}, false
}

// ResolveTypeName walks ctx innermost-first, skipping function and let
// scopes entirely (spec.md §4.C: type names are never function-local or
// let-local):
//
//   - In a contract scope, search structs then enums of every linearization
//     base.
//   - In the global scope, search every source unit's top-level structs,
//     enums, then contracts.
func ResolveTypeName(ctx Context, name string) (hostast.Declaration, bool) {
	for i := len(ctx.entries) - 1; i >= 0; i-- {
		switch e := ctx.entries[i].(type) {
		case *contractEntry:
			for _, base := range e.Contract.Linearization {
				for _, s := range base.Structs {
					if s.Name == name {
						return s, true
					}
				}
				for _, en := range base.Enums {
					if en.Name == name {
						return en, true
					}
				}
			}
		case *unitsEntry:
			for _, u := range e.Units {
				for _, s := range u.Structs {
					if s.Name == name {
						return s, true
					}
				}
				for _, en := range u.Enums {
					if en.Name == name {
						return en, true
					}
				}
			}
			for _, u := range e.Units {
				for _, c := range u.Contracts {
					if c.Name == name {
						return c, true
					}
				}
			}
		}
	}
	return nil, false
}

// DetectBuiltinType reports whether name spells an elementary host type
// (uint256, bytes32, address, ...), wrapped as a types.BuiltinTypeName for
// use in a type-name expression position (spec.md §4.D, e.g. the callee of
// a cast). It rejects the two ingest pseudo-types (IntLiteral,
// StringLiteral) since no host type name ever spells one.
func DetectBuiltinType(name string) (types.Type, bool) {
	t, ok := ingest.MatchElementary(name)
	if !ok {
		return nil, false
	}
	switch t.(type) {
	case types.IntLiteral, types.StringLiteral:
		return nil, false
	}
	return types.BuiltinTypeName{Type: t}, true
}

// LookupBuiltinSymbol is the final resolution step of spec.md §4.D's
// identifier algorithm: the static block/msg/tx/hashing/gas registry.
func LookupBuiltinSymbol(name string) (types.Type, bool) {
	t, ok := builtins.Symbols[name]
	return t, ok
}
