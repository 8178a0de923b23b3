// Package hostast defines the minimal read-only surface of the host
// language's AST that the checker's ingestion and resolution algorithms
// query. spec.md §1 treats the full host AST as an out-of-scope external
// collaborator "assumed given with a resolved symbol table"; this package is
// the concrete shape of that assumption (SPEC_FULL.md §4.I), grounded on the
// declaration shapes kanso-lang's semantic analyzer and funxy's symbol table
// work against. Nothing here is mutated by the checker.
package hostast

import "github.com/funvibe/specblock/internal/types"

// TypeName is a host-language type expression as it appears in source: an
// elementary token, an array/mapping former, a user-defined type reference,
// or a function type. ingestTypeName (internal/ingest) converts one of these
// into the type algebra, without location wrapping.
type TypeName interface {
	isTypeName()
}

// ElementaryTypeName is a single host-language elementary type token, e.g.
// "bool", "address", "address payable", "uint256", "bytes32", "byte",
// "bytes", "string", or an "int_const <value>" literal marker.
type ElementaryTypeName struct {
	Name string
}

func (ElementaryTypeName) isTypeName() {}

// ArrayTypeName is T[] (Size nil) or T[N] (Size non-nil, N a literal).
type ArrayTypeName struct {
	Element TypeName
	Size    *uint64
}

func (ArrayTypeName) isTypeName() {}

// MappingTypeName is mapping(Key => Value).
type MappingTypeName struct {
	Key   TypeName
	Value TypeName
}

func (MappingTypeName) isTypeName() {}

// UserDefinedTypeNameRef names a struct, enum, or contract declaration by
// reference (the host parser has already resolved it).
type UserDefinedTypeNameRef struct {
	Decl Declaration
}

func (UserDefinedTypeNameRef) isTypeName() {}

// FunctionTypeName is a function-type expression, e.g.
// `function(uint256) external view returns (bool)`.
type FunctionTypeName struct {
	Params     []*VariableDecl
	Returns    []*VariableDecl
	Visibility types.Visibility
	Mutability types.Mutability
}

func (FunctionTypeName) isTypeName() {}

// Declaration is any host declaration nameable by a qualified name: struct,
// enum, or contract. It implements types.Declaration.
type Declaration interface {
	types.Declaration
}

// VarScopeKind tells ingestVariable (internal/ingest) which data-location
// default rule applies (spec.md §4.B).
type VarScopeKind int

const (
	ScopeStateVariable VarScopeKind = iota
	ScopeParameter
	ScopeReturnParameter
	ScopeStructField
	ScopeLocal
)

// VariableDecl is a host variable declaration: a state variable, a function
// parameter or return parameter, or a struct field.
type VariableDecl struct {
	Name               string
	TypeName           TypeName
	DeclaredLocation   *types.Location // non-nil iff the source explicitly wrote a location
	Scope              VarScopeKind
	ContainingFunction *FunctionDecl    // set iff Scope is Parameter/ReturnParameter
	Visibility         types.Visibility // meaningful iff Scope is StateVariable
}

// StructDecl is a host struct declaration.
type StructDecl struct {
	Name               string
	ContainingContract *ContractDecl // nil if declared at source-unit level
	Fields             []*VariableDecl
}

func (s *StructDecl) DeclName() string { return s.Name }

// FieldByName returns the field named name, or nil.
func (s *StructDecl) FieldByName(name string) *VariableDecl {
	for _, f := range s.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// EnumDecl is a host enum declaration.
type EnumDecl struct {
	Name               string
	ContainingContract *ContractDecl
	Members            []string
}

func (e *EnumDecl) DeclName() string { return e.Name }

// HasMember reports whether name is one of the enum's constants.
func (e *EnumDecl) HasMember(name string) bool {
	for _, m := range e.Members {
		if m == name {
			return true
		}
	}
	return false
}

// UsingForDirective attaches a library's functions as pseudo-methods on
// values of Target (or of any type, when Target is nil — "using L for *").
type UsingForDirective struct {
	Library *ContractDecl // the library contract providing the functions
	Target  TypeName      // nil => unrestricted
}

// ContractDecl is a host contract (or library) declaration. Linearization is
// the contract's C3-linearized base chain, most-derived first, including the
// contract itself.
type ContractDecl struct {
	Name           string
	IsLibrary      bool
	Linearization  []*ContractDecl
	StateVariables []*VariableDecl
	Structs        []*StructDecl
	Enums          []*EnumDecl
	Functions      []*FunctionDecl
	UsingFor       []*UsingForDirective
}

func (c *ContractDecl) DeclName() string { return c.Name }

// FunctionDecl is a host function (or public-state-variable getter, modeled
// separately by GetterCandidate) declaration.
type FunctionDecl struct {
	Name               string
	ContainingContract *ContractDecl
	Parameters         []*VariableDecl
	Returns            []*VariableDecl
	Visibility         types.Visibility
	Mutability         types.Mutability
}

func (f *FunctionDecl) CandidateName() string { return f.Name }

// IsExternal reports whether calling this function requires calldata for
// its reference-typed parameters and returns (spec.md §4.B).
func (f *FunctionDecl) IsExternal() bool { return f.Visibility.IsExternal() }

// GetterCandidate models the synthetic getter a public state variable
// exposes. It implements types.Candidate so it can sit in the same
// FunctionSet as real FunctionDecls (spec.md §4.D member-access case (b)).
type GetterCandidate struct {
	StateVariable *VariableDecl
}

func (g *GetterCandidate) CandidateName() string { return g.StateVariable.Name }

// SourceUnit is one top-level compilation unit: its own structs, enums, and
// contracts, independent of any particular contract's scope.
type SourceUnit struct {
	Structs   []*StructDecl
	Enums     []*EnumDecl
	Contracts []*ContractDecl
}
