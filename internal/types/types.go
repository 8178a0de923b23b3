// Package types implements the semantic type algebra of the annotation
// language (component A of the design): a closed sum of value types,
// reference types, and the bookkeeping types (Tuple, Function, BuiltinStruct,
// BuiltinTypeName, UserDefinedTypeName, FunctionSet) that the checker assigns
// to expressions. See SPEC_FULL.md §1 [MODULE A].
package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Type is the interface implemented by every variant of the algebra.
type Type interface {
	String() string
	isType()
}

// Declaration is a non-owning lookup handle into the host AST. UserDefined
// and UserDefinedTypeName hold one of these plus a qualified name rather than
// owning the declaration outright (see SPEC_FULL.md / spec.md §9 "Cyclic
// ownership"): the host AST owns declarations, the type algebra only
// identifies one.
type Declaration interface {
	DeclName() string
}

// DefKind distinguishes the three host-language user-defined declaration
// kinds, since they specialize (see internal/ingest) differently.
type DefKind int

const (
	DefStruct DefKind = iota
	DefEnum
	DefContract
)

func (k DefKind) String() string {
	switch k {
	case DefStruct:
		return "struct"
	case DefEnum:
		return "enum"
	case DefContract:
		return "contract"
	default:
		return "?defkind"
	}
}

// Bool is the boolean value type.
type Bool struct{}

func (Bool) isType()        {}
func (Bool) String() string { return "bool" }

// Address is the 20-byte account type; Payable marks address payable.
type Address struct {
	Payable bool
}

func (Address) isType() {}
func (a Address) String() string {
	if a.Payable {
		return "address payable"
	}
	return "address"
}

// Int is a fixed-width integer, 8..256 bits in multiples of 8.
type Int struct {
	Bits   int
	Signed bool
}

func (Int) isType() {}
func (t Int) String() string {
	if t.Signed {
		return "int" + strconv.Itoa(t.Bits)
	}
	return "uint" + strconv.Itoa(t.Bits)
}

// IntLiteral is the untyped type of an integer literal; it widens to Int.
type IntLiteral struct{}

func (IntLiteral) isType()        {}
func (IntLiteral) String() string { return "int_const" }

// FixedBytes is bytesN, 1 <= N <= 32.
type FixedBytes struct {
	Width int
}

func (FixedBytes) isType() {}
func (t FixedBytes) String() string {
	if t.Width == 1 {
		return "bytes1"
	}
	return "bytes" + strconv.Itoa(t.Width)
}

// Bytes is the dynamically-sized byte array (a reference type).
type Bytes struct{}

func (Bytes) isType()        {}
func (Bytes) String() string { return "bytes" }

// String is the dynamically-sized UTF-8 string (a reference type).
type String struct{}

func (String) isType()        {}
func (String) String() string { return "string" }

// StringLiteral is the untyped type of a string or hex literal; it widens to
// Pointer(Bytes|String).
type StringLiteral struct{}

func (StringLiteral) isType()        {}
func (StringLiteral) String() string { return "literal_string" }

// Array is T[] (dynamic, Size == nil) or T[N] (fixed, Size != nil).
type Array struct {
	Element Type
	Size    *uint64
}

func (Array) isType() {}
func (t Array) String() string {
	if t.Size == nil {
		return t.Element.String() + "[]"
	}
	return fmt.Sprintf("%s[%d]", t.Element.String(), *t.Size)
}

// Mapping is mapping(Key => Value); its location is always Storage once
// specialized.
type Mapping struct {
	Key   Type
	Value Type
}

func (Mapping) isType() {}
func (t Mapping) String() string {
	return fmt.Sprintf("mapping(%s => %s)", t.Key.String(), t.Value.String())
}

// UserDefined is a reference to a host-language struct, enum, or contract
// type. QualifiedName is "Contract.Name" for nested declarations, else bare
// "Name".
type UserDefined struct {
	QualifiedName string
	Def           Declaration
	Kind          DefKind
}

func (UserDefined) isType()          {}
func (t UserDefined) String() string { return t.QualifiedName }

// Tuple is the type of a multi-return call or a let right-hand side. It never
// appears inside a Pointer and cannot be stored, passed, or wrapped.
type Tuple struct {
	Elements []Type
}

func (Tuple) isType() {}
func (t Tuple) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Pointer wraps a reference type (Array, Bytes, String, Mapping, or a
// UserDefined struct/contract) with the data location it lives in. Value
// types and Tuple never appear inside a Pointer (see the well-formedness
// invariant, spec.md §3.1).
type Pointer struct {
	To       Type
	Location Location
}

func (Pointer) isType() {}
func (t Pointer) String() string {
	return t.To.String() + " " + t.Location.String()
}

// Function is a host function's call signature.
type Function struct {
	Params     []Type
	Returns    []Type
	Visibility Visibility
	Mutability Mutability
}

func (Function) isType() {}
func (t Function) String() string {
	params := make([]string, len(t.Params))
	for i, p := range t.Params {
		params[i] = p.String()
	}
	rets := make([]string, len(t.Returns))
	for i, r := range t.Returns {
		rets[i] = r.String()
	}
	s := fmt.Sprintf("function(%s) %s %s", strings.Join(params, ", "), t.Visibility, t.Mutability)
	if len(rets) > 0 {
		s += " returns (" + strings.Join(rets, ", ") + ")"
	}
	return s
}

// BuiltinStruct is the type of builtin pseudo-namespaces like `block`, `msg`,
// `tx`.
type BuiltinStruct struct {
	Name    string
	Members map[string]Type
}

func (BuiltinStruct) isType()          {}
func (t BuiltinStruct) String() string { return t.Name }

// BuiltinTypeName is the type of a type-literal expression naming an
// elementary type, e.g. `uint256` used as an expression (for casts).
type BuiltinTypeName struct {
	Type Type
}

func (BuiltinTypeName) isType()          {}
func (t BuiltinTypeName) String() string { return "type(" + t.Type.String() + ")" }

// UserDefinedTypeName is the type of a type-literal expression naming a
// user-defined struct, enum, or contract/library.
type UserDefinedTypeName struct {
	Def  Declaration
	Kind DefKind
}

func (UserDefinedTypeName) isType()          {}
func (t UserDefinedTypeName) String() string { return "type(" + t.Def.DeclName() + ")" }

// Candidate is the marker interface satisfied by anything that can sit in a
// FunctionSet: a host function declaration or a public-state-variable getter.
// The checker type-switches back to the concrete hostast type to read
// parameters/returns; types never imports hostast.
type Candidate interface {
	CandidateName() string
}

// DefaultArgExpr is the marker interface an annotation-AST expression node
// implements so a FunctionSet can carry the implicit `using for` receiver
// without this package importing the annotation AST package.
type DefaultArgExpr interface {
	NodeIdentity() string
}

// FunctionSet is an unresolved overload set: a bare identifier or member
// access that names one or more functions (or a single getter). It narrows
// to a single Candidate during call checking.
type FunctionSet struct {
	Defs       []Candidate
	DefaultArg DefaultArgExpr // non-nil only for `using for` implicit receivers
}

func (FunctionSet) isType() {}
func (t FunctionSet) String() string {
	names := make([]string, len(t.Defs))
	for i, d := range t.Defs {
		names[i] = d.CandidateName()
	}
	return "overload{" + strings.Join(names, ", ") + "}"
}
