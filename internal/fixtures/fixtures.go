// Package fixtures builds the host AST and annotation-AST expressions used
// by the scenario table of spec.md §8 ("context: outer contract Foo with
// the state variables and functions listed below"). Since the expression
// parser and the host-language parser are both out of scope (spec.md §1),
// tests and the demo driver (cmd/specdoctor) both need some way to stand
// up fixtures by hand; this package is that way, shared so the two don't
// drift apart.
package fixtures

import (
	"github.com/funvibe/specblock/internal/annast"
	"github.com/funvibe/specblock/internal/diagnostics"
	"github.com/funvibe/specblock/internal/hostast"
	"github.com/funvibe/specblock/internal/types"
)

func elem(name string) hostast.TypeName { return hostast.ElementaryTypeName{Name: name} }

func stateVar(name, typeName string, public bool) *hostast.VariableDecl {
	v := &hostast.VariableDecl{Name: name, TypeName: elem(typeName), Scope: hostast.ScopeStateVariable}
	if public {
		v.Visibility = types.VisPublic
	}
	return v
}

func param(name, typeName string) *hostast.VariableDecl {
	return &hostast.VariableDecl{Name: name, TypeName: elem(typeName), Scope: hostast.ScopeParameter}
}

func ret(name, typeName string) *hostast.VariableDecl {
	return &hostast.VariableDecl{Name: name, TypeName: elem(typeName), Scope: hostast.ScopeReturnParameter}
}

func field(name, typeName string) *hostast.VariableDecl {
	return &hostast.VariableDecl{Name: name, TypeName: elem(typeName), Scope: hostast.ScopeStructField}
}

// Foo builds the fixture contract spec.md §8 describes, plus the library
// Lib it attaches via `using Lib for uint32`, plus the nested enum FooEnum
// (deliberately missing a member named X, for scenario 9).
func Foo() (*hostast.SourceUnit, *hostast.ContractDecl) {
	fooEnum := &hostast.EnumDecl{Name: "FooEnum", Members: []string{"A", "B"}}

	// Point is a struct nested in Foo, used to exercise struct construction
	// (call case 2), struct-field member access, and the public-getter
	// "UserDefined-typed getter is unsupported" branch (spec.md §9 open
	// question (b)).
	point := &hostast.StructDecl{
		Name:   "Point",
		Fields: []*hostast.VariableDecl{field("x", "uint"), field("y", "uint")},
	}

	addFn := &hostast.FunctionDecl{
		Name:       "add",
		Parameters: []*hostast.VariableDecl{param("x", "int8"), param("y", "uint64")},
		Returns:    []*hostast.VariableDecl{ret("add", "uint64")},
	}
	idPairFn := &hostast.FunctionDecl{
		Name:       "idPair",
		Parameters: []*hostast.VariableDecl{param("a", "uint"), param("b", "uint")},
		Returns:    []*hostast.VariableDecl{ret("", "uint"), ret("", "uint")},
	}
	shiftDemoFn := &hostast.FunctionDecl{
		Name:       "shiftDemo",
		Parameters: []*hostast.VariableDecl{param("x", "uint")},
		Returns:    []*hostast.VariableDecl{ret("r", "uint")},
	}

	foo := &hostast.ContractDecl{
		Name: "Foo",
		StateVariables: []*hostast.VariableDecl{
			stateVar("sV1", "int128", false),
			stateVar("sBy", "bytes", false),
			stateVar("sB", "bool", false),
			stateVar("sFB32", "bytes32", false),
			stateVar("sV", "uint", false),
			stateVar("u32a", "uint32", false),
			stateVar("u32b", "uint32", false),
			stateVar("sA", "bool", false),
			stateVar("sPub", "uint", true),
			{
				Name:       "sPoint",
				TypeName:   hostast.UserDefinedTypeNameRef{Decl: point},
				Scope:      hostast.ScopeStateVariable,
				Visibility: types.VisPublic,
			},
			{
				Name:  "cb",
				Scope: hostast.ScopeStateVariable,
				TypeName: hostast.FunctionTypeName{
					Params:  []*hostast.VariableDecl{param("a", "uint256")},
					Returns: []*hostast.VariableDecl{ret("", "bool")},
				},
			},
		},
		Structs:   []*hostast.StructDecl{point},
		Enums:     []*hostast.EnumDecl{fooEnum},
		Functions: []*hostast.FunctionDecl{addFn, idPairFn, shiftDemoFn},
	}
	foo.Linearization = []*hostast.ContractDecl{foo}
	point.ContainingContract = foo
	fooEnum.ContainingContract = foo
	addFn.ContainingContract = foo
	idPairFn.ContainingContract = foo
	shiftDemoFn.ContainingContract = foo
	for _, p := range addFn.Parameters {
		p.ContainingFunction = addFn
	}
	for _, r := range addFn.Returns {
		r.ContainingFunction = addFn
	}
	for _, p := range idPairFn.Parameters {
		p.ContainingFunction = idPairFn
	}
	for _, r := range idPairFn.Returns {
		r.ContainingFunction = idPairFn
	}
	for _, p := range shiftDemoFn.Parameters {
		p.ContainingFunction = shiftDemoFn
	}
	for _, r := range shiftDemoFn.Returns {
		r.ContainingFunction = shiftDemoFn
	}

	lib := &hostast.ContractDecl{
		Name:      "Lib",
		IsLibrary: true,
		Functions: []*hostast.FunctionDecl{
			{Name: "ladd", Parameters: []*hostast.VariableDecl{param("a", "uint32"), param("b", "uint32")},
				Returns: []*hostast.VariableDecl{ret("", "uint32")}},
		},
	}
	lib.Linearization = []*hostast.ContractDecl{lib}
	for _, f := range lib.Functions {
		f.ContainingContract = lib
		for _, p := range f.Parameters {
			p.ContainingFunction = f
		}
		for _, r := range f.Returns {
			r.ContainingFunction = f
		}
	}

	foo.UsingFor = []*hostast.UsingForDirective{
		{Library: lib, Target: elem("uint32")},
	}

	// Other is an unrelated peer contract, used only to exercise the
	// contract-cast call case (spec.md §4.D call case 3): `Other(addr)`.
	other := &hostast.ContractDecl{Name: "Other"}
	other.Linearization = []*hostast.ContractDecl{other}

	unit := &hostast.SourceUnit{Contracts: []*hostast.ContractDecl{foo, lib, other}}
	return unit, foo
}

// FunctionByName finds a function declared directly on contract c.
func FunctionByName(c *hostast.ContractDecl, name string) *hostast.FunctionDecl {
	for _, f := range c.Functions {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// --- annotation-AST node builders -----------------------------------------
//
// Ranges are zero-valued throughout: these fixtures exist to exercise
// checking logic, not source-range rendering, and diagnostics.Range's zero
// value prints just fine ("0:0").

func r() diagnostics.Range { return diagnostics.Range{} }

func Ident(name string) *annast.IdentifierExpr {
	return &annast.IdentifierExpr{NodeBase: annast.NewNodeBase(r()), Name: name}
}

func IntLit(v string) *annast.IntLiteralExpr {
	return &annast.IntLiteralExpr{NodeBase: annast.NewNodeBase(r()), Value: v}
}

func BoolLit(v bool) *annast.BoolLiteralExpr {
	return &annast.BoolLiteralExpr{NodeBase: annast.NewNodeBase(r()), Value: v}
}

func Bin(op annast.BinaryOp, l, right annast.Expression) *annast.BinaryExpr {
	return &annast.BinaryExpr{NodeBase: annast.NewNodeBase(r()), Op: op, Left: l, Right: right}
}

func Unary(op annast.UnaryOp, operand annast.Expression) *annast.UnaryExpr {
	return &annast.UnaryExpr{NodeBase: annast.NewNodeBase(r()), Op: op, Operand: operand}
}

func Call(callee annast.Expression, args ...annast.Expression) *annast.CallExpr {
	return &annast.CallExpr{NodeBase: annast.NewNodeBase(r()), Callee: callee, Args: args}
}

func Member(base annast.Expression, name string) *annast.MemberExpr {
	return &annast.MemberExpr{NodeBase: annast.NewNodeBase(r()), Base: base, Name: name}
}

func Index(base, idx annast.Expression) *annast.IndexExpr {
	return &annast.IndexExpr{NodeBase: annast.NewNodeBase(r()), Base: base, Index: idx}
}

func Cond(c, then, otherwise annast.Expression) *annast.ConditionalExpr {
	return &annast.ConditionalExpr{NodeBase: annast.NewNodeBase(r()), Cond: c, Then: then, Otherwise: otherwise}
}

func Let(names []string, rhs, body annast.Expression) *annast.LetExpr {
	return &annast.LetExpr{NodeBase: annast.NewNodeBase(r()), Names: names, RHS: rhs, Body: body}
}

func Result() *annast.ResultExpr {
	return &annast.ResultExpr{NodeBase: annast.NewNodeBase(r())}
}

func Old(e annast.Expression) *annast.OldExpr {
	return &annast.OldExpr{NodeBase: annast.NewNodeBase(r()), Operand: e}
}
