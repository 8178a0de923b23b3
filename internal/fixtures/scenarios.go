package fixtures

import (
	"github.com/funvibe/specblock/internal/annast"
	"github.com/funvibe/specblock/internal/diagnostics"
	"github.com/funvibe/specblock/internal/hostast"
	"github.com/funvibe/specblock/internal/scope"
	"github.com/funvibe/specblock/internal/types"
)

// Scenario is one row of spec.md §8's scenario table.
type Scenario struct {
	Name       string
	Context    func(unit *hostast.SourceUnit, foo *hostast.ContractDecl) scope.Context
	Expr       func() annast.Expression
	WantType   types.Type       // nil when WantCode is the expectation instead
	WantCode   diagnostics.Code // meaningful only when WantType == nil
	WantsError bool             // true for scenarios 7, 8b and 9
}

// Scenarios is the full spec.md §8 table, built against Foo().
var Scenarios = []Scenario{
	{
		Name:     "1_state_var",
		Context:  func(u *hostast.SourceUnit, f *hostast.ContractDecl) scope.Context { return scope.NewContext([]*hostast.SourceUnit{u}, f, nil) },
		Expr:     func() annast.Expression { return Ident("sV1") },
		WantType: types.Int{Bits: 128, Signed: true},
	},
	{
		Name:     "2_bytes_index",
		Context:  func(u *hostast.SourceUnit, f *hostast.ContractDecl) scope.Context { return scope.NewContext([]*hostast.SourceUnit{u}, f, nil) },
		Expr:     func() annast.Expression { return Index(Ident("sBy"), IntLit("1")) },
		WantType: types.Int{Bits: 8, Signed: false},
	},
	{
		Name: "3_conditional",
		Context: func(u *hostast.SourceUnit, f *hostast.ContractDecl) scope.Context {
			return scope.NewContext([]*hostast.SourceUnit{u}, f, FunctionByName(f, "add"))
		},
		Expr:     func() annast.Expression { return Cond(Ident("sB"), Ident("x"), Ident("sV1")) },
		WantType: types.Int{Bits: 128, Signed: true},
	},
	{
		Name: "4_shift_fixedbytes",
		Context: func(u *hostast.SourceUnit, f *hostast.ContractDecl) scope.Context {
			return scope.NewContext([]*hostast.SourceUnit{u}, f, FunctionByName(f, "add"))
		},
		Expr:     func() annast.Expression { return Bin(annast.BinShl, Ident("sFB32"), Ident("sV")) },
		WantType: types.FixedBytes{Width: 32},
	},
	{
		Name:     "5_using_for_call",
		Context:  func(u *hostast.SourceUnit, f *hostast.ContractDecl) scope.Context { return scope.NewContext([]*hostast.SourceUnit{u}, f, nil) },
		Expr:     func() annast.Expression { return Call(Member(Ident("u32a"), "ladd"), Ident("u32b")) },
		WantType: types.Int{Bits: 32, Signed: false},
	},
	{
		Name: "6_result",
		Context: func(u *hostast.SourceUnit, f *hostast.ContractDecl) scope.Context {
			return scope.NewContext([]*hostast.SourceUnit{u}, f, FunctionByName(f, "add"))
		},
		Expr:     func() annast.Expression { return Result() },
		WantType: types.Int{Bits: 64, Signed: false},
	},
	{
		Name:       "7_unresolved_overload",
		Context:    func(u *hostast.SourceUnit, f *hostast.ContractDecl) scope.Context { return scope.NewContext([]*hostast.SourceUnit{u}, f, nil) },
		Expr:       func() annast.Expression { return Call(Ident("add"), IntLit("5"), BoolLit(true)) },
		WantCode:   diagnostics.CodeUnresolvedFun,
		WantsError: true,
	},
	{
		Name: "8a_shift_ok",
		Context: func(u *hostast.SourceUnit, f *hostast.ContractDecl) scope.Context {
			return scope.NewContext([]*hostast.SourceUnit{u}, f, FunctionByName(f, "shiftDemo"))
		},
		Expr:     func() annast.Expression { return Bin(annast.BinShl, Ident("x"), Ident("x")) },
		WantType: types.Int{Bits: 256, Signed: false},
	},
	{
		Name: "8b_shift_wrong_type",
		Context: func(u *hostast.SourceUnit, f *hostast.ContractDecl) scope.Context {
			return scope.NewContext([]*hostast.SourceUnit{u}, f, FunctionByName(f, "shiftDemo"))
		},
		Expr:       func() annast.Expression { return Bin(annast.BinShl, Ident("x"), Ident("sA")) },
		WantCode:   diagnostics.CodeWrongType,
		WantsError: true,
	},
	{
		Name:       "9_enum_no_field",
		Context:    func(u *hostast.SourceUnit, f *hostast.ContractDecl) scope.Context { return scope.NewContext([]*hostast.SourceUnit{u}, f, nil) },
		Expr:       func() annast.Expression { return Member(Ident("FooEnum"), "X") },
		WantCode:   diagnostics.CodeNoField,
		WantsError: true,
	},
	{
		Name:    "10_let_tuple",
		Context: func(u *hostast.SourceUnit, f *hostast.ContractDecl) scope.Context { return scope.NewContext([]*hostast.SourceUnit{u}, f, nil) },
		Expr: func() annast.Expression {
			return Let([]string{"a", "b"},
				Call(Ident("idPair"), IntLit("1"), IntLit("2")),
				Bin(annast.BinAdd, Ident("a"), Ident("b")))
		},
		WantType: types.Int{Bits: 256, Signed: false},
	},
}
