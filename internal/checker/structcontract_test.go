package checker_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/specblock/internal/checker"
	"github.com/funvibe/specblock/internal/diagnostics"
	"github.com/funvibe/specblock/internal/fixtures"
	"github.com/funvibe/specblock/internal/hostast"
	"github.com/funvibe/specblock/internal/scope"
)

// These cover the call.go/member.go dispatch surface the spec.md §8 scenario
// table never reaches: struct construction and contract/enum casts (call
// cases 2-4), contract member access (both the function and public-getter
// branches), the UnsupportedGetter branch (spec.md §9 open question (b)),
// and a function-typed-value call (call case 6).

func fooCtx(unit *hostast.SourceUnit, foo *hostast.ContractDecl) scope.Context {
	return scope.NewContext([]*hostast.SourceUnit{unit}, foo, nil)
}

func TestStructConstructorCall(t *testing.T) {
	unit, foo := fixtures.Foo()
	ctx := fooCtx(unit, foo)

	got, err := checker.New().Check(fixtures.Call(fixtures.Ident("Point"), fixtures.IntLit("1"), fixtures.IntLit("2")), ctx)
	require.NoError(t, err)
	require.Equal(t, "Foo.Point memory", got.String())
}

func TestContractCastCall(t *testing.T) {
	unit, foo := fixtures.Foo()
	ctx := fooCtx(unit, foo)

	got, err := checker.New().Check(fixtures.Call(fixtures.Ident("Other"), fixtures.Ident("sV1")), ctx)
	require.NoError(t, err)
	require.Equal(t, "Other storage", got.String())
}

func TestEnumCastCall(t *testing.T) {
	unit, foo := fixtures.Foo()
	ctx := fooCtx(unit, foo)

	got, err := checker.New().Check(fixtures.Call(fixtures.Ident("FooEnum"), fixtures.IntLit("5")), ctx)
	require.NoError(t, err)
	require.Equal(t, "Foo.FooEnum storage", got.String())
}

func TestContractMemberResolvesFunctionFirst(t *testing.T) {
	unit, foo := fixtures.Foo()
	ctx := fooCtx(unit, foo)

	got, err := checker.New().Check(fixtures.Member(fixtures.Ident("this"), "add"), ctx)
	require.NoError(t, err)
	require.Equal(t, "overload{add}", got.String())
}

func TestContractMemberPublicGetterNonStruct(t *testing.T) {
	unit, foo := fixtures.Foo()
	ctx := fooCtx(unit, foo)

	got, err := checker.New().Check(fixtures.Call(fixtures.Member(fixtures.Ident("this"), "sPub")), ctx)
	require.NoError(t, err)
	require.Equal(t, "uint256", got.String())
}

func TestContractMemberUnsupportedGetterForStructTypedStateVar(t *testing.T) {
	unit, foo := fixtures.Foo()
	ctx := fooCtx(unit, foo)

	_, err := checker.New().Check(fixtures.Member(fixtures.Ident("this"), "sPoint"), ctx)
	require.Error(t, err)
	d, ok := err.(*diagnostics.Diagnostic)
	require.True(t, ok)
	require.Equal(t, diagnostics.CodeWrongType, d.Code, "UnsupportedGetter reuses WrongType; no dedicated taxonomy entry")
}

func TestFunctionValueCall(t *testing.T) {
	unit, foo := fixtures.Foo()
	ctx := fooCtx(unit, foo)

	got, err := checker.New().Check(fixtures.Call(fixtures.Ident("cb"), fixtures.IntLit("1")), ctx)
	require.NoError(t, err)
	require.Equal(t, "bool", got.String())
}

func TestFunctionValueCallArgumentMismatch(t *testing.T) {
	unit, foo := fixtures.Foo()
	ctx := fooCtx(unit, foo)

	_, err := checker.New().Check(fixtures.Call(fixtures.Ident("cb"), fixtures.BoolLit(true)), ctx)
	require.Error(t, err)
	d, ok := err.(*diagnostics.Diagnostic)
	require.True(t, ok)
	require.Equal(t, diagnostics.CodeArgumentMismatch, d.Code)
}
