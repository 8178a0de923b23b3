package diagnostics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/specblock/internal/diagnostics"
	"github.com/funvibe/specblock/internal/types"
)

type ranged struct{ r diagnostics.Range }

func (r ranged) ExprRange() diagnostics.Range { return r.r }

func at(line, col int) ranged {
	p := diagnostics.Position{Line: line, Column: col}
	return ranged{diagnostics.Range{Start: p, End: p}}
}

func TestMissingSolidityTypeCarriesRangeAndCode(t *testing.T) {
	d := diagnostics.MissingSolidityType(at(3, 4))
	require.Equal(t, diagnostics.CodeMissingSolidityType, d.Code)
	require.Equal(t, "3:4", d.Range.String())
	require.Contains(t, d.Error(), "MissingSolidityType")
	require.Contains(t, d.Error(), "3:4")
}

func TestIncompatibleTypesCarriesBothSides(t *testing.T) {
	left := types.Int{Bits: 8, Signed: true}
	right := types.Bool{}
	d := diagnostics.IncompatibleTypes(diagnostics.Range{}, left, right)

	require.Equal(t, diagnostics.CodeIncompatibleTypes, d.Code)
	require.Equal(t, left, d.LeftType)
	require.Equal(t, right, d.RightType)
	require.Contains(t, d.Message, "int8")
	require.Contains(t, d.Message, "bool")
}

func TestInvalidKeywordKeepsCallerReason(t *testing.T) {
	d := diagnostics.InvalidKeyword(at(1, 1), "$result outside a function scope")
	require.Equal(t, diagnostics.CodeInvalidKeyword, d.Code)
	require.Equal(t, "$result outside a function scope", d.Message)
}

func TestArgumentMismatchReportsIndexAndTypes(t *testing.T) {
	actual := types.Bool{}
	expected := types.Int{Bits: 64, Signed: false}
	d := diagnostics.ArgumentMismatch(at(5, 2), 1, actual, expected)

	require.Equal(t, diagnostics.CodeArgumentMismatch, d.Code)
	require.Equal(t, actual, d.ActualType)
	require.Equal(t, expected, d.ExpectedType)
	require.Contains(t, d.Message, "argument 1")
	require.Contains(t, d.Message, "bool")
	require.Contains(t, d.Message, "uint64")
}

func TestUnsupportedGetterReusesWrongTypeCode(t *testing.T) {
	st := types.UserDefined{QualifiedName: "Foo.S", Kind: types.DefStruct}
	d := diagnostics.UnsupportedGetter(at(1, 1), st)

	require.Equal(t, diagnostics.CodeWrongType, d.Code, "no dedicated taxonomy entry, so it reuses WrongType")
	require.Equal(t, st, d.ActualType)
	require.Contains(t, d.Message, "not yet supported")
}

func TestRangeStringCollapsesWhenStartEqualsEnd(t *testing.T) {
	r := diagnostics.Range{Start: diagnostics.Position{Line: 2, Column: 3}, End: diagnostics.Position{Line: 2, Column: 3}}
	require.Equal(t, "2:3", r.String())
}

func TestRangeStringSpansWhenStartDiffersFromEnd(t *testing.T) {
	r := diagnostics.Range{
		Start: diagnostics.Position{Line: 1, Column: 1},
		End:   diagnostics.Position{Line: 1, Column: 9},
	}
	require.Equal(t, "1:1-1:9", r.String())
}

func TestCodeStringCoversEveryVariant(t *testing.T) {
	codes := []diagnostics.Code{
		diagnostics.CodeNoField,
		diagnostics.CodeWrongType,
		diagnostics.CodeUnknownId,
		diagnostics.CodeMissingSolidityType,
		diagnostics.CodeExprCountMismatch,
		diagnostics.CodeUnresolvedFun,
		diagnostics.CodeFunNoReturn,
		diagnostics.CodeArgumentMismatch,
		diagnostics.CodeIncompatibleTypes,
		diagnostics.CodeInvalidKeyword,
	}
	for _, c := range codes {
		require.NotEqual(t, "?diagnostic", c.String())
	}
}
