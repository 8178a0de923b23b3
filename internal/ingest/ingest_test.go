package ingest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/specblock/internal/hostast"
	"github.com/funvibe/specblock/internal/ingest"
	"github.com/funvibe/specblock/internal/types"
)

func TestMatchElementary(t *testing.T) {
	tests := []struct {
		name string
		want types.Type
		ok   bool
	}{
		{"bool", types.Bool{}, true},
		{"address", types.Address{Payable: false}, true},
		{"address payable", types.Address{Payable: true}, true},
		{"uint", types.Int{Bits: 256, Signed: false}, true},
		{"int8", types.Int{Bits: 8, Signed: true}, true},
		{"uint64", types.Int{Bits: 64, Signed: false}, true},
		{"uint7", nil, false},
		{"bytes32", types.FixedBytes{Width: 32}, true},
		{"bytes33", nil, false},
		{"bytes", types.Bytes{}, true},
		{"string", types.String{}, true},
		{"frobnicate", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ingest.MatchElementary(tt.name)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.Equal(t, tt.want.String(), got.String())
			}
		})
	}
}

// TestSpecializeDespecializeInverse asserts spec.md §8 property 2:
// Despecialize(Specialize(T, L)) == T for every T produced by TypeName.
func TestSpecializeDespecializeInverse(t *testing.T) {
	templates := []types.Type{
		types.Bytes{},
		types.String{},
		types.Array{Element: types.Int{Bits: 32, Signed: false}, Size: nil},
		types.Mapping{Key: types.Address{}, Value: types.Int{Bits: 256, Signed: false}},
	}
	for _, want := range templates {
		for _, loc := range []types.Location{types.Storage, types.Memory, types.CallData} {
			got := ingest.Despecialize(ingest.Specialize(want, loc))
			require.Equal(t, want.String(), got.String(), "location %v", loc)
		}
	}
}

func TestSpecializeEnumIsValueType(t *testing.T) {
	enum := types.UserDefined{QualifiedName: "E", Kind: types.DefEnum}
	got := ingest.Specialize(enum, types.Memory)
	_, isPointer := got.(types.Pointer)
	require.False(t, isPointer, "enums are value types, Specialize must not wrap them")
}

func TestVariableStateVariableDefaultsToStorage(t *testing.T) {
	v := &hostast.VariableDecl{
		Name:     "sBy",
		TypeName: hostast.ElementaryTypeName{Name: "bytes"},
		Scope:    hostast.ScopeStateVariable,
	}
	got, err := ingest.Variable(v, nil)
	require.NoError(t, err)
	p, ok := got.(types.Pointer)
	require.True(t, ok)
	require.Equal(t, types.Storage, p.Location)
}

func TestVariableUnknownElementaryIsFatal(t *testing.T) {
	v := &hostast.VariableDecl{
		Name:     "bogus",
		TypeName: hostast.ElementaryTypeName{Name: "nonsense"},
		Scope:    hostast.ScopeStateVariable,
	}
	_, err := ingest.Variable(v, nil)
	require.Error(t, err)
	var unknown *ingest.UnknownElementaryError
	require.ErrorAs(t, err, &unknown)
}
