package checker

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/specblock/internal/diagnostics"
	"github.com/funvibe/specblock/internal/types"
)

func TestImplicitlyCastableIntWidening(t *testing.T) {
	require.True(t, ImplicitlyCastable(nil, types.Int{Bits: 8, Signed: true}, types.Int{Bits: 128, Signed: true}))
	require.False(t, ImplicitlyCastable(nil, types.Int{Bits: 128, Signed: true}, types.Int{Bits: 8, Signed: true}), "narrowing is not implicit")
	require.False(t, ImplicitlyCastable(nil, types.Int{Bits: 8, Signed: true}, types.Int{Bits: 8, Signed: false}), "sign mismatch is not implicit")
}

func TestImplicitlyCastableIntLiteral(t *testing.T) {
	require.True(t, ImplicitlyCastable(nil, types.IntLiteral{}, types.Int{Bits: 8, Signed: true}))
	require.False(t, ImplicitlyCastable(nil, types.IntLiteral{}, types.Bool{}))
}

func TestImplicitlyCastableAddressPayability(t *testing.T) {
	require.True(t, ImplicitlyCastable(nil, types.Address{Payable: true}, types.Address{Payable: false}),
		"a payable address implicitly casts to plain address")
	require.False(t, ImplicitlyCastable(nil, types.Address{Payable: false}, types.Address{Payable: true}),
		"a plain address does not implicitly cast to payable")
}

func TestImplicitlyCastablePointerSameTo(t *testing.T) {
	from := types.Pointer{To: types.Bytes{}, Location: types.Memory}
	to := types.Pointer{To: types.Bytes{}, Location: types.Storage}
	require.True(t, ImplicitlyCastable(nil, from, to))

	other := types.Pointer{To: types.String{}, Location: types.Storage}
	require.False(t, ImplicitlyCastable(nil, from, other))
}

func TestUnifyFindsCommonType(t *testing.T) {
	a := types.Int{Bits: 8, Signed: true}
	b := types.Int{Bits: 128, Signed: true}
	got, err := unify(diagnostics.Range{}, a, b)
	require.NoError(t, err)
	require.Equal(t, "int128", got.String())
}

func TestUnifyIncompatible(t *testing.T) {
	_, err := unify(diagnostics.Range{}, types.Bool{}, types.Int{Bits: 8, Signed: true})
	require.Error(t, err)
}
