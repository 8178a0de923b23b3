package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/specblock/internal/types"
)

func TestEqualStructural(t *testing.T) {
	require.True(t, types.Equal(types.Int{Bits: 8, Signed: true}, types.Int{Bits: 8, Signed: true}))
	require.False(t, types.Equal(types.Int{Bits: 8, Signed: true}, types.Int{Bits: 8, Signed: false}))
	require.False(t, types.Equal(types.Int{Bits: 8, Signed: true}, types.Int{Bits: 16, Signed: true}))
	require.True(t, types.Equal(nil, nil))
	require.False(t, types.Equal(types.Bool{}, nil))

	p1 := types.Pointer{To: types.Bytes{}, Location: types.Storage}
	p2 := types.Pointer{To: types.Bytes{}, Location: types.Storage}
	p3 := types.Pointer{To: types.Bytes{}, Location: types.Memory}
	require.True(t, types.Equal(p1, p2))
	require.False(t, types.Equal(p1, p3))
}

func TestIsWellFormed(t *testing.T) {
	require.True(t, types.IsWellFormed(types.Int{Bits: 256, Signed: false}))
	require.True(t, types.IsWellFormed(types.Pointer{To: types.Bytes{}, Location: types.Storage}))
	require.False(t, types.IsWellFormed(types.Bytes{}), "bare reference type outside a Pointer is ill-formed")
	require.False(t, types.IsWellFormed(types.Pointer{To: types.Tuple{Elements: []types.Type{types.Bool{}}}, Location: types.Storage}))
	require.True(t, types.IsWellFormed(types.Tuple{Elements: []types.Type{types.Bool{}, types.Int{Bits: 8, Signed: true}}}))
}

func TestIsReferenceType(t *testing.T) {
	require.True(t, types.IsReferenceType(types.Bytes{}))
	require.True(t, types.IsReferenceType(types.Array{Element: types.Bool{}}))
	require.False(t, types.IsReferenceType(types.Bool{}))
	require.True(t, types.IsReferenceType(types.UserDefined{Kind: types.DefStruct}))
	require.False(t, types.IsReferenceType(types.UserDefined{Kind: types.DefEnum}))
}

func TestLocationString(t *testing.T) {
	require.Equal(t, "storage", types.Storage.String())
	require.Equal(t, "memory", types.Memory.String())
	require.Equal(t, "calldata", types.CallData.String())
}
