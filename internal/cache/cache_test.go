package cache_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/specblock/internal/annast"
	"github.com/funvibe/specblock/internal/cache"
	"github.com/funvibe/specblock/internal/diagnostics"
	"github.com/funvibe/specblock/internal/types"
)

func expr() *annast.IntLiteralExpr {
	return &annast.IntLiteralExpr{NodeBase: annast.NewNodeBase(diagnostics.Range{}), Value: "1"}
}

func TestMemoryGetMiss(t *testing.T) {
	m := cache.New()
	_, ok := m.Get(expr())
	require.False(t, ok)
	require.Equal(t, 0, m.Len())
}

func TestMemoryPutGetByIdentity(t *testing.T) {
	m := cache.New()
	e := expr()
	m.Put(e, types.Int{Bits: 256, Signed: false})

	got, ok := m.Get(e)
	require.True(t, ok)
	require.Equal(t, "uint256", got.String())
	require.Equal(t, 1, m.Len())

	// A distinct node, even with identical field values, is a distinct key.
	_, ok = m.Get(expr())
	require.False(t, ok)
}
