package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/specblock/internal/builtins"
	"github.com/funvibe/specblock/internal/types"
)

func TestSymbolsBlockMsgTx(t *testing.T) {
	block, ok := builtins.Symbols["block"]
	require.True(t, ok)
	bs, ok := block.(types.BuiltinStruct)
	require.True(t, ok)
	require.Contains(t, bs.Members, "timestamp")
	require.Contains(t, bs.Members, "coinbase")

	msg, ok := builtins.Symbols["msg"]
	require.True(t, ok)
	ms := msg.(types.BuiltinStruct)
	sender, ok := ms.Members["sender"]
	require.True(t, ok)
	require.Equal(t, "address payable", sender.String())
}

func TestSymbolsHashingFunctionsArePure(t *testing.T) {
	k, ok := builtins.Symbols["keccak256"]
	require.True(t, ok)
	fn, ok := k.(types.Function)
	require.True(t, ok)
	require.Equal(t, types.MutPure, fn.Mutability)
	require.Len(t, fn.Returns, 1)
	require.Equal(t, "bytes32", fn.Returns[0].String())
}

func TestAddressMembersBalanceAndCall(t *testing.T) {
	bal, ok := builtins.AddressMembers["balance"]
	require.True(t, ok)
	require.Equal(t, "uint256", bal.String())

	call, ok := builtins.AddressMembers["call"]
	require.True(t, ok)
	fn, ok := call.(types.Function)
	require.True(t, ok)
	require.Len(t, fn.Returns, 2)
	require.Equal(t, "bool", fn.Returns[0].String())
}
