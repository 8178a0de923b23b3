// Package builtins supplies the two static registries spec.md §6 lists as
// consumed external interfaces but never enumerates the contents of:
// BuiltinSymbols (identifier -> type, for block/msg/tx/hashing/gas builtins)
// and BuiltinAddressMembers (member name -> type, for address.balance and
// friends). SPEC_FULL.md §4.H supplies concrete, conservative contents
// covering exactly the examples spec.md §4.C names.
package builtins

import "github.com/funvibe/specblock/internal/types"

func u(bits int) types.Type   { return types.Int{Bits: bits, Signed: false} }
func addr(payable bool) types.Type { return types.Address{Payable: payable} }

func pureFn(params []types.Type, ret types.Type) types.Function {
	return types.Function{Params: params, Returns: []types.Type{ret}, Mutability: types.MutPure}
}

// blockStruct, msgStruct, and txStruct are the three builtin pseudo-
// namespaces every annotation site can reach regardless of scope.
var blockStruct = types.BuiltinStruct{Name: "block", Members: map[string]types.Type{
	"timestamp":  u(256),
	"number":     u(256),
	"difficulty": u(256),
	"gaslimit":   u(256),
	"coinbase":   addr(true),
	"chainid":    u(256),
	"basefee":    u(256),
}}

var msgStruct = types.BuiltinStruct{Name: "msg", Members: map[string]types.Type{
	"sender": addr(true),
	"value":  u(256),
	"data":   types.Pointer{To: types.Bytes{}, Location: types.CallData},
	"sig":    types.FixedBytes{Width: 4},
}}

var txStruct = types.BuiltinStruct{Name: "tx", Members: map[string]types.Type{
	"origin":   addr(true),
	"gasprice": u(256),
}}

// Symbols is the static identifier -> type registry consulted as the last
// resolution step of spec.md §4.D ("Builtin symbol").
var Symbols = map[string]types.Type{
	"block": blockStruct,
	"msg":   msgStruct,
	"tx":    txStruct,

	"now":      u(256),
	"gasleft":  pureFn(nil, u(256)),
	"addmod":   pureFn([]types.Type{u(256), u(256), u(256)}, u(256)),
	"mulmod":   pureFn([]types.Type{u(256), u(256), u(256)}, u(256)),
	"blockhash": pureFn([]types.Type{u(256)}, types.FixedBytes{Width: 32}),
	"keccak256": pureFn([]types.Type{types.Pointer{To: types.Bytes{}, Location: types.Memory}}, types.FixedBytes{Width: 32}),
	"sha256":    pureFn([]types.Type{types.Pointer{To: types.Bytes{}, Location: types.Memory}}, types.FixedBytes{Width: 32}),
	"ripemd160": pureFn([]types.Type{types.Pointer{To: types.Bytes{}, Location: types.Memory}}, types.FixedBytes{Width: 20}),
	"ecrecover": pureFn(
		[]types.Type{types.FixedBytes{Width: 32}, u(8), types.FixedBytes{Width: 32}, types.FixedBytes{Width: 32}},
		addr(false),
	),
}

// AddressMembers is the member-name -> type registry consulted both for
// `address.m` and as the contract-member fallback in spec.md §4.D's
// Pointer(UserDefined(contract)) case (c).
var AddressMembers = map[string]types.Type{
	"balance":      u(256),
	"code":         types.Pointer{To: types.Bytes{}, Location: types.Memory},
	"codehash":     types.FixedBytes{Width: 32},
	"transfer":     types.Function{Params: []types.Type{u(256)}, Mutability: types.MutNonpayable},
	"send":         types.Function{Params: []types.Type{u(256)}, Returns: []types.Type{types.Bool{}}, Mutability: types.MutNonpayable},
	"call":         lowLevelCallType(),
	"delegatecall": lowLevelCallType(),
	"staticcall":   lowLevelCallType(),
}

func lowLevelCallType() types.Function {
	return types.Function{
		Params:  []types.Type{types.Pointer{To: types.Bytes{}, Location: types.Memory}},
		Returns: []types.Type{types.Bool{}, types.Pointer{To: types.Bytes{}, Location: types.Memory}},
		Mutability: types.MutNonpayable,
	}
}
