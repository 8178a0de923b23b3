package types

// Equal implements the structural equality of spec.md §4.A: walk both trees,
// compare variant tag and parameters, and for UserDefined variants compare
// qualified names (the underlying declarations, since a Declaration is
// produced once per host symbol table and shared by reference, necessarily
// agree when the names do). Source positions never participate.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case Bool:
		_, ok := b.(Bool)
		return ok
	case Address:
		bv, ok := b.(Address)
		return ok && av.Payable == bv.Payable
	case Int:
		bv, ok := b.(Int)
		return ok && av.Bits == bv.Bits && av.Signed == bv.Signed
	case IntLiteral:
		_, ok := b.(IntLiteral)
		return ok
	case FixedBytes:
		bv, ok := b.(FixedBytes)
		return ok && av.Width == bv.Width
	case Bytes:
		_, ok := b.(Bytes)
		return ok
	case String:
		_, ok := b.(String)
		return ok
	case StringLiteral:
		_, ok := b.(StringLiteral)
		return ok
	case Array:
		bv, ok := b.(Array)
		if !ok || !Equal(av.Element, bv.Element) {
			return false
		}
		if (av.Size == nil) != (bv.Size == nil) {
			return false
		}
		return av.Size == nil || *av.Size == *bv.Size
	case Mapping:
		bv, ok := b.(Mapping)
		return ok && Equal(av.Key, bv.Key) && Equal(av.Value, bv.Value)
	case UserDefined:
		bv, ok := b.(UserDefined)
		return ok && av.Kind == bv.Kind && av.QualifiedName == bv.QualifiedName
	case Tuple:
		bv, ok := b.(Tuple)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equal(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case Pointer:
		bv, ok := b.(Pointer)
		return ok && av.Location == bv.Location && Equal(av.To, bv.To)
	case Function:
		bv, ok := b.(Function)
		if !ok || av.Visibility != bv.Visibility || av.Mutability != bv.Mutability {
			return false
		}
		return typeSliceEqual(av.Params, bv.Params) && typeSliceEqual(av.Returns, bv.Returns)
	case BuiltinStruct:
		bv, ok := b.(BuiltinStruct)
		return ok && av.Name == bv.Name
	case BuiltinTypeName:
		bv, ok := b.(BuiltinTypeName)
		return ok && Equal(av.Type, bv.Type)
	case UserDefinedTypeName:
		bv, ok := b.(UserDefinedTypeName)
		return ok && av.Kind == bv.Kind && av.Def.DeclName() == bv.Def.DeclName()
	case FunctionSet:
		bv, ok := b.(FunctionSet)
		return ok && len(av.Defs) == len(bv.Defs)
	default:
		return false
	}
}

func typeSliceEqual(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// IsReferenceType reports whether t, once specialized, must live behind a
// Pointer: Array, Bytes, String, Mapping, and UserDefined structs/contracts.
// UserDefined enums are value types. Tuple never appears inside a Pointer at
// all (see specialize/despecialize in internal/ingest).
func IsReferenceType(t Type) bool {
	switch tt := t.(type) {
	case Array, Bytes, String, Mapping:
		return true
	case UserDefined:
		return tt.Kind == DefStruct || tt.Kind == DefContract
	default:
		return false
	}
}

// IsWellFormed checks the invariant of spec.md §3.1: reference types never
// appear outside a Pointer, value types and Tuple never appear inside one.
func IsWellFormed(t Type) bool {
	switch tt := t.(type) {
	case Pointer:
		if _, isTuple := tt.To.(Tuple); isTuple {
			return false
		}
		if !IsReferenceType(tt.To) {
			return false
		}
		return IsWellFormed(tt.To)
	case Array:
		return !IsReferenceType(tt.Element) && IsWellFormed(tt.Element)
	case Mapping:
		return !IsReferenceType(tt.Key) && !IsReferenceType(tt.Value) &&
			IsWellFormed(tt.Key) && IsWellFormed(tt.Value)
	case Tuple:
		for _, e := range tt.Elements {
			if !IsWellFormed(e) {
				return false
			}
		}
		return true
	default:
		// Bare reference types (Bytes, String, UserDefined struct/contract)
		// outside a Pointer violate the invariant; everything else is fine.
		return !IsReferenceType(t)
	}
}
