// Package diagnostics implements the closed taxonomy of typed checker errors
// (component E), each carrying a source range (spec.md §3.4, §4.E). A
// Diagnostic aborts the expression being checked; there is no recovery (see
// spec.md §7).
package diagnostics

import (
	"fmt"

	"github.com/funvibe/specblock/internal/types"
)

// Position is a single point in source text.
type Position struct {
	Line   int
	Column int
}

// Range is a half-open source span. Every diagnostic carries one pointing at
// the offending subexpression (or, for calls, at the callee).
type Range struct {
	Start Position
	End   Position
}

func (r Range) String() string {
	if r.Start == r.End {
		return fmt.Sprintf("%d:%d", r.Start.Line, r.Start.Column)
	}
	return fmt.Sprintf("%d:%d-%d:%d", r.Start.Line, r.Start.Column, r.End.Line, r.End.Column)
}

// Ranged is implemented by every annotation-AST node; diagnostics never
// fabricate a range (spec.md §3.4), they always read one off a node.
type Ranged interface {
	ExprRange() Range
}

// Code identifies which of the closed taxonomy's variants a Diagnostic is.
type Code int

const (
	CodeNoField Code = iota
	CodeWrongType
	CodeUnknownId
	CodeMissingSolidityType
	CodeExprCountMismatch
	CodeUnresolvedFun
	CodeFunNoReturn
	CodeArgumentMismatch
	CodeIncompatibleTypes
	CodeInvalidKeyword
)

func (c Code) String() string {
	switch c {
	case CodeNoField:
		return "NoField"
	case CodeWrongType:
		return "WrongType"
	case CodeUnknownId:
		return "UnknownId"
	case CodeMissingSolidityType:
		return "MissingSolidityType"
	case CodeExprCountMismatch:
		return "ExprCountMismatch"
	case CodeUnresolvedFun:
		return "UnresolvedFun"
	case CodeFunNoReturn:
		return "FunNoReturn"
	case CodeArgumentMismatch:
		return "ArgumentMismatch"
	case CodeIncompatibleTypes:
		return "IncompatibleTypes"
	case CodeInvalidKeyword:
		return "InvalidKeyword"
	default:
		return "?diagnostic"
	}
}

// Diagnostic is a single raised error. Field is populated only for NoField;
// ActualType/ExpectedType only where the corresponding variant below
// documents them. Message is always a rendered, human-readable summary.
type Diagnostic struct {
	Code    Code
	Range   Range
	Message string

	Field        string
	ActualType   types.Type
	ExpectedType types.Type
	LeftType     types.Type
	RightType    types.Type
}

func (d *Diagnostic) Error() string { return fmt.Sprintf("%s at %s: %s", d.Code, d.Range, d.Message) }

// NoField reports a missing member `expr.field`.
func NoField(expr Ranged, field string) *Diagnostic {
	return &Diagnostic{
		Code:    CodeNoField,
		Range:   expr.ExprRange(),
		Field:   field,
		Message: fmt.Sprintf("no field or member %q", field),
	}
}

// WrongType reports that expr has a type that cannot be used the way it was
// used (index/member/call base, a non-bool condition, etc.).
func WrongType(expr Ranged, actual types.Type) *Diagnostic {
	return &Diagnostic{
		Code:       CodeWrongType,
		Range:      expr.ExprRange(),
		ActualType: actual,
		Message:    fmt.Sprintf("unexpected type %s", typeString(actual)),
	}
}

// UnknownId reports that an identifier resolved through none of the seven
// resolution steps of spec.md §4.D.
func UnknownId(id Ranged, name string) *Diagnostic {
	return &Diagnostic{
		Code:    CodeUnknownId,
		Range:   id.ExprRange(),
		Field:   name,
		Message: fmt.Sprintf("unknown identifier %q", name),
	}
}

// MissingSolidityType reports that a variable resolved via lookupVar has no
// corresponding host type (ingestTypeName/ingestVariable failed).
func MissingSolidityType(expr Ranged) *Diagnostic {
	return &Diagnostic{
		Code:    CodeMissingSolidityType,
		Range:   expr.ExprRange(),
		Message: "variable has no host-language type",
	}
}

// ExprCountMismatch reports a call with the wrong number of arguments for a
// cast (exactly one argument required), and a let whose number of bound
// names differs from its right-hand side's arity.
func ExprCountMismatch(call Ranged) *Diagnostic {
	return &Diagnostic{
		Code:    CodeExprCountMismatch,
		Range:   call.ExprRange(),
		Message: "wrong number of arguments",
	}
}

// UnresolvedFun reports that zero candidates in an overload set survived
// arity/implicit-cast filtering, or that a call through a function-typed
// value passed the wrong number of arguments.
func UnresolvedFun(call Ranged) *Diagnostic {
	return &Diagnostic{
		Code:    CodeUnresolvedFun,
		Range:   call.ExprRange(),
		Message: "no matching overload for this call",
	}
}

// FunNoReturn reports a call to a function with zero return values used in a
// value position, or `$result` inside a function with zero return values.
func FunNoReturn(call Ranged) *Diagnostic {
	return &Diagnostic{
		Code:    CodeFunNoReturn,
		Range:   call.ExprRange(),
		Message: "function has no return value",
	}
}

// ArgumentMismatch reports an argument that fails implicit castability
// against its resolved formal parameter type (used once a unique overload is
// known, distinct from UnresolvedFun which covers "no overload at all").
func ArgumentMismatch(call Ranged, index int, actual, expected types.Type) *Diagnostic {
	return &Diagnostic{
		Code:         CodeArgumentMismatch,
		Range:        call.ExprRange(),
		ActualType:   actual,
		ExpectedType: expected,
		Message: fmt.Sprintf("argument %d has type %s, expected %s",
			index, typeString(actual), typeString(expected)),
	}
}

// IncompatibleTypes reports that unify(L, R) found no common type.
func IncompatibleTypes(at Range, left types.Type, right types.Type) *Diagnostic {
	return &Diagnostic{
		Code:      CodeIncompatibleTypes,
		Range:     at,
		LeftType:  left,
		RightType: right,
		Message:   fmt.Sprintf("incompatible types %s and %s", typeString(left), typeString(right)),
	}
}

// InvalidKeyword reports a keyword-form node used where it isn't valid: the
// checker raises it for `$result` outside a function scope. `old(...)` is
// never reported through it.
func InvalidKeyword(node Ranged, reason string) *Diagnostic {
	return &Diagnostic{
		Code:    CodeInvalidKeyword,
		Range:   node.ExprRange(),
		Message: reason,
	}
}

// UnsupportedGetter reports a public getter request for a state variable
// whose type despecializes to UserDefined (struct or enum): the source this
// checker is modeled on never implemented synthesizing such a getter's
// return type (spec.md §9, open question (b)), so rather than fail silently
// or guess a shape, member access surfaces this clearly instead of
// resolving to a FunctionSet. It reuses CodeWrongType since the closed
// taxonomy has no dedicated variant for it.
func UnsupportedGetter(expr Ranged, stateVarType types.Type) *Diagnostic {
	return &Diagnostic{
		Code:       CodeWrongType,
		Range:      expr.ExprRange(),
		ActualType: stateVarType,
		Message:    fmt.Sprintf("getter for user-defined-typed state variable (%s) is not yet supported", typeString(stateVarType)),
	}
}

func typeString(t types.Type) string {
	if t == nil {
		return "<unknown>"
	}
	return t.String()
}
