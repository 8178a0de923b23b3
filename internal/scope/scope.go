// Package scope implements component C: the ordered scope stack and the
// name-resolution algorithms that walk it (spec.md §4.C). A Context is an
// immutable value — pushing a function or let scope returns a new Context,
// never mutates the caller's — so a single checker invocation can fork
// scopes (e.g. the two branches of a conditional) without aliasing bugs.
package scope

import (
	"github.com/funvibe/specblock/internal/hostast"
	"github.com/funvibe/specblock/internal/types"
)

// LetScope is the scope pushed by a `let x1, ..., xn = e in body` node. Its
// pointer identity is what annast.DefSite compares against when an
// identifier resolves to a let-bound name (two lets with identical names
// are still distinct scopes), matching spec.md §3.3's "identity, not name,
// distinguishes shadowing let-bindings". RHSType is the already-checked
// type of the right-hand side, filled in once by the checker before the
// scope is pushed, so identifier resolution never has to re-check the
// right-hand side itself (spec.md §3.3's cache-stability invariant).
type LetScope struct {
	Names   []string
	RHSType types.Type
}

// IndexOf returns the position of name within the let-bound names, or -1.
// Per spec.md §4.C, when multiple bound names coincide the leftmost wins,
// so callers must scan left to right and stop at the first match — which is
// exactly what a forward range over Names does.
func (s *LetScope) IndexOf(name string) int {
	for i, n := range s.Names {
		if n == name {
			return i
		}
	}
	return -1
}

// entry is the unexported sum type backing Context.entries; one of
// *unitsEntry, *contractEntry, *functionEntry, *letEntry.
type entry interface{ isEntry() }

type unitsEntry struct{ Units []*hostast.SourceUnit }
type contractEntry struct{ Contract *hostast.ContractDecl }
type functionEntry struct{ Function *hostast.FunctionDecl }
type letEntry struct{ Scope *LetScope }

func (*unitsEntry) isEntry()    {}
func (*contractEntry) isEntry() {}
func (*functionEntry) isEntry() {}
func (*letEntry) isEntry()      {}

// Context is the ordered scope stack of spec.md §3.2/§4.C: source units is
// always entries[0]; contract and function scopes are supplied once by the
// driver (spec.md §6); let scopes are pushed and popped by the checker as it
// descends into `let ... in ...` bodies.
type Context struct {
	entries []entry
}

// NewContext builds the base context every check begins from: the global
// source-unit scope, plus (optionally) the contract and function scope the
// driver supplies for this annotation site (spec.md §6: "the driver always
// supplies at least scopes (1) and (2)").
func NewContext(units []*hostast.SourceUnit, contract *hostast.ContractDecl, fn *hostast.FunctionDecl) Context {
	c := Context{entries: []entry{&unitsEntry{Units: units}}}
	if contract != nil {
		c.entries = append(c.entries, &contractEntry{Contract: contract})
	}
	if fn != nil {
		c.entries = append(c.entries, &functionEntry{Function: fn})
	}
	return c
}

// WithLet returns a new Context with one more let scope pushed, innermost.
func (c Context) WithLet(s *LetScope) Context {
	next := make([]entry, len(c.entries)+1)
	copy(next, c.entries)
	next[len(next)-1] = &letEntry{Scope: s}
	return Context{entries: next}
}

// CurrentFunction returns the innermost function scope, if any. `$result`
// and `old(...)` are only meaningful when this is non-nil (spec.md §4.D).
func (c Context) CurrentFunction() (*hostast.FunctionDecl, bool) {
	for i := len(c.entries) - 1; i >= 0; i-- {
		if f, ok := c.entries[i].(*functionEntry); ok {
			return f.Function, true
		}
	}
	return nil, false
}

// CurrentContract returns the contract scope supplied at construction, if
// any (it is never pushed/popped after NewContext, so a single linear scan
// suffices).
func (c Context) CurrentContract() (*hostast.ContractDecl, bool) {
	for _, e := range c.entries {
		if ce, ok := e.(*contractEntry); ok {
			return ce.Contract, true
		}
	}
	return nil, false
}

// SourceUnits returns the global scope's source units (always entries[0]).
func (c Context) SourceUnits() []*hostast.SourceUnit {
	return c.entries[0].(*unitsEntry).Units
}

// Depth reports how many scopes are currently stacked, mostly for the
// pretty-printer and for tests asserting a let scope was actually pushed.
func (c Context) Depth() int { return len(c.entries) }
