// Package annast defines the annotation-language expression AST: the node
// variants enumerated in spec.md §4.D (literals, identifiers, $result,
// unary/binary/conditional, index/member access, let, and call). spec.md §1
// treats the expression parser as an out-of-scope external collaborator that
// "produces the AST consumed here"; this package is the concrete shape of
// that AST (SPEC_FULL.md §5), grounded on the Accept/Node shape of funxy's
// internal/ast package, with one addition: every node carries a uuid.UUID
// identity so the type cache (spec.md §3.3, "keyed by AST node identity")
// has a concrete key.
package annast

import (
	"github.com/funvibe/specblock/internal/diagnostics"
	"github.com/google/uuid"
)

// Expression is the interface every annotation-AST node implements.
type Expression interface {
	NodeIdentity() string
	ExprRange() diagnostics.Range
}

// NodeBase is embedded by every concrete node. It supplies the stable
// identity and source range that spec.md §3.3/§3.4 require of every node,
// without each variant re-declaring them.
type NodeBase struct {
	ID    uuid.UUID
	Range diagnostics.Range
}

// NewNodeBase stamps a fresh identity for a node at a given range. The
// parser (out of scope here) is expected to call this once per node it
// builds; tests and the fixture loader do the same.
func NewNodeBase(r diagnostics.Range) NodeBase {
	return NodeBase{ID: uuid.New(), Range: r}
}

func (n NodeBase) NodeIdentity() string         { return n.ID.String() }
func (n NodeBase) ExprRange() diagnostics.Range { return n.Range }
