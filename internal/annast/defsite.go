package annast

import (
	"github.com/funvibe/specblock/internal/hostast"
	"github.com/funvibe/specblock/internal/scope"
	"github.com/funvibe/specblock/internal/types"
)

// DefSiteKind distinguishes what an IdentifierExpr was ultimately resolved
// against (spec.md §3.3: "identifier nodes carry a mutable def-site
// annotation, populated by the checker the first time the identifier is
// resolved").
type DefSiteKind int

const (
	// DefSiteNone marks an identifier not yet visited by the checker.
	DefSiteNone DefSiteKind = iota
	DefSiteHostVariable
	DefSiteLetBinding
	DefSiteThis
	DefSiteFunctionName
	DefSiteTypeName
)

// DefSite is the mutable annotation the checker stamps onto an
// IdentifierExpr the first time it resolves it, so a second visit (e.g. a
// cache hit, or re-checking the same AST for a different purpose) need not
// repeat resolution. Exactly one of the payload fields is meaningful,
// selected by Kind.
type DefSite struct {
	Kind DefSiteKind

	// Kind == DefSiteHostVariable
	HostVariable *hostast.VariableDecl

	// Kind == DefSiteLetBinding
	LetScope *scope.LetScope
	LetIndex int

	// Kind == DefSiteFunctionName
	Candidates types.FunctionSet

	// Kind == DefSiteTypeName
	TypeDecl hostast.Declaration
}
