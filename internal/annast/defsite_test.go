package annast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/specblock/internal/annast"
	"github.com/funvibe/specblock/internal/checker"
	"github.com/funvibe/specblock/internal/fixtures"
)

// TestIdentifierDefSiteIsStampedOnce exercises spec.md §3.3: checking an
// identifier stamps its DefSite, and a second check (a cache hit) leaves it
// unchanged rather than re-resolving.
func TestIdentifierDefSiteIsStampedOnce(t *testing.T) {
	unit, foo := fixtures.Foo()
	ctx := fixtures.Scenarios[0].Context(unit, foo)
	id := fixtures.Ident("sV1")

	ck := checker.New()
	_, err := ck.Check(id, ctx)
	require.NoError(t, err)
	require.Equal(t, annast.DefSiteHostVariable, id.DefSite.Kind)
	require.NotNil(t, id.DefSite.HostVariable)
	require.Equal(t, "sV1", id.DefSite.HostVariable.Name)

	first := id.DefSite
	_, err = ck.Check(id, ctx)
	require.NoError(t, err)
	require.Equal(t, first.Kind, id.DefSite.Kind)
	require.Same(t, first.HostVariable, id.DefSite.HostVariable)
}
