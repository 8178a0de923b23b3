package checker_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/specblock/internal/checker"
	"github.com/funvibe/specblock/internal/diagnostics"
	"github.com/funvibe/specblock/internal/fixtures"
)

// TestScenarios runs the full spec.md §8 table (internal/fixtures.Scenarios)
// against a fresh Checker each time.
func TestScenarios(t *testing.T) {
	for _, sc := range fixtures.Scenarios {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			unit, foo := fixtures.Foo()
			ctx := sc.Context(unit, foo)
			ck := checker.New()
			got, err := ck.Check(sc.Expr(), ctx)

			if sc.WantsError {
				require.Error(t, err)
				d, ok := err.(*diagnostics.Diagnostic)
				require.True(t, ok, "error is not a *diagnostics.Diagnostic: %v", err)
				require.Equal(t, sc.WantCode, d.Code)
				return
			}
			require.NoError(t, err)
			require.Equal(t, sc.WantType.String(), got.String())
		})
	}
}

// TestCacheStability asserts spec.md §3.3: checking the same node twice
// returns the identical type without re-dispatching (re-dispatch on a
// mutated context would produce a different answer, so a stable cache hit
// is the easiest way to observe this).
func TestCacheStability(t *testing.T) {
	unit, foo := fixtures.Foo()
	ctx := fixtures.Scenarios[0].Context(unit, foo)
	expr := fixtures.Scenarios[0].Expr()

	ck := checker.New()
	first, err := ck.Check(expr, ctx)
	require.NoError(t, err)
	require.Equal(t, 1, ck.Cache.Len())

	second, err := ck.Check(expr, ctx)
	require.NoError(t, err)
	require.Equal(t, first.String(), second.String())
	require.Equal(t, 1, ck.Cache.Len(), "re-checking the same node must not grow the cache")
}

// TestNilCacheSkipsCaching exercises the documented "nil Cache is valid"
// behavior.
func TestNilCacheSkipsCaching(t *testing.T) {
	unit, foo := fixtures.Foo()
	ctx := fixtures.Scenarios[0].Context(unit, foo)
	ck := &checker.Checker{}
	got, err := ck.Check(fixtures.Scenarios[0].Expr(), ctx)
	require.NoError(t, err)
	require.Equal(t, fixtures.Scenarios[0].WantType.String(), got.String())
}
