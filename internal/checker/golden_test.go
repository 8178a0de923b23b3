package checker_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/funvibe/specblock/internal/checker"
	"github.com/funvibe/specblock/internal/diagnostics"
	"github.com/funvibe/specblock/internal/fixtures"
)

// TestScenariosAgainstGolden re-runs the scenario table against the txtar
// golden file testdata/scenarios.txtar, a human-reviewable record of the
// expected result for each spec.md §8 row kept apart from the WantType/
// WantCode literals in fixtures/scenarios.go (which TestScenarios checks).
func TestScenariosAgainstGolden(t *testing.T) {
	path := filepath.Join("..", "..", "testdata", "scenarios.txtar")
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	archive := txtar.Parse(raw)

	want := make(map[string]string, len(archive.Files))
	for _, f := range archive.Files {
		want[f.Name] = strings.TrimSpace(string(f.Data))
	}

	for _, sc := range fixtures.Scenarios {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			wantLine, ok := want[sc.Name]
			require.True(t, ok, "no golden entry for scenario %s", sc.Name)

			unit, foo := fixtures.Foo()
			ctx := sc.Context(unit, foo)
			ck := checker.New()
			got, err := ck.Check(sc.Expr(), ctx)

			switch {
			case strings.HasPrefix(wantLine, "type: "):
				require.NoError(t, err)
				require.Equal(t, strings.TrimPrefix(wantLine, "type: "), got.String())
			case strings.HasPrefix(wantLine, "diagnostic: "):
				require.Error(t, err)
				d, ok := err.(*diagnostics.Diagnostic)
				require.True(t, ok)
				require.Equal(t, strings.TrimPrefix(wantLine, "diagnostic: "), d.Code.String())
			default:
				t.Fatalf("unrecognized golden line %q", wantLine)
			}
		})
	}
}
