// Package diagrender renders diagnostics.Diagnostic values for human
// consumption: a YAML document for machine-readable test fixtures and CI
// output, and a terse one-line-per-diagnostic form for a terminal. Neither
// the type checker nor component E depends on this package — it is purely
// a presentation layer the demo driver (cmd/specdoctor) and the test suite
// share, so diagnostic text formatting isn't duplicated between them.
package diagrender

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/funvibe/specblock/internal/diagnostics"
)

// doc mirrors diagnostics.Diagnostic with yaml tags; it exists separately
// because Diagnostic's Type fields hold the types.Type interface, which
// yaml.v3 can't marshal directly without a custom shape.
type doc struct {
	Code     string `yaml:"code"`
	Range    string `yaml:"range"`
	Message  string `yaml:"message"`
	Field    string `yaml:"field,omitempty"`
	Actual   string `yaml:"actual_type,omitempty"`
	Expected string `yaml:"expected_type,omitempty"`
	Left     string `yaml:"left_type,omitempty"`
	Right    string `yaml:"right_type,omitempty"`
}

func toDoc(d *diagnostics.Diagnostic) doc {
	out := doc{
		Code:    d.Code.String(),
		Range:   d.Range.String(),
		Message: d.Message,
		Field:   d.Field,
	}
	if d.ActualType != nil {
		out.Actual = d.ActualType.String()
	}
	if d.ExpectedType != nil {
		out.Expected = d.ExpectedType.String()
	}
	if d.LeftType != nil {
		out.Left = d.LeftType.String()
	}
	if d.RightType != nil {
		out.Right = d.RightType.String()
	}
	return out
}

// YAML renders a batch of diagnostics as a single YAML document: a list
// with one mapping per diagnostic (code, range, message, and whichever type
// fields are set).
func YAML(diags []*diagnostics.Diagnostic) (string, error) {
	docs := make([]doc, len(diags))
	for i, d := range diags {
		docs[i] = toDoc(d)
	}
	out, err := yaml.Marshal(docs)
	if err != nil {
		return "", fmt.Errorf("diagrender: marshal: %w", err)
	}
	return string(out), nil
}

// Line renders a single diagnostic as one terminal-friendly line, e.g.:
//
//	12:4: WrongType: unexpected type uint256 (3 candidates considered)
//
// candidateCount is humanized with go-humanize so large overload sets read
// naturally ("1,024 candidates considered") instead of as a bare integer;
// pass 0 to omit the parenthetical entirely.
func Line(d *diagnostics.Diagnostic, candidateCount int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s: %s", d.Range, d.Code, d.Message)
	if candidateCount > 0 {
		fmt.Fprintf(&b, " (%s candidates considered)", humanize.Comma(int64(candidateCount)))
	}
	return b.String()
}
