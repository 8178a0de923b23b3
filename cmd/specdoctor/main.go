// Command specdoctor is a small demo driver over the type checker: it runs
// the spec.md §8 scenario table against the fixture contract Foo and prints
// each row's result, in the style of the teacher repo's demo CLI (a cobra
// root command with run/list subcommands).
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/funvibe/specblock/internal/checker"
	"github.com/funvibe/specblock/internal/diagnostics"
	"github.com/funvibe/specblock/internal/diagrender"
	"github.com/funvibe/specblock/internal/fixtures"
)

var useColor = isatty.IsTerminal(os.Stdout.Fd())

func colorize(code string, s string) string {
	if !useColor {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

func green(s string) string { return colorize("32", s) }
func red(s string) string   { return colorize("31", s) }
func bold(s string) string  { return colorize("1", s) }

func runScenario(s fixtures.Scenario) (string, bool) {
	unit, foo := fixtures.Foo()
	ctx := s.Context(unit, foo)
	ck := checker.New()
	t, err := ck.Check(s.Expr(), ctx)

	if s.WantsError {
		if err == nil {
			return fmt.Sprintf("expected diagnostic %s, got type %s", s.WantCode, t), false
		}
		d, ok := err.(*diagnostics.Diagnostic)
		if !ok || d.Code != s.WantCode {
			return fmt.Sprintf("expected diagnostic %s, got %v", s.WantCode, err), false
		}
		return diagrender.Line(d, 0), true
	}

	if err != nil {
		return fmt.Sprintf("unexpected error: %v", err), false
	}
	if t.String() != s.WantType.String() {
		return fmt.Sprintf("expected type %s, got %s", s.WantType, t), false
	}
	return t.String(), true
}

func runAll(names []string) error {
	failures := 0
	for _, sc := range fixtures.Scenarios {
		if len(names) > 0 && !contains(names, sc.Name) {
			continue
		}
		detail, ok := runScenario(sc)
		mark := green("ok")
		if !ok {
			mark = red("FAIL")
			failures++
		}
		fmt.Printf("%s %-24s %s\n", mark, sc.Name, detail)
	}
	if failures > 0 {
		return fmt.Errorf("%d scenario(s) failed", failures)
	}
	return nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "specdoctor",
		Short: "Type checker scenario runner",
		Long:  "Runs the annotation-language type checker against the fixture contract Foo and its spec.md §8 scenario table.",
	}

	runCmd := &cobra.Command{
		Use:   "run [scenario...]",
		Short: "Run one or more scenarios (all, if none named)",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(bold("specdoctor — scenario run"))
			return runAll(args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List available scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			for _, sc := range fixtures.Scenarios {
				fmt.Printf("%s\n", sc.Name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, listCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, red("error:"), err)
		os.Exit(1)
	}
}
