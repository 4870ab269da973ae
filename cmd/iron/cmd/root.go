// Package cmd implements Iron's CLI: a single root command (spec.md §6's
// `iron [OPTIONS] FILE...` has no subcommands, unlike the teacher's
// run/parse/lex/compile/fmt split), built with github.com/spf13/cobra —
// the teacher's CLI library — and adapted from the teacher's
// cmd/dwscript/cmd/root.go + run.go (Command wiring, version templating,
// exitWithError).
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information, set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	flagDebug  bool
	flagAST    bool
	flagStatus bool
)

var rootCmd = &cobra.Command{
	Use:     "iron [OPTIONS] FILE...",
	Short:   "Iron interpreter",
	Version: Version,
	Long: `iron is a tree-walking interpreter for Iron, a small Lisp-family
language with parenthesised s-expressions, first-class closures, lexical
environments, literal arrays, quoted lists, and a module import facility.`,
	Args: cobra.ArbitraryArgs,
	RunE: runFiles,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.Flags().BoolVarP(&flagDebug, "debug", "d", false, "skip the optimize pass before evaluation")
	rootCmd.Flags().BoolVar(&flagAST, "ast", false, "print the parsed AST and exit without evaluating")
	rootCmd.Flags().BoolVar(&flagStatus, "status", false, "print the exit status after evaluation")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
