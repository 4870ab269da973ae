package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arcterus/iron/internal/ast"
	"github.com/arcterus/iron/internal/interp"
	"github.com/arcterus/iron/internal/parser"
	"github.com/arcterus/iron/internal/printer"
	"github.com/arcterus/iron/internal/sourceio"
	"github.com/arcterus/iron/internal/units"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}

// runFiles is rootCmd's RunE: it executes every FILE argument in
// sequence, sharing one module search path across them (spec.md §6). With
// no file argument it reports the REPL-not-implemented error the
// original source also surfaces.
func runFiles(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("REPL NYI")
	}

	modulePath := units.GetDefaultSearchPaths()
	status := 0
	for _, file := range args {
		if err := runFile(file, modulePath); err != nil {
			status = 1
			if flagStatus {
				fmt.Printf("exit status: %d\n", status)
			}
			return err
		}
	}
	if flagStatus {
		fmt.Printf("exit status: %d\n", status)
	}
	return nil
}

func runFile(file string, modulePath []string) error {
	src, err := sourceio.Load(file)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", file, err)
	}

	root, err := parser.Parse(src)
	if err != nil {
		if pe, ok := err.(*parser.ParseError); ok {
			return pe.CompilerError(src, file)
		}
		return err
	}

	program := ast.Node(root)
	if !flagDebug {
		program = ast.Optimize(root)
	}
	programRoot, ok := program.(*ast.Root)
	if !ok {
		programRoot = root
	}

	if flagAST {
		printer.Dump(programRoot)
		return nil
	}

	absFile, err := filepath.Abs(file)
	if err != nil {
		return err
	}

	it := interp.New(absFile, os.Stdout, modulePath)
	if _, err := it.Run(programRoot); err != nil {
		return err
	}
	return nil
}
