package interp

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/arcterus/iron/internal/ast"
	"github.com/arcterus/iron/internal/builtins"
	"github.com/arcterus/iron/internal/interp/runtime"
	"github.com/arcterus/iron/internal/parser"
	"github.com/arcterus/iron/internal/sourceio"
	"github.com/arcterus/iron/internal/units"
)

// Interpreter holds the global Environment and Context for one file. Each
// imported file runs in its own Interpreter, with a Context of its own
// that reuses the importer's output writer and module path. Each
// top-level form gets a fresh operand stack (spec.md §4.3: "clearing the
// operand stack between them").
type Interpreter struct {
	Env *runtime.Environment
	Ctx *runtime.Context
}

// New builds a fresh Interpreter with the global built-ins registered and
// FILE bound to file (spec.md §6: the absolute path of the entry file,
// consulted by `import` to resolve relative paths).
func New(file string, output io.Writer, modulePath []string) *Interpreter {
	ctx := &runtime.Context{Output: output, ModulePath: modulePath}
	env := runtime.NewRootEnvironment(ctx)
	builtins.Register(env)
	env.Define("FILE", &ast.String{Value: file})

	ctx.Eval = Eval
	ctx.Import = func(env *runtime.Environment, path string) error {
		return importFile(env, ctx, path)
	}

	return &Interpreter{Env: env, Ctx: ctx}
}

// Run evaluates every top-level child of root in order, clearing the
// operand stack between forms, and returns the value left by the last
// form (Nil if root has no children).
func (it *Interpreter) Run(root *ast.Root) (ast.Node, error) {
	var last ast.Node = &ast.Nil{}
	for _, child := range root.Children {
		stack := runtime.NewStack()
		if err := Eval(it.Env, stack, child); err != nil {
			return nil, err
		}
		last = stack.Top()
	}
	return last, nil
}

// importFile resolves path (relative to FILE for "./"/"../" forms,
// otherwise against ctx.ModulePath), parses and runs it in a fresh
// Interpreter, and merges the resulting global bindings into env — the
// calling frame's import target (spec.md §4.4).
func importFile(env *runtime.Environment, ctx *runtime.Context, path string) error {
	resolved, err := resolveImportPath(env, ctx, path)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	src, err := sourceio.Load(resolved)
	if err != nil {
		return fmt.Errorf("import %s: %w", resolved, err)
	}

	root, err := parser.Parse(src)
	if err != nil {
		return fmt.Errorf("import %s: %w", resolved, err)
	}
	optimized, ok := ast.Optimize(root).(*ast.Root)
	if !ok {
		return fmt.Errorf("import %s: optimize produced a non-Root result", resolved)
	}

	sub := New(resolved, ctx.Output, ctx.ModulePath)
	if _, err := sub.Run(optimized); err != nil {
		return fmt.Errorf("import %s: %w", resolved, err)
	}

	sub.Env.Range(func(name string, value ast.Node) bool {
		if _, ok := value.(*ast.Builtin); ok {
			return true // don't shadow the importer's own built-ins
		}
		if name == "FILE" {
			return true // each file keeps its own FILE binding
		}
		env.Define(name, value)
		return true
	})
	return nil
}

func resolveImportPath(env *runtime.Environment, ctx *runtime.Context, path string) (string, error) {
	if strings.HasPrefix(path, "./") || strings.HasPrefix(path, "../") {
		fileNode, ok := env.Get("FILE")
		if !ok {
			return "", fmt.Errorf("no FILE binding to resolve relative path %q", path)
		}
		fileStr, ok := fileNode.(*ast.String)
		if !ok {
			return "", fmt.Errorf("FILE binding is not a string")
		}
		full := filepath.Join(filepath.Dir(fileStr.Value), path)
		return units.WithExt(full), nil
	}

	resolved, err := units.Resolve(ctx.ModulePath, path)
	if err != nil {
		return "", err
	}
	return resolved, nil
}
