// Package iron is Iron's embeddable facade — the shape of the teacher's
// pkg/dwscript (iron.New(opts...), engine.Eval(src)), so embedders and
// tests go through one entry point instead of wiring parser/interpreter by
// hand. The CLI in cmd/iron does not use this package; it wires the parser
// and interpreter itself. Only tests survived retrieval for the
// teacher's pkg/dwscript package; New/WithOutput/Eval's shape is
// reconstructed here from pkg/dwscript/examples_test.go's usage pattern.
package iron

import (
	"bytes"
	"io"

	"github.com/arcterus/iron/internal/ast"
	"github.com/arcterus/iron/internal/interp"
	"github.com/arcterus/iron/internal/parser"
	"github.com/arcterus/iron/internal/printer"
	"github.com/arcterus/iron/internal/sourceio"
)

// Engine wraps one interpreter configuration (output sink, debug mode,
// module search path). Every Eval or EvalFile call runs in a fresh global
// environment: definitions made by one call are not visible to the next.
type Engine struct {
	output     io.Writer
	debug      bool
	modulePath []string
	file       string
}

// Option configures an Engine.
type Option func(*Engine)

// WithOutput directs everything `print` writes to w instead of the
// default in-memory buffer captured in Result.Output.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) { e.output = w }
}

// WithModulePath sets the directories `import` searches for non-relative
// module names (spec.md §9's module search path, resolved in
// SPEC_FULL.md §4.4 via IRON_MODULE_PATH; this lets embedders override it
// per Engine).
func WithModulePath(paths []string) Option {
	return func(e *Engine) { e.modulePath = paths }
}

// WithDebug skips the optimize pass before evaluation, matching the CLI's
// -d/--debug flag (spec.md §6).
func WithDebug(debug bool) Option {
	return func(e *Engine) { e.debug = debug }
}

// WithFile sets the path bound to FILE (spec.md §6), consulted by
// `import` to resolve "./"-relative paths. Defaults to "<eval>".
func WithFile(path string) Option {
	return func(e *Engine) { e.file = path }
}

// New builds an Engine. With no options, print output is captured into
// each Result rather than written anywhere externally visible.
func New(opts ...Option) *Engine {
	e := &Engine{file: "<eval>"}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result is what one Eval call produces: the last top-level form's value
// and whatever `print` wrote during the run. It holds no AST dump; Dump
// renders one separately.
type Result struct {
	Value  ast.Node
	Output string
}

// Eval parses and evaluates source, returning the value of its last
// top-level form.
func (e *Engine) Eval(source string) (*Result, error) {
	root, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	return e.run(root)
}

// EvalFile loads path via internal/sourceio, parses, and evaluates it,
// with FILE bound to path regardless of any WithFile option.
func (e *Engine) EvalFile(path string) (*Result, error) {
	src, err := sourceio.Load(path)
	if err != nil {
		return nil, err
	}
	root, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	e.file = path
	return e.run(root)
}

func (e *Engine) run(root *ast.Root) (*Result, error) {
	program := ast.Node(root)
	if !e.debug {
		program = ast.Optimize(root)
	}
	programRoot, ok := program.(*ast.Root)
	if !ok {
		programRoot = root
	}

	var buf bytes.Buffer
	out := e.output
	if out == nil {
		out = &buf
	}

	it := interp.New(e.file, out, e.modulePath)
	value, err := it.Run(programRoot)
	if err != nil {
		return nil, err
	}

	res := &Result{Value: value}
	if e.output == nil {
		res.Output = buf.String()
	}
	return res, nil
}

// Dump renders source's parsed AST in spec.md §4.2's indented-tree format,
// without evaluating it — the string form of the CLI's --ast flag.
func Dump(source string) (string, error) {
	root, err := parser.Parse(source)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	printer.DumpTo(&buf, root)
	return buf.String(), nil
}
