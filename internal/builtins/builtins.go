// Package builtins implements Iron's host-implemented operators: the
// eleven required by spec.md §4.4 (+, =, print, if, define, fn, get, set,
// len, import, type) plus an extended library (math, string/array helpers,
// now, json) grounded on the teacher's internal/builtins package, which
// takes the same one-function-per-operator approach. Every function here
// has the shape runtime.BuiltinFunc: consume n values from the top of the
// stack, push exactly one result.
package builtins

import (
	"github.com/arcterus/iron/internal/ast"
	"github.com/arcterus/iron/internal/interp/runtime"
)

// Register binds every built-in in this package into env under its
// canonical name, as *ast.Builtin values. The interpreter calls this once
// when constructing a fresh global environment (see internal/interp).
func Register(env *runtime.Environment) {
	for name, fn := range table {
		env.Define(name, &ast.Builtin{Name: name, Fn: fn})
	}
}

var table = map[string]runtime.BuiltinFunc{
	// spec.md §4.4 required built-ins.
	"+":      Add,
	"=":      Eq,
	"print":  Print,
	"if":     If,
	"define": Define,
	"fn":     Fn,
	"get":    Get,
	"set":    Set,
	"len":    Len,
	"import": Import,
	"type":   Type,

	// Extended library (SPEC_FULL.md §4.4).
	"-":      Sub,
	"*":      Mul,
	"/":      Div,
	"mod":    Mod,
	"min":    Min,
	"max":    Max,
	"abs":    Abs,
	"sqrt":   Sqrt,
	"sin":    Sin,
	"cos":    Cos,
	"str":    Str,
	"concat": Concat,
	"slice":  Slice,
	"now":    Now,
	"json":   JSON,
}
