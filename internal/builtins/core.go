package builtins

import (
	"fmt"
	"io"
	"strings"

	"github.com/arcterus/iron/internal/ast"
	"github.com/arcterus/iron/internal/interp/runtime"
)

// Add implements `+`. If any operand is Float, the result is Float;
// otherwise Integer. A non-numeric operand is an error.
func Add(env *runtime.Environment, stack *runtime.Stack, n int) error {
	args := stack.PopN(n)
	var sumF float64
	var sumI int64
	isFloat := false
	for _, a := range args {
		switch v := a.(type) {
		case *ast.Integer:
			sumI += v.Value
			sumF += float64(v.Value)
		case *ast.Float:
			isFloat = true
			sumF += v.Value
		default:
			return fmt.Errorf("+: operand must be numeric, got %s", ast.TypeName(a))
		}
	}
	if isFloat {
		stack.Push(&ast.Float{Value: sumF})
	} else {
		stack.Push(&ast.Integer{Value: sumI})
	}
	return nil
}

// Eq implements `=`. Requires at least two operands; returns true iff
// every operand is deeply equal to the first.
func Eq(env *runtime.Environment, stack *runtime.Stack, n int) error {
	if n < 2 {
		return fmt.Errorf("=: expected at least 2 operands, got %d", n)
	}
	args := stack.PopN(n)
	result := true
	for _, a := range args[1:] {
		if !ast.Equal(args[0], a) {
			result = false
			break
		}
	}
	stack.Push(&ast.Boolean{Value: result})
	return nil
}

// Print implements `print`. Operands are printed left to right; String
// operands have their escape sequences interpreted. Always returns
// Integer(0).
func Print(env *runtime.Environment, stack *runtime.Stack, n int) error {
	args := stack.PopN(n)
	var out io.Writer = io.Discard
	if ctx := env.Ctx(); ctx != nil && ctx.Output != nil {
		out = ctx.Output
	}
	for _, a := range args {
		if err := printValue(out, a); err != nil {
			return err
		}
	}
	stack.Push(&ast.Integer{Value: 0})
	return nil
}

func printValue(w io.Writer, node ast.Node) error {
	switch n := node.(type) {
	case *ast.String:
		return printEscaped(w, n.Value)
	case *ast.Integer:
		fmt.Fprintf(w, "%d", n.Value)
	case *ast.Float:
		fmt.Fprint(w, formatFloat(n.Value))
	case *ast.Boolean:
		if n.Value {
			fmt.Fprint(w, "true")
		} else {
			fmt.Fprint(w, "false")
		}
	case *ast.Nil:
		fmt.Fprint(w, "nil")
	case *ast.Symbol:
		fmt.Fprintf(w, "'%s", n.Name)
	default:
		fmt.Fprint(w, node.String())
	}
	return nil
}

// printEscaped interprets \\, \n, and \t; \n flushes the buffered portion
// followed by a newline. An unknown escape, or a trailing unescaped
// backslash, is an error — spec.md §4.4.
func printEscaped(w io.Writer, s string) error {
	var buf strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '\\' {
			buf.WriteRune(r)
			continue
		}
		if i+1 >= len(runes) {
			return fmt.Errorf("print: unterminated escape at end of string")
		}
		i++
		switch runes[i] {
		case '\\':
			buf.WriteByte('\\')
		case 'n':
			fmt.Fprint(w, buf.String())
			fmt.Fprintln(w)
			buf.Reset()
		case 't':
			buf.WriteByte('\t')
		default:
			return fmt.Errorf("print: unknown escape sequence \\%c", runes[i])
		}
	}
	fmt.Fprint(w, buf.String())
	return nil
}

// If implements `if`. The operand window is [cond, thenBranch, elseBranch?]
// where cond has already been evaluated by the caller and the branches
// arrive as raw, unevaluated AST nodes (spec.md §4.3's special-form
// table). Exactly one branch is evaluated here, via the evaluator
// callback injected through the environment's Context.
func If(env *runtime.Environment, stack *runtime.Stack, n int) error {
	if n != 2 && n != 3 {
		return fmt.Errorf("if: expected 2 or 3 operands, got %d", n)
	}
	args := stack.PopN(n)
	cond, ok := args[0].(*ast.Boolean)
	if !ok {
		return fmt.Errorf("if: condition must be boolean, got %s", ast.TypeName(args[0]))
	}

	var branch ast.Node
	if cond.Value {
		branch = args[1]
	} else if n == 3 {
		branch = args[2]
	}

	if branch == nil {
		stack.Push(&ast.Nil{})
		return nil
	}

	ctx := env.Ctx()
	if ctx == nil || ctx.Eval == nil {
		return fmt.Errorf("if: no evaluator available in this context")
	}
	return ctx.Eval(env, stack, branch)
}

// Define implements `define`. Exactly two operands: a name (unevaluated
// Ident) and a value (already evaluated by the caller). Returns Nil.
func Define(env *runtime.Environment, stack *runtime.Stack, n int) error {
	if n != 2 {
		return fmt.Errorf("define: expected 2 operands, got %d", n)
	}
	args := stack.PopN(n)
	name, ok := args[0].(*ast.Ident)
	if !ok {
		return fmt.Errorf("define: first operand must be an identifier, got %s", ast.TypeName(args[0]))
	}
	env.Define(name.Name, args[1])
	stack.Push(&ast.Nil{})
	return nil
}

// Fn implements `fn`. The first operand must be an Array of parameter
// idents; the rest form the body, both arriving unevaluated. Returns a
// Code value capturing env, the environment active when `fn` ran.
func Fn(env *runtime.Environment, stack *runtime.Stack, n int) error {
	if n < 1 {
		return fmt.Errorf("fn: expected at least 1 operand, got %d", n)
	}
	args := stack.PopN(n)
	params, ok := args[0].(*ast.Array)
	if !ok {
		return fmt.Errorf("fn: first operand must be an array of parameters, got %s", ast.TypeName(args[0]))
	}
	body := append([]ast.Node(nil), args[1:]...)
	stack.Push(&ast.Code{Params: params, Body: body, Env: env})
	return nil
}

// Get implements `get`: collection[index]. Negative indices count from the
// end.
func Get(env *runtime.Environment, stack *runtime.Stack, n int) error {
	if n != 2 {
		return fmt.Errorf("get: expected 2 operands, got %d", n)
	}
	args := stack.PopN(n)
	arr, ok := args[0].(*ast.Array)
	if !ok {
		return fmt.Errorf("get: first operand must be an array, got %s", ast.TypeName(args[0]))
	}
	idx, ok := args[1].(*ast.Integer)
	if !ok {
		return fmt.Errorf("get: second operand must be an integer, got %s", ast.TypeName(args[1]))
	}
	i, err := normalizeIndex(idx.Value, len(arr.Items))
	if err != nil {
		return fmt.Errorf("get: %w", err)
	}
	stack.Push(arr.Items[i])
	return nil
}

// Set implements `set`: (set name index value), mutating an Array bound to
// name in some ancestor frame. Indices beyond the current length grow the
// array with Nil padding. Per spec.md §9's open question, a first operand
// that isn't an Ident bound to an Array is an error (not the silent-Nil
// behavior of the original source).
func Set(env *runtime.Environment, stack *runtime.Stack, n int) error {
	if n != 3 {
		return fmt.Errorf("set: expected 3 operands, got %d", n)
	}
	args := stack.PopN(n)
	name, ok := args[0].(*ast.Ident)
	if !ok {
		return fmt.Errorf("set: first operand must be an identifier, got %s", ast.TypeName(args[0]))
	}
	idx, ok := args[1].(*ast.Integer)
	if !ok {
		return fmt.Errorf("set: second operand must be an integer, got %s", ast.TypeName(args[1]))
	}
	bound, ok := env.Get(name.Name)
	if !ok {
		return fmt.Errorf("set: %q is not bound", name.Name)
	}
	arr, ok := bound.(*ast.Array)
	if !ok {
		return fmt.Errorf("set: %q is not bound to an array", name.Name)
	}

	i := idx.Value
	if i < 0 {
		i += int64(len(arr.Items))
		if i < 0 {
			return fmt.Errorf("set: index out of range")
		}
	}
	for int64(len(arr.Items)) <= i {
		arr.Items = append(arr.Items, &ast.Nil{})
	}
	arr.Items[i] = args[2]

	stack.Push(&ast.Nil{})
	return nil
}

// Len implements `len`: the length of an Array operand.
func Len(env *runtime.Environment, stack *runtime.Stack, n int) error {
	if n != 1 {
		return fmt.Errorf("len: expected 1 operand, got %d", n)
	}
	args := stack.PopN(n)
	arr, ok := args[0].(*ast.Array)
	if !ok {
		return fmt.Errorf("len: operand must be an array, got %s", ast.TypeName(args[0]))
	}
	stack.Push(&ast.Integer{Value: int64(len(arr.Items))})
	return nil
}

// Type implements `type`: the Symbol naming an operand's runtime tag.
func Type(env *runtime.Environment, stack *runtime.Stack, n int) error {
	if n != 1 {
		return fmt.Errorf("type: expected 1 operand, got %d", n)
	}
	args := stack.PopN(n)
	stack.Push(&ast.Symbol{Name: ast.TypeName(args[0])})
	return nil
}

// normalizeIndex resolves a (possibly negative) index against length,
// returning an error if it falls outside [0, length).
func normalizeIndex(idx int64, length int) (int, error) {
	if idx < 0 {
		idx += int64(length)
	}
	if idx < 0 || idx >= int64(length) {
		return 0, fmt.Errorf("index out of range")
	}
	return int(idx), nil
}
