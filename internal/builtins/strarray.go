// String/array extended built-ins (SPEC_FULL.md §4.4), grounded on the
// teacher's internal/builtins/strings_basic.go style of one exported
// function per operation.
package builtins

import (
	"fmt"

	"github.com/arcterus/iron/internal/ast"
	"github.com/arcterus/iron/internal/interp/runtime"
)

// Str implements `str`: render any value as a String node, using the same
// text print would produce for it (without escape interpretation, since
// this builds a value rather than writing to output).
func Str(env *runtime.Environment, stack *runtime.Stack, n int) error {
	if n != 1 {
		return fmt.Errorf("str: expected 1 operand, got %d", n)
	}
	args := stack.PopN(n)
	stack.Push(&ast.String{Value: renderString(args[0])})
	return nil
}

func renderString(node ast.Node) string {
	switch v := node.(type) {
	case *ast.String:
		return v.Value
	case *ast.Integer:
		return fmt.Sprintf("%d", v.Value)
	case *ast.Float:
		return formatFloat(v.Value)
	case *ast.Boolean:
		if v.Value {
			return "true"
		}
		return "false"
	case *ast.Nil:
		return "nil"
	case *ast.Symbol:
		return "'" + v.Name
	default:
		return node.String()
	}
}

// Concat implements `concat`: concatenates two or more Array operands
// into a single new Array.
func Concat(env *runtime.Environment, stack *runtime.Stack, n int) error {
	if n < 2 {
		return fmt.Errorf("concat: expected at least 2 operands, got %d", n)
	}
	args := stack.PopN(n)
	var items []ast.Node
	for _, a := range args {
		arr, ok := a.(*ast.Array)
		if !ok {
			return fmt.Errorf("concat: operand must be an array, got %s", ast.TypeName(a))
		}
		items = append(items, arr.Items...)
	}
	stack.Push(&ast.Array{Items: items})
	return nil
}

// Slice implements `slice`: (slice array start end), a sub-range with
// Python-style negative indexing and an exclusive end.
func Slice(env *runtime.Environment, stack *runtime.Stack, n int) error {
	if n != 3 {
		return fmt.Errorf("slice: expected 3 operands, got %d", n)
	}
	args := stack.PopN(n)
	arr, ok := args[0].(*ast.Array)
	if !ok {
		return fmt.Errorf("slice: first operand must be an array, got %s", ast.TypeName(args[0]))
	}
	startN, ok := args[1].(*ast.Integer)
	if !ok {
		return fmt.Errorf("slice: second operand must be an integer, got %s", ast.TypeName(args[1]))
	}
	endN, ok := args[2].(*ast.Integer)
	if !ok {
		return fmt.Errorf("slice: third operand must be an integer, got %s", ast.TypeName(args[2]))
	}

	length := len(arr.Items)
	start := clampIndex(startN.Value, length)
	end := clampIndex(endN.Value, length)
	if end < start {
		end = start
	}
	items := append([]ast.Node(nil), arr.Items[start:end]...)
	stack.Push(&ast.Array{Items: items})
	return nil
}

// clampIndex resolves a (possibly negative) index against length, clamping
// into [0, length] rather than erroring — slice bounds are forgiving where
// get's are strict.
func clampIndex(idx int64, length int) int {
	if idx < 0 {
		idx += int64(length)
	}
	if idx < 0 {
		return 0
	}
	if idx > int64(length) {
		return length
	}
	return int(idx)
}
