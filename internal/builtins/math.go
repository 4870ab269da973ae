// Extended math built-ins (SPEC_FULL.md §4.4), grounded on the teacher's
// internal/builtins/math_trig_test.go split of one function per operator.
// Like the teacher, these lean on the standard `math` package rather than
// a third-party numerics library — none appears anywhere in the retrieved
// pack for basic trig/arithmetic.
package builtins

import (
	"fmt"
	"math"

	"github.com/arcterus/iron/internal/ast"
	"github.com/arcterus/iron/internal/interp/runtime"
)

func numeric(n ast.Node) (float64, bool) {
	switch v := n.(type) {
	case *ast.Integer:
		return float64(v.Value), true
	case *ast.Float:
		return v.Value, true
	default:
		return 0, false
	}
}

func isFloatNode(n ast.Node) bool {
	_, ok := n.(*ast.Float)
	return ok
}

func pushNumeric(stack *runtime.Stack, f float64, isFloat bool) {
	if isFloat {
		stack.Push(&ast.Float{Value: f})
		return
	}
	stack.Push(&ast.Integer{Value: int64(f)})
}

// Sub implements `-`. One operand negates; two or more subtract the rest
// from the first, left to right.
func Sub(env *runtime.Environment, stack *runtime.Stack, n int) error {
	if n < 1 {
		return fmt.Errorf("-: expected at least 1 operand, got %d", n)
	}
	args := stack.PopN(n)
	isFloat := false
	result, ok := numeric(args[0])
	if !ok {
		return fmt.Errorf("-: operand must be numeric, got %s", ast.TypeName(args[0]))
	}
	isFloat = isFloatNode(args[0])
	if n == 1 {
		pushNumeric(stack, -result, isFloat)
		return nil
	}
	for _, a := range args[1:] {
		v, ok := numeric(a)
		if !ok {
			return fmt.Errorf("-: operand must be numeric, got %s", ast.TypeName(a))
		}
		isFloat = isFloat || isFloatNode(a)
		result -= v
	}
	pushNumeric(stack, result, isFloat)
	return nil
}

// Mul implements `*`: the product of all operands.
func Mul(env *runtime.Environment, stack *runtime.Stack, n int) error {
	if n < 1 {
		return fmt.Errorf("*: expected at least 1 operand, got %d", n)
	}
	args := stack.PopN(n)
	result := 1.0
	isFloat := false
	for _, a := range args {
		v, ok := numeric(a)
		if !ok {
			return fmt.Errorf("*: operand must be numeric, got %s", ast.TypeName(a))
		}
		isFloat = isFloat || isFloatNode(a)
		result *= v
	}
	pushNumeric(stack, result, isFloat)
	return nil
}

// Div implements `/`: left-to-right division of 2 or more operands.
// Always produces a Float, since integer division would silently truncate.
func Div(env *runtime.Environment, stack *runtime.Stack, n int) error {
	if n < 2 {
		return fmt.Errorf("/: expected at least 2 operands, got %d", n)
	}
	args := stack.PopN(n)
	result, ok := numeric(args[0])
	if !ok {
		return fmt.Errorf("/: operand must be numeric, got %s", ast.TypeName(args[0]))
	}
	for _, a := range args[1:] {
		v, ok := numeric(a)
		if !ok {
			return fmt.Errorf("/: operand must be numeric, got %s", ast.TypeName(a))
		}
		if v == 0 {
			return fmt.Errorf("/: division by zero")
		}
		result /= v
	}
	stack.Push(&ast.Float{Value: result})
	return nil
}

// Mod implements `mod`: integer remainder of exactly 2 Integer operands.
func Mod(env *runtime.Environment, stack *runtime.Stack, n int) error {
	if n != 2 {
		return fmt.Errorf("mod: expected 2 operands, got %d", n)
	}
	args := stack.PopN(n)
	a, ok := args[0].(*ast.Integer)
	if !ok {
		return fmt.Errorf("mod: operands must be integers, got %s", ast.TypeName(args[0]))
	}
	b, ok := args[1].(*ast.Integer)
	if !ok {
		return fmt.Errorf("mod: operands must be integers, got %s", ast.TypeName(args[1]))
	}
	if b.Value == 0 {
		return fmt.Errorf("mod: division by zero")
	}
	stack.Push(&ast.Integer{Value: a.Value % b.Value})
	return nil
}

// Min implements `min`: the smallest of one or more numeric operands.
func Min(env *runtime.Environment, stack *runtime.Stack, n int) error {
	return fold(stack, n, "min", func(a, b float64) float64 { return math.Min(a, b) })
}

// Max implements `max`: the largest of one or more numeric operands.
func Max(env *runtime.Environment, stack *runtime.Stack, n int) error {
	return fold(stack, n, "max", func(a, b float64) float64 { return math.Max(a, b) })
}

func fold(stack *runtime.Stack, n int, name string, combine func(a, b float64) float64) error {
	if n < 1 {
		return fmt.Errorf("%s: expected at least 1 operand, got %d", name, n)
	}
	args := stack.PopN(n)
	result, ok := numeric(args[0])
	if !ok {
		return fmt.Errorf("%s: operand must be numeric, got %s", name, ast.TypeName(args[0]))
	}
	isFloat := isFloatNode(args[0])
	for _, a := range args[1:] {
		v, ok := numeric(a)
		if !ok {
			return fmt.Errorf("%s: operand must be numeric, got %s", name, ast.TypeName(a))
		}
		isFloat = isFloat || isFloatNode(a)
		result = combine(result, v)
	}
	pushNumeric(stack, result, isFloat)
	return nil
}

// Abs implements `abs`: the absolute value of one numeric operand.
func Abs(env *runtime.Environment, stack *runtime.Stack, n int) error {
	if n != 1 {
		return fmt.Errorf("abs: expected 1 operand, got %d", n)
	}
	args := stack.PopN(n)
	v, ok := numeric(args[0])
	if !ok {
		return fmt.Errorf("abs: operand must be numeric, got %s", ast.TypeName(args[0]))
	}
	pushNumeric(stack, math.Abs(v), isFloatNode(args[0]))
	return nil
}

// Sqrt implements `sqrt`, always returning a Float.
func Sqrt(env *runtime.Environment, stack *runtime.Stack, n int) error {
	return unaryFloat(stack, n, "sqrt", math.Sqrt)
}

// Sin implements `sin`, always returning a Float.
func Sin(env *runtime.Environment, stack *runtime.Stack, n int) error {
	return unaryFloat(stack, n, "sin", math.Sin)
}

// Cos implements `cos`, always returning a Float.
func Cos(env *runtime.Environment, stack *runtime.Stack, n int) error {
	return unaryFloat(stack, n, "cos", math.Cos)
}

func unaryFloat(stack *runtime.Stack, n int, name string, fn func(float64) float64) error {
	if n != 1 {
		return fmt.Errorf("%s: expected 1 operand, got %d", name, n)
	}
	args := stack.PopN(n)
	v, ok := numeric(args[0])
	if !ok {
		return fmt.Errorf("%s: operand must be numeric, got %s", name, ast.TypeName(args[0]))
	}
	stack.Push(&ast.Float{Value: fn(v)})
	return nil
}
