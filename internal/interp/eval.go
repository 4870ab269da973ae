// Package interp is the evaluator: special-form dispatch (fn, if, define,
// set), closure application, and the top-level driver that walks a Root
// against an Environment chain using a per-evaluation operand stack.
// Grounded on original_source/src/interp.rs's stack-based calling
// convention (the "hard engineering" spec.md §1 calls out) and on the
// teacher's internal/interp/evaluator package for the overall shape of a
// dedicated evaluator package separate from the environment it walks.
package interp

import (
	"fmt"
	"strings"

	"github.com/arcterus/iron/internal/ast"
	"github.com/arcterus/iron/internal/interp/runtime"
)

// Eval evaluates node against env and stack. It always leaves stack with
// exactly one more value than it found — spec.md §4.3's core contract —
// trimming away any intermediate growth from nested evaluation.
func Eval(env *runtime.Environment, stack *runtime.Stack, node ast.Node) error {
	pre := stack.Len()
	if err := evalNode(env, stack, node); err != nil {
		return err
	}
	stack.TrimTo(pre + 1)
	return nil
}

func evalNode(env *runtime.Environment, stack *runtime.Stack, node ast.Node) error {
	switch n := node.(type) {
	case *ast.Ident:
		v, ok := env.Get(n.Name)
		if !ok {
			return fmt.Errorf("could not find key %q", n.Name)
		}
		if _, ok := v.(*ast.Builtin); ok {
			return fmt.Errorf("%q is a built-in and is not first-class", n.Name)
		}
		stack.Push(v)
		return nil

	case *ast.Sexpr:
		return evalSexpr(env, stack, n)

	case *ast.Comment:
		// Carries no runtime meaning, but every node must still leave
		// exactly one value on the stack.
		stack.Push(&ast.Nil{})
		return nil

	default:
		// Every other variant is a scalar/literal: push a clone of the
		// node itself (spec.md §4.3).
		stack.Push(node.Clone())
		return nil
	}
}

// evalSexpr dispatches special forms before resolving the operator,
// matching spec.md §4.3's table: fn pushes every operand unevaluated; if
// evaluates its condition normally and pushes its branches unevaluated;
// define/set push their first operand (the target name) unevaluated and
// evaluate the rest normally; every other operator evaluates all operands
// normally.
func evalSexpr(env *runtime.Environment, stack *runtime.Stack, sx *ast.Sexpr) error {
	name := sx.Op.Name

	switch name {
	case "fn":
		for _, operand := range sx.Operands {
			stack.Push(operand.Clone())
		}

	case "if":
		if len(sx.Operands) < 2 {
			return fmt.Errorf("if: expected at least 2 operands, got %d", len(sx.Operands))
		}
		if err := Eval(env, stack, sx.Operands[0]); err != nil {
			return err
		}
		for _, operand := range sx.Operands[1:] {
			stack.Push(operand.Clone())
		}

	case "define", "set":
		if len(sx.Operands) == 0 {
			return fmt.Errorf("%s: expected at least 1 operand", name)
		}
		stack.Push(sx.Operands[0].Clone())
		for _, operand := range sx.Operands[1:] {
			if err := Eval(env, stack, operand); err != nil {
				return err
			}
		}

	default:
		for _, operand := range sx.Operands {
			if err := Eval(env, stack, operand); err != nil {
				return err
			}
		}
	}

	n := len(sx.Operands)
	opVal, ok := env.Get(name)
	if !ok {
		return fmt.Errorf("could not find key %q", name)
	}

	switch v := opVal.(type) {
	case *ast.Builtin:
		fn, ok := v.Fn.(runtime.BuiltinFunc)
		if !ok {
			return fmt.Errorf("internal error: malformed built-in %q", name)
		}
		return fn(env, stack, n)

	case *ast.Code:
		return applyClosure(env, stack, v, n)

	default:
		return fmt.Errorf("%s: not executable", name)
	}
}

// applyClosure binds the top n (already-evaluated) stack values to code's
// parameters and evaluates its body in a fresh frame chained to the
// environment code captured at `fn` time. Excess arguments beyond a
// non-variadic parameter list are discarded; a variadic parameter (its
// name ending in "...") collects every remaining argument into an Array.
func applyClosure(env *runtime.Environment, stack *runtime.Stack, code *ast.Code, n int) error {
	params := code.Params.Items
	p := len(params)
	variadic := p > 0 && isVariadicParam(params[p-1])

	args := stack.PopN(n)
	if !variadic && n > p {
		args = args[:p]
	}

	closureEnv, ok := code.Env.(*runtime.Environment)
	if !ok {
		return fmt.Errorf("fn: closure has no captured environment")
	}
	callEnv := runtime.NewEnvironment(closureEnv)

	for i, paramNode := range params {
		ident, ok := paramNode.(*ast.Ident)
		if !ok {
			return fmt.Errorf("fn: parameter %d is not an identifier", i)
		}
		if isVariadicParam(paramNode) {
			base := strings.TrimSuffix(ident.Name, "...")
			var rest []ast.Node
			if i < len(args) {
				rest = append(rest, args[i:]...)
			}
			callEnv.Define(base, &ast.Array{Items: rest})
			break
		}
		if i >= len(args) {
			return fmt.Errorf("closure call: too few arguments: expected %d, got %d", p, n)
		}
		callEnv.Define(ident.Name, args[i])
	}

	bodyStart := stack.Len()
	for _, expr := range code.Body {
		if err := Eval(callEnv, stack, expr); err != nil {
			return err
		}
	}
	var result ast.Node = &ast.Nil{}
	if len(code.Body) > 0 {
		result = stack.Top()
	}
	stack.TrimTo(bodyStart)
	stack.Push(result)
	return nil
}

func isVariadicParam(n ast.Node) bool {
	ident, ok := n.(*ast.Ident)
	return ok && strings.HasSuffix(ident.Name, "...")
}
