package builtins

import (
	"fmt"

	"github.com/arcterus/iron/internal/ast"
	"github.com/arcterus/iron/internal/interp/runtime"
)

// Import implements `import`: one or more String operands, each resolved
// and executed by the Context's ImportFunc (the evaluator's module-loading
// logic, injected to avoid an import cycle; see internal/interp). Returns
// Nil.
func Import(env *runtime.Environment, stack *runtime.Stack, n int) error {
	if n < 1 {
		return fmt.Errorf("import: expected at least 1 operand, got %d", n)
	}
	args := stack.PopN(n)
	ctx := env.Ctx()
	if ctx == nil || ctx.Import == nil {
		return fmt.Errorf("import: not supported in this context")
	}
	for _, a := range args {
		s, ok := a.(*ast.String)
		if !ok {
			return fmt.Errorf("import: operand must be a string, got %s", ast.TypeName(a))
		}
		if err := ctx.Import(env, s.Value); err != nil {
			return err
		}
	}
	stack.Push(&ast.Nil{})
	return nil
}
