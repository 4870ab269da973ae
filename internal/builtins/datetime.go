// `now` (SPEC_FULL.md §4.4), grounded on the teacher's
// internal/builtins/datetime_calc.go; standard `time` package, matching
// the teacher's own choice (no third-party clock/calendar library appears
// anywhere in the retrieved pack).
package builtins

import (
	"fmt"
	"time"

	"github.com/arcterus/iron/internal/ast"
	"github.com/arcterus/iron/internal/interp/runtime"
)

// Now implements `now`: the current Unix time in seconds, as an Integer.
func Now(env *runtime.Environment, stack *runtime.Stack, n int) error {
	if n != 0 {
		return fmt.Errorf("now: expected 0 operands, got %d", n)
	}
	stack.PopN(n)
	stack.Push(&ast.Integer{Value: time.Now().Unix()})
	return nil
}
