// Context carries the callbacks and ambient configuration that built-ins
// need but that the runtime package cannot itself provide without an
// import cycle back into the evaluator (grounded on the teacher's
// evaluator.Context, whose ReadProperty/InvokeParameterlessMethod/
// CallInheritedMethod all take executor callbacks for the same reason —
// see internal/interp/evaluator/context.go in the teacher).
package runtime

import (
	"io"

	"github.com/arcterus/iron/internal/ast"
)

// EvalFunc evaluates node against env and stack, leaving exactly one new
// value on top of stack — the same contract as the evaluator's own Eval.
// The `if` built-in uses this to run whichever branch its condition
// selects, since that branch arrives on the stack unevaluated.
type EvalFunc func(env *Environment, stack *Stack, node ast.Node) error

// ImportFunc resolves and executes an import target, merging whatever it
// defines into env. It is the evaluator's module-loading logic, injected
// here so the `import` built-in doesn't need to import the evaluator.
type ImportFunc func(env *Environment, path string) error

// BuiltinFunc is the calling convention shared by every host-implemented
// operator and by closure application's caller: consume n values from the
// top of stack, push exactly one result.
type BuiltinFunc func(env *Environment, stack *Stack, n int) error

// Context holds the pieces of ambient configuration and callback wiring a
// single interpreter run shares across every built-in invocation. It lives
// on the root Environment; see Environment.Ctx.
type Context struct {
	Output     io.Writer
	ModulePath []string
	Eval       EvalFunc
	Import     ImportFunc
}
