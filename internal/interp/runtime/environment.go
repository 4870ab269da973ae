// Package runtime holds the pieces the evaluator and the builtins package
// both depend on: the lexical Environment, the operand Stack shared by
// builtins and closures, and the Context used to inject callbacks across
// the package boundary (grounded on the teacher's ObjectInstance, whose
// CallInheritedMethod/ReadProperty/InvokeParameterlessMethod all take an
// executor callback rather than importing the interpreter package
// directly — see internal/interp/runtime/object.go in the teacher).
package runtime

import "github.com/arcterus/iron/internal/ast"

// Environment is a chain of lexical frames. A closure created by `fn`
// captures a *Environment pointer, not a snapshot: later `set` calls on an
// outer binding are visible to every closure holding that pointer, per the
// interpreter's shared-ownership design (see DESIGN.md).
type Environment struct {
	bindings map[string]ast.Node
	outer    *Environment
	ctx      *Context
}

// NewEnvironment creates a frame chained to outer. outer is nil for the
// root environment.
func NewEnvironment(outer *Environment) *Environment {
	return &Environment{bindings: make(map[string]ast.Node), outer: outer}
}

// NewRootEnvironment creates a root frame (no parent) carrying ctx. Every
// interpreter run starts from one of these; child frames reach ctx by
// walking outward (see Ctx).
func NewRootEnvironment(ctx *Context) *Environment {
	return &Environment{bindings: make(map[string]ast.Node), ctx: ctx}
}

// Outer returns the parent frame, or nil at the root.
func (e *Environment) Outer() *Environment {
	return e.outer
}

// Ctx returns the Context carried by this chain's root environment. A
// closure's captured environment still reaches it after the frame that
// created the closure has gone out of scope, since the root itself is
// never collected while any frame in the chain is reachable.
func (e *Environment) Ctx() *Context {
	env := e
	for env.outer != nil {
		env = env.outer
	}
	return env.ctx
}

// GetLocal looks up name in this frame only, ignoring outer frames.
func (e *Environment) GetLocal(name string) (ast.Node, bool) {
	v, ok := e.bindings[name]
	return v, ok
}

// Get looks up name starting at this frame and walking outward.
func (e *Environment) Get(name string) (ast.Node, bool) {
	for env := e; env != nil; env = env.outer {
		if v, ok := env.bindings[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Has reports whether name is bound anywhere in the chain.
func (e *Environment) Has(name string) bool {
	_, ok := e.Get(name)
	return ok
}

// Define binds name in this frame, shadowing any outer binding of the
// same name. Re-defining a name already local to this frame overwrites it
// in place.
func (e *Environment) Define(name string, value ast.Node) {
	e.bindings[name] = value
}

// Set finds the frame that owns name and overwrites its binding there. It
// reports false, and binds nothing, if name is unbound anywhere in the
// chain.
func (e *Environment) Set(name string, value ast.Node) bool {
	for env := e; env != nil; env = env.outer {
		if _, ok := env.bindings[name]; ok {
			env.bindings[name] = value
			return true
		}
	}
	return false
}

// Size returns the number of bindings local to this frame.
func (e *Environment) Size() int {
	return len(e.bindings)
}

// Range iterates the bindings local to this frame in unspecified order,
// stopping early if fn returns false.
func (e *Environment) Range(fn func(name string, value ast.Node) bool) {
	for k, v := range e.bindings {
		if !fn(k, v) {
			return
		}
	}
}
