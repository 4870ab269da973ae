package runtime

import "github.com/arcterus/iron/internal/ast"

// Stack is the per-evaluation operand stack: the sole data channel between
// the evaluator and built-ins and between callers and closures (spec.md
// §3). One Stack is live for the duration of one top-level form; the
// driver replaces it with a fresh Stack between forms.
type Stack struct {
	values []ast.Node
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push appends a value to the top of the stack.
func (s *Stack) Push(n ast.Node) {
	s.values = append(s.values, n)
}

// Pop removes and returns the top value. It panics if the stack is empty —
// callers are expected to only pop what they know was pushed.
func (s *Stack) Pop() ast.Node {
	top := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]
	return top
}

// Top returns the top value without removing it.
func (s *Stack) Top() ast.Node {
	return s.values[len(s.values)-1]
}

// Len returns the number of values currently on the stack.
func (s *Stack) Len() int {
	return len(s.values)
}

// TrimTo truncates the stack down to n values, discarding anything above
// that. It is how the evaluator enforces "each node leaves exactly one new
// value on top" after intermediate growth.
func (s *Stack) TrimTo(n int) {
	if n < len(s.values) {
		s.values = s.values[:n]
	}
}

// PopN removes and returns the top n values, oldest-pushed first — i.e.
// PopN(n)[0] is the first operand evaluated, PopN(n)[n-1] is the last (the
// "top" of the window). Built-ins consume their operand window this way.
func (s *Stack) PopN(n int) []ast.Node {
	start := len(s.values) - n
	window := make([]ast.Node, n)
	copy(window, s.values[start:])
	s.values = s.values[:start]
	return window
}
