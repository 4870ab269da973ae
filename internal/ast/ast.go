// Package ast defines the tagged-variant tree produced by the parser and
// consumed by the evaluator. A single node type doubles as both syntax and
// runtime value: evaluating a literal pushes a clone of the very node the
// parser built for it, the same way the stack-based calling convention
// passes already-evaluated arguments around as plain nodes.
package ast

import "fmt"

// Kind tags the concrete variant of a Node.
type Kind int

const (
	KindRoot Kind = iota
	KindSexpr
	KindIdent
	KindSymbol
	KindString
	KindInteger
	KindFloat
	KindBoolean
	KindNil
	KindArray
	KindList
	KindPointer
	KindComment
	KindCode
	KindBuiltin
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "Root"
	case KindSexpr:
		return "Sexpr"
	case KindIdent:
		return "Ident"
	case KindSymbol:
		return "Symbol"
	case KindString:
		return "String"
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindBoolean:
		return "Boolean"
	case KindNil:
		return "Nil"
	case KindArray:
		return "Array"
	case KindList:
		return "List"
	case KindPointer:
		return "Pointer"
	case KindComment:
		return "Comment"
	case KindCode:
		return "Code"
	case KindBuiltin:
		return "Builtin"
	default:
		return "Unknown"
	}
}

// Node is the common interface implemented by every AST variant. Optimize
// and Compile mirror the original source's per-node hooks (see Optimize in
// optimize.go); Compile is a placeholder excluded from this implementation's
// scope, so it is not part of this interface.
type Node interface {
	Kind() Kind
	// Clone returns a deep copy of the node. Code clones share the captured
	// Environment reference rather than copying it — an environment outlives
	// any Code value that points to it.
	Clone() Node
	String() string
}

// Root holds the ordered sequence of top-level forms produced by one parse.
type Root struct {
	Children []Node
}

func (r *Root) Kind() Kind { return KindRoot }

func (r *Root) Clone() Node {
	children := make([]Node, len(r.Children))
	for i, c := range r.Children {
		children[i] = c.Clone()
	}
	return &Root{Children: children}
}

func (r *Root) String() string {
	return fmt.Sprintf("Root(%d forms)", len(r.Children))
}

// Sexpr is a parenthesised form: an Ident operator applied to zero or more
// operand expressions.
type Sexpr struct {
	Op       *Ident
	Operands []Node
}

func (s *Sexpr) Kind() Kind { return KindSexpr }

func (s *Sexpr) Clone() Node {
	operands := make([]Node, len(s.Operands))
	for i, o := range s.Operands {
		operands[i] = o.Clone()
	}
	op := s.Op.Clone().(*Ident)
	return &Sexpr{Op: op, Operands: operands}
}

func (s *Sexpr) String() string {
	return fmt.Sprintf("(%s ...)", s.Op.Name)
}

// Ident is a bare identifier, looked up against an Environment when
// evaluated.
type Ident struct {
	Name string
}

func (i *Ident) Kind() Kind    { return KindIdent }
func (i *Ident) Clone() Node   { return &Ident{Name: i.Name} }
func (i *Ident) String() string { return i.Name }

// Symbol is a quoted identifier ('foo); it evaluates to itself.
type Symbol struct {
	Name string
}

func (s *Symbol) Kind() Kind    { return KindSymbol }
func (s *Symbol) Clone() Node   { return &Symbol{Name: s.Name} }
func (s *Symbol) String() string { return "'" + s.Name }

// String is a string literal. Value holds the raw text between the quotes,
// verbatim — escape sequences are interpreted lazily by print, not by the
// parser (see internal/builtins).
type String struct {
	Value string
}

func (s *String) Kind() Kind  { return KindString }
func (s *String) Clone() Node { return &String{Value: s.Value} }
func (s *String) String() string {
	return fmt.Sprintf("%q", s.Value)
}

// Integer is a 64-bit signed integer literal.
type Integer struct {
	Value int64
}

func (i *Integer) Kind() Kind    { return KindInteger }
func (i *Integer) Clone() Node   { return &Integer{Value: i.Value} }
func (i *Integer) String() string { return fmt.Sprintf("%d", i.Value) }

// Float is a 64-bit IEEE-754 literal.
type Float struct {
	Value float64
}

func (f *Float) Kind() Kind    { return KindFloat }
func (f *Float) Clone() Node   { return &Float{Value: f.Value} }
func (f *Float) String() string { return fmt.Sprintf("%g", f.Value) }

// Boolean is a true/false literal.
type Boolean struct {
	Value bool
}

func (b *Boolean) Kind() Kind  { return KindBoolean }
func (b *Boolean) Clone() Node { return &Boolean{Value: b.Value} }
func (b *Boolean) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Nil is the unit value.
type Nil struct{}

func (n *Nil) Kind() Kind    { return KindNil }
func (n *Nil) Clone() Node   { return &Nil{} }
func (n *Nil) String() string { return "nil" }

// Array is a bracketed literal, `[a b c]`. It is mutable at runtime — `set`
// grows and writes through a bound Array in place.
type Array struct {
	Items []Node
}

func (a *Array) Kind() Kind { return KindArray }

func (a *Array) Clone() Node {
	items := make([]Node, len(a.Items))
	for i, it := range a.Items {
		items[i] = it.Clone()
	}
	return &Array{Items: items}
}

func (a *Array) String() string {
	return fmt.Sprintf("[%d items]", len(a.Items))
}

// List is a quoted s-expression, `'(a b c)`. Unlike Sexpr it carries no
// dedicated operator slot and is never applied — it evaluates to itself.
type List struct {
	Items []Node
}

func (l *List) Kind() Kind { return KindList }

func (l *List) Clone() Node {
	items := make([]Node, len(l.Items))
	for i, it := range l.Items {
		items[i] = it.Clone()
	}
	return &List{Items: items}
}

func (l *List) String() string {
	return fmt.Sprintf("'(%d items)", len(l.Items))
}

// Pointer wraps an owned node. Reserved for future use; the evaluator
// clones through it like any other scalar.
type Pointer struct {
	Pointee Node
}

func (p *Pointer) Kind() Kind  { return KindPointer }
func (p *Pointer) Clone() Node { return &Pointer{Pointee: p.Pointee.Clone()} }
func (p *Pointer) String() string {
	return "*" + p.Pointee.String()
}

// Comment carries no runtime meaning; evaluating one is a no-op that still
// satisfies the "exactly one value pushed" contract (see evaluator).
type Comment struct {
	Text string
}

func (c *Comment) Kind() Kind    { return KindComment }
func (c *Comment) Clone() Node   { return &Comment{Text: c.Text} }
func (c *Comment) String() string { return ";" + c.Text }

// Code is a closure: a parameter Array, an ordered body, and a reference to
// the environment active when `fn` produced it. Distinct Code values are
// never equal to anything, even each other — see Equal below.
type Code struct {
	Params *Array
	Body   []Node
	Env    any // *runtime.Environment; typed any to avoid an import cycle
}

func (c *Code) Kind() Kind { return KindCode }

func (c *Code) Clone() Node {
	params := c.Params.Clone().(*Array)
	body := make([]Node, len(c.Body))
	for i, b := range c.Body {
		body[i] = b.Clone()
	}
	return &Code{Params: params, Body: body, Env: c.Env}
}

func (c *Code) String() string {
	return fmt.Sprintf("Code(%d params)", len(c.Params.Items))
}

// Builtin wraps a host-implemented operator so it can occupy an
// Environment binding the same way a Value does (spec.md §3: "a mapping
// from name to either a Value ... or a Builtin"). It is never produced by
// the parser, never cloned meaningfully (Clone returns the same pointer —
// built-ins are immutable and shared), and evaluating an Ident bound to one
// is an error: built-ins are only invocable as an Sexpr's operator, not
// first-class. Fn is typed any to avoid an import cycle with the runtime
// package that defines the actual function signature it holds.
type Builtin struct {
	Name string
	Fn   any
}

func (b *Builtin) Kind() Kind    { return KindBuiltin }
func (b *Builtin) Clone() Node   { return b }
func (b *Builtin) String() string { return "#<builtin:" + b.Name + ">" }

// Equal performs the deep structural equality used by the `=` builtin. It
// ignores the captured environment of Code values by definition: Code is
// opaque to structural comparison, so any comparison involving a Code node
// — including comparing it to itself — is false.
func Equal(a, b Node) bool {
	if a.Kind() == KindCode || b.Kind() == KindCode {
		return false
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case *Root:
		y := b.(*Root)
		return equalSlice(x.Children, y.Children)
	case *Sexpr:
		y := b.(*Sexpr)
		return x.Op.Name == y.Op.Name && equalSlice(x.Operands, y.Operands)
	case *Ident:
		return x.Name == b.(*Ident).Name
	case *Symbol:
		return x.Name == b.(*Symbol).Name
	case *String:
		return x.Value == b.(*String).Value
	case *Integer:
		return x.Value == b.(*Integer).Value
	case *Float:
		return x.Value == b.(*Float).Value
	case *Boolean:
		return x.Value == b.(*Boolean).Value
	case *Nil:
		return true
	case *Array:
		y := b.(*Array)
		return equalSlice(x.Items, y.Items)
	case *List:
		y := b.(*List)
		return equalSlice(x.Items, y.Items)
	case *Pointer:
		return Equal(x.Pointee, b.(*Pointer).Pointee)
	case *Comment:
		return x.Text == b.(*Comment).Text
	default:
		return false
	}
}

func equalSlice(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// TypeName returns the `type` builtin's tag for a value node.
func TypeName(n Node) string {
	switch n.Kind() {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindArray:
		return "array"
	case KindList:
		return "list"
	case KindString:
		return "string"
	case KindSymbol:
		return "symbol"
	case KindCode:
		return "code"
	case KindBoolean:
		return "boolean"
	case KindNil:
		return "nil"
	default:
		return n.Kind().String()
	}
}
