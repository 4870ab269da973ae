package parser

import (
	"testing"

	"github.com/arcterus/iron/internal/ast"
)

func parseOne(t *testing.T, src string) ast.Node {
	t.Helper()
	root, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	if len(root.Children) != 1 {
		t.Fatalf("Parse(%q): got %d forms, want 1", src, len(root.Children))
	}
	return root.Children[0]
}

func TestParseIntegerAndFloat(t *testing.T) {
	cases := []struct {
		src  string
		kind ast.Kind
	}{
		{"42", ast.KindInteger},
		{"-17", ast.KindInteger},
		{"3.14", ast.KindFloat},
		{"-0.5", ast.KindFloat},
	}
	for _, c := range cases {
		n := parseOne(t, c.src)
		if n.Kind() != c.kind {
			t.Errorf("Parse(%q).Kind() = %v, want %v", c.src, n.Kind(), c.kind)
		}
	}
}

func TestFloatPrecedesInteger(t *testing.T) {
	n := parseOne(t, "1.5")
	f, ok := n.(*ast.Float)
	if !ok {
		t.Fatalf("Parse(\"1.5\") = %T, want *ast.Float", n)
	}
	if f.Value != 1.5 {
		t.Errorf("Value = %v, want 1.5", f.Value)
	}
}

func TestParseBooleanAndNil(t *testing.T) {
	b := parseOne(t, "true").(*ast.Boolean)
	if !b.Value {
		t.Errorf("true parsed as false")
	}
	b2 := parseOne(t, "false").(*ast.Boolean)
	if b2.Value {
		t.Errorf("false parsed as true")
	}
	if _, ok := parseOne(t, "nil").(*ast.Nil); !ok {
		t.Errorf("nil did not parse as Nil")
	}
}

func TestKeywordPrefixIsIdent(t *testing.T) {
	n := parseOne(t, "truex")
	id, ok := n.(*ast.Ident)
	if !ok {
		t.Fatalf("Parse(\"truex\") = %T, want *ast.Ident", n)
	}
	if id.Name != "truex" {
		t.Errorf("Name = %q, want %q", id.Name, "truex")
	}
}

func TestParseIdentWithOperatorChars(t *testing.T) {
	id := parseOne(t, "+").(*ast.Ident)
	if id.Name != "+" {
		t.Errorf("Name = %q, want %q", id.Name, "+")
	}
}

func TestParseVariadicIdent(t *testing.T) {
	id := parseOne(t, "xs...").(*ast.Ident)
	if id.Name != "xs..." {
		t.Errorf("Name = %q, want %q", id.Name, "xs...")
	}
}

func TestParseString(t *testing.T) {
	s := parseOne(t, `"hello world"`).(*ast.String)
	if s.Value != "hello world" {
		t.Errorf("Value = %q, want %q", s.Value, "hello world")
	}
}

func TestParseStringEscapedQuoteDoesNotTerminate(t *testing.T) {
	s := parseOne(t, `"a\"b"`).(*ast.String)
	if s.Value != `a\"b` {
		t.Errorf("Value = %q, want %q", s.Value, `a\"b`)
	}
}

func TestParseSymbol(t *testing.T) {
	s := parseOne(t, "'foo").(*ast.Symbol)
	if s.Name != "foo" {
		t.Errorf("Name = %q, want %q", s.Name, "foo")
	}
}

func TestParseListVsSymbol(t *testing.T) {
	l := parseOne(t, "'(1 2 3)").(*ast.List)
	if len(l.Items) != 3 {
		t.Fatalf("len(Items) = %d, want 3", len(l.Items))
	}
}

func TestParseArray(t *testing.T) {
	a := parseOne(t, "[1 2 3]").(*ast.Array)
	if len(a.Items) != 3 {
		t.Fatalf("len(Items) = %d, want 3", len(a.Items))
	}
}

func TestParseSexpr(t *testing.T) {
	s := parseOne(t, "(+ 1 2)").(*ast.Sexpr)
	if s.Op.Name != "+" {
		t.Errorf("Op.Name = %q, want %q", s.Op.Name, "+")
	}
	if len(s.Operands) != 2 {
		t.Fatalf("len(Operands) = %d, want 2", len(s.Operands))
	}
}

func TestParseNestedSexpr(t *testing.T) {
	s := parseOne(t, "(+ 1 (* 2 3))").(*ast.Sexpr)
	inner, ok := s.Operands[1].(*ast.Sexpr)
	if !ok {
		t.Fatalf("Operands[1] = %T, want *ast.Sexpr", s.Operands[1])
	}
	if inner.Op.Name != "*" {
		t.Errorf("inner.Op.Name = %q, want %q", inner.Op.Name, "*")
	}
}

func TestParseComment(t *testing.T) {
	root, err := Parse("; a comment\n(+ 1 2)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(root.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(root.Children))
	}
	c, ok := root.Children[0].(*ast.Comment)
	if !ok {
		t.Fatalf("Children[0] = %T, want *ast.Comment", root.Children[0])
	}
	if c.Text != " a comment" {
		t.Errorf("Text = %q, want %q", c.Text, " a comment")
	}
}

func TestParseMultipleTopLevelForms(t *testing.T) {
	root, err := Parse("(define x 1)\n(define y 2)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(root.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(root.Children))
	}
}

func TestParseErrorUnterminatedSexpr(t *testing.T) {
	_, err := Parse("(+ 1 2")
	if err == nil {
		t.Fatal("expected error for unterminated sexpr")
	}
}

func TestParseErrorReportsLine(t *testing.T) {
	_, err := Parse("(+ 1\n 2\n")
	if err == nil {
		t.Fatal("expected error for unterminated sexpr")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("err = %T, want *ParseError", err)
	}
	if pe.Line != 3 {
		t.Errorf("Line = %d, want 3", pe.Line)
	}
}

func TestParseUnicodeIdentAndColumns(t *testing.T) {
	// A multi-byte rune must advance column by one, not by its byte width.
	root, err := Parse("(print café)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	s := root.Children[0].(*ast.Sexpr)
	id := s.Operands[0].(*ast.Ident)
	if id.Name != "café" {
		t.Errorf("Name = %q, want %q", id.Name, "café")
	}

	// "(print café" is 11 runes but 12 bytes, so the end-of-file error
	// sits at column 12, not 13.
	_, err = Parse("(print café")
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("err = %T, want *ParseError", err)
	}
	if pe.Column != 12 {
		t.Errorf("Column = %d, want 12", pe.Column)
	}
}

func TestNegativeIdentOperator(t *testing.T) {
	s := parseOne(t, "(- 5 3)").(*ast.Sexpr)
	if s.Op.Name != "-" {
		t.Errorf("Op.Name = %q, want %q", s.Op.Name, "-")
	}
}
