package runtime

import (
	"testing"

	"github.com/arcterus/iron/internal/ast"
)

func TestPushPopTop(t *testing.T) {
	s := NewStack()
	s.Push(&ast.Integer{Value: 1})
	s.Push(&ast.Integer{Value: 2})

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if s.Top().(*ast.Integer).Value != 2 {
		t.Fatalf("Top() should not remove the value")
	}
	if s.Pop().(*ast.Integer).Value != 2 {
		t.Fatal("Pop() should return the most recently pushed value")
	}
	if s.Len() != 1 {
		t.Fatalf("Len() after Pop() = %d, want 1", s.Len())
	}
}

func TestTrimTo(t *testing.T) {
	s := NewStack()
	for i := 0; i < 5; i++ {
		s.Push(&ast.Integer{Value: int64(i)})
	}
	s.TrimTo(2)
	if s.Len() != 2 {
		t.Fatalf("Len() after TrimTo(2) = %d, want 2", s.Len())
	}
	s.TrimTo(10)
	if s.Len() != 2 {
		t.Fatal("TrimTo to a larger size than current should be a no-op")
	}
}

func TestPopNOrdersOldestFirst(t *testing.T) {
	s := NewStack()
	s.Push(&ast.Integer{Value: 1})
	s.Push(&ast.Integer{Value: 2})
	s.Push(&ast.Integer{Value: 3})

	window := s.PopN(2)
	if window[0].(*ast.Integer).Value != 2 || window[1].(*ast.Integer).Value != 3 {
		t.Fatalf("got %v, want [Integer(2) Integer(3)]", window)
	}
	if s.Len() != 1 {
		t.Fatalf("Len() after PopN(2) = %d, want 1", s.Len())
	}
}
