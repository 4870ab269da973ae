package runtime

import (
	"testing"

	"github.com/arcterus/iron/internal/ast"
)

func TestDefineAndGet(t *testing.T) {
	env := NewRootEnvironment(nil)
	env.Define("x", &ast.Integer{Value: 1})

	v, ok := env.Get("x")
	if !ok || v.(*ast.Integer).Value != 1 {
		t.Fatalf("got (%v, %v), want (Integer(1), true)", v, ok)
	}
}

func TestGetWalksOuterFrames(t *testing.T) {
	root := NewRootEnvironment(nil)
	root.Define("x", &ast.Integer{Value: 1})
	child := NewEnvironment(root)

	v, ok := child.Get("x")
	if !ok || v.(*ast.Integer).Value != 1 {
		t.Fatalf("child should see root's binding, got (%v, %v)", v, ok)
	}
	if _, ok := child.GetLocal("x"); ok {
		t.Fatal("GetLocal should not walk outer frames")
	}
}

func TestDefineShadowsOuter(t *testing.T) {
	root := NewRootEnvironment(nil)
	root.Define("x", &ast.Integer{Value: 1})
	child := NewEnvironment(root)
	child.Define("x", &ast.Integer{Value: 2})

	v, _ := child.Get("x")
	if v.(*ast.Integer).Value != 2 {
		t.Fatalf("child's own binding should shadow root's, got %v", v)
	}
	v, _ = root.Get("x")
	if v.(*ast.Integer).Value != 1 {
		t.Fatalf("root's binding should be unaffected by the child's, got %v", v)
	}
}

func TestSetFindsOwningFrame(t *testing.T) {
	root := NewRootEnvironment(nil)
	root.Define("x", &ast.Integer{Value: 1})
	child := NewEnvironment(root)

	if ok := child.Set("x", &ast.Integer{Value: 99}); !ok {
		t.Fatal("Set should find x in the root frame")
	}
	v, _ := root.Get("x")
	if v.(*ast.Integer).Value != 99 {
		t.Fatalf("Set through a child frame should mutate the owning frame, got %v", v)
	}
}

func TestSetUnboundReturnsFalse(t *testing.T) {
	env := NewRootEnvironment(nil)
	if env.Set("nope", &ast.Nil{}) {
		t.Fatal("Set on an unbound name should return false")
	}
}

func TestCtxWalksToRoot(t *testing.T) {
	ctx := &Context{}
	root := NewRootEnvironment(ctx)
	child := NewEnvironment(root)
	grandchild := NewEnvironment(child)

	if grandchild.Ctx() != ctx {
		t.Fatal("Ctx should walk to the root environment from any depth")
	}
}

func TestHas(t *testing.T) {
	root := NewRootEnvironment(nil)
	root.Define("x", &ast.Nil{})
	child := NewEnvironment(root)

	if !child.Has("x") {
		t.Fatal("Has should see an outer binding")
	}
	if child.Has("y") {
		t.Fatal("Has should not see an unbound name")
	}
}

func TestRangeIsLocalOnly(t *testing.T) {
	root := NewRootEnvironment(nil)
	root.Define("x", &ast.Nil{})
	child := NewEnvironment(root)
	child.Define("y", &ast.Nil{})

	seen := map[string]bool{}
	child.Range(func(name string, _ ast.Node) bool {
		seen[name] = true
		return true
	})
	if len(seen) != 1 || !seen["y"] {
		t.Fatalf("Range should only see local bindings, got %v", seen)
	}
}
