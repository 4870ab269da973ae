// Package printer implements spec.md §4.2's `dump`: a pretty-printer that
// renders an AST as an indented tree, two spaces per nesting level.
// Grounded on the teacher's pkg/printer — a dedicated printer package kept
// separate from the AST package, the teacher's convention for turning a
// parsed tree back into text (there, for `--ast`/`fmt` output).
package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arcterus/iron/internal/ast"
)

// Dump pretty-prints node to standard output, the format exposed by the
// `--ast` CLI flag.
func Dump(node ast.Node) {
	DumpTo(os.Stdout, node)
}

// DumpTo pretty-prints node to w.
func DumpTo(w io.Writer, node ast.Node) {
	dumpNode(w, node, 0)
}

func writeIndent(w io.Writer, level int) {
	io.WriteString(w, strings.Repeat("  ", level))
}

// dumpNode renders one node. Compound nodes print "<Kind> {", their
// children one level deeper, then "}"; scalars print their kind and value
// on consecutive indented lines.
func dumpNode(w io.Writer, node ast.Node, level int) {
	switch n := node.(type) {
	case *ast.Root:
		writeIndent(w, level)
		fmt.Fprintln(w, "Root {")
		for _, c := range n.Children {
			dumpNode(w, c, level+1)
		}
		writeIndent(w, level)
		fmt.Fprintln(w, "}")

	case *ast.Sexpr:
		writeIndent(w, level)
		fmt.Fprintln(w, "Sexpr {")
		dumpNode(w, n.Op, level+1)
		for _, o := range n.Operands {
			dumpNode(w, o, level+1)
		}
		writeIndent(w, level)
		fmt.Fprintln(w, "}")

	case *ast.Array:
		writeIndent(w, level)
		fmt.Fprintln(w, "Array {")
		for _, it := range n.Items {
			dumpNode(w, it, level+1)
		}
		writeIndent(w, level)
		fmt.Fprintln(w, "}")

	case *ast.List:
		writeIndent(w, level)
		fmt.Fprintln(w, "List {")
		for _, it := range n.Items {
			dumpNode(w, it, level+1)
		}
		writeIndent(w, level)
		fmt.Fprintln(w, "}")

	case *ast.Code:
		writeIndent(w, level)
		fmt.Fprintln(w, "Code {")
		dumpNode(w, n.Params, level+1)
		for _, b := range n.Body {
			dumpNode(w, b, level+1)
		}
		writeIndent(w, level)
		fmt.Fprintln(w, "}")

	case *ast.Pointer:
		writeIndent(w, level)
		fmt.Fprintln(w, "Pointer {")
		dumpNode(w, n.Pointee, level+1)
		writeIndent(w, level)
		fmt.Fprintln(w, "}")

	case *ast.Ident:
		writeIndent(w, level)
		fmt.Fprintln(w, "Ident")
		writeIndent(w, level+1)
		fmt.Fprintln(w, n.Name)

	case *ast.Symbol:
		writeIndent(w, level)
		fmt.Fprintln(w, "Symbol")
		writeIndent(w, level+1)
		fmt.Fprintln(w, n.Name)

	case *ast.String:
		writeIndent(w, level)
		fmt.Fprintln(w, "String")
		writeIndent(w, level+1)
		fmt.Fprintf(w, "%q\n", n.Value)

	case *ast.Integer:
		writeIndent(w, level)
		fmt.Fprintln(w, "Integer")
		writeIndent(w, level+1)
		fmt.Fprintln(w, n.Value)

	case *ast.Float:
		writeIndent(w, level)
		fmt.Fprintln(w, "Float")
		writeIndent(w, level+1)
		fmt.Fprintln(w, n.Value)

	case *ast.Boolean:
		writeIndent(w, level)
		fmt.Fprintln(w, "Boolean")
		writeIndent(w, level+1)
		fmt.Fprintln(w, n.Value)

	case *ast.Nil:
		writeIndent(w, level)
		fmt.Fprintln(w, "Nil")

	case *ast.Comment:
		writeIndent(w, level)
		fmt.Fprintln(w, "Comment")
		writeIndent(w, level+1)
		fmt.Fprintln(w, n.Text)

	default:
		writeIndent(w, level)
		fmt.Fprintln(w, node.String())
	}
}
