package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arcterus/iron/internal/ast"
)

// Sprint renders node back into syntactically valid Iron source — the
// canonical serializer spec.md §8 invariant 1 requires for its
// idempotent-under-reparse property: Sprint(Parse(Sprint(Parse(s)))) must
// equal Sprint(Parse(s)). Code and Pointer are never produced by the
// parser, so Sprint only needs to handle what Parse can return.
func Sprint(node ast.Node) string {
	var sb strings.Builder
	sprintNode(&sb, node)
	return sb.String()
}

func sprintNode(sb *strings.Builder, node ast.Node) {
	switch n := node.(type) {
	case *ast.Root:
		for i, c := range n.Children {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sprintNode(sb, c)
		}

	case *ast.Sexpr:
		sb.WriteByte('(')
		sb.WriteString(n.Op.Name)
		for _, o := range n.Operands {
			sb.WriteByte(' ')
			sprintNode(sb, o)
		}
		sb.WriteByte(')')

	case *ast.Array:
		sb.WriteByte('[')
		for i, it := range n.Items {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sprintNode(sb, it)
		}
		sb.WriteByte(']')

	case *ast.List:
		sb.WriteString("'(")
		for i, it := range n.Items {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sprintNode(sb, it)
		}
		sb.WriteByte(')')

	case *ast.Ident:
		sb.WriteString(n.Name)

	case *ast.Symbol:
		sb.WriteByte('\'')
		sb.WriteString(n.Name)

	case *ast.String:
		sb.WriteByte('"')
		sb.WriteString(n.Value)
		sb.WriteByte('"')

	case *ast.Integer:
		sb.WriteString(strconv.FormatInt(n.Value, 10))

	case *ast.Float:
		sprintFloat(sb, n.Value)

	case *ast.Boolean:
		if n.Value {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}

	case *ast.Nil:
		sb.WriteString("nil")

	case *ast.Comment:
		sb.WriteByte(';')
		sb.WriteString(n.Text)

	default:
		sb.WriteString(node.String())
	}
}

// sprintFloat renders a float so re-parsing it still yields Float, not
// Integer — spec.md §4.1's float grammar requires a digit after the '.'.
func sprintFloat(sb *strings.Builder, f float64) {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	} else if strings.HasSuffix(s, ".") {
		s += "0"
	}
	fmt.Fprint(sb, s)
}
