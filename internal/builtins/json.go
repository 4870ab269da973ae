// `json` (SPEC_FULL.md §4.4), grounded on the teacher's
// internal/builtins/json.go. Arrays and lists are assembled through
// github.com/tidwall/sjson's SetRaw, so the pack's sjson dependency is
// actually exercised by Iron code instead of sitting unused as an
// indirect, transitive requirement of go-snaps (see DESIGN.md).
package builtins

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arcterus/iron/internal/ast"
	"github.com/arcterus/iron/internal/interp/runtime"
	"github.com/tidwall/sjson"
)

// JSON implements `json`: encodes one Integer/Float/String/Boolean/Nil/
// Array/List/Symbol operand to a String node holding compact JSON.
func JSON(env *runtime.Environment, stack *runtime.Stack, n int) error {
	if n != 1 {
		return fmt.Errorf("json: expected 1 operand, got %d", n)
	}
	args := stack.PopN(n)
	encoded, err := jsonEncode(args[0])
	if err != nil {
		return err
	}
	stack.Push(&ast.String{Value: encoded})
	return nil
}

func jsonEncode(node ast.Node) (string, error) {
	switch v := node.(type) {
	case *ast.Nil:
		return "null", nil
	case *ast.Boolean:
		if v.Value {
			return "true", nil
		}
		return "false", nil
	case *ast.Integer:
		return strconv.FormatInt(v.Value, 10), nil
	case *ast.Float:
		return strconv.FormatFloat(v.Value, 'g', -1, 64), nil
	case *ast.String:
		return quoteJSON(v.Value), nil
	case *ast.Symbol:
		return quoteJSON(v.Name), nil
	case *ast.Array:
		return jsonEncodeSlice(v.Items)
	case *ast.List:
		return jsonEncodeSlice(v.Items)
	default:
		return "", fmt.Errorf("json: cannot encode %s value", ast.TypeName(node))
	}
}

func jsonEncodeSlice(items []ast.Node) (string, error) {
	doc := "[]"
	for _, item := range items {
		raw, err := jsonEncode(item)
		if err != nil {
			return "", err
		}
		doc, err = sjson.SetRaw(doc, "-1", raw)
		if err != nil {
			return "", fmt.Errorf("json: %w", err)
		}
	}
	return doc, nil
}

// quoteJSON escapes a string for embedding in the JSON document being
// assembled above; the primitives it produces feed into sjson.SetRaw
// rather than going through encoding/json.
func quoteJSON(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
