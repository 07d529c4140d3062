package ast

import (
	"strconv"
	"strings"
)

// Encode renders a node as canonical text. Comments are left out.
func Encode(n *Node) []byte {
	return []byte(encodeNode(n))
}

func encodeNode(n *Node) string {
	if n == nil {
		return ""
	}
	switch n.Type() {
	case NodeTypeList:
		return "(" + encodeChildren(n.List()) + ")"
	case NodeTypeVector:
		return "[" + encodeChildren(n.List()) + "]"
	case NodeTypeMap:
		return "{" + encodeChildren(n.List()) + "}"
	case NodeTypeAtom:
		return encodeValue(n.Value())
	}

	panic("unknown node type")
}

func encodeChildren(nodes []*Node) string {
	parts := make([]string, 0, len(nodes))
	for i := range nodes {
		if nodes[i].Is(ValueTypeComment) {
			continue
		}
		parts = append(parts, encodeNode(nodes[i]))
	}
	return strings.Join(parts, " ")
}

func encodeValue(v Value) string {
	switch v.Type() {
	case ValueTypeInteger:
		return strconv.FormatInt(v.Int(), 10)
	case ValueTypeSymbol, ValueTypeString:
		return v.Text()
	case ValueTypeQuote:
		return "quote"
	case ValueTypeQuasiQuote:
		return "quasiquote"
	case ValueTypeUnquote:
		return "unquote"
	case ValueTypeSpliceUnquote:
		return "splice-unquote"
	case ValueTypeDeref:
		return "(deref " + v.Text() + ")"
	case ValueTypeMeta:
		return "with-meta"
	case ValueTypeComment:
		return ""
	case ValueTypeCallable:
		return v.Callable().String()
	case ValueTypeUnbalancedListEnd:
		return "unbalanced list"
	case ValueTypeUnbalancedString:
		return "unbalanced string"
	case ValueTypeIncompleteDeref:
		return "incomplete deref"
	case ValueTypeUnexpectedToken:
		return "unexpected '" + v.Text() + "'"
	case ValueTypeInvalidInteger:
		return "integer out of range"
	}

	panic("unknown value type")
}
