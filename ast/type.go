package ast

// NodeType represents the type of the AST node
type NodeType uint8

// Node types
const (
	NodeTypeAtom NodeType = iota
	NodeTypeList
	NodeTypeVector
	NodeTypeMap
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

var nodeTypeName = map[NodeType]string{
	NodeTypeAtom:   "atom",
	NodeTypeList:   "list",
	NodeTypeVector: "vector",
	NodeTypeMap:    "map",
}

// ValueType represents the type of an atom payload
type ValueType uint8

// Value types
const (
	ValueTypeInteger ValueType = iota
	ValueTypeSymbol
	ValueTypeString
	ValueTypeQuote
	ValueTypeQuasiQuote
	ValueTypeUnquote
	ValueTypeSpliceUnquote
	ValueTypeDeref
	ValueTypeMeta
	ValueTypeComment
	ValueTypeCallable

	// Parse error sentinels.
	ValueTypeUnbalancedListEnd
	ValueTypeUnbalancedString
	ValueTypeIncompleteDeref
	ValueTypeUnexpectedToken
	ValueTypeInvalidInteger
)

var valueTypeName = map[ValueType]string{
	ValueTypeInteger:           "integer",
	ValueTypeSymbol:            "symbol",
	ValueTypeString:            "string",
	ValueTypeQuote:             "quote",
	ValueTypeQuasiQuote:        "quasiquote",
	ValueTypeUnquote:           "unquote",
	ValueTypeSpliceUnquote:     "splice-unquote",
	ValueTypeDeref:             "deref",
	ValueTypeMeta:              "meta",
	ValueTypeComment:           "comment",
	ValueTypeCallable:          "callable",
	ValueTypeUnbalancedListEnd: "unbalanced-list-end",
	ValueTypeUnbalancedString:  "unbalanced-string",
	ValueTypeIncompleteDeref:   "incomplete-deref",
	ValueTypeUnexpectedToken:   "unexpected-token",
	ValueTypeInvalidInteger:    "invalid-integer",
}

func (vt ValueType) String() string {
	return valueTypeName[vt]
}

// IsSentinel returns true for the types produced in place of malformed input.
func (vt ValueType) IsSentinel() bool {
	switch vt {
	case ValueTypeUnbalancedListEnd,
		ValueTypeUnbalancedString,
		ValueTypeIncompleteDeref,
		ValueTypeUnexpectedToken,
		ValueTypeInvalidInteger:
		return true
	}
	return false
}
