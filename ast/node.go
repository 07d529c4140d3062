package ast

import (
	"errors"
	"fmt"

	"github.com/xiam/mal/lexer"
)

var errNotComposite = errors.New("nodes of type atom can't accept children")

// Node represents a node of the syntax tree. Atoms carry a Value, lists,
// vectors and maps own an ordered sequence of children.
type Node struct {
	nt       NodeType
	v        Value
	children []*Node

	tok *lexer.Token
}

// NewAtom creates and returns an atom node for the given value
func NewAtom(tok *lexer.Token, v Value) *Node {
	return &Node{
		nt:  NodeTypeAtom,
		v:   v,
		tok: tok,
	}
}

// NewComposite creates and returns a list, vector or map node
func NewComposite(nt NodeType, tok *lexer.Token, children ...*Node) *Node {
	if children == nil {
		children = []*Node{}
	}
	return &Node{
		nt:       nt,
		children: children,
		tok:      tok,
	}
}

// NewList creates and returns a node of type "list"
func NewList(tok *lexer.Token, children ...*Node) *Node {
	return NewComposite(NodeTypeList, tok, children...)
}

// NewVector creates and returns a node of type "vector"
func NewVector(tok *lexer.Token, children ...*Node) *Node {
	return NewComposite(NodeTypeVector, tok, children...)
}

// NewMap creates and returns a node of type "map"
func NewMap(tok *lexer.Token, children ...*Node) *Node {
	return NewComposite(NodeTypeMap, tok, children...)
}

// Int is a shorthand for an integer atom without a token.
func Int(i int64) *Node {
	return NewAtom(nil, IntValue(i))
}

// Symbol is a shorthand for an unresolved symbol atom without a token.
func Symbol(name string) *Node {
	return NewAtom(nil, SymbolValue(name))
}

// Marker is a shorthand for a marker atom without a token.
func Marker(t ValueType) *Node {
	return NewAtom(nil, MarkerValue(t))
}

// Push appends a child node to a list, vector or map.
func (n *Node) Push(node *Node) error {
	if n.IsAtom() {
		return errNotComposite
	}
	n.children = append(n.children, node)
	return nil
}

// Token returns the token associated to the node, if any
func (n *Node) Token() *lexer.Token {
	return n.tok
}

// Type returns the type of the node
func (n *Node) Type() NodeType {
	return n.nt
}

// Value returns the value of an atom
func (n *Node) Value() Value {
	return n.v
}

// List returns all the children elements of the node
func (n *Node) List() []*Node {
	return n.children
}

// Len returns the number of children
func (n *Node) Len() int {
	return len(n.children)
}

// IsAtom returns true if the node is a leaf
func (n *Node) IsAtom() bool {
	return n.nt == NodeTypeAtom
}

// Is returns true if the node is an atom of the given value type
func (n *Node) Is(vt ValueType) bool {
	return n.IsAtom() && n.v.t == vt
}

func (n *Node) String() string {
	if n.IsAtom() {
		return fmt.Sprintf("(%v): %v", n.v.t, n.v)
	}
	return fmt.Sprintf("(%v)[%d]", n.nt, len(n.children))
}

// Equal compares two trees structurally. Tokens are ignored.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.nt != b.nt {
		return false
	}
	if a.IsAtom() {
		return a.v.Equal(b.v)
	}
	if len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}
