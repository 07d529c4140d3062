package ast

import (
	"fmt"
)

// Function is the signature of a builtin. It receives the evaluated arguments
// in order.
type Function func(args []*Node) (*Node, error)

// Builtin is a named callable provided by the process.
type Builtin struct {
	Name string
	Fn   Function
}

// Call invokes the builtin with the given arguments.
func (b *Builtin) Call(args []*Node) (*Node, error) {
	return b.Fn(args)
}

func (b *Builtin) String() string {
	return fmt.Sprintf("#<builtin %s>", b.Name)
}

// Value is the payload of an atom node.
type Value struct {
	t    ValueType
	i    int64
	text string
	fn   *Builtin
}

// IntValue creates an integer value
func IntValue(i int64) Value {
	return Value{t: ValueTypeInteger, i: i}
}

// SymbolValue creates an unresolved symbol
func SymbolValue(name string) Value {
	return Value{t: ValueTypeSymbol, text: name}
}

// StringValue creates a string literal. The raw text keeps its quotes.
func StringValue(raw string) Value {
	return Value{t: ValueTypeString, text: raw}
}

// DerefValue creates a deref marker for the given name
func DerefValue(name string) Value {
	return Value{t: ValueTypeDeref, text: name}
}

// CommentValue creates a comment value
func CommentValue(text string) Value {
	return Value{t: ValueTypeComment, text: text}
}

// CallableValue wraps a builtin
func CallableValue(b *Builtin) Value {
	return Value{t: ValueTypeCallable, fn: b}
}

// MarkerValue creates a value that carries nothing but its type, such as the
// quote family, meta, and most sentinels.
func MarkerValue(t ValueType) Value {
	return Value{t: t}
}

// UnexpectedTokenValue creates a sentinel for a token that can't start a form
func UnexpectedTokenValue(text string) Value {
	return Value{t: ValueTypeUnexpectedToken, text: text}
}

// InvalidIntegerValue creates a sentinel for numeric text that doesn't fit an
// integer
func InvalidIntegerValue(text string) Value {
	return Value{t: ValueTypeInvalidInteger, text: text}
}

// UnbalancedStringValue creates a sentinel for a string missing its closing quote
func UnbalancedStringValue(raw string) Value {
	return Value{t: ValueTypeUnbalancedString, text: raw}
}

// Type returns the type of the value
func (v Value) Type() ValueType {
	return v.t
}

// Int returns the integer payload
func (v Value) Int() int64 {
	return v.i
}

// Text returns the textual payload: a symbol or deref name, the raw string
// literal, comment text or the offending text of a sentinel.
func (v Value) Text() string {
	return v.text
}

// Callable returns the builtin carried by a callable value or by a resolved
// symbol, nil otherwise.
func (v Value) Callable() *Builtin {
	return v.fn
}

// Resolve returns a copy of a symbol that also carries the given builtin.
func (v Value) Resolve(b *Builtin) Value {
	v.fn = b
	return v
}

// Equal compares two values. Builtins are compared by identity.
func (v Value) Equal(w Value) bool {
	return v.t == w.t && v.i == w.i && v.text == w.text && v.fn == w.fn
}

func (v Value) String() string {
	return string(encodeValue(v))
}
