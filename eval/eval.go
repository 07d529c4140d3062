package eval

import (
	"fmt"
	"io"
	"log"

	"github.com/xiam/mal/ast"
	"github.com/xiam/mal/env"
)

var logger = log.New(io.Discard, "", 0)

// SetLogger sets the logger evaluation traces are written to. A nil logger
// discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}

type specialForm func(forms []*ast.Node, e *env.Env) (*ast.Node, error)

func lookupSpecialForm(head *ast.Node) (specialForm, bool) {
	if !head.Is(ast.ValueTypeSymbol) {
		return nil, false
	}
	switch head.Value().Text() {
	case "def!":
		return evalDef, true
	}
	return nil, false
}

// Eval evaluates node in e.
func Eval(node *ast.Node, e *env.Env) (*ast.Node, error) {
	logger.Printf("eval: %s", ast.Encode(node))

	switch node.Type() {
	case ast.NodeTypeAtom:
		return evalAtom(node, e)
	case ast.NodeTypeList:
		return evalList(node, e)
	case ast.NodeTypeVector, ast.NodeTypeMap:
		return nil, fmt.Errorf("%w: evaluation of %v", ErrNotImplemented, node.Type())
	}

	return nil, fmt.Errorf("%w: node type %v", ErrNotImplemented, node.Type())
}

func evalAtom(node *ast.Node, e *env.Env) (*ast.Node, error) {
	if !node.Is(ast.ValueTypeSymbol) {
		return node, nil
	}

	name := node.Value().Text()
	value, ok := e.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w '%s'", ErrUnboundSymbol, name)
	}
	if value.IsAtom() {
		if fn := value.Value().Callable(); fn != nil {
			return ast.NewAtom(node.Token(), node.Value().Resolve(fn)), nil
		}
	}
	return value, nil
}

func evalList(node *ast.Node, e *env.Env) (*ast.Node, error) {
	forms := withoutComments(node.List())
	if len(forms) == 0 {
		return node, nil
	}

	if form, ok := lookupSpecialForm(forms[0]); ok {
		return form(forms, e)
	}

	evald, err := evalAST(forms, e)
	if err != nil {
		return nil, err
	}
	return apply(evald[0], evald[1:])
}

// evalAST evaluates every form from left to right and stops at the first
// failure.
func evalAST(forms []*ast.Node, e *env.Env) ([]*ast.Node, error) {
	evald := make([]*ast.Node, 0, len(forms))
	for i := range forms {
		value, err := Eval(forms[i], e)
		if err != nil {
			return nil, err
		}
		evald = append(evald, value)
	}
	return evald, nil
}

func apply(head *ast.Node, args []*ast.Node) (*ast.Node, error) {
	if !head.IsAtom() || head.Value().Callable() == nil {
		return nil, fmt.Errorf("%w %s", ErrNotCallable, ast.Encode(head))
	}
	fn := head.Value().Callable()
	logger.Printf("apply: %s with %d argument(s)", fn.Name, len(args))
	return fn.Call(args)
}

func evalDef(forms []*ast.Node, e *env.Env) (*ast.Node, error) {
	if len(forms) != 3 {
		return nil, fmt.Errorf("%w: def! expects 2, got %d", ErrArity, len(forms)-1)
	}

	name := forms[1]
	if !name.Is(ast.ValueTypeSymbol) {
		return nil, fmt.Errorf("%w: def! expects a symbol, got %s", ErrInvalidForm, ast.Encode(name))
	}

	value, err := Eval(forms[2], e)
	if err != nil {
		return nil, err
	}

	logger.Printf("def!: %s -> %s", name.Value().Text(), ast.Encode(value))
	e.Set(name.Value().Text(), value)
	return value, nil
}

func withoutComments(nodes []*ast.Node) []*ast.Node {
	forms := make([]*ast.Node, 0, len(nodes))
	for i := range nodes {
		if !nodes[i].Is(ast.ValueTypeComment) {
			forms = append(forms, nodes[i])
		}
	}
	return forms
}
