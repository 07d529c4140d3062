package eval

import (
	"fmt"

	"github.com/xiam/mal/ast"
	"github.com/xiam/mal/env"
)

// Defn binds a builtin to name in e.
func Defn(e *env.Env, name string, fn ast.Function) {
	e.Set(name, ast.NewAtom(nil, ast.CallableValue(&ast.Builtin{Name: name, Fn: fn})))
}

// LoadBuiltins binds the arithmetic builtins in e.
func LoadBuiltins(e *env.Env) {
	Defn(e, "+", add)
	Defn(e, "-", subtract)
	Defn(e, "*", multiply)
	Defn(e, "/", divide)
}

// NewGlobal creates a root environment with the builtins bound.
func NewGlobal() *env.Env {
	e := env.New()
	LoadBuiltins(e)
	return e
}

func integers(name string, args []*ast.Node) ([]int64, error) {
	values := make([]int64, 0, len(args))
	for i := range args {
		if !args[i].Is(ast.ValueTypeInteger) {
			return nil, fmt.Errorf("%w: %s expects integers, got %s", ErrOperandType, name, ast.Encode(args[i]))
		}
		values = append(values, args[i].Value().Int())
	}
	return values, nil
}

func binary(name string, args []*ast.Node) (int64, int64, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("%w: %s expects 2, got %d", ErrArity, name, len(args))
	}
	values, err := integers(name, args)
	if err != nil {
		return 0, 0, err
	}
	return values[0], values[1], nil
}

func add(args []*ast.Node) (*ast.Node, error) {
	values, err := integers("+", args)
	if err != nil {
		return nil, err
	}
	sum := int64(0)
	for _, v := range values {
		sum += v
	}
	return ast.Int(sum), nil
}

func multiply(args []*ast.Node) (*ast.Node, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("%w: * expects at least 1, got 0", ErrArity)
	}
	values, err := integers("*", args)
	if err != nil {
		return nil, err
	}
	product := values[0]
	for _, v := range values[1:] {
		product *= v
	}
	return ast.Int(product), nil
}

func subtract(args []*ast.Node) (*ast.Node, error) {
	x, y, err := binary("-", args)
	if err != nil {
		return nil, err
	}
	return ast.Int(x - y), nil
}

func divide(args []*ast.Node) (*ast.Node, error) {
	x, y, err := binary("/", args)
	if err != nil {
		return nil, err
	}
	if y == 0 {
		return nil, ErrDivisionByZero
	}
	return ast.Int(x / y), nil
}
