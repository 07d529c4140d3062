// Package mal ties the reader, the evaluator and the printer together around
// a single long-lived global environment.
package mal

import (
	"github.com/xiam/mal/ast"
	"github.com/xiam/mal/env"
	"github.com/xiam/mal/eval"
	"github.com/xiam/mal/parser"
)

// Interpreter runs read-eval-print cycles.
type Interpreter struct {
	env *env.Env
}

// New creates an interpreter with the builtins bound in its global
// environment.
func New() *Interpreter {
	return &Interpreter{env: eval.NewGlobal()}
}

// Env returns the global environment.
func (it *Interpreter) Env() *env.Env {
	return it.env
}

// Read parses the first form of line. It returns nil when line holds no form.
func Read(line string) *ast.Node {
	return parser.Parse(line)
}

// Eval evaluates node in the global environment.
func (it *Interpreter) Eval(node *ast.Node) (*ast.Node, error) {
	return eval.Eval(node, it.env)
}

// Print renders node as text.
func Print(node *ast.Node) string {
	return string(ast.Encode(node))
}

// Rep reads, evaluates and prints one line. A line without forms yields an
// empty string.
func (it *Interpreter) Rep(line string) (string, error) {
	node := Read(line)
	if node == nil {
		return "", nil
	}

	result, err := it.Eval(node)
	if err != nil {
		return "", err
	}

	return Print(result), nil
}
